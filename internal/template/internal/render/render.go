package render

import (
	"bytes"
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/gotomicro/ego/core/elog"
	"github.com/internfolio/internfolio/internal/form"
	"github.com/internfolio/internfolio/internal/template/internal/binding"
	"github.com/internfolio/internfolio/internal/template/internal/domain"
	"github.com/internfolio/internfolio/internal/template/internal/registry"
	"github.com/internfolio/internfolio/internal/template/internal/schema"
)

// Renderer 把模板结构和实习数据拼成静态 HTML。
// 单个节点渲染失败只影响自己，占位符顶上，整页照常输出。
type Renderer struct {
	reg    *registry.Registry
	logger *elog.Component
}

type Options struct {
	// 编辑器预览用，给选中和悬停的节点加标记 class
	SelectedID string
	HoveredID  string
}

func New(reg *registry.Registry) *Renderer {
	return &Renderer{
		reg:    reg,
		logger: elog.DefaultLogger,
	}
}

// HTML 公开页用的最终产物
func (r *Renderer) HTML(t domain.Template, rec form.Record) string {
	return r.render(t, rec, Options{})
}

// Preview 画布预览，带编辑态标记
func (r *Renderer) Preview(t domain.Template, rec form.Record, opts Options) string {
	return r.render(t, rec, opts)
}

func (r *Renderer) render(t domain.Template, rec form.Record, opts Options) string {
	ctx := binding.NewContext(rec)
	var buf bytes.Buffer
	buf.WriteString(`<div class="tb-root" style="`)
	buf.WriteString(themeStyle(t.Theme))
	buf.WriteString(`">`)
	for _, node := range t.Structure {
		r.renderNode(&buf, node, ctx, opts, 0)
	}
	buf.WriteString(`</div>`)
	return buf.String()
}

func (r *Renderer) renderNode(buf *bytes.Buffer, node domain.Node, ctx *binding.Context, opts Options, depth int) {
	if node.Hidden || depth > schema.MaxDepth {
		return
	}
	if node.ShowIf != nil &&
		!ctx.EvaluateCondition(node.ShowIf.DataPath, node.ShowIf.Operator, node.ShowIf.Value) {
		return
	}

	meta, ok := r.reg.Get(node.ComponentID)
	if !ok {
		fmt.Fprintf(buf,
			`<div class="tb-missing" data-node-id="%s">component not found: %s</div>`,
			html.EscapeString(node.ID), html.EscapeString(node.ComponentID))
		return
	}

	// 子节点先渲染，结果作为字符串交给组件自己决定放哪
	var childBuf bytes.Buffer
	for _, child := range node.Children {
		r.renderNode(&childBuf, child, ctx, opts, depth+1)
	}

	props := mergeProps(meta.DefaultProps, node.Props, ctx.ResolveAll(node.DataMapping))

	classes := []string{"tb-node"}
	if node.ID == opts.SelectedID {
		classes = append(classes, "tb-selected")
	}
	if node.ID == opts.HoveredID {
		classes = append(classes, "tb-hovered")
	}
	fmt.Fprintf(buf, `<div class="%s" data-node-id="%s" data-component-id="%s"`,
		strings.Join(classes, " "), html.EscapeString(node.ID), html.EscapeString(node.ComponentID))
	if style := inlineStyle(node.Styles); style != "" {
		fmt.Fprintf(buf, ` style="%s"`, style)
	}
	buf.WriteString(">")
	r.renderComponent(buf, node, meta, props, childBuf.String())
	buf.WriteString("</div>")
}

func (r *Renderer) renderComponent(buf *bytes.Buffer, node domain.Node, meta registry.Descriptor, props map[string]any, children string) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("渲染组件失败",
				elog.String("nodeId", node.ID),
				elog.String("componentId", node.ComponentID),
				elog.Any("panic", rec))
			fmt.Fprintf(buf, `<div class="tb-error">render error in %s</div>`,
				html.EscapeString(node.ComponentID))
		}
	}()
	if meta.Render == nil {
		buf.WriteString(children)
		return
	}
	meta.Render(buf, props, children)
}

// 缺省值垫底，节点字面 props 盖上去，数据绑定解析出来的值优先级最高。
// 绑定解析不到的键保持上一层的值。
func mergeProps(defaults, literal, bound map[string]any) map[string]any {
	merged := make(map[string]any, len(defaults)+len(literal)+len(bound))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range literal {
		merged[k] = v
	}
	for k, v := range bound {
		if v == nil {
			continue
		}
		merged[k] = v
	}
	return merged
}

func inlineStyle(styles map[string]string) string {
	if len(styles) == 0 {
		return ""
	}
	keys := make([]string, 0, len(styles))
	for k := range styles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(html.EscapeString(k))
		sb.WriteString(":")
		sb.WriteString(html.EscapeString(styles[k]))
		sb.WriteString(";")
	}
	return sb.String()
}

// themeStyle 把主题铺成 CSS 自定义属性，组件样式表只认这些变量
func themeStyle(t domain.Theme) string {
	if t.IsZero() {
		t = domain.DefaultTheme()
	}
	pairs := []struct{ name, value string }{
		{"--tb-color-primary", t.Colors.Primary},
		{"--tb-color-secondary", t.Colors.Secondary},
		{"--tb-color-accent", t.Colors.Accent},
		{"--tb-color-background", t.Colors.Background},
		{"--tb-color-surface", t.Colors.Surface},
		{"--tb-color-text", t.Colors.Text},
		{"--tb-color-text-secondary", t.Colors.TextSecondary},
		{"--tb-color-border", t.Colors.Border},
		{"--tb-font-family", t.Typography.FontFamily},
		{"--tb-font-family-heading", t.Typography.FontFamilyHeading},
		{"--tb-font-size", t.Typography.BaseFontSize},
		{"--tb-line-height", fmt.Sprintf("%g", t.Typography.LineHeight)},
		{"--tb-spacing-unit", fmt.Sprintf("%dpx", t.Spacing.Unit)},
		{"--tb-radius-md", t.BorderRadius.MD},
		{"--tb-shadow-md", t.Shadows.MD},
	}
	var sb strings.Builder
	for _, p := range pairs {
		if p.value == "" {
			continue
		}
		sb.WriteString(p.name)
		sb.WriteString(":")
		sb.WriteString(html.EscapeString(p.value))
		sb.WriteString(";")
	}
	sb.WriteString("font-family:var(--tb-font-family);color:var(--tb-color-text);background:var(--tb-color-background);")
	return sb.String()
}
