package render

import (
	"bytes"
	"testing"

	"github.com/internfolio/internfolio/internal/form"
	"github.com/internfolio/internfolio/internal/template/internal/domain"
	"github.com/internfolio/internfolio/internal/template/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord() form.Record {
	return form.Record{
		BasicInfo: form.BasicInfo{FullName: "张三"},
		Projects: []form.Project{
			{Title: "订单中心重构", Description: "拆单体", Technologies: []string{"Go"}},
		},
	}
}

func testTemplate(structure []domain.Node) domain.Template {
	return domain.Template{
		ID:        "tpl-1",
		Name:      "测试模板",
		Theme:     domain.DefaultTheme(),
		Structure: structure,
	}
}

func TestRenderDataBinding(t *testing.T) {
	r := New(registry.Builtin())
	tpl := testTemplate([]domain.Node{
		{
			ID:          "n-1",
			ComponentID: "text",
			DataMapping: map[string]string{"content": "basicInfo.fullName"},
		},
	})
	html := r.HTML(tpl, testRecord())
	assert.Contains(t, html, "张三")
	assert.Contains(t, html, `data-node-id="n-1"`)
	assert.Contains(t, html, `data-component-id="text"`)
}

func TestRenderPropPrecedence(t *testing.T) {
	r := New(registry.Builtin())

	t.Run("字面量盖过缺省值", func(t *testing.T) {
		tpl := testTemplate([]domain.Node{
			{ID: "n-1", ComponentID: "text", Props: map[string]any{"content": "固定文案"}},
		})
		html := r.HTML(tpl, testRecord())
		assert.Contains(t, html, "固定文案")
		assert.NotContains(t, html, "Enter text here")
	})

	t.Run("绑定值盖过字面量", func(t *testing.T) {
		tpl := testTemplate([]domain.Node{
			{
				ID:          "n-1",
				ComponentID: "text",
				Props:       map[string]any{"content": "固定文案"},
				DataMapping: map[string]string{"content": "basicInfo.fullName"},
			},
		})
		html := r.HTML(tpl, testRecord())
		assert.Contains(t, html, "张三")
		assert.NotContains(t, html, "固定文案")
	})

	t.Run("绑定解析不到退回字面量", func(t *testing.T) {
		tpl := testTemplate([]domain.Node{
			{
				ID:          "n-1",
				ComponentID: "text",
				Props:       map[string]any{"content": "固定文案"},
				DataMapping: map[string]string{"content": "basicInfo.nickname"},
			},
		})
		html := r.HTML(tpl, testRecord())
		assert.Contains(t, html, "固定文案")
	})
}

func TestRenderShowIf(t *testing.T) {
	r := New(registry.Builtin())
	testcases := []struct {
		name     string
		cond     *domain.Condition
		wantShow bool
	}{
		{
			name:     "条件满足",
			cond:     &domain.Condition{DataPath: "$computed.projectCount", Operator: "greaterThan", Value: 0},
			wantShow: true,
		},
		{
			name:     "条件不满足",
			cond:     &domain.Condition{DataPath: "$computed.projectCount", Operator: "greaterThan", Value: 5},
			wantShow: false,
		},
		{
			name:     "没有条件",
			cond:     nil,
			wantShow: true,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			tpl := testTemplate([]domain.Node{
				{
					ID:          "n-1",
					ComponentID: "text",
					Props:       map[string]any{"content": "哨兵文案"},
					ShowIf:      tc.cond,
				},
			})
			html := r.HTML(tpl, testRecord())
			if tc.wantShow {
				assert.Contains(t, html, "哨兵文案")
			} else {
				assert.NotContains(t, html, "哨兵文案")
			}
		})
	}
}

func TestRenderHiddenNode(t *testing.T) {
	r := New(registry.Builtin())
	tpl := testTemplate([]domain.Node{
		{ID: "n-1", ComponentID: "text", Props: map[string]any{"content": "看不见"}, Hidden: true},
		{ID: "n-2", ComponentID: "text", Props: map[string]any{"content": "看得见"}},
	})
	html := r.HTML(tpl, testRecord())
	assert.NotContains(t, html, "看不见")
	assert.Contains(t, html, "看得见")
}

func TestRenderMissingComponent(t *testing.T) {
	r := New(registry.Builtin())
	tpl := testTemplate([]domain.Node{
		{ID: "n-1", ComponentID: "fancy-chart"},
		{ID: "n-2", ComponentID: "text", Props: map[string]any{"content": "正常节点"}},
	})
	html := r.HTML(tpl, testRecord())
	// 缺组件只影响自己，占位符 + 其余照常
	assert.Contains(t, html, "component not found: fancy-chart")
	assert.Contains(t, html, "正常节点")
}

func TestRenderPanicIsolation(t *testing.T) {
	reg := registry.Builtin()
	reg.MustRegister(registry.Descriptor{
		ID:   "bomb",
		Type: registry.TypeAtom,
		Name: "Bomb",
		Render: func(buf *bytes.Buffer, props map[string]any, children string) {
			panic("boom")
		},
	})
	r := New(reg)
	tpl := testTemplate([]domain.Node{
		{ID: "n-1", ComponentID: "bomb"},
		{ID: "n-2", ComponentID: "text", Props: map[string]any{"content": "幸存节点"}},
	})
	html := r.HTML(tpl, testRecord())
	assert.Contains(t, html, "render error in bomb")
	assert.Contains(t, html, "幸存节点")
}

func TestRenderChildrenAndStyles(t *testing.T) {
	r := New(registry.Builtin())
	tpl := testTemplate([]domain.Node{
		{
			ID:          "n-1",
			ComponentID: "container",
			Styles:      map[string]string{"margin-top": "12px"},
			Children: []domain.Node{
				{ID: "n-2", ComponentID: "text", Props: map[string]any{"content": "子节点"}},
			},
		},
	})
	html := r.HTML(tpl, testRecord())
	assert.Contains(t, html, "子节点")
	assert.Contains(t, html, "margin-top:12px;")
}

func TestRenderThemeVariables(t *testing.T) {
	r := New(registry.Builtin())
	tpl := testTemplate(nil)
	tpl.Theme.Colors.Primary = "#123456"
	html := r.HTML(tpl, testRecord())
	assert.Contains(t, html, "--tb-color-primary:#123456;")

	t.Run("零值主题兜底", func(t *testing.T) {
		zero := testTemplate(nil)
		zero.Theme = domain.Theme{}
		got := r.HTML(zero, testRecord())
		assert.Contains(t, got, "--tb-color-primary:#3B82F6;")
	})
}

func TestRenderProjectGrid(t *testing.T) {
	r := New(registry.Builtin())
	tpl := testTemplate([]domain.Node{
		{
			ID:          "n-1",
			ComponentID: "project-grid",
			DataMapping: map[string]string{"projects": "projects"},
		},
	})
	html := r.HTML(tpl, testRecord())
	assert.Contains(t, html, "订单中心重构")
	assert.Contains(t, html, "Go")
}

func TestPreviewSelection(t *testing.T) {
	r := New(registry.Builtin())
	tpl := testTemplate([]domain.Node{
		{ID: "n-1", ComponentID: "text", Props: map[string]any{"content": "a"}},
		{ID: "n-2", ComponentID: "text", Props: map[string]any{"content": "b"}},
	})
	html := r.Preview(tpl, testRecord(), Options{SelectedID: "n-1", HoveredID: "n-2"})
	require.Contains(t, html, `class="tb-node tb-selected" data-node-id="n-1"`)
	require.Contains(t, html, `class="tb-node tb-hovered" data-node-id="n-2"`)
	// 最终产物没有编辑态标记
	clean := r.HTML(tpl, testRecord())
	assert.NotContains(t, clean, "tb-selected")
}
