package registry

import (
	"bytes"
	"fmt"
	"html"
)

// Builtin 注册内置组件后返回目录。
// 四个来自最初的拖拽组件库，stat-card 和 tech-list 服务于预置模板的统计区块。
func Builtin() *Registry {
	r := New()
	r.MustRegister(containerDescriptor())
	r.MustRegister(textDescriptor())
	r.MustRegister(projectCardDescriptor())
	r.MustRegister(projectGridDescriptor())
	r.MustRegister(statCardDescriptor())
	r.MustRegister(techListDescriptor())
	return r
}

func containerDescriptor() Descriptor {
	return Descriptor{
		ID:          "container",
		Type:        TypeAtom,
		Name:        "Container",
		Description: "Flexible layout container with flex/grid support",
		Category:    "Layout",
		Props: []PropDefinition{
			{Name: "maxWidth", Kind: "select", Label: "Max Width", Default: "xl",
				Options: options("sm", "md", "lg", "xl", "2xl", "full")},
			{Name: "padding", Kind: "select", Label: "Padding", Default: "md",
				Options: options("none", "sm", "md", "lg", "xl")},
			{Name: "layout", Kind: "select", Label: "Layout Type", Default: "block",
				Options: options("block", "flex", "grid")},
			{Name: "direction", Kind: "select", Label: "Flex Direction", Default: "row",
				Options: options("row", "column")},
			{Name: "gap", Kind: "select", Label: "Gap", Default: "md",
				Options: options("none", "sm", "md", "lg", "xl")},
			{Name: "gridCols", Kind: "select", Label: "Grid Columns", Default: "3",
				Options: options("1", "2", "3", "4", "5", "6")},
		},
		DefaultProps: map[string]any{
			"maxWidth": "xl", "padding": "md", "layout": "block",
			"direction": "row", "gap": "md", "gridCols": "3",
		},
		Tags: []string{"layout", "container", "flex", "grid", "wrapper"},
		Render: func(buf *bytes.Buffer, props map[string]any, children string) {
			layout := propString(props, "layout")
			style := ""
			switch layout {
			case "flex":
				style = fmt.Sprintf("display:flex;flex-direction:%s;", cssFlexDirection(propString(props, "direction")))
			case "grid":
				style = fmt.Sprintf("display:grid;grid-template-columns:repeat(%s, minmax(0, 1fr));", propString(props, "gridCols"))
			}
			fmt.Fprintf(buf,
				`<div class="tb-container tb-maxw-%s tb-pad-%s tb-gap-%s" style=%q>%s</div>`,
				propString(props, "maxWidth"), propString(props, "padding"),
				propString(props, "gap"), style, children)
		},
	}
}

func textDescriptor() Descriptor {
	return Descriptor{
		ID:          "text",
		Type:        TypeAtom,
		Name:        "Text",
		Description: "Customizable text element with typography controls",
		Category:    "Typography",
		Props: []PropDefinition{
			{Name: "content", Kind: "textarea", Label: "Text Content", Default: "Enter text here"},
			{Name: "variant", Kind: "select", Label: "Element Type", Default: "p",
				Options: options("h1", "h2", "h3", "h4", "h5", "h6", "p", "span", "label")},
			{Name: "size", Kind: "select", Label: "Font Size", Default: "base",
				Options: options("xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl", "5xl")},
			{Name: "weight", Kind: "select", Label: "Font Weight", Default: "normal",
				Options: options("light", "normal", "medium", "semibold", "bold")},
			{Name: "align", Kind: "select", Label: "Alignment", Default: "left",
				Options: options("left", "center", "right")},
		},
		DefaultProps: map[string]any{
			"content": "Enter text here", "variant": "p",
			"size": "base", "weight": "normal", "align": "left",
		},
		DataBindings: []DataBindingDefinition{
			{Key: "content", Kind: "string", Label: "Content"},
		},
		Tags: []string{"text", "typography", "heading", "paragraph"},
		Render: func(buf *bytes.Buffer, props map[string]any, children string) {
			tag := propString(props, "variant")
			if !validTextTag(tag) {
				tag = "p"
			}
			fmt.Fprintf(buf, `<%s class="tb-text tb-size-%s tb-weight-%s" style="text-align:%s">%s</%s>`,
				tag, propString(props, "size"), propString(props, "weight"),
				propString(props, "align"), html.EscapeString(asString(props["content"])), tag)
		},
	}
}

func projectCardDescriptor() Descriptor {
	return Descriptor{
		ID:          "project-card",
		Type:        TypeMolecule,
		Name:        "Project Card",
		Description: "Displays a single project with title, description, technologies, and outcome",
		Category:    "Projects",
		Props: []PropDefinition{
			{Name: "layout", Kind: "select", Label: "Layout", Default: "vertical",
				Options: options("vertical", "horizontal")},
			{Name: "cardStyle", Kind: "select", Label: "Card Style", Default: "elevated",
				Options: options("default", "bordered", "elevated")},
			{Name: "showTechnologies", Kind: "toggle", Label: "Show Technologies", Default: true},
			{Name: "showOutcome", Kind: "toggle", Label: "Show Outcome", Default: true},
			{Name: "showLink", Kind: "toggle", Label: "Show Link", Default: false},
		},
		DefaultProps: map[string]any{
			"layout": "vertical", "cardStyle": "elevated",
			"showTechnologies": true, "showOutcome": true, "showLink": false,
		},
		DataBindings: []DataBindingDefinition{
			{Key: "project", Kind: "object", Label: "Project", Required: true},
		},
		Constraints: &Constraints{
			AllowedParents: []string{"container", "project-grid"},
		},
		Tags: []string{"project", "card", "portfolio"},
		Render: func(buf *bytes.Buffer, props map[string]any, children string) {
			project, _ := props["project"].(map[string]any)
			renderProjectCard(buf, project, props)
		},
	}
}

func projectGridDescriptor() Descriptor {
	return Descriptor{
		ID:          "project-grid",
		Type:        TypeOrganism,
		Name:        "Project Grid",
		Description: "Grid layout displaying multiple projects",
		Category:    "Projects",
		Props: []PropDefinition{
			{Name: "title", Kind: "text", Label: "Section Title", Default: "Projects"},
			{Name: "columns", Kind: "select", Label: "Columns", Default: "2",
				Options: options("1", "2", "3")},
			{Name: "gap", Kind: "select", Label: "Gap", Default: "md",
				Options: options("sm", "md", "lg")},
			{Name: "cardStyle", Kind: "select", Label: "Card Style", Default: "elevated",
				Options: options("default", "bordered", "elevated")},
			{Name: "showTechnologies", Kind: "toggle", Label: "Show Technologies", Default: true},
			{Name: "showOutcome", Kind: "toggle", Label: "Show Outcome", Default: true},
		},
		DefaultProps: map[string]any{
			"title": "Projects", "columns": "2", "gap": "md", "cardStyle": "elevated",
			"showTechnologies": true, "showOutcome": true,
		},
		DataBindings: []DataBindingDefinition{
			{Key: "projects", Kind: "array", Label: "Projects", Required: true},
		},
		Constraints: &Constraints{
			NestingLevel: 3,
		},
		Tags: []string{"project", "grid", "portfolio", "section"},
		Render: func(buf *bytes.Buffer, props map[string]any, children string) {
			title := asString(props["title"])
			if title != "" {
				fmt.Fprintf(buf, `<h2 class="tb-section-title">%s</h2>`, html.EscapeString(title))
			}
			fmt.Fprintf(buf, `<div class="tb-project-grid tb-cols-%s tb-gap-%s">`,
				propString(props, "columns"), propString(props, "gap"))
			projects, _ := props["projects"].([]any)
			for _, p := range projects {
				project, _ := p.(map[string]any)
				renderProjectCard(buf, project, props)
			}
			buf.WriteString(children)
			buf.WriteString(`</div>`)
		},
	}
}

func statCardDescriptor() Descriptor {
	return Descriptor{
		ID:          "stat-card",
		Type:        TypeMolecule,
		Name:        "Stat Card",
		Description: "Single highlighted number with a label, for computed stats",
		Category:    "Stats",
		Props: []PropDefinition{
			{Name: "label", Kind: "text", Label: "Label", Default: "Stat",
				Validation: &PropValidation{Required: true}},
			{Name: "suffix", Kind: "text", Label: "Suffix", Default: ""},
		},
		DefaultProps: map[string]any{"label": "Stat", "suffix": ""},
		DataBindings: []DataBindingDefinition{
			{Key: "value", Kind: "number", Label: "Value", Required: true},
		},
		Tags: []string{"stats", "number", "highlight"},
		Render: func(buf *bytes.Buffer, props map[string]any, children string) {
			fmt.Fprintf(buf,
				`<div class="tb-stat-card"><span class="tb-stat-value">%s%s</span><span class="tb-stat-label">%s</span></div>`,
				html.EscapeString(asString(props["value"])),
				html.EscapeString(asString(props["suffix"])),
				html.EscapeString(asString(props["label"])))
		},
	}
}

func techListDescriptor() Descriptor {
	return Descriptor{
		ID:          "tech-list",
		Type:        TypeMolecule,
		Name:        "Tech List",
		Description: "Pill list of technologies, bindable to any string array",
		Category:    "Stats",
		Props: []PropDefinition{
			{Name: "title", Kind: "text", Label: "Section Title", Default: ""},
		},
		DefaultProps: map[string]any{"title": ""},
		DataBindings: []DataBindingDefinition{
			{Key: "items", Kind: "array", Label: "Items", Required: true},
		},
		Tags: []string{"tech", "skills", "tags", "list"},
		Render: func(buf *bytes.Buffer, props map[string]any, children string) {
			if title := asString(props["title"]); title != "" {
				fmt.Fprintf(buf, `<h3 class="tb-section-title">%s</h3>`, html.EscapeString(title))
			}
			buf.WriteString(`<ul class="tb-tech-list">`)
			for _, item := range asSlice(props["items"]) {
				fmt.Fprintf(buf, `<li class="tb-tech-item">%s</li>`, html.EscapeString(asString(item)))
			}
			buf.WriteString(`</ul>`)
		},
	}
}

func renderProjectCard(buf *bytes.Buffer, project map[string]any, props map[string]any) {
	fmt.Fprintf(buf, `<div class="tb-project-card tb-card-%s tb-layout-%s">`,
		propString(props, "cardStyle"), propString(props, "layout"))
	fmt.Fprintf(buf, `<h3 class="tb-project-title">%s</h3>`,
		html.EscapeString(asString(project["title"])))
	if role := asString(project["role"]); role != "" {
		fmt.Fprintf(buf, `<p class="tb-project-role">%s</p>`, html.EscapeString(role))
	}
	fmt.Fprintf(buf, `<p class="tb-project-desc">%s</p>`,
		html.EscapeString(asString(project["description"])))
	if propBool(props, "showTechnologies") {
		buf.WriteString(`<ul class="tb-tech-list">`)
		for _, tech := range asSlice(project["technologies"]) {
			fmt.Fprintf(buf, `<li class="tb-tech-item">%s</li>`, html.EscapeString(asString(tech)))
		}
		buf.WriteString(`</ul>`)
	}
	if propBool(props, "showOutcome") {
		if outcome := asString(project["outcome"]); outcome != "" {
			fmt.Fprintf(buf, `<p class="tb-project-outcome">%s</p>`, html.EscapeString(outcome))
		}
	}
	if propBool(props, "showLink") {
		if link := asString(project["link"]); link != "" {
			fmt.Fprintf(buf, `<a class="tb-project-link" href=%q>%s</a>`, link, html.EscapeString(link))
		}
	}
	buf.WriteString(`</div>`)
}

func options(values ...string) []PropOption {
	res := make([]PropOption, 0, len(values))
	for _, v := range values {
		res = append(res, PropOption{Label: v, Value: v})
	}
	return res
}

func propString(props map[string]any, key string) string {
	s, _ := props[key].(string)
	return s
}

func propBool(props map[string]any, key string) bool {
	b, _ := props[key].(bool)
	return b
}

func asString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		// JSON 数字，整数值不带小数位
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func asSlice(v any) []any {
	switch val := v.(type) {
	case []any:
		return val
	case []string:
		res := make([]any, 0, len(val))
		for _, s := range val {
			res = append(res, s)
		}
		return res
	default:
		return nil
	}
}

func cssFlexDirection(dir string) string {
	if dir == "column" {
		return "column"
	}
	return "row"
}

func validTextTag(tag string) bool {
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6", "p", "span", "label":
		return true
	}
	return false
}
