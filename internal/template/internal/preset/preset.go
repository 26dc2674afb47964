package preset

import (
	"sync"

	"github.com/internfolio/internfolio/internal/template/internal/domain"
	"github.com/internfolio/internfolio/internal/template/internal/tree"
)

// 内置模板。ID 固定，公开页找不到用户模板时兜底用 "default"。
// 每个模板只构建一次，节点 ID 进程内稳定，反复渲染出的 data-node-id 不会变。

const DefaultID = "default"

var (
	buildOnce sync.Once
	builtins  []domain.Template
)

func load() []domain.Template {
	buildOnce.Do(func() {
		builtins = []domain.Template{buildDefault(), buildModern()}
	})
	return builtins
}

// All 返回的是副本，调用方改不坏缓存的树
func All() []domain.Template {
	cached := load()
	res := make([]domain.Template, 0, len(cached))
	for _, t := range cached {
		res = append(res, t.Clone())
	}
	return res
}

func ByID(id string) (domain.Template, bool) {
	for _, t := range load() {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return domain.Template{}, false
}

// Default 单栏经典布局
func Default() domain.Template {
	t, _ := ByID(DefaultID)
	return t
}

// Modern 三段式，有条件区块演示
func Modern() domain.Template {
	t, _ := ByID("modern")
	return t
}

func buildDefault() domain.Template {
	return domain.Template{
		ID:          DefaultID,
		Name:        "Classic Portfolio",
		Description: "单栏布局，从上到下依次是个人信息、数据概览、项目列表和技术栈",
		Author:      "internfolio",
		Version:     "1.0.0",
		Tags:        []string{"builtin", "classic"},
		Category:    "general",
		IsPublic:    true,
		IsFeatured:  true,
		Theme:       domain.DefaultTheme(),
		Structure: []domain.Node{
			{
				ID:          tree.NewNodeID(),
				ComponentID: "container",
				Label:       "Header",
				Props:       map[string]any{"layout": "flex", "direction": "column", "gap": "sm", "padding": "lg"},
				Children: []domain.Node{
					heading("h1", "basicInfo.fullName", "left"),
					heading("h3", "basicInfo.internshipRole", "left"),
					heading("p", "basicInfo.teamDepartment", "left"),
				},
			},
			{
				ID:          tree.NewNodeID(),
				ComponentID: "container",
				Label:       "Stats",
				Props:       map[string]any{"layout": "grid", "gridCols": "4", "gap": "md", "padding": "lg"},
				Children: []domain.Node{
					statCard("Projects", "$computed.projectCount"),
					statCard("Pull Requests", "$computed.totalPRs"),
					statCard("Technologies", "$computed.techStackCount"),
					statCard("Months", "$computed.durationMonths"),
				},
			},
			{
				ID:          tree.NewNodeID(),
				ComponentID: "project-grid",
				Label:       "Projects",
				Props:       map[string]any{"columns": "2", "showTechnologies": true},
				DataMapping: map[string]string{"projects": "projects"},
			},
			{
				ID:          tree.NewNodeID(),
				ComponentID: "tech-list",
				Label:       "Tech Stack",
				Props:       map[string]any{"title": "Tech Stack"},
				DataMapping: map[string]string{"items": "$computed.allTechnologies"},
			},
		},
	}
}

func buildModern() domain.Template {
	theme := domain.DefaultTheme()
	theme.Colors.Primary = "#0EA5E9"
	theme.Colors.Accent = "#F472B6"
	theme.Colors.Background = "#0F172A"
	theme.Colors.Surface = "#1E293B"
	theme.Colors.Text = "#F1F5F9"
	theme.Colors.TextSecondary = "#94A3B8"
	theme.Colors.Border = "#334155"
	return domain.Template{
		ID:          "modern",
		Name:        "Modern Dark",
		Description: "深色主题，突出项目卡片，没有项目时整块隐藏",
		Author:      "internfolio",
		Version:     "1.0.0",
		Tags:        []string{"builtin", "dark", "modern"},
		Category:    "general",
		IsPublic:    true,
		IsFeatured:  true,
		Theme:       theme,
		Structure: []domain.Node{
			{
				ID:          tree.NewNodeID(),
				ComponentID: "container",
				Label:       "Hero",
				Props:       map[string]any{"layout": "flex", "direction": "column", "gap": "md", "padding": "xl"},
				Children: []domain.Node{
					heading("h1", "basicInfo.fullName", "center"),
					heading("h3", "basicInfo.internshipRole", "center"),
				},
			},
			{
				ID:          tree.NewNodeID(),
				ComponentID: "project-grid",
				Label:       "Projects",
				Props:       map[string]any{"columns": "3", "showTechnologies": true},
				DataMapping: map[string]string{"projects": "projects"},
				ShowIf: &domain.Condition{
					DataPath: "$computed.projectCount",
					Operator: "greaterThan",
					Value:    0,
				},
			},
			{
				ID:          tree.NewNodeID(),
				ComponentID: "container",
				Label:       "Footer",
				Props:       map[string]any{"layout": "grid", "gridCols": "3", "gap": "md", "padding": "lg"},
				Children: []domain.Node{
					statCard("Contributions", "$computed.totalContributions"),
					statCard("Things Learned", "$computed.learningCount"),
					statCard("Days", "$computed.durationDays"),
				},
			},
		},
	}
}

func heading(variant, contentPath, align string) domain.Node {
	return domain.Node{
		ID:          tree.NewNodeID(),
		ComponentID: "text",
		Props:       map[string]any{"variant": variant, "align": align},
		DataMapping: map[string]string{"content": contentPath},
	}
}

func statCard(label, path string) domain.Node {
	return domain.Node{
		ID:          tree.NewNodeID(),
		ComponentID: "stat-card",
		Props:       map[string]any{"label": label},
		DataMapping: map[string]string{"value": path},
	}
}
