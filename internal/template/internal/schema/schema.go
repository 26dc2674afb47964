package schema

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/internfolio/internfolio/internal/template/internal/domain"
	"github.com/internfolio/internfolio/internal/template/internal/registry"
	"github.com/internfolio/internfolio/internal/template/internal/tree"
	"github.com/lithammer/shortuuid/v4"
)

// 模板的导入导出。持久化格式就是 JSON，
// 节点 props 在领域层已经限定为 JSON 值，不存在需要剥离的函数引用。

func Serialize(t domain.Template) (string, error) {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return "", fmt.Errorf("序列化模板失败: %w", err)
	}
	return string(data), nil
}

// Deserialize 解析后立即校验，Errors 非空则拒绝并列出全部问题
func Deserialize(raw string, reg *registry.Registry) (domain.Template, error) {
	var t domain.Template
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		return domain.Template{}, fmt.Errorf("解析模板失败: %w", err)
	}
	res := Validate(t, reg)
	if !res.Valid {
		msgs := make([]string, 0, len(res.Errors))
		for _, e := range res.Errors {
			msgs = append(msgs, e.Message)
		}
		return domain.Template{}, fmt.Errorf("模板不合法: %s", strings.Join(msgs, ", "))
	}
	return t, nil
}

// NewTemplate 空白模板，带缺省主题
func NewTemplate(authorID int64, author string) domain.Template {
	now := time.Now().Format(time.RFC3339)
	return domain.Template{
		ID:        shortuuid.New(),
		Name:      "Untitled Template",
		Author:    author,
		AuthorID:  authorID,
		Version:   "1.0.0",
		Tags:      []string{},
		Structure: []domain.Node{},
		Theme:     domain.DefaultTheme(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CloneTemplate 换作者、换模板 ID，子树里每个节点的实例 ID 也全部重新生成
func CloneTemplate(t domain.Template, newAuthorID int64, newAuthor string) domain.Template {
	now := time.Now().Format(time.RFC3339)
	res := t.Clone()
	res.ID = shortuuid.New()
	res.Name = t.Name + " (Copy)"
	res.Author = newAuthor
	res.AuthorID = newAuthorID
	res.IsPublic = false
	res.IsFeatured = false
	res.UsageCount = 0
	res.LikesCount = 0
	res.CreatedAt = now
	res.UpdatedAt = now
	res.PublishedAt = ""
	res.Structure = tree.CloneNodesWithNewIDs(t.Structure)
	return res
}

// NewNode 按注册的缺省 props 创建一个实例节点
func NewNode(componentID string, reg *registry.Registry) (domain.Node, error) {
	meta, ok := reg.Get(componentID)
	if !ok {
		return domain.Node{}, fmt.Errorf("组件 %s 未注册", componentID)
	}
	props := make(map[string]any, len(meta.DefaultProps))
	for k, v := range meta.DefaultProps {
		props[k] = v
	}
	return domain.Node{
		ID:          tree.NewNodeID(),
		ComponentID: componentID,
		Props:       props,
		Styles:      map[string]string{},
		DataMapping: map[string]string{},
		Children:    []domain.Node{},
	}, nil
}

type Stats struct {
	TotalComponents      int            `json:"totalComponents"`
	MaxDepth             int            `json:"maxDepth"`
	ComponentTypes       map[string]int `json:"componentTypes"`
	HasMissingComponents bool           `json:"hasMissingComponents"`
}

// TemplateStats 画布层级面板用的统计
func TemplateStats(t domain.Template, reg *registry.Registry) Stats {
	stats := Stats{ComponentTypes: make(map[string]int)}
	var traverse func(nodes []domain.Node, depth int)
	traverse = func(nodes []domain.Node, depth int) {
		if depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}
		for _, n := range nodes {
			stats.TotalComponents++
			meta, ok := reg.Get(n.ComponentID)
			if !ok {
				stats.HasMissingComponents = true
			} else {
				stats.ComponentTypes[string(meta.Type)]++
			}
			if len(n.Children) > 0 {
				traverse(n.Children, depth+1)
			}
		}
	}
	traverse(t.Structure, 0)
	return stats
}
