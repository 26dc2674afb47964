package schema

import (
	"fmt"

	"github.com/internfolio/internfolio/internal/template/internal/domain"
	"github.com/internfolio/internfolio/internal/template/internal/registry"
)

// MaxDepth 组件树允许的最大嵌套深度
const MaxDepth = 20

type ValidationError struct {
	NodeID      string `json:"nodeId,omitempty"`
	ComponentID string `json:"componentId,omitempty"`
	Field       string `json:"field,omitempty"`
	Message     string `json:"message"`
	// error/warning
	Severity string `json:"severity"`
}

type ValidationResult struct {
	Valid    bool              `json:"valid"`
	Errors   []ValidationError `json:"errors"`
	Warnings []ValidationError `json:"warnings"`
}

// Validate 校验模板结构。
// Errors 拦截反序列化，Warnings 只提示。
// 遍历顺序：深度优先，先父后子，兄弟从左到右。
func Validate(t domain.Template, reg *registry.Registry) ValidationResult {
	var errors, warnings []ValidationError

	if t.ID == "" {
		errors = append(errors, ValidationError{
			Message:  "模板缺少 ID",
			Severity: "error",
		})
	}
	if !hasText(t.Name) {
		errors = append(errors, ValidationError{
			Message:  "模板缺少名称",
			Severity: "error",
		})
	}
	if t.Structure == nil {
		errors = append(errors, ValidationError{
			Message:  "模板缺少 structure",
			Severity: "error",
		})
		return ValidationResult{Valid: false, Errors: errors, Warnings: warnings}
	}

	// 重复 ID 要跨分支查，集合贯穿整次遍历
	seen := make(map[string]struct{})
	v := &validator{reg: reg, seen: seen}
	v.walk(t.Structure, 0)
	errors = append(errors, v.errors...)
	warnings = append(warnings, v.warnings...)

	if t.Theme.IsZero() {
		warnings = append(warnings, ValidationError{
			Message:  "模板缺少主题配置",
			Severity: "warning",
		})
	}

	return ValidationResult{
		Valid:    len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}

type validator struct {
	reg      *registry.Registry
	seen     map[string]struct{}
	errors   []ValidationError
	warnings []ValidationError
}

func (v *validator) walk(nodes []domain.Node, depth int) {
	if depth > MaxDepth {
		v.errors = append(v.errors, ValidationError{
			Message:  fmt.Sprintf("组件树超过最大深度 %d", MaxDepth),
			Severity: "error",
		})
		return
	}

	for _, node := range nodes {
		if _, dup := v.seen[node.ID]; dup && node.ID != "" {
			v.errors = append(v.errors, ValidationError{
				NodeID:   node.ID,
				Message:  fmt.Sprintf("节点 ID 重复: %s", node.ID),
				Severity: "error",
			})
		}
		v.seen[node.ID] = struct{}{}

		if node.ID == "" {
			v.errors = append(v.errors, ValidationError{
				ComponentID: node.ComponentID,
				Message:     "节点缺少 ID",
				Severity:    "error",
			})
		}
		if node.ComponentID == "" {
			v.errors = append(v.errors, ValidationError{
				NodeID:   node.ID,
				Message:  "节点缺少 componentId",
				Severity: "error",
			})
			continue
		}

		meta, ok := v.reg.Get(node.ComponentID)
		if !ok {
			v.warnings = append(v.warnings, ValidationError{
				NodeID:      node.ID,
				ComponentID: node.ComponentID,
				Message:     fmt.Sprintf("组件 %s 未注册", node.ComponentID),
				Severity:    "warning",
			})
			continue
		}

		v.checkRequiredProps(node, meta)
		v.checkConstraints(node, meta, depth)

		if len(node.Children) > 0 {
			v.walk(node.Children, depth+1)
		}
	}
}

// 必填 prop 在字面量和数据绑定里都缺席才提示
func (v *validator) checkRequiredProps(node domain.Node, meta registry.Descriptor) {
	for _, p := range meta.Props {
		if p.Validation == nil || !p.Validation.Required {
			continue
		}
		_, inProps := node.Props[p.Name]
		_, inMapping := node.DataMapping[p.Name]
		if !inProps && !inMapping {
			v.warnings = append(v.warnings, ValidationError{
				NodeID:      node.ID,
				ComponentID: node.ComponentID,
				Field:       p.Name,
				Message:     fmt.Sprintf("缺少必填 prop: %s", p.Name),
				Severity:    "warning",
			})
		}
	}
	for _, b := range meta.DataBindings {
		if !b.Required {
			continue
		}
		_, inProps := node.Props[b.Key]
		_, inMapping := node.DataMapping[b.Key]
		if !inProps && !inMapping {
			v.warnings = append(v.warnings, ValidationError{
				NodeID:      node.ID,
				ComponentID: node.ComponentID,
				Field:       b.Key,
				Message:     fmt.Sprintf("缺少必填数据绑定: %s", b.Key),
				Severity:    "warning",
			})
		}
	}
}

func (v *validator) checkConstraints(node domain.Node, meta registry.Descriptor, depth int) {
	if meta.Constraints == nil {
		return
	}
	if meta.Constraints.NestingLevel > 0 && depth > meta.Constraints.NestingLevel {
		v.warnings = append(v.warnings, ValidationError{
			NodeID:      node.ID,
			ComponentID: node.ComponentID,
			Message:     fmt.Sprintf("组件 %s 超过了声明的最大嵌套深度", meta.Name),
			Severity:    "warning",
		})
	}
	if len(meta.Constraints.RequiredChildren) > 0 {
		present := make(map[string]struct{}, len(node.Children))
		for _, c := range node.Children {
			present[c.ComponentID] = struct{}{}
		}
		var missing []string
		for _, required := range meta.Constraints.RequiredChildren {
			if _, ok := present[required]; !ok {
				missing = append(missing, required)
			}
		}
		if len(missing) > 0 {
			v.warnings = append(v.warnings, ValidationError{
				NodeID:      node.ID,
				ComponentID: node.ComponentID,
				Message:     fmt.Sprintf("缺少必需的子组件: %v", missing),
				Severity:    "warning",
			})
		}
	}
}

func hasText(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' {
			return true
		}
	}
	return false
}
