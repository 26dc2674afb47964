package domain

// Condition 条件渲染规则
type Condition struct {
	DataPath string `json:"dataPath"`
	// exists/empty/equals/notEquals/greaterThan/lessThan
	Operator string `json:"condition"`
	Value    any    `json:"value,omitempty"`
}

// Node 组件树中的一个实例节点。
// ID 在整棵树内唯一，重复属于校验错误。
type Node struct {
	ID          string `json:"id"`
	ComponentID string `json:"componentId"`

	Props  map[string]any    `json:"props"`
	Styles map[string]string `json:"styles"`
	// 组件 prop 名 -> 数据路径，渲染时解析
	DataMapping map[string]string `json:"dataMapping"`

	ShowIf *Condition `json:"showIf,omitempty"`

	Children []Node `json:"children"`

	Label  string `json:"label,omitempty"`
	Locked bool   `json:"locked,omitempty"`
	Hidden bool   `json:"hidden,omitempty"`
}

// Clone 结构化深拷贝，保留原有 ID。
// 历史快照与剪贴板都依赖它，不走 JSON 序列化。
func (n Node) Clone() Node {
	res := n
	res.Props = cloneAnyMap(n.Props)
	res.Styles = cloneStringMap(n.Styles)
	res.DataMapping = cloneStringMap(n.DataMapping)
	if n.ShowIf != nil {
		cond := *n.ShowIf
		res.ShowIf = &cond
	}
	res.Children = CloneNodes(n.Children)
	return res
}

func CloneNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	res := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		res = append(res, n.Clone())
	}
	return res
}

func cloneAnyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	res := make(map[string]any, len(m))
	for k, v := range m {
		// prop 值来自 JSON，标量或嵌套的 map/slice
		res[k] = cloneValue(v)
	}
	return res
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneAnyMap(val)
	case []any:
		res := make([]any, 0, len(val))
		for _, item := range val {
			res = append(res, cloneValue(item))
		}
		return res
	default:
		return val
	}
}

func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	res := make(map[string]string, len(m))
	for k, v := range m {
		res[k] = v
	}
	return res
}
