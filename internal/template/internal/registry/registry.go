package registry

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/gotomicro/ego/core/elog"
)

// 组件目录。注册发生在进程启动期，之后只读。
// 不做成包级单例，校验器、渲染器、会话各自拿注入的实例。

type ComponentType string

const (
	TypeAtom     ComponentType = "atom"
	TypeMolecule ComponentType = "molecule"
	TypeOrganism ComponentType = "organism"
)

type PropValidation struct {
	Required bool    `json:"required,omitempty"`
	Min      float64 `json:"min,omitempty"`
	Max      float64 `json:"max,omitempty"`
	Pattern  string  `json:"pattern,omitempty"`
}

type PropOption struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

type PropDefinition struct {
	Name string `json:"name"`
	// 编辑器里的输入控件：text/textarea/number/color/select/toggle/...
	Kind       string          `json:"type"`
	Label      string          `json:"label,omitempty"`
	Default    any             `json:"defaultValue,omitempty"`
	Options    []PropOption    `json:"options,omitempty"`
	Validation *PropValidation `json:"validation,omitempty"`
	Group      string          `json:"group,omitempty"`
}

type DataBindingDefinition struct {
	// 对应的 prop 名
	Key      string `json:"key"`
	Label    string `json:"label,omitempty"`
	Kind     string `json:"type"`
	Required bool   `json:"required,omitempty"`
}

type Constraints struct {
	MaxInstances     int      `json:"maxInstances,omitempty"`
	MinInstances     int      `json:"minInstances,omitempty"`
	AllowedParents   []string `json:"allowedParents,omitempty"`
	AllowedChildren  []string `json:"allowedChildren,omitempty"`
	RequiredChildren []string `json:"requiredChildren,omitempty"`
	// 树里允许出现的最大深度
	NestingLevel int `json:"nestingLevel,omitempty"`
}

// RenderFunc 组件的视觉实现：拿合并后的 props 与已渲染的子节点，写出 HTML。
type RenderFunc func(buf *bytes.Buffer, props map[string]any, children string)

type Descriptor struct {
	ID          string        `json:"id"`
	Type        ComponentType `json:"type"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Category    string        `json:"category"`

	Props        []PropDefinition        `json:"props"`
	DefaultProps map[string]any          `json:"defaultProps"`
	DataBindings []DataBindingDefinition `json:"dataBindings"`
	Constraints  *Constraints            `json:"constraints,omitempty"`

	Tags []string `json:"tags,omitempty"`

	Render RenderFunc `json:"-"`
}

type Registry struct {
	mu         sync.RWMutex
	components map[string]Descriptor
	order      []string
	logger     *elog.Component
}

func New() *Registry {
	return &Registry{
		components: make(map[string]Descriptor),
		logger:     elog.DefaultLogger,
	}
}

// Register 同名覆盖并告警，元数据缺失直接报错
func (r *Registry) Register(d Descriptor) error {
	if err := validateDescriptor(d); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.components[d.ID]; ok {
		r.logger.Warn("组件重复注册，覆盖旧定义", elog.String("componentId", d.ID))
	} else {
		r.order = append(r.order, d.ID)
	}
	r.components[d.ID] = d
	return nil
}

func (r *Registry) MustRegister(d Descriptor) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

func (r *Registry) Get(id string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.components[id]
	return d, ok
}

// All 按注册顺序返回
func (r *Registry) All() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		res = append(res, r.components[id])
	}
	return res
}

func (r *Registry) ByType(t ComponentType) []Descriptor {
	return r.filter(func(d Descriptor) bool {
		return d.Type == t
	})
}

func (r *Registry) ByCategory(category string) []Descriptor {
	return r.filter(func(d Descriptor) bool {
		return d.Category == category
	})
}

// Search 大小写不敏感，匹配名称、描述、标签、分类的并集
func (r *Registry) Search(query string) []Descriptor {
	q := strings.ToLower(query)
	return r.filter(func(d Descriptor) bool {
		if strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(strings.ToLower(d.Description), q) ||
			strings.Contains(strings.ToLower(d.Category), q) {
			return true
		}
		for _, tag := range d.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				return true
			}
		}
		return false
	})
}

// CanBeChildOf 只有显式声明了白名单才受限，缺省全放行。
// 未注册的组件在校验层会给警告，这里不重复拦
func (r *Registry) CanBeChildOf(childID, parentID string) bool {
	child, ok1 := r.Get(childID)
	parent, ok2 := r.Get(parentID)
	if !ok1 || !ok2 {
		return true
	}
	if child.Constraints != nil && child.Constraints.AllowedParents != nil {
		return contains(child.Constraints.AllowedParents, parentID)
	}
	if parent.Constraints != nil && parent.Constraints.AllowedChildren != nil {
		return contains(parent.Constraints.AllowedChildren, childID)
	}
	return true
}

// Stats 按分类统计组件个数
func (r *Registry) Stats() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := make(map[string]int)
	for _, d := range r.components {
		stats[d.Category]++
	}
	return stats
}

func (r *Registry) filter(pred func(Descriptor) bool) []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var res []Descriptor
	for _, id := range r.order {
		if d := r.components[id]; pred(d) {
			res = append(res, d)
		}
	}
	return res
}

func validateDescriptor(d Descriptor) error {
	if d.ID == "" {
		return fmt.Errorf("组件缺少 id")
	}
	if d.Name == "" {
		return fmt.Errorf("组件 %s 缺少名称", d.ID)
	}
	switch d.Type {
	case TypeAtom, TypeMolecule, TypeOrganism:
	default:
		return fmt.Errorf("组件 %s 的类型不合法: %s", d.ID, d.Type)
	}
	if d.Render == nil {
		return fmt.Errorf("组件 %s 缺少渲染实现", d.ID)
	}
	for _, p := range d.Props {
		if p.Name == "" {
			return fmt.Errorf("组件 %s 存在未命名的 prop", d.ID)
		}
		if p.Kind == "" {
			return fmt.Errorf("组件 %s 的 prop %s 缺少类型", d.ID, p.Name)
		}
	}
	for _, b := range d.DataBindings {
		if b.Key == "" {
			return fmt.Errorf("组件 %s 存在未命名的数据绑定", d.ID)
		}
		if b.Kind == "" {
			return fmt.Errorf("组件 %s 的数据绑定 %s 缺少类型", d.ID, b.Key)
		}
	}
	return nil
}

func contains(list []string, target string) bool {
	for _, item := range list {
		if item == target {
			return true
		}
	}
	return false
}
