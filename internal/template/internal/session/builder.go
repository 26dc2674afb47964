package session

import (
	"fmt"
	"sync"

	"github.com/internfolio/internfolio/internal/template/internal/domain"
	"github.com/internfolio/internfolio/internal/template/internal/registry"
	"github.com/internfolio/internfolio/internal/template/internal/schema"
	"github.com/internfolio/internfolio/internal/template/internal/tree"
)

// 历史快照上限，超出后丢弃最旧的一条
const maxHistory = 50

var (
	ErrNodeNotFound   = fmt.Errorf("节点不存在")
	ErrEmptyClipboard = fmt.Errorf("剪贴板为空")
	ErrNothingToUndo  = fmt.Errorf("没有可撤销的操作")
	ErrNothingToRedo  = fmt.Errorf("没有可重做的操作")
)

// Builder 是单个用户的画布编辑会话。
// 模板结构的每次变更都会压入一条深拷贝快照，撤销重做在快照间移动。
type Builder struct {
	mu sync.Mutex

	reg      *registry.Registry
	template domain.Template

	selectedID string
	hoveredID  string
	clipboard  []domain.Node

	history [][]domain.Node
	index   int
}

// State 是会话的一份只读视图，返回前全部深拷贝
type State struct {
	Template   domain.Template `json:"template"`
	SelectedID string          `json:"selectedId"`
	HoveredID  string          `json:"hoveredId"`
	CanUndo    bool            `json:"canUndo"`
	CanRedo    bool            `json:"canRedo"`
	CanPaste   bool            `json:"canPaste"`
}

func NewBuilder(reg *registry.Registry, t domain.Template) *Builder {
	b := &Builder{reg: reg}
	b.load(t)
	return b
}

func (b *Builder) load(t domain.Template) {
	b.template = t.Clone()
	b.selectedID = ""
	b.hoveredID = ""
	b.history = [][]domain.Node{domain.CloneNodes(b.template.Structure)}
	b.index = 0
}

// LoadTemplate 整体替换会话内容，历史从头开始
func (b *Builder) LoadTemplate(t domain.Template) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.load(t)
}

// commit 在当前位置之后截断重做分支，再压入当前结构的快照
func (b *Builder) commit() {
	b.history = b.history[:b.index+1]
	b.history = append(b.history, domain.CloneNodes(b.template.Structure))
	if len(b.history) > maxHistory {
		b.history = b.history[1:]
	}
	b.index = len(b.history) - 1
}

// AddComponent 新建组件实例挂到 parentID 下，parentID 为空则挂到根。
// index 省略时追加到末尾。
func (b *Builder) AddComponent(componentID string, parentID string, index ...int) (domain.Node, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	node, err := schema.NewNode(componentID, b.reg)
	if err != nil {
		return domain.Node{}, err
	}
	if parentID == "" {
		if len(index) > 0 && index[0] >= 0 && index[0] <= len(b.template.Structure) {
			i := index[0]
			structure := make([]domain.Node, 0, len(b.template.Structure)+1)
			structure = append(structure, b.template.Structure[:i]...)
			structure = append(structure, node)
			structure = append(structure, b.template.Structure[i:]...)
			b.template.Structure = structure
		} else {
			b.template.Structure = append(b.template.Structure, node)
		}
	} else {
		if !tree.Contains(b.template.Structure, parentID) {
			return domain.Node{}, ErrNodeNotFound
		}
		b.template.Structure = tree.InsertUnderParent(b.template.Structure, parentID, node, index...)
	}
	b.selectedID = node.ID
	b.commit()
	return node, nil
}

// RemoveComponent 连同子树一起删除
func (b *Builder) RemoveComponent(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	removed := tree.FindByID(b.template.Structure, id)
	if removed == nil {
		return ErrNodeNotFound
	}
	b.template.Structure = tree.RemoveByID(b.template.Structure, id)
	if b.selectedID != "" && !tree.Contains(b.template.Structure, b.selectedID) {
		b.selectedID = ""
	}
	if b.hoveredID != "" && !tree.Contains(b.template.Structure, b.hoveredID) {
		b.hoveredID = ""
	}
	b.commit()
	return nil
}

// DuplicateComponent 深拷贝一个节点，子树所有实例 ID 重新生成，
// 插到原节点后面作为同级
func (b *Builder) DuplicateComponent(id string) (domain.Node, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	src := tree.FindByID(b.template.Structure, id)
	if src == nil {
		return domain.Node{}, ErrNodeNotFound
	}
	dup := tree.CloneWithNewIDs(*src)
	b.template.Structure = tree.InsertAfterSibling(b.template.Structure, id, dup)
	b.selectedID = dup.ID
	b.commit()
	return dup, nil
}

// MoveComponent 先摘下再插入。目标是自己或自己的后代时拒绝，
// 否则摘下后目标就找不到了。
func (b *Builder) MoveComponent(id string, newParentID string, index ...int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	src := tree.FindByID(b.template.Structure, id)
	if src == nil {
		return ErrNodeNotFound
	}
	if newParentID == id || tree.Contains(src.Children, newParentID) {
		return fmt.Errorf("不能把节点移动到自己的子树里")
	}
	if newParentID != "" && !tree.Contains(b.template.Structure, newParentID) {
		return ErrNodeNotFound
	}
	node := *src
	b.template.Structure = tree.RemoveByID(b.template.Structure, id)
	if newParentID == "" {
		if len(index) > 0 && index[0] >= 0 && index[0] <= len(b.template.Structure) {
			i := index[0]
			structure := make([]domain.Node, 0, len(b.template.Structure)+1)
			structure = append(structure, b.template.Structure[:i]...)
			structure = append(structure, node)
			structure = append(structure, b.template.Structure[i:]...)
			b.template.Structure = structure
		} else {
			b.template.Structure = append(b.template.Structure, node)
		}
	} else {
		b.template.Structure = tree.InsertUnderParent(b.template.Structure, newParentID, node, index...)
	}
	b.commit()
	return nil
}

// UpdateProps 浅合并传入的键，不整体替换
func (b *Builder) UpdateProps(id string, props map[string]any) error {
	return b.update(id, func(n domain.Node) domain.Node {
		if n.Props == nil {
			n.Props = make(map[string]any, len(props))
		}
		for k, v := range props {
			n.Props[k] = v
		}
		return n
	})
}

func (b *Builder) UpdateStyles(id string, styles map[string]string) error {
	return b.update(id, func(n domain.Node) domain.Node {
		if n.Styles == nil {
			n.Styles = make(map[string]string, len(styles))
		}
		for k, v := range styles {
			n.Styles[k] = v
		}
		return n
	})
}

// UpdateDataMapping 值为空串表示解除该槽位的绑定
func (b *Builder) UpdateDataMapping(id string, mapping map[string]string) error {
	return b.update(id, func(n domain.Node) domain.Node {
		if n.DataMapping == nil {
			n.DataMapping = make(map[string]string, len(mapping))
		}
		for k, v := range mapping {
			if v == "" {
				delete(n.DataMapping, k)
				continue
			}
			n.DataMapping[k] = v
		}
		return n
	})
}

// SetShowIf 传 nil 清除条件
func (b *Builder) SetShowIf(id string, cond *domain.Condition) error {
	return b.update(id, func(n domain.Node) domain.Node {
		if cond == nil {
			n.ShowIf = nil
			return n
		}
		c := *cond
		n.ShowIf = &c
		return n
	})
}

func (b *Builder) update(id string, fn func(domain.Node) domain.Node) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !tree.Contains(b.template.Structure, id) {
		return ErrNodeNotFound
	}
	b.template.Structure = tree.UpdateByID(b.template.Structure, id, fn)
	b.commit()
	return nil
}

// UpdateTheme 不进历史，快照只跟踪结构
func (b *Builder) UpdateTheme(theme domain.Theme) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.template.Theme = theme
}

func (b *Builder) Select(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if id != "" && !tree.Contains(b.template.Structure, id) {
		return
	}
	b.selectedID = id
}

func (b *Builder) Hover(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hoveredID = id
}

func (b *Builder) Undo() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.index <= 0 {
		return ErrNothingToUndo
	}
	b.index--
	b.template.Structure = domain.CloneNodes(b.history[b.index])
	b.clearDanglingSelection()
	return nil
}

func (b *Builder) Redo() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.index >= len(b.history)-1 {
		return ErrNothingToRedo
	}
	b.index++
	b.template.Structure = domain.CloneNodes(b.history[b.index])
	b.clearDanglingSelection()
	return nil
}

func (b *Builder) clearDanglingSelection() {
	if b.selectedID != "" && !tree.Contains(b.template.Structure, b.selectedID) {
		b.selectedID = ""
	}
	if b.hoveredID != "" && !tree.Contains(b.template.Structure, b.hoveredID) {
		b.hoveredID = ""
	}
}

// Copy 单槽剪贴板，覆盖式
func (b *Builder) Copy(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	src := tree.FindByID(b.template.Structure, id)
	if src == nil {
		return ErrNodeNotFound
	}
	b.clipboard = []domain.Node{src.Clone()}
	return nil
}

// Paste 粘贴到 parentID 下，空串表示根。每次粘贴都重新生成实例 ID，
// 同一份剪贴板可以反复粘贴
func (b *Builder) Paste(parentID string) (domain.Node, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.clipboard) == 0 {
		return domain.Node{}, ErrEmptyClipboard
	}
	node := tree.CloneWithNewIDs(b.clipboard[0])
	if parentID == "" {
		b.template.Structure = append(b.template.Structure, node)
	} else {
		if !tree.Contains(b.template.Structure, parentID) {
			return domain.Node{}, ErrNodeNotFound
		}
		b.template.Structure = tree.InsertUnderParent(b.template.Structure, parentID, node)
	}
	b.selectedID = node.ID
	b.commit()
	return node, nil
}

// Template 当前编辑中的模板快照
func (b *Builder) Template() domain.Template {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.template.Clone()
}

func (b *Builder) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return State{
		Template:   b.template.Clone(),
		SelectedID: b.selectedID,
		HoveredID:  b.hoveredID,
		CanUndo:    b.index > 0,
		CanRedo:    b.index < len(b.history)-1,
		CanPaste:   len(b.clipboard) > 0,
	}
}
