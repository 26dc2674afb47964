package tree

import (
	"github.com/internfolio/internfolio/internal/template/internal/domain"
	"github.com/lithammer/shortuuid/v4"
)

// 组件树的纯函数操作。全部返回新树，绝不原地修改，
// 这样历史快照只需要在 session 层做一次深拷贝。

// FindByID 深度优先，命中第一个
func FindByID(nodes []domain.Node, id string) *domain.Node {
	for i := range nodes {
		if nodes[i].ID == id {
			n := nodes[i].Clone()
			return &n
		}
		if found := FindByID(nodes[i].Children, id); found != nil {
			return found
		}
	}
	return nil
}

// Contains 只判断存在性，不拷贝
func Contains(nodes []domain.Node, id string) bool {
	for i := range nodes {
		if nodes[i].ID == id {
			return true
		}
		if Contains(nodes[i].Children, id) {
			return true
		}
	}
	return false
}

// RemoveByID 任意深度移除，连同整棵子树
func RemoveByID(nodes []domain.Node, id string) []domain.Node {
	res := make([]domain.Node, 0, len(nodes))
	for _, n := range nodes {
		if n.ID == id {
			continue
		}
		n.Children = RemoveByID(n.Children, id)
		res = append(res, n)
	}
	return res
}

// UpdateByID 对命中节点应用 updater，兄弟与祖先保持原样
func UpdateByID(nodes []domain.Node, id string, updater func(domain.Node) domain.Node) []domain.Node {
	res := make([]domain.Node, 0, len(nodes))
	for _, n := range nodes {
		if n.ID == id {
			res = append(res, updater(n.Clone()))
			continue
		}
		n.Children = UpdateByID(n.Children, id, updater)
		res = append(res, n)
	}
	return res
}

// InsertUnderParent 挂到父节点的 children 末尾，或给定下标处。
// 父节点不存在时返回原树。
func InsertUnderParent(nodes []domain.Node, parentID string, newNode domain.Node, index ...int) []domain.Node {
	if !Contains(nodes, parentID) {
		return nodes
	}
	return UpdateByID(nodes, parentID, func(parent domain.Node) domain.Node {
		if len(index) > 0 && index[0] >= 0 && index[0] <= len(parent.Children) {
			i := index[0]
			children := make([]domain.Node, 0, len(parent.Children)+1)
			children = append(children, parent.Children[:i]...)
			children = append(children, newNode)
			children = append(children, parent.Children[i:]...)
			parent.Children = children
		} else {
			parent.Children = append(parent.Children, newNode)
		}
		return parent
	})
}

// InsertAfterSibling 插到指定兄弟之后，逐层递归查找
func InsertAfterSibling(nodes []domain.Node, siblingID string, newNode domain.Node) []domain.Node {
	res, _ := insertAfterSibling(nodes, siblingID, newNode)
	return res
}

func insertAfterSibling(nodes []domain.Node, siblingID string, newNode domain.Node) ([]domain.Node, bool) {
	for i := range nodes {
		if nodes[i].ID == siblingID {
			res := make([]domain.Node, 0, len(nodes)+1)
			res = append(res, nodes[:i+1]...)
			res = append(res, newNode)
			res = append(res, nodes[i+1:]...)
			return res, true
		}
		if children, ok := insertAfterSibling(nodes[i].Children, siblingID, newNode); ok {
			res := append([]domain.Node(nil), nodes...)
			res[i].Children = children
			return res, true
		}
	}
	return nodes, false
}

// CloneWithNewIDs 深拷贝并为整棵子树重新生成实例 ID，
// 粘贴、复制出的节点不会和现有 ID 冲突。
func CloneWithNewIDs(n domain.Node) domain.Node {
	res := n.Clone()
	reassignIDs(&res)
	return res
}

// CloneNodesWithNewIDs 对根层列表做同样的事
func CloneNodesWithNewIDs(nodes []domain.Node) []domain.Node {
	res := domain.CloneNodes(nodes)
	for i := range res {
		reassignIDs(&res[i])
	}
	return res
}

func reassignIDs(n *domain.Node) {
	n.ID = NewNodeID()
	for i := range n.Children {
		reassignIDs(&n.Children[i])
	}
}

func NewNodeID() string {
	return shortuuid.New()
}
