package session

import (
	"testing"

	"github.com/internfolio/internfolio/internal/template/internal/domain"
	"github.com/internfolio/internfolio/internal/template/internal/registry"
	"github.com/internfolio/internfolio/internal/template/internal/schema"
	"github.com/internfolio/internfolio/internal/template/internal/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	reg := registry.Builtin()
	return NewBuilder(reg, schema.NewTemplate(1, "测试"))
}

func TestAddComponent(t *testing.T) {
	b := newTestBuilder(t)

	container, err := b.AddComponent("container", "")
	require.NoError(t, err)
	assert.NotEmpty(t, container.ID)

	text, err := b.AddComponent("text", container.ID)
	require.NoError(t, err)

	st := b.State()
	require.Len(t, st.Template.Structure, 1)
	require.Len(t, st.Template.Structure[0].Children, 1)
	assert.Equal(t, text.ID, st.Template.Structure[0].Children[0].ID)
	// 新增的节点自动选中
	assert.Equal(t, text.ID, st.SelectedID)
	// 缺省 props 带过来了
	assert.Equal(t, "p", st.Template.Structure[0].Children[0].Props["variant"])

	t.Run("父节点不存在", func(t *testing.T) {
		_, err := b.AddComponent("text", "nope")
		assert.Equal(t, ErrNodeNotFound, err)
	})

	t.Run("组件未注册", func(t *testing.T) {
		_, err := b.AddComponent("fancy-chart", "")
		assert.Error(t, err)
	})
}

func TestRemoveComponent(t *testing.T) {
	b := newTestBuilder(t)
	container, _ := b.AddComponent("container", "")
	text, _ := b.AddComponent("text", container.ID)

	require.NoError(t, b.RemoveComponent(container.ID))
	st := b.State()
	assert.Empty(t, st.Template.Structure)
	// 选中的节点跟着子树没了，选中态清空
	assert.Empty(t, st.SelectedID)
	assert.Equal(t, ErrNodeNotFound, b.RemoveComponent(text.ID))
}

func TestDuplicateComponent(t *testing.T) {
	b := newTestBuilder(t)
	container, _ := b.AddComponent("container", "")
	text, _ := b.AddComponent("text", container.ID)

	dup, err := b.DuplicateComponent(container.ID)
	require.NoError(t, err)
	st := b.State()
	require.Len(t, st.Template.Structure, 2)
	// 副本紧跟在原节点后面
	assert.Equal(t, dup.ID, st.Template.Structure[1].ID)
	// 整棵子树的 ID 都换新了
	assert.NotEqual(t, container.ID, dup.ID)
	require.Len(t, dup.Children, 1)
	assert.NotEqual(t, text.ID, dup.Children[0].ID)

	t.Run("复制第三层的孙节点", func(t *testing.T) {
		b := newTestBuilder(t)
		outer, _ := b.AddComponent("container", "")
		inner, _ := b.AddComponent("container", outer.ID)
		leaf, _ := b.AddComponent("text", inner.ID)

		dup, err := b.DuplicateComponent(leaf.ID)
		require.NoError(t, err)
		// 副本真的进了树，而不是只返回了一个游离节点
		assert.True(t, tree.Contains(b.Template().Structure, dup.ID))
		parent := tree.FindByID(b.Template().Structure, inner.ID)
		require.NotNil(t, parent)
		require.Len(t, parent.Children, 2)
		assert.Equal(t, leaf.ID, parent.Children[0].ID)
		assert.Equal(t, dup.ID, parent.Children[1].ID)
		assert.Equal(t, dup.ID, b.State().SelectedID)
	})
}

func TestMoveComponent(t *testing.T) {
	b := newTestBuilder(t)
	c1, _ := b.AddComponent("container", "")
	c2, _ := b.AddComponent("container", "")
	text, _ := b.AddComponent("text", c1.ID)

	require.NoError(t, b.MoveComponent(text.ID, c2.ID))
	st := b.State()
	first := st.Template.Structure[0]
	second := st.Template.Structure[1]
	assert.Empty(t, first.Children)
	require.Len(t, second.Children, 1)
	assert.Equal(t, text.ID, second.Children[0].ID)

	t.Run("不能移进自己的子树", func(t *testing.T) {
		err := b.MoveComponent(c2.ID, text.ID)
		assert.Error(t, err)
	})

	t.Run("移到根层", func(t *testing.T) {
		require.NoError(t, b.MoveComponent(text.ID, ""))
		assert.Len(t, b.State().Template.Structure, 3)
	})
}

func TestUpdateProps(t *testing.T) {
	b := newTestBuilder(t)
	text, _ := b.AddComponent("text", "")

	require.NoError(t, b.UpdateProps(text.ID, map[string]any{"content": "你好"}))
	st := b.State()
	node := st.Template.Structure[0]
	// 合并而不是整体替换
	assert.Equal(t, "你好", node.Props["content"])
	assert.Equal(t, "p", node.Props["variant"])
}

func TestUpdateDataMapping(t *testing.T) {
	b := newTestBuilder(t)
	text, _ := b.AddComponent("text", "")

	require.NoError(t, b.UpdateDataMapping(text.ID, map[string]string{"content": "basicInfo.fullName"}))
	assert.Equal(t, "basicInfo.fullName",
		b.State().Template.Structure[0].DataMapping["content"])

	// 空串表示解绑
	require.NoError(t, b.UpdateDataMapping(text.ID, map[string]string{"content": ""}))
	_, ok := b.State().Template.Structure[0].DataMapping["content"]
	assert.False(t, ok)
}

func TestShowIf(t *testing.T) {
	b := newTestBuilder(t)
	text, _ := b.AddComponent("text", "")

	cond := &domain.Condition{DataPath: "$computed.projectCount", Operator: "greaterThan", Value: 0}
	require.NoError(t, b.SetShowIf(text.ID, cond))
	require.NotNil(t, b.State().Template.Structure[0].ShowIf)

	require.NoError(t, b.SetShowIf(text.ID, nil))
	assert.Nil(t, b.State().Template.Structure[0].ShowIf)
}

func TestUndoRedo(t *testing.T) {
	b := newTestBuilder(t)

	t.Run("空历史撤销报错", func(t *testing.T) {
		assert.Equal(t, ErrNothingToUndo, b.Undo())
		assert.Equal(t, ErrNothingToRedo, b.Redo())
	})

	c1, _ := b.AddComponent("container", "")
	_, _ = b.AddComponent("text", c1.ID)
	require.Len(t, b.State().Template.Structure[0].Children, 1)

	require.NoError(t, b.Undo())
	assert.Empty(t, b.State().Template.Structure[0].Children)

	require.NoError(t, b.Redo())
	assert.Len(t, b.State().Template.Structure[0].Children, 1)

	t.Run("撤销到底", func(t *testing.T) {
		require.NoError(t, b.Undo())
		require.NoError(t, b.Undo())
		assert.Empty(t, b.State().Template.Structure)
		assert.Equal(t, ErrNothingToUndo, b.Undo())
	})

	t.Run("新编辑截断重做分支", func(t *testing.T) {
		// 当前在最旧的快照上，重做本来是可用的
		assert.True(t, b.State().CanRedo)
		_, err := b.AddComponent("text", "")
		require.NoError(t, err)
		assert.False(t, b.State().CanRedo)
		assert.Equal(t, ErrNothingToRedo, b.Redo())
	})
}

func TestHistoryCap(t *testing.T) {
	b := newTestBuilder(t)
	for i := 0; i < 60; i++ {
		_, err := b.AddComponent("text", "")
		require.NoError(t, err)
	}
	// 超过上限后最旧的快照被丢掉，最多撤销 49 步
	undos := 0
	for b.Undo() == nil {
		undos++
	}
	assert.Equal(t, maxHistory-1, undos)
	// 撤不回空画布了
	assert.Len(t, b.State().Template.Structure, 60-(maxHistory-1))
}

func TestCopyPaste(t *testing.T) {
	b := newTestBuilder(t)
	container, _ := b.AddComponent("container", "")
	text, _ := b.AddComponent("text", container.ID)

	t.Run("剪贴板为空", func(t *testing.T) {
		fresh := newTestBuilder(t)
		_, err := fresh.Paste("")
		assert.Equal(t, ErrEmptyClipboard, err)
	})

	require.NoError(t, b.Copy(container.ID))

	pasted, err := b.Paste("")
	require.NoError(t, err)
	assert.NotEqual(t, container.ID, pasted.ID)
	require.Len(t, pasted.Children, 1)
	assert.NotEqual(t, text.ID, pasted.Children[0].ID)

	// 同一份剪贴板可以反复粘贴，每次 ID 都不同
	pasted2, err := b.Paste(container.ID)
	require.NoError(t, err)
	assert.NotEqual(t, pasted.ID, pasted2.ID)

	st := b.State()
	assert.True(t, st.CanPaste)
	assert.Len(t, st.Template.Structure, 2)
}

func TestLoadTemplateResetsHistory(t *testing.T) {
	b := newTestBuilder(t)
	_, _ = b.AddComponent("container", "")
	require.True(t, b.State().CanUndo)

	b.LoadTemplate(schema.NewTemplate(1, "测试"))
	st := b.State()
	assert.False(t, st.CanUndo)
	assert.False(t, st.CanRedo)
	assert.Empty(t, st.SelectedID)
}

func TestStateIsolation(t *testing.T) {
	b := newTestBuilder(t)
	_, _ = b.AddComponent("text", "")
	st := b.State()
	// 改返回的快照不影响会话内部状态
	st.Template.Structure[0].Props["content"] = "hacked"
	assert.NotEqual(t, "hacked", b.State().Template.Structure[0].Props["content"])
}

func TestManager(t *testing.T) {
	reg := registry.Builtin()
	m := NewManager(reg)

	_, err := m.Get(1)
	assert.Equal(t, ErrNoSession, err)

	b := m.Open(1, schema.NewTemplate(1, "测试"))
	got, err := m.Get(1)
	require.NoError(t, err)
	assert.Same(t, b, got)

	m.Close(1)
	_, err = m.Get(1)
	assert.Equal(t, ErrNoSession, err)
}
