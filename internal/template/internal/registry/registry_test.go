package registry

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDescriptor(id string) Descriptor {
	return Descriptor{
		ID:           id,
		Type:         TypeAtom,
		Name:         "Test " + id,
		Category:     "Test",
		DefaultProps: map[string]any{},
		Render:       func(buf *bytes.Buffer, props map[string]any, children string) {},
	}
}

func TestRegister(t *testing.T) {
	testcases := []struct {
		name       string
		descriptor Descriptor
		wantErr    bool
	}{
		{
			name:       "正常注册",
			descriptor: testDescriptor("widget"),
			wantErr:    false,
		},
		{
			name: "缺ID",
			descriptor: func() Descriptor {
				d := testDescriptor("")
				return d
			}(),
			wantErr: true,
		},
		{
			name: "缺名称",
			descriptor: func() Descriptor {
				d := testDescriptor("widget")
				d.Name = ""
				return d
			}(),
			wantErr: true,
		},
		{
			name: "类型不合法",
			descriptor: func() Descriptor {
				d := testDescriptor("widget")
				d.Type = "galaxy"
				return d
			}(),
			wantErr: true,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			r := New()
			err := r.Register(tc.descriptor)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegisterOverwrite(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(testDescriptor("widget")))
	d := testDescriptor("widget")
	d.Name = "覆盖版"
	// 重复注册覆盖旧的，不报错
	require.NoError(t, r.Register(d))
	got, ok := r.Get("widget")
	require.True(t, ok)
	assert.Equal(t, "覆盖版", got.Name)
	// 覆盖不会产生重复条目
	assert.Len(t, r.All(), 1)
}

func TestAllKeepsRegistrationOrder(t *testing.T) {
	r := New()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, r.Register(testDescriptor(id)))
	}
	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].ID)
	assert.Equal(t, "a", all[1].ID)
	assert.Equal(t, "b", all[2].ID)
}

func TestSearch(t *testing.T) {
	r := Builtin()
	testcases := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{
			name:    "按名称忽略大小写",
			query:   "TEXT",
			wantIDs: []string{"text"},
		},
		{
			name:    "按分类",
			query:   "projects",
			wantIDs: []string{"project-card", "project-grid"},
		},
		{
			name:    "按标签",
			query:   "wrapper",
			wantIDs: []string{"container"},
		},
		{
			name:    "查不到",
			query:   "blockchain",
			wantIDs: []string{},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			got := r.Search(tc.query)
			ids := make([]string, 0, len(got))
			for _, d := range got {
				ids = append(ids, d.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestByType(t *testing.T) {
	r := Builtin()
	for _, d := range r.ByType(TypeAtom) {
		assert.Equal(t, TypeAtom, d.Type)
	}
	assert.NotEmpty(t, r.ByType(TypeAtom))
}

func TestCanBeChildOf(t *testing.T) {
	r := Builtin()
	testcases := []struct {
		name     string
		childID  string
		parentID string
		want     bool
	}{
		{
			name:     "允许列表内",
			childID:  "project-card",
			parentID: "container",
			want:     true,
		},
		{
			name:     "允许列表外",
			childID:  "project-card",
			parentID: "text",
			want:     false,
		},
		{
			name:     "没有约束时放行",
			childID:  "text",
			parentID: "container",
			want:     true,
		},
		{
			name:     "未注册组件放行",
			childID:  "fancy-chart",
			parentID: "container",
			want:     true,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.CanBeChildOf(tc.childID, tc.parentID))
		})
	}
}
