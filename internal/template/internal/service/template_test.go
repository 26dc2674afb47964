package service

import (
	"context"
	"testing"

	"github.com/internfolio/internfolio/internal/template/internal/domain"
	"github.com/internfolio/internfolio/internal/template/internal/preset"
	"github.com/internfolio/internfolio/internal/template/internal/registry"
	"github.com/internfolio/internfolio/internal/template/internal/repository"
	"github.com/internfolio/internfolio/internal/template/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerUid    int64 = 1
	strangerUid int64 = 2
)

type fakeTemplateRepo struct {
	templates map[string]domain.Template
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{templates: make(map[string]domain.Template)}
}

func (f *fakeTemplateRepo) Save(_ context.Context, t domain.Template) error {
	f.templates[t.ID] = t
	return nil
}

func (f *fakeTemplateRepo) FindByID(_ context.Context, id string) (domain.Template, error) {
	t, ok := f.templates[id]
	if !ok {
		return domain.Template{}, repository.ErrTemplateNotFound
	}
	return t, nil
}

func (f *fakeTemplateRepo) ListByAuthor(_ context.Context, uid int64, _, _ int) ([]domain.Template, error) {
	var res []domain.Template
	for _, t := range f.templates {
		if t.AuthorID == uid {
			res = append(res, t)
		}
	}
	return res, nil
}

func (f *fakeTemplateRepo) ListPublic(_ context.Context, _, _ int) ([]domain.Template, error) {
	var res []domain.Template
	for _, t := range f.templates {
		if t.IsPublic {
			res = append(res, t)
		}
	}
	return res, nil
}

func (f *fakeTemplateRepo) Publish(_ context.Context, id string, uid int64, public bool) error {
	t, ok := f.templates[id]
	if !ok || t.AuthorID != uid {
		return repository.ErrTemplateNotFound
	}
	t.IsPublic = public
	f.templates[id] = t
	return nil
}

func (f *fakeTemplateRepo) Delete(_ context.Context, id string, uid int64) error {
	t, ok := f.templates[id]
	if !ok || t.AuthorID != uid {
		return repository.ErrTemplateNotFound
	}
	delete(f.templates, id)
	return nil
}

func (f *fakeTemplateRepo) IncrUsage(_ context.Context, id string) error {
	t, ok := f.templates[id]
	if !ok {
		return repository.ErrTemplateNotFound
	}
	t.UsageCount++
	f.templates[id] = t
	return nil
}

func (f *fakeTemplateRepo) IncrLikes(_ context.Context, id string) error {
	t, ok := f.templates[id]
	if !ok {
		return repository.ErrTemplateNotFound
	}
	t.LikesCount++
	f.templates[id] = t
	return nil
}

func newTestService() (Service, *fakeTemplateRepo) {
	repo := newFakeTemplateRepo()
	return NewService(repo, registry.Builtin()), repo
}

func validTemplate(uid int64) domain.Template {
	t := schema.NewTemplate(uid, "测试作者")
	t.Name = "我的模板"
	t.Structure = []domain.Node{
		{ID: "n-1", ComponentID: "text", Props: map[string]any{"content": "hi"}},
	}
	return t
}

func TestServiceSave(t *testing.T) {
	t.Run("新模板分配 ID", func(t *testing.T) {
		svc, repo := newTestService()
		tpl := validTemplate(ownerUid)
		tpl.ID = ""
		id, err := svc.Save(context.Background(), ownerUid, tpl)
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		saved := repo.templates[id]
		assert.Equal(t, ownerUid, saved.AuthorID)
		assert.False(t, saved.Theme.IsZero())
	})

	t.Run("改不了别人的模板", func(t *testing.T) {
		svc, _ := newTestService()
		tpl := validTemplate(ownerUid)
		_, err := svc.Save(context.Background(), ownerUid, tpl)
		require.NoError(t, err)
		_, err = svc.Save(context.Background(), strangerUid, tpl)
		assert.Equal(t, ErrNoPermission, err)
	})

	t.Run("校验不过不落库", func(t *testing.T) {
		svc, repo := newTestService()
		tpl := validTemplate(ownerUid)
		tpl.Name = "  "
		_, err := svc.Save(context.Background(), ownerUid, tpl)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "模板不合法")
		assert.Empty(t, repo.templates)
	})
}

func TestServiceDetail(t *testing.T) {
	svc, repo := newTestService()
	own := validTemplate(ownerUid)
	_, err := svc.Save(context.Background(), ownerUid, own)
	require.NoError(t, err)

	public := validTemplate(strangerUid)
	public.IsPublic = true
	repo.templates[public.ID] = public

	private := validTemplate(strangerUid)
	repo.templates[private.ID] = private

	testcases := []struct {
		name    string
		id      string
		wantErr error
	}{
		{name: "内置模板", id: preset.DefaultID},
		{name: "自己的模板", id: own.ID},
		{name: "别人的公开模板", id: public.ID},
		{name: "别人的私有模板", id: private.ID, wantErr: ErrNoPermission},
		{name: "不存在", id: "ghost", wantErr: ErrTemplateNotFound},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := svc.Detail(context.Background(), tc.id, ownerUid)
			assert.Equal(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, tc.id, res.ID)
			}
		})
	}
}

func TestServiceDelete(t *testing.T) {
	t.Run("删自己的模板", func(t *testing.T) {
		svc, repo := newTestService()
		tpl := validTemplate(ownerUid)
		repo.templates[tpl.ID] = tpl
		require.NoError(t, svc.Delete(context.Background(), tpl.ID, ownerUid))
		_, ok := repo.templates[tpl.ID]
		assert.False(t, ok)
	})

	t.Run("删不了别人的模板", func(t *testing.T) {
		svc, repo := newTestService()
		tpl := validTemplate(strangerUid)
		repo.templates[tpl.ID] = tpl
		err := svc.Delete(context.Background(), tpl.ID, ownerUid)
		assert.Equal(t, ErrTemplateNotFound, err)
		_, ok := repo.templates[tpl.ID]
		assert.True(t, ok)
	})

	t.Run("内置模板删不了", func(t *testing.T) {
		svc, _ := newTestService()
		err := svc.Delete(context.Background(), preset.DefaultID, ownerUid)
		assert.Equal(t, ErrNoPermission, err)
	})

	t.Run("不存在", func(t *testing.T) {
		svc, _ := newTestService()
		err := svc.Delete(context.Background(), "ghost", ownerUid)
		assert.Equal(t, ErrTemplateNotFound, err)
	})
}

func TestServiceListPublic(t *testing.T) {
	svc, repo := newTestService()
	public := validTemplate(strangerUid)
	public.IsPublic = true
	repo.templates[public.ID] = public

	t.Run("内置模板排最前面", func(t *testing.T) {
		res, err := svc.ListPublic(context.Background(), 0, 50)
		require.NoError(t, err)
		require.Len(t, res, len(preset.All())+1)
		assert.Equal(t, preset.DefaultID, res[0].ID)
	})

	t.Run("翻页之后不再带内置模板", func(t *testing.T) {
		res, err := svc.ListPublic(context.Background(), 10, 50)
		require.NoError(t, err)
		for _, tpl := range res {
			_, builtin := preset.ByID(tpl.ID)
			assert.False(t, builtin)
		}
	})
}

func TestServiceClone(t *testing.T) {
	t.Run("克隆公开模板并计使用数", func(t *testing.T) {
		svc, repo := newTestService()
		src := validTemplate(strangerUid)
		src.IsPublic = true
		repo.templates[src.ID] = src

		cloned, err := svc.Clone(context.Background(), src.ID, ownerUid, "新作者")
		require.NoError(t, err)
		assert.NotEqual(t, src.ID, cloned.ID)
		assert.Equal(t, src.Name+" (Copy)", cloned.Name)
		assert.Equal(t, ownerUid, cloned.AuthorID)
		assert.False(t, cloned.IsPublic)
		assert.Equal(t, int64(1), repo.templates[src.ID].UsageCount)
	})

	t.Run("克隆内置模板不计数", func(t *testing.T) {
		svc, repo := newTestService()
		cloned, err := svc.Clone(context.Background(), preset.DefaultID, ownerUid, "新作者")
		require.NoError(t, err)
		assert.NotEqual(t, preset.DefaultID, cloned.ID)
		// 只有克隆出来的那一条
		assert.Len(t, repo.templates, 1)
	})
}

func TestServiceCountUsage(t *testing.T) {
	svc, repo := newTestService()
	src := validTemplate(ownerUid)
	repo.templates[src.ID] = src

	require.NoError(t, svc.CountUsage(context.Background(), src.ID))
	require.NoError(t, svc.CountUsage(context.Background(), src.ID))
	assert.Equal(t, int64(2), repo.templates[src.ID].UsageCount)

	// 内置模板直接跳过
	require.NoError(t, svc.CountUsage(context.Background(), preset.DefaultID))
}
