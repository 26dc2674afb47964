package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/internfolio/internfolio/internal/form"
	"github.com/internfolio/internfolio/internal/portfolio/internal/cache"
	"github.com/internfolio/internfolio/internal/portfolio/internal/domain"
	"github.com/internfolio/internfolio/internal/portfolio/internal/event"
	"github.com/internfolio/internfolio/internal/portfolio/internal/repository"
	"github.com/internfolio/internfolio/internal/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUid int64 = 7

type fakeRepo struct {
	byUid map[int64]domain.Publication
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byUid: make(map[int64]domain.Publication)}
}

func (f *fakeRepo) Save(_ context.Context, p domain.Publication) error {
	f.byUid[p.Uid] = p
	return nil
}

func (f *fakeRepo) FindByUid(_ context.Context, uid int64) (domain.Publication, error) {
	p, ok := f.byUid[uid]
	if !ok {
		return domain.Publication{}, repository.ErrPublicationNotFound
	}
	return p, nil
}

func (f *fakeRepo) FindByPid(_ context.Context, pid string) (domain.Publication, error) {
	for _, p := range f.byUid {
		if p.PID == pid {
			return p, nil
		}
	}
	return domain.Publication{}, repository.ErrPublicationNotFound
}

func (f *fakeRepo) SetPublished(_ context.Context, uid int64, published bool) error {
	p, ok := f.byUid[uid]
	if !ok {
		return repository.ErrPublicationNotFound
	}
	p.Published = published
	f.byUid[uid] = p
	return nil
}

type fakePageCache struct {
	pages map[string]string
}

func newFakePageCache() *fakePageCache {
	return &fakePageCache{pages: make(map[string]string)}
}

func (f *fakePageCache) Set(_ context.Context, pid string, html string) error {
	f.pages[pid] = html
	return nil
}

func (f *fakePageCache) Get(_ context.Context, pid string) (string, error) {
	html, ok := f.pages[pid]
	if !ok {
		return "", cache.ErrPageNotCached
	}
	return html, nil
}

func (f *fakePageCache) Del(_ context.Context, pid string) error {
	delete(f.pages, pid)
	return nil
}

type fakeTemplateSvc struct {
	templates map[string]template.Template
	usages    map[string]int
}

func newFakeTemplateSvc() *fakeTemplateSvc {
	t, _ := template.PresetByID(template.DefaultPresetID)
	t.ID = "tpl-1"
	return &fakeTemplateSvc{
		templates: map[string]template.Template{"tpl-1": t},
		usages:    make(map[string]int),
	}
}

func (f *fakeTemplateSvc) Save(_ context.Context, _ int64, t template.Template) (string, error) {
	f.templates[t.ID] = t
	return t.ID, nil
}

func (f *fakeTemplateSvc) Detail(_ context.Context, id string, _ int64) (template.Template, error) {
	t, ok := f.templates[id]
	if !ok {
		return template.Template{}, template.ErrTemplateNotFound
	}
	return t, nil
}

func (f *fakeTemplateSvc) List(_ context.Context, _ int64, _, _ int) ([]template.Template, error) {
	return nil, nil
}

func (f *fakeTemplateSvc) ListPublic(_ context.Context, _, _ int) ([]template.Template, error) {
	return nil, nil
}

func (f *fakeTemplateSvc) Publish(_ context.Context, _ string, _ int64, _ bool) error {
	return nil
}

func (f *fakeTemplateSvc) Delete(_ context.Context, id string, _ int64) error {
	delete(f.templates, id)
	return nil
}

func (f *fakeTemplateSvc) Clone(_ context.Context, id string, _ int64, _ string) (template.Template, error) {
	return f.templates[id], nil
}

func (f *fakeTemplateSvc) Like(_ context.Context, _ string) error {
	return nil
}

func (f *fakeTemplateSvc) CountUsage(_ context.Context, id string) error {
	f.usages[id]++
	return nil
}

func (f *fakeTemplateSvc) Validate(_ template.Template) template.ValidationResult {
	return template.ValidationResult{Valid: true}
}

type fakeFormSvc struct {
	record form.Record
}

func (f *fakeFormSvc) Save(_ context.Context, _ int64, record form.Record) error {
	f.record = record
	return nil
}

func (f *fakeFormSvc) Detail(_ context.Context, _ int64) (form.Record, error) {
	return f.record, nil
}

func (f *fakeFormSvc) Find(_ context.Context, _ int64) (form.Record, error) {
	return f.record, nil
}

type testEnv struct {
	svc      Service
	repo     *fakeRepo
	cache    *fakePageCache
	tplSvc   *fakeTemplateSvc
	consumer mq.Consumer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	topic := event.PortfolioEvent{}.Topic()
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), topic, 1))
	consumer, err := q.Consumer(topic, "test-group")
	require.NoError(t, err)
	producer, err := event.NewPortfolioEventProducer(q)
	require.NoError(t, err)

	repo := newFakeRepo()
	pageCache := newFakePageCache()
	tplSvc := newFakeTemplateSvc()
	formSvc := &fakeFormSvc{record: form.Record{
		BasicInfo: form.BasicInfo{FullName: "张三"},
	}}
	return &testEnv{
		svc:      NewService(repo, pageCache, producer, tplSvc, template.NewRenderer(), formSvc),
		repo:     repo,
		cache:    pageCache,
		tplSvc:   tplSvc,
		consumer: consumer,
	}
}

func (e *testEnv) nextEvent(t *testing.T) event.PortfolioEvent {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	msg, err := e.consumer.Consume(ctx)
	require.NoError(t, err)
	var evt event.PortfolioEvent
	require.NoError(t, json.Unmarshal(msg.Value, &evt))
	return evt
}

func TestPublish(t *testing.T) {
	t.Run("首次发布生成 PID", func(t *testing.T) {
		env := newTestEnv(t)
		pub, err := env.svc.Publish(context.Background(), testUid, "tpl-1")
		require.NoError(t, err)
		assert.NotEmpty(t, pub.PID)
		assert.True(t, pub.Published)
		assert.Equal(t, "tpl-1", pub.TemplateID)
		assert.NotZero(t, pub.PublishedAt)

		evt := env.nextEvent(t)
		assert.Equal(t, event.ActionPublished, evt.Action)
		assert.Equal(t, testUid, evt.Uid)
		assert.Equal(t, pub.PID, evt.PID)
	})

	t.Run("再次发布 PID 不变", func(t *testing.T) {
		env := newTestEnv(t)
		first, err := env.svc.Publish(context.Background(), testUid, "tpl-1")
		require.NoError(t, err)
		env.tplSvc.templates["tpl-2"] = env.tplSvc.templates["tpl-1"]
		second, err := env.svc.Publish(context.Background(), testUid, "tpl-2")
		require.NoError(t, err)
		assert.Equal(t, first.PID, second.PID)
		assert.Equal(t, first.PublishedAt, second.PublishedAt)
		assert.Equal(t, "tpl-2", second.TemplateID)
	})

	t.Run("模板不存在发布失败", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.svc.Publish(context.Background(), testUid, "ghost")
		assert.Equal(t, template.ErrTemplateNotFound, err)
	})

	t.Run("换模板后旧页面缓存失效", func(t *testing.T) {
		env := newTestEnv(t)
		pub, err := env.svc.Publish(context.Background(), testUid, "tpl-1")
		require.NoError(t, err)
		env.cache.pages[pub.PID] = "stale"
		_, err = env.svc.Publish(context.Background(), testUid, "tpl-1")
		require.NoError(t, err)
		assert.NotContains(t, env.cache.pages, pub.PID)
	})
}

func TestUnpublish(t *testing.T) {
	t.Run("下架后公开页不可见", func(t *testing.T) {
		env := newTestEnv(t)
		pub, err := env.svc.Publish(context.Background(), testUid, "tpl-1")
		require.NoError(t, err)
		env.nextEvent(t)

		require.NoError(t, env.svc.Unpublish(context.Background(), testUid))
		evt := env.nextEvent(t)
		assert.Equal(t, event.ActionUnpublished, evt.Action)

		_, err = env.svc.RenderPublic(context.Background(), pub.PID)
		assert.Equal(t, ErrPublicationNotFound, err)
	})

	t.Run("从未发布过", func(t *testing.T) {
		env := newTestEnv(t)
		err := env.svc.Unpublish(context.Background(), testUid)
		assert.Equal(t, ErrPublicationNotFound, err)
	})
}

func TestStatus(t *testing.T) {
	t.Run("从未发布返回空状态", func(t *testing.T) {
		env := newTestEnv(t)
		pub, err := env.svc.Status(context.Background(), testUid)
		require.NoError(t, err)
		assert.Equal(t, domain.Publication{Uid: testUid}, pub)
	})

	t.Run("已发布返回记录", func(t *testing.T) {
		env := newTestEnv(t)
		published, err := env.svc.Publish(context.Background(), testUid, "tpl-1")
		require.NoError(t, err)
		pub, err := env.svc.Status(context.Background(), testUid)
		require.NoError(t, err)
		assert.Equal(t, published.PID, pub.PID)
		assert.True(t, pub.Published)
	})
}

func TestRenderPublic(t *testing.T) {
	t.Run("渲染出表单数据并计一次使用", func(t *testing.T) {
		env := newTestEnv(t)
		pub, err := env.svc.Publish(context.Background(), testUid, "tpl-1")
		require.NoError(t, err)

		html, err := env.svc.RenderPublic(context.Background(), pub.PID)
		require.NoError(t, err)
		assert.Contains(t, html, "张三")
		assert.Equal(t, 1, env.tplSvc.usages["tpl-1"])
	})

	t.Run("第二次命中缓存不再计数", func(t *testing.T) {
		env := newTestEnv(t)
		pub, err := env.svc.Publish(context.Background(), testUid, "tpl-1")
		require.NoError(t, err)

		first, err := env.svc.RenderPublic(context.Background(), pub.PID)
		require.NoError(t, err)
		// 模板删了也不影响缓存命中
		delete(env.tplSvc.templates, "tpl-1")
		second, err := env.svc.RenderPublic(context.Background(), pub.PID)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, env.tplSvc.usages["tpl-1"])
	})

	t.Run("模板被删退回内置模板", func(t *testing.T) {
		env := newTestEnv(t)
		pub, err := env.svc.Publish(context.Background(), testUid, "tpl-1")
		require.NoError(t, err)
		delete(env.tplSvc.templates, "tpl-1")

		html, err := env.svc.RenderPublic(context.Background(), pub.PID)
		require.NoError(t, err)
		assert.Contains(t, html, "张三")
		// 兜底渲染不给失踪的模板计数
		assert.Zero(t, env.tplSvc.usages["tpl-1"])
	})

	t.Run("PID 不存在", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.svc.RenderPublic(context.Background(), "nope")
		assert.Equal(t, ErrPublicationNotFound, err)
	})
}
