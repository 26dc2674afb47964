package service

import (
	"context"
	"testing"

	"github.com/internfolio/internfolio/internal/form/internal/domain"
	"github.com/internfolio/internfolio/internal/form/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFormRepo struct {
	records map[int64]domain.Record
}

func (f *fakeFormRepo) Save(_ context.Context, uid int64, record domain.Record) error {
	f.records[uid] = record
	return nil
}

func (f *fakeFormRepo) Find(_ context.Context, uid int64) (domain.Record, error) {
	record, ok := f.records[uid]
	if !ok {
		return domain.Record{}, repository.ErrRecordNotFound
	}
	return record, nil
}

func newTestService() Service {
	return NewService(&fakeFormRepo{records: make(map[int64]domain.Record)})
}

func TestFormDetail(t *testing.T) {
	t.Run("没填过返回空表单", func(t *testing.T) {
		svc := newTestService()
		record, err := svc.Detail(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, domain.Record{}, record)
	})

	t.Run("保存后读回", func(t *testing.T) {
		svc := newTestService()
		saved := domain.Record{
			BasicInfo: domain.BasicInfo{FullName: "张三", InternshipRole: "后端实习生"},
		}
		require.NoError(t, svc.Save(context.Background(), 1, saved))
		record, err := svc.Detail(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, saved, record)
	})

	t.Run("空表单也能保存", func(t *testing.T) {
		svc := newTestService()
		require.NoError(t, svc.Save(context.Background(), 1, domain.Record{}))
		_, err := svc.Find(context.Background(), 1)
		assert.NoError(t, err)
	})
}

func TestFormFind(t *testing.T) {
	svc := newTestService()
	_, err := svc.Find(context.Background(), 42)
	assert.Equal(t, ErrRecordNotFound, err)
}
