package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/internfolio/internfolio/internal/template/internal/cache"
	"github.com/internfolio/internfolio/internal/template/internal/domain"
	"github.com/internfolio/internfolio/internal/template/internal/repository/dao"
)

var ErrTemplateNotFound = dao.ErrRecordNotFound

type TemplateRepository interface {
	Save(ctx context.Context, t domain.Template) error
	FindByID(ctx context.Context, id string) (domain.Template, error)
	ListByAuthor(ctx context.Context, uid int64, offset, limit int) ([]domain.Template, error)
	ListPublic(ctx context.Context, offset, limit int) ([]domain.Template, error)
	Publish(ctx context.Context, id string, uid int64, public bool) error
	Delete(ctx context.Context, id string, uid int64) error
	IncrUsage(ctx context.Context, id string) error
	IncrLikes(ctx context.Context, id string) error
}

type CachedTemplateRepository struct {
	dao   dao.TemplateDAO
	cache cache.TemplateCache
}

func NewCachedTemplateRepository(d dao.TemplateDAO, c cache.TemplateCache) TemplateRepository {
	return &CachedTemplateRepository{dao: d, cache: c}
}

func (r *CachedTemplateRepository) Save(ctx context.Context, t domain.Template) error {
	_, err := r.dao.Upsert(ctx, r.toEntity(t))
	if err != nil {
		return err
	}
	// 缓存里可能还是旧结构，直接作废
	_ = r.cache.Del(ctx, t.ID)
	return nil
}

func (r *CachedTemplateRepository) FindByID(ctx context.Context, id string) (domain.Template, error) {
	if t, err := r.cache.Get(ctx, id); err == nil {
		return t, nil
	}
	entity, err := r.dao.FindByTid(ctx, id)
	if err != nil {
		return domain.Template{}, err
	}
	t := r.toDomain(entity)
	_ = r.cache.Set(ctx, t)
	return t, nil
}

func (r *CachedTemplateRepository) ListByAuthor(ctx context.Context, uid int64, offset, limit int) ([]domain.Template, error) {
	entities, err := r.dao.ListByUid(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.CustomTemplate) domain.Template {
		return r.toDomain(src)
	}), nil
}

func (r *CachedTemplateRepository) ListPublic(ctx context.Context, offset, limit int) ([]domain.Template, error) {
	entities, err := r.dao.ListPublic(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.CustomTemplate) domain.Template {
		return r.toDomain(src)
	}), nil
}

func (r *CachedTemplateRepository) Publish(ctx context.Context, id string, uid int64, public bool) error {
	if err := r.dao.Publish(ctx, id, uid, public); err != nil {
		return err
	}
	_ = r.cache.Del(ctx, id)
	return nil
}

func (r *CachedTemplateRepository) Delete(ctx context.Context, id string, uid int64) error {
	if err := r.dao.Delete(ctx, id, uid); err != nil {
		return err
	}
	_ = r.cache.Del(ctx, id)
	return nil
}

func (r *CachedTemplateRepository) IncrUsage(ctx context.Context, id string) error {
	return r.dao.IncrUsage(ctx, id)
}

func (r *CachedTemplateRepository) IncrLikes(ctx context.Context, id string) error {
	if err := r.dao.IncrLikes(ctx, id); err != nil {
		return err
	}
	_ = r.cache.Del(ctx, id)
	return nil
}

func (r *CachedTemplateRepository) toEntity(t domain.Template) dao.CustomTemplate {
	res := dao.CustomTemplate{
		Tid:         t.ID,
		Uid:         t.AuthorID,
		Name:        t.Name,
		Description: t.Description,
		Author:      t.Author,
		Category:    t.Category,
		Version:     t.Version,
		Thumbnail:   t.Thumbnail,
		IsPublic:    t.IsPublic,
		IsFeatured:  t.IsFeatured,
		UsageCount:  t.UsageCount,
		LikesCount:  t.LikesCount,
	}
	res.Tags.Val = t.Tags
	res.Tags.Valid = true
	res.Structure.Val = t.Structure
	res.Structure.Valid = true
	res.Theme.Val = t.Theme
	res.Theme.Valid = true
	return res
}

func (r *CachedTemplateRepository) toDomain(entity dao.CustomTemplate) domain.Template {
	t := domain.Template{
		ID:          entity.Tid,
		Name:        entity.Name,
		Description: entity.Description,
		Author:      entity.Author,
		AuthorID:    entity.Uid,
		Category:    entity.Category,
		Version:     entity.Version,
		Thumbnail:   entity.Thumbnail,
		IsPublic:    entity.IsPublic,
		IsFeatured:  entity.IsFeatured,
		UsageCount:  entity.UsageCount,
		LikesCount:  entity.LikesCount,
		CreatedAt:   millisToRFC3339(entity.Ctime),
		UpdatedAt:   millisToRFC3339(entity.Utime),
	}
	if entity.PublishedAt > 0 {
		t.PublishedAt = millisToRFC3339(entity.PublishedAt)
	}
	if entity.Tags.Valid {
		t.Tags = entity.Tags.Val
	}
	if entity.Structure.Valid {
		t.Structure = entity.Structure.Val
	}
	if entity.Theme.Valid {
		t.Theme = entity.Theme.Val
	}
	return t
}

func millisToRFC3339(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}
