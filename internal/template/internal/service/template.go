package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gotomicro/ego/core/elog"
	"github.com/internfolio/internfolio/internal/template/internal/domain"
	"github.com/internfolio/internfolio/internal/template/internal/preset"
	"github.com/internfolio/internfolio/internal/template/internal/registry"
	"github.com/internfolio/internfolio/internal/template/internal/repository"
	"github.com/internfolio/internfolio/internal/template/internal/schema"
)

var (
	ErrTemplateNotFound = repository.ErrTemplateNotFound
	ErrNoPermission     = fmt.Errorf("没有权限操作该模板")
)

type Service interface {
	// Save 校验通过才落库，警告不拦截。返回模板 ID
	Save(ctx context.Context, uid int64, t domain.Template) (string, error)
	// Detail 内置模板、自己的模板、公开模板三类可见
	Detail(ctx context.Context, id string, uid int64) (domain.Template, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Template, error)
	ListPublic(ctx context.Context, offset, limit int) ([]domain.Template, error)
	Publish(ctx context.Context, id string, uid int64, public bool) error
	// Delete 只能删自己的模板，内置模板删不了
	Delete(ctx context.Context, id string, uid int64) error
	// Clone 把可见模板复制成自己的，源模板使用数加一
	Clone(ctx context.Context, id string, uid int64, author string) (domain.Template, error)
	Like(ctx context.Context, id string) error
	// CountUsage 使用数加一，内置模板不计数
	CountUsage(ctx context.Context, id string) error
	Validate(t domain.Template) schema.ValidationResult
}

type service struct {
	repo   repository.TemplateRepository
	reg    *registry.Registry
	logger *elog.Component
}

func NewService(repo repository.TemplateRepository, reg *registry.Registry) Service {
	return &service{
		repo:   repo,
		reg:    reg,
		logger: elog.DefaultLogger,
	}
}

func (s *service) Save(ctx context.Context, uid int64, t domain.Template) (string, error) {
	if t.ID == "" {
		fresh := schema.NewTemplate(uid, t.Author)
		t.ID = fresh.ID
		if t.Version == "" {
			t.Version = fresh.Version
		}
	} else {
		// 改不了别人的模板
		existing, err := s.repo.FindByID(ctx, t.ID)
		if err == nil && existing.AuthorID != uid {
			return "", ErrNoPermission
		}
		if err != nil && err != ErrTemplateNotFound {
			return "", err
		}
	}
	t.AuthorID = uid
	if t.Theme.IsZero() {
		t.Theme = domain.DefaultTheme()
	}
	res := schema.Validate(t, s.reg)
	if !res.Valid {
		msgs := make([]string, 0, len(res.Errors))
		for _, e := range res.Errors {
			msgs = append(msgs, e.Message)
		}
		return "", fmt.Errorf("模板不合法: %s", strings.Join(msgs, ", "))
	}
	if len(res.Warnings) > 0 {
		s.logger.Warn("保存的模板有警告",
			elog.String("tid", t.ID),
			elog.Int("count", len(res.Warnings)))
	}
	return t.ID, s.repo.Save(ctx, t)
}

func (s *service) Detail(ctx context.Context, id string, uid int64) (domain.Template, error) {
	if t, ok := preset.ByID(id); ok {
		return t, nil
	}
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Template{}, err
	}
	if !t.IsPublic && t.AuthorID != uid {
		return domain.Template{}, ErrNoPermission
	}
	return t, nil
}

func (s *service) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Template, error) {
	return s.repo.ListByAuthor(ctx, uid, offset, limit)
}

func (s *service) ListPublic(ctx context.Context, offset, limit int) ([]domain.Template, error) {
	res, err := s.repo.ListPublic(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	// 内置模板排最前面
	if offset == 0 {
		res = append(preset.All(), res...)
	}
	return res, nil
}

func (s *service) Publish(ctx context.Context, id string, uid int64, public bool) error {
	return s.repo.Publish(ctx, id, uid, public)
}

func (s *service) Delete(ctx context.Context, id string, uid int64) error {
	if _, builtin := preset.ByID(id); builtin {
		return ErrNoPermission
	}
	// DAO 按 tid+uid 删，删别人的模板和删不存在的模板一样都是找不到
	return s.repo.Delete(ctx, id, uid)
}

func (s *service) Clone(ctx context.Context, id string, uid int64, author string) (domain.Template, error) {
	src, err := s.Detail(ctx, id, uid)
	if err != nil {
		return domain.Template{}, err
	}
	cloned := schema.CloneTemplate(src, uid, author)
	if err = s.repo.Save(ctx, cloned); err != nil {
		return domain.Template{}, err
	}
	if err = s.CountUsage(ctx, id); err != nil {
		s.logger.Error("更新模板使用数失败",
			elog.String("tid", id), elog.FieldErr(err))
	}
	return cloned, nil
}

func (s *service) Like(ctx context.Context, id string) error {
	return s.repo.IncrLikes(ctx, id)
}

func (s *service) CountUsage(ctx context.Context, id string) error {
	if _, builtin := preset.ByID(id); builtin {
		return nil
	}
	return s.repo.IncrUsage(ctx, id)
}

func (s *service) Validate(t domain.Template) schema.ValidationResult {
	return schema.Validate(t, s.reg)
}
