package service

import (
	"context"
	"errors"

	"github.com/internfolio/internfolio/internal/form/internal/domain"
	"github.com/internfolio/internfolio/internal/form/internal/repository"
)

// ErrRecordNotFound 用户还没填过表单
var ErrRecordNotFound = repository.ErrRecordNotFound

type Service interface {
	Save(ctx context.Context, uid int64, record domain.Record) error
	// Detail 未找到时返回空表单，前端据此进入首次填写流程
	Detail(ctx context.Context, uid int64) (domain.Record, error)
	// Find 未找到时返回 ErrRecordNotFound
	Find(ctx context.Context, uid int64) (domain.Record, error)
}

type service struct {
	repo repository.FormRepository
}

func NewService(repo repository.FormRepository) Service {
	return &service{repo: repo}
}

func (s *service) Save(ctx context.Context, uid int64, record domain.Record) error {
	return s.repo.Save(ctx, uid, record)
}

func (s *service) Detail(ctx context.Context, uid int64) (domain.Record, error) {
	record, err := s.repo.Find(ctx, uid)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Record{}, nil
	}
	return record, err
}

func (s *service) Find(ctx context.Context, uid int64) (domain.Record, error) {
	return s.repo.Find(ctx, uid)
}
