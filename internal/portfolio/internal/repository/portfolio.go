package repository

import (
	"context"

	"github.com/internfolio/internfolio/internal/portfolio/internal/domain"
	"github.com/internfolio/internfolio/internal/portfolio/internal/repository/dao"
)

var ErrPublicationNotFound = dao.ErrRecordNotFound

type PortfolioRepository interface {
	Save(ctx context.Context, p domain.Publication) error
	FindByUid(ctx context.Context, uid int64) (domain.Publication, error)
	FindByPid(ctx context.Context, pid string) (domain.Publication, error)
	SetPublished(ctx context.Context, uid int64, published bool) error
}

type portfolioRepository struct {
	dao dao.PortfolioDAO
}

func NewPortfolioRepository(d dao.PortfolioDAO) PortfolioRepository {
	return &portfolioRepository{dao: d}
}

func (r *portfolioRepository) Save(ctx context.Context, p domain.Publication) error {
	return r.dao.Upsert(ctx, dao.UserPortfolio{
		Uid:         p.Uid,
		Pid:         p.PID,
		TemplateId:  p.TemplateID,
		Published:   p.Published,
		PublishedAt: p.PublishedAt,
	})
}

func (r *portfolioRepository) FindByUid(ctx context.Context, uid int64) (domain.Publication, error) {
	entity, err := r.dao.FindByUid(ctx, uid)
	if err != nil {
		return domain.Publication{}, err
	}
	return r.toDomain(entity), nil
}

func (r *portfolioRepository) FindByPid(ctx context.Context, pid string) (domain.Publication, error) {
	entity, err := r.dao.FindByPid(ctx, pid)
	if err != nil {
		return domain.Publication{}, err
	}
	return r.toDomain(entity), nil
}

func (r *portfolioRepository) SetPublished(ctx context.Context, uid int64, published bool) error {
	return r.dao.UpdatePublished(ctx, uid, published)
}

func (r *portfolioRepository) toDomain(entity dao.UserPortfolio) domain.Publication {
	return domain.Publication{
		PID:         entity.Pid,
		Uid:         entity.Uid,
		TemplateID:  entity.TemplateId,
		Published:   entity.Published,
		PublishedAt: entity.PublishedAt,
		Utime:       entity.Utime,
	}
}
