package repository

import (
	"context"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/internfolio/internfolio/internal/form/internal/domain"
	"github.com/internfolio/internfolio/internal/form/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

type FormRepository interface {
	Save(ctx context.Context, uid int64, record domain.Record) error
	Find(ctx context.Context, uid int64) (domain.Record, error)
}

type formRepository struct {
	dao dao.FormDAO
}

func NewFormRepository(d dao.FormDAO) FormRepository {
	return &formRepository{dao: d}
}

func (r *formRepository) Save(ctx context.Context, uid int64, record domain.Record) error {
	return r.dao.Upsert(ctx, dao.InternForm{
		Uid: uid,
		FormData: sqlx.JsonColumn[domain.Record]{
			Val:   record,
			Valid: true,
		},
	})
}

func (r *formRepository) Find(ctx context.Context, uid int64) (domain.Record, error) {
	f, err := r.dao.FindByUid(ctx, uid)
	if err != nil {
		return domain.Record{}, err
	}
	return f.FormData.Val, nil
}
