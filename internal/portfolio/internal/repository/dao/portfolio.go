package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type PortfolioDAO interface {
	// Upsert 按 uid 维度保存，pid 首次生成后不再变
	Upsert(ctx context.Context, p UserPortfolio) error
	FindByUid(ctx context.Context, uid int64) (UserPortfolio, error)
	FindByPid(ctx context.Context, pid string) (UserPortfolio, error)
	UpdatePublished(ctx context.Context, uid int64, published bool) error
}

type GORMPortfolioDAO struct {
	db *egorm.Component
}

func NewGORMPortfolioDAO(db *egorm.Component) PortfolioDAO {
	return &GORMPortfolioDAO{db: db}
}

func (d *GORMPortfolioDAO) Upsert(ctx context.Context, p UserPortfolio) error {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "uid"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"template_id", "published", "published_at", "utime",
		}),
	}).Create(&p).Error
}

func (d *GORMPortfolioDAO) FindByUid(ctx context.Context, uid int64) (UserPortfolio, error) {
	var res UserPortfolio
	err := d.db.WithContext(ctx).Where("uid = ?", uid).First(&res).Error
	return res, err
}

func (d *GORMPortfolioDAO) FindByPid(ctx context.Context, pid string) (UserPortfolio, error) {
	var res UserPortfolio
	err := d.db.WithContext(ctx).Where("pid = ?", pid).First(&res).Error
	return res, err
}

func (d *GORMPortfolioDAO) UpdatePublished(ctx context.Context, uid int64, published bool) error {
	res := d.db.WithContext(ctx).Model(&UserPortfolio{}).
		Where("uid = ?", uid).
		Updates(map[string]any{
			"published": published,
			"utime":     time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

type UserPortfolio struct {
	Id  int64  `gorm:"primaryKey,autoIncrement"`
	Uid int64  `gorm:"uniqueIndex:uk_uid"`
	Pid string `gorm:"type:varchar(64);uniqueIndex:uk_pid"`

	TemplateId  string `gorm:"type:varchar(64)"`
	Published   bool   `gorm:"index:idx_published"`
	PublishedAt int64

	Ctime int64
	Utime int64
}

func (UserPortfolio) TableName() string {
	return "user_portfolios"
}

func InitTables(db *egorm.Component) error {
	return db.WithContext(context.Background()).AutoMigrate(&UserPortfolio{})
}
