package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/internfolio/internfolio/internal/form/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type FormDAO interface {
	// Upsert 按用户维度保存，一个用户只有一份表单
	Upsert(ctx context.Context, f InternForm) error
	FindByUid(ctx context.Context, uid int64) (InternForm, error)
}

type GORMFormDAO struct {
	db *egorm.Component
}

func NewGORMFormDAO(db *egorm.Component) FormDAO {
	return &GORMFormDAO{db: db}
}

func (d *GORMFormDAO) Upsert(ctx context.Context, f InternForm) error {
	now := time.Now().UnixMilli()
	f.Ctime = now
	f.Utime = now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uid"}},
		DoUpdates: clause.AssignmentColumns([]string{"form_data", "utime"}),
	}).Create(&f).Error
}

func (d *GORMFormDAO) FindByUid(ctx context.Context, uid int64) (InternForm, error) {
	var res InternForm
	err := d.db.WithContext(ctx).Where("uid = ?", uid).First(&res).Error
	return res, err
}

type InternForm struct {
	Id       int64                          `gorm:"primaryKey,autoIncrement"`
	Uid      int64                          `gorm:"uniqueIndex:uk_uid"`
	FormData sqlx.JsonColumn[domain.Record] `gorm:"type:text;comment:表单内容"`
	Ctime    int64
	Utime    int64
}

func (InternForm) TableName() string {
	return "intern_forms"
}

func InitTables(db *egorm.Component) error {
	return db.WithContext(context.Background()).AutoMigrate(&InternForm{})
}
