package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/internfolio/internfolio/internal/template/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type TemplateDAO interface {
	// Upsert 按模板 ID 保存，存在则覆盖内容字段
	Upsert(ctx context.Context, t CustomTemplate) (int64, error)
	FindByTid(ctx context.Context, tid string) (CustomTemplate, error)
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]CustomTemplate, error)
	ListPublic(ctx context.Context, offset, limit int) ([]CustomTemplate, error)
	Publish(ctx context.Context, tid string, uid int64, public bool) error
	IncrUsage(ctx context.Context, tid string) error
	IncrLikes(ctx context.Context, tid string) error
	Delete(ctx context.Context, tid string, uid int64) error
}

type GORMTemplateDAO struct {
	db *egorm.Component
}

func NewGORMTemplateDAO(db *egorm.Component) TemplateDAO {
	return &GORMTemplateDAO{db: db}
}

func (d *GORMTemplateDAO) Upsert(ctx context.Context, t CustomTemplate) (int64, error) {
	now := time.Now().UnixMilli()
	t.Ctime = now
	t.Utime = now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tid"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "category", "tags", "version",
			"thumbnail", "structure", "theme", "utime",
		}),
	}).Create(&t).Error
	return t.Id, err
}

func (d *GORMTemplateDAO) FindByTid(ctx context.Context, tid string) (CustomTemplate, error) {
	var res CustomTemplate
	err := d.db.WithContext(ctx).Where("tid = ?", tid).First(&res).Error
	return res, err
}

func (d *GORMTemplateDAO) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]CustomTemplate, error) {
	var res []CustomTemplate
	err := d.db.WithContext(ctx).Where("uid = ?", uid).
		Order("utime DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *GORMTemplateDAO) ListPublic(ctx context.Context, offset, limit int) ([]CustomTemplate, error) {
	var res []CustomTemplate
	err := d.db.WithContext(ctx).Where("is_public = ?", true).
		Order("is_featured DESC, usage_count DESC, utime DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *GORMTemplateDAO) Publish(ctx context.Context, tid string, uid int64, public bool) error {
	now := time.Now().UnixMilli()
	updates := map[string]any{
		"is_public": public,
		"utime":     now,
	}
	if public {
		updates["published_at"] = now
	}
	res := d.db.WithContext(ctx).Model(&CustomTemplate{}).
		Where("tid = ? AND uid = ?", tid, uid).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (d *GORMTemplateDAO) IncrUsage(ctx context.Context, tid string) error {
	return d.db.WithContext(ctx).Model(&CustomTemplate{}).
		Where("tid = ?", tid).
		Updates(map[string]any{
			"usage_count": gorm.Expr("usage_count + 1"),
			"utime":       time.Now().UnixMilli(),
		}).Error
}

func (d *GORMTemplateDAO) IncrLikes(ctx context.Context, tid string) error {
	return d.db.WithContext(ctx).Model(&CustomTemplate{}).
		Where("tid = ?", tid).
		Updates(map[string]any{
			"likes_count": gorm.Expr("likes_count + 1"),
			"utime":       time.Now().UnixMilli(),
		}).Error
}

func (d *GORMTemplateDAO) Delete(ctx context.Context, tid string, uid int64) error {
	res := d.db.WithContext(ctx).
		Where("tid = ? AND uid = ?", tid, uid).Delete(&CustomTemplate{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

type CustomTemplate struct {
	Id  int64  `gorm:"primaryKey,autoIncrement"`
	Tid string `gorm:"type:varchar(64);uniqueIndex:uk_tid"`
	Uid int64  `gorm:"index:idx_uid"`

	Name        string `gorm:"type:varchar(256)"`
	Description string `gorm:"type:varchar(1024)"`
	Author      string `gorm:"type:varchar(128)"`
	Category    string `gorm:"type:varchar(64);index:idx_category"`
	Version     string `gorm:"type:varchar(32)"`
	Thumbnail   string `gorm:"type:varchar(512)"`

	Tags      sqlx.JsonColumn[[]string]      `gorm:"type:text"`
	Structure sqlx.JsonColumn[[]domain.Node] `gorm:"type:text;comment:组件树"`
	Theme     sqlx.JsonColumn[domain.Theme]  `gorm:"type:text"`

	IsPublic   bool `gorm:"index:idx_public"`
	IsFeatured bool
	UsageCount int64
	LikesCount int64

	PublishedAt int64
	Ctime       int64
	Utime       int64
}

func (CustomTemplate) TableName() string {
	return "custom_templates"
}

func InitTables(db *egorm.Component) error {
	return db.WithContext(context.Background()).AutoMigrate(&CustomTemplate{})
}
