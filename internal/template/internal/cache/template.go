package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/internfolio/internfolio/internal/template/internal/domain"
	"github.com/pkg/errors"
)

const (
	// 公开页会高频读模板，写路径上主动失效
	templateExpiration = 10 * time.Minute
)

var ErrTemplateNotCached = errors.New("模板不在缓存里")

type TemplateCache interface {
	Set(ctx context.Context, t domain.Template) error
	Get(ctx context.Context, id string) (domain.Template, error)
	Del(ctx context.Context, id string) error
}

type templateCache struct {
	ec ecache.Cache
}

func NewTemplateCache(ec ecache.Cache) TemplateCache {
	return &templateCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "template:",
		},
	}
}

func (c *templateCache) Set(ctx context.Context, t domain.Template) error {
	data, err := json.Marshal(t)
	if err != nil {
		return errors.Wrap(err, "序列化模板失败")
	}
	return c.ec.Set(ctx, c.key(t.ID), string(data), templateExpiration)
}

func (c *templateCache) Get(ctx context.Context, id string) (domain.Template, error) {
	val := c.ec.Get(ctx, c.key(id))
	if val.KeyNotFound() {
		return domain.Template{}, ErrTemplateNotCached
	}
	if val.Err != nil {
		return domain.Template{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	var t domain.Template
	err := json.Unmarshal([]byte(val.Val.(string)), &t)
	if err != nil {
		return domain.Template{}, errors.Wrap(err, "反序列化模板失败")
	}
	return t, nil
}

func (c *templateCache) Del(ctx context.Context, id string) error {
	_, err := c.ec.Delete(ctx, c.key(id))
	return err
}

func (c *templateCache) key(id string) string {
	return fmt.Sprintf("detail:%s", id)
}
