package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

const (
	// 公开页渲染结果的缓存时长，上下架和改模板时主动失效
	pageExpiration = 10 * time.Minute
)

var ErrPageNotCached = errors.New("公开页不在缓存里")

type PageCache interface {
	Set(ctx context.Context, pid string, html string) error
	Get(ctx context.Context, pid string) (string, error)
	Del(ctx context.Context, pid string) error
}

type pageCache struct {
	ec ecache.Cache
}

func NewPageCache(ec ecache.Cache) PageCache {
	return &pageCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "portfolio:",
		},
	}
}

func (c *pageCache) Set(ctx context.Context, pid string, html string) error {
	return c.ec.Set(ctx, c.key(pid), html, pageExpiration)
}

func (c *pageCache) Get(ctx context.Context, pid string) (string, error) {
	val := c.ec.Get(ctx, c.key(pid))
	if val.KeyNotFound() {
		return "", ErrPageNotCached
	}
	if val.Err != nil {
		return "", errors.Wrap(val.Err, "查询缓存出错")
	}
	return val.Val.(string), nil
}

func (c *pageCache) Del(ctx context.Context, pid string) error {
	_, err := c.ec.Delete(ctx, c.key(pid))
	return err
}

func (c *pageCache) key(pid string) string {
	return fmt.Sprintf("page:%s", pid)
}
