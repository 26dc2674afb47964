package session

import (
	"fmt"

	"github.com/ecodeclub/ekit/syncx"
	"github.com/internfolio/internfolio/internal/template/internal/domain"
	"github.com/internfolio/internfolio/internal/template/internal/registry"
)

var ErrNoSession = fmt.Errorf("编辑会话不存在")

// Manager 按用户维护画布会话。会话只活在内存里，
// 进程重启后用户需要重新 load 一次模板。
type Manager struct {
	reg      *registry.Registry
	sessions syncx.Map[int64, *Builder]
}

func NewManager(reg *registry.Registry) *Manager {
	return &Manager{reg: reg}
}

// Open 替换该用户当前的会话
func (m *Manager) Open(uid int64, t domain.Template) *Builder {
	b := NewBuilder(m.reg, t)
	m.sessions.Store(uid, b)
	return b
}

func (m *Manager) Get(uid int64) (*Builder, error) {
	b, ok := m.sessions.Load(uid)
	if !ok {
		return nil, ErrNoSession
	}
	return b, nil
}

func (m *Manager) Close(uid int64) {
	m.sessions.Delete(uid)
}
