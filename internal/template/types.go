package template

import (
	"github.com/internfolio/internfolio/internal/template/internal/domain"
	"github.com/internfolio/internfolio/internal/template/internal/preset"
	"github.com/internfolio/internfolio/internal/template/internal/registry"
	"github.com/internfolio/internfolio/internal/template/internal/render"
	"github.com/internfolio/internfolio/internal/template/internal/schema"
	"github.com/internfolio/internfolio/internal/template/internal/service"
	"github.com/internfolio/internfolio/internal/template/internal/web"
)

// Module 暴露给 ioc 与其他模块使用
type Module struct {
	Hdl        *web.Handler
	BuilderHdl *web.BuilderHandler
	Svc        service.Service
	Renderer   *render.Renderer
}

type Handler = web.Handler

type BuilderHandler = web.BuilderHandler

type Service = service.Service

type Renderer = render.Renderer

type Template = domain.Template

type Node = domain.Node

type Theme = domain.Theme

type Registry = registry.Registry

type ValidationResult = schema.ValidationResult

var (
	ErrTemplateNotFound = service.ErrTemplateNotFound
	ErrNoPermission     = service.ErrNoPermission
)

// DefaultPresetID 公开页兜底模板
const DefaultPresetID = preset.DefaultID

func PresetByID(id string) (Template, bool) {
	return preset.ByID(id)
}

// NewRenderer 渲染内置组件库的渲染器，portfolio 模块和测试直接用
func NewRenderer() *Renderer {
	return render.New(registry.Builtin())
}
