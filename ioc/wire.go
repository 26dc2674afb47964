//go:build wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/internfolio/internfolio/internal/form"
	"github.com/internfolio/internfolio/internal/portfolio"
	"github.com/internfolio/internfolio/internal/template"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		form.InitModule,
		template.InitModule,
		portfolio.InitModule,
		wire.FieldsOf(new(*form.Module), "Hdl"),
		wire.FieldsOf(new(*template.Module), "Hdl", "BuilderHdl"),
		wire.FieldsOf(new(*portfolio.Module), "Hdl"),
		InitSession,
		initGinxServer)
	return new(App), nil
}
