package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/internfolio/internfolio/internal/form"
	"github.com/internfolio/internfolio/internal/pkg/middleware"
	"github.com/internfolio/internfolio/internal/portfolio"
	"github.com/internfolio/internfolio/internal/template"
)

func initGinxServer(sp session.Provider,
	formHdl *form.Handler,
	tplHdl *template.Handler,
	builderHdl *template.BuilderHandler,
	portfolioHdl *portfolio.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(middleware.NewMetricsBuilder().Build())
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我的域名过来的
			return strings.Contains(origin, "internfolio.dev")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 公开作品集页和模板市场不用登录
	portfolioHdl.PublicRoutes(res.Engine)
	tplHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	formHdl.PrivateRoutes(res.Engine)
	tplHdl.PrivateRoutes(res.Engine)
	builderHdl.PrivateRoutes(res.Engine)
	portfolioHdl.PrivateRoutes(res.Engine)
	return res
}
