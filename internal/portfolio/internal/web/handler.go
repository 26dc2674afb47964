package web

import (
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/internfolio/internfolio/internal/portfolio/internal/service"
	"github.com/internfolio/internfolio/internal/template"
)

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/portfolio")
	g.POST("/publish", ginx.BS[PublishReq](h.Publish))
	g.POST("/unpublish", ginx.S(h.Unpublish))
	g.GET("/status", ginx.S(h.Status))
}

// PublicRoutes 对外作品集页，不要求登录，直接吐 HTML
func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/p/:id", h.RenderPublic)
}

func (h *Handler) Publish(ctx *ginx.Context, req PublishReq, sess session.Session) (ginx.Result, error) {
	pub, err := h.svc.Publish(ctx, sess.Claims().Uid, req.TemplateID)
	switch err {
	case nil:
		return ginx.Result{Data: newPublicationVO(pub)}, nil
	case template.ErrTemplateNotFound, template.ErrNoPermission:
		return templateUnavailableResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Unpublish(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	err := h.svc.Unpublish(ctx, sess.Claims().Uid)
	switch err {
	case nil:
		return ginx.Result{}, nil
	case service.ErrPublicationNotFound:
		return notFoundResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Status(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	pub, err := h.svc.Status(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newPublicationVO(pub)}, nil
}

func (h *Handler) RenderPublic(ctx *gin.Context) {
	pid := ctx.Param("id")
	html, err := h.svc.RenderPublic(ctx, pid)
	switch err {
	case nil:
		ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
	case service.ErrPublicationNotFound:
		ctx.String(http.StatusNotFound, "portfolio not found")
	default:
		h.logger.Error("渲染公开页失败", elog.String("pid", pid), elog.FieldErr(err))
		ctx.String(http.StatusInternalServerError, "internal error")
	}
}
