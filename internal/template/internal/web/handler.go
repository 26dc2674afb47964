package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/internfolio/internfolio/internal/template/internal/registry"
	"github.com/internfolio/internfolio/internal/template/internal/service"
)

// Handler 模板的增删查与组件目录
type Handler struct {
	svc    service.Service
	reg    *registry.Registry
	logger *elog.Component
}

func NewHandler(svc service.Service, reg *registry.Registry) *Handler {
	return &Handler{
		svc:    svc,
		reg:    reg,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/template")
	g.POST("/save", ginx.BS[SaveReq](h.Save))
	g.POST("/publish", ginx.BS[PublishReq](h.Publish))
	g.POST("/delete", ginx.BS[IDReq](h.Delete))
	g.POST("/detail", ginx.BS[IDReq](h.Detail))
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/clone", ginx.BS[IDReq](h.Clone))
	g.POST("/like", ginx.B[IDReq](h.Like))

	g.GET("/components", ginx.W(h.Components))
	g.POST("/components/search", ginx.B[SearchReq](h.SearchComponents))
}

// PublicRoutes 模板市场对未登录用户也开放浏览
func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/template/list/public", ginx.B[ListReq](h.ListPublic))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, sess.Claims().Uid, req.Template)
	switch err {
	case nil:
		return ginx.Result{Data: id}, nil
	case service.ErrNoPermission:
		return noPermissionResult, err
	default:
		// 校验失败带着具体原因回去
		res := h.svc.Validate(req.Template)
		if !res.Valid {
			return ginx.Result{
				Code: invalidTemplateResult.Code,
				Msg:  invalidTemplateResult.Msg,
				Data: res,
			}, err
		}
		return systemErrorResult, err
	}
}

func (h *Handler) Publish(ctx *ginx.Context, req PublishReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Publish(ctx, req.ID, sess.Claims().Uid, req.Public)
	switch err {
	case nil:
		return ginx.Result{}, nil
	case service.ErrTemplateNotFound:
		return notFoundResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Delete(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.ID, sess.Claims().Uid)
	switch err {
	case nil:
		return ginx.Result{}, nil
	case service.ErrTemplateNotFound:
		return notFoundResult, err
	case service.ErrNoPermission:
		return noPermissionResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	t, err := h.svc.Detail(ctx, req.ID, sess.Claims().Uid)
	switch err {
	case nil:
		return ginx.Result{Data: t}, nil
	case service.ErrTemplateNotFound:
		return notFoundResult, err
	case service.ErrNoPermission:
		return noPermissionResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	templates, err := h.svc.List(ctx, sess.Claims().Uid, req.Offset, normalizeLimit(req.Limit))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: ListResp{Templates: templates}}, nil
}

func (h *Handler) ListPublic(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	templates, err := h.svc.ListPublic(ctx, req.Offset, normalizeLimit(req.Limit))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: ListResp{Templates: templates}}, nil
}

func (h *Handler) Clone(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	author := sess.Claims().Data["nickname"]
	t, err := h.svc.Clone(ctx, req.ID, sess.Claims().Uid, author)
	switch err {
	case nil:
		return ginx.Result{Data: t}, nil
	case service.ErrTemplateNotFound:
		return notFoundResult, err
	case service.ErrNoPermission:
		return noPermissionResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Like(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	err := h.svc.Like(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) Components(ctx *ginx.Context) (ginx.Result, error) {
	return ginx.Result{Data: h.reg.All()}, nil
}

func (h *Handler) SearchComponents(ctx *ginx.Context, req SearchReq) (ginx.Result, error) {
	return ginx.Result{Data: h.reg.Search(req.Keyword)}, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 50
	}
	return limit
}
