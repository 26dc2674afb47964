package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/internfolio/internfolio/internal/form/internal/service"
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
	server.POST("/form/save", ginx.BS[SaveReq](h.Save))
	server.GET("/form/detail", ginx.S(h.Detail))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Save(ctx, sess.Claims().Uid, req.Record)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	record, err := h.svc.Detail(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: record,
	}, nil
}
