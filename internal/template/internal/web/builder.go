package web

import (
	ginxsession "github.com/ecodeclub/ginx/session"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/internfolio/internfolio/internal/form"
	"github.com/internfolio/internfolio/internal/template/internal/binding"
	"github.com/internfolio/internfolio/internal/template/internal/render"
	"github.com/internfolio/internfolio/internal/template/internal/schema"
	"github.com/internfolio/internfolio/internal/template/internal/service"
	"github.com/internfolio/internfolio/internal/template/internal/session"
)

// BuilderHandler 画布编辑会话的接口。
// 编辑态全在服务端内存里，前端每个动作打一个接口，拿回最新状态。
type BuilderHandler struct {
	svc      service.Service
	sessions *session.Manager
	renderer *render.Renderer
	formSvc  form.Service
	logger   *elog.Component
}

func NewBuilderHandler(svc service.Service, sessions *session.Manager,
	renderer *render.Renderer, formSvc form.Service) *BuilderHandler {
	return &BuilderHandler{
		svc:      svc,
		sessions: sessions,
		renderer: renderer,
		formSvc:  formSvc,
		logger:   elog.DefaultLogger,
	}
}

func (h *BuilderHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/template/builder")
	g.POST("/load", ginx.BS[LoadReq](h.Load))
	g.POST("/add", ginx.BS[AddReq](h.Add))
	g.POST("/remove", ginx.BS[IDReq](h.Remove))
	g.POST("/duplicate", ginx.BS[IDReq](h.Duplicate))
	g.POST("/move", ginx.BS[MoveReq](h.Move))
	g.POST("/props", ginx.BS[PropsReq](h.Props))
	g.POST("/styles", ginx.BS[StylesReq](h.Styles))
	g.POST("/mapping", ginx.BS[MappingReq](h.Mapping))
	g.POST("/showif", ginx.BS[ShowIfReq](h.ShowIf))
	g.POST("/theme", ginx.BS[ThemeReq](h.Theme))
	g.POST("/select", ginx.BS[IDReq](h.Select))
	g.POST("/hover", ginx.BS[IDReq](h.Hover))
	g.POST("/undo", ginx.S(h.Undo))
	g.POST("/redo", ginx.S(h.Redo))
	g.POST("/copy", ginx.BS[IDReq](h.Copy))
	g.POST("/paste", ginx.BS[PasteReq](h.Paste))
	g.GET("/state", ginx.S(h.State))
	g.GET("/preview", ginx.S(h.Preview))
	g.GET("/paths", ginx.W(h.Paths))
}

func (h *BuilderHandler) Load(ctx *ginx.Context, req LoadReq, sess ginxsession.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	var t = schema.NewTemplate(uid, sess.Claims().Data["nickname"])
	if req.TemplateID != "" {
		var err error
		t, err = h.svc.Detail(ctx, req.TemplateID, uid)
		switch err {
		case nil:
		case service.ErrTemplateNotFound:
			return notFoundResult, err
		case service.ErrNoPermission:
			return noPermissionResult, err
		default:
			return systemErrorResult, err
		}
	}
	b := h.sessions.Open(uid, t)
	return ginx.Result{Data: b.State()}, nil
}

func (h *BuilderHandler) Add(ctx *ginx.Context, req AddReq, sess ginxsession.Session) (ginx.Result, error) {
	b, err := h.sessions.Get(sess.Claims().Uid)
	if err != nil {
		return noSessionResult, err
	}
	if req.Index != nil {
		_, err = b.AddComponent(req.ComponentID, req.ParentID, *req.Index)
	} else {
		_, err = b.AddComponent(req.ComponentID, req.ParentID)
	}
	if err != nil {
		return h.builderErr(err), err
	}
	return ginx.Result{Data: b.State()}, nil
}

func (h *BuilderHandler) Remove(ctx *ginx.Context, req IDReq, sess ginxsession.Session) (ginx.Result, error) {
	return h.mutate(sess, func(b *session.Builder) error {
		return b.RemoveComponent(req.ID)
	})
}

func (h *BuilderHandler) Duplicate(ctx *ginx.Context, req IDReq, sess ginxsession.Session) (ginx.Result, error) {
	return h.mutate(sess, func(b *session.Builder) error {
		_, err := b.DuplicateComponent(req.ID)
		return err
	})
}

func (h *BuilderHandler) Move(ctx *ginx.Context, req MoveReq, sess ginxsession.Session) (ginx.Result, error) {
	return h.mutate(sess, func(b *session.Builder) error {
		if req.Index != nil {
			return b.MoveComponent(req.ID, req.NewParentID, *req.Index)
		}
		return b.MoveComponent(req.ID, req.NewParentID)
	})
}

func (h *BuilderHandler) Props(ctx *ginx.Context, req PropsReq, sess ginxsession.Session) (ginx.Result, error) {
	return h.mutate(sess, func(b *session.Builder) error {
		return b.UpdateProps(req.ID, req.Props)
	})
}

func (h *BuilderHandler) Styles(ctx *ginx.Context, req StylesReq, sess ginxsession.Session) (ginx.Result, error) {
	return h.mutate(sess, func(b *session.Builder) error {
		return b.UpdateStyles(req.ID, req.Styles)
	})
}

func (h *BuilderHandler) Mapping(ctx *ginx.Context, req MappingReq, sess ginxsession.Session) (ginx.Result, error) {
	// 绑定路径先做一遍语法检查，错的路径存进去渲染时只会解析成空
	for _, path := range req.Mapping {
		if path != "" && !binding.IsValidPath(path) {
			return ginx.Result{
				Code: invalidTemplateResult.Code,
				Msg:  "数据路径不合法: " + path,
			}, nil
		}
	}
	return h.mutate(sess, func(b *session.Builder) error {
		return b.UpdateDataMapping(req.ID, req.Mapping)
	})
}

func (h *BuilderHandler) ShowIf(ctx *ginx.Context, req ShowIfReq, sess ginxsession.Session) (ginx.Result, error) {
	return h.mutate(sess, func(b *session.Builder) error {
		return b.SetShowIf(req.ID, req.Condition)
	})
}

func (h *BuilderHandler) Theme(ctx *ginx.Context, req ThemeReq, sess ginxsession.Session) (ginx.Result, error) {
	return h.mutate(sess, func(b *session.Builder) error {
		b.UpdateTheme(req.Theme)
		return nil
	})
}

func (h *BuilderHandler) Select(ctx *ginx.Context, req IDReq, sess ginxsession.Session) (ginx.Result, error) {
	return h.mutate(sess, func(b *session.Builder) error {
		b.Select(req.ID)
		return nil
	})
}

func (h *BuilderHandler) Hover(ctx *ginx.Context, req IDReq, sess ginxsession.Session) (ginx.Result, error) {
	return h.mutate(sess, func(b *session.Builder) error {
		b.Hover(req.ID)
		return nil
	})
}

func (h *BuilderHandler) Undo(ctx *ginx.Context, sess ginxsession.Session) (ginx.Result, error) {
	return h.mutate(sess, func(b *session.Builder) error {
		return b.Undo()
	})
}

func (h *BuilderHandler) Redo(ctx *ginx.Context, sess ginxsession.Session) (ginx.Result, error) {
	return h.mutate(sess, func(b *session.Builder) error {
		return b.Redo()
	})
}

func (h *BuilderHandler) Copy(ctx *ginx.Context, req IDReq, sess ginxsession.Session) (ginx.Result, error) {
	return h.mutate(sess, func(b *session.Builder) error {
		return b.Copy(req.ID)
	})
}

func (h *BuilderHandler) Paste(ctx *ginx.Context, req PasteReq, sess ginxsession.Session) (ginx.Result, error) {
	return h.mutate(sess, func(b *session.Builder) error {
		_, err := b.Paste(req.ParentID)
		return err
	})
}

func (h *BuilderHandler) State(ctx *ginx.Context, sess ginxsession.Session) (ginx.Result, error) {
	b, err := h.sessions.Get(sess.Claims().Uid)
	if err != nil {
		return noSessionResult, err
	}
	return ginx.Result{Data: b.State()}, nil
}

// Preview 用当前会话的结构和该用户的表单数据渲染一份预览
func (h *BuilderHandler) Preview(ctx *ginx.Context, sess ginxsession.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	b, err := h.sessions.Get(uid)
	if err != nil {
		return noSessionResult, err
	}
	// 没填过表单就用空数据渲染
	record, err := h.formSvc.Detail(ctx, uid)
	if err != nil {
		return systemErrorResult, err
	}
	state := b.State()
	html := h.renderer.Preview(state.Template, record, render.Options{
		SelectedID: state.SelectedID,
		HoveredID:  state.HoveredID,
	})
	return ginx.Result{Data: html}, nil
}

func (h *BuilderHandler) Paths(ctx *ginx.Context) (ginx.Result, error) {
	return ginx.Result{Data: binding.AvailablePaths()}, nil
}

func (h *BuilderHandler) mutate(sess ginxsession.Session, op func(b *session.Builder) error) (ginx.Result, error) {
	b, err := h.sessions.Get(sess.Claims().Uid)
	if err != nil {
		return noSessionResult, err
	}
	if err = op(b); err != nil {
		return h.builderErr(err), err
	}
	return ginx.Result{Data: b.State()}, nil
}

func (h *BuilderHandler) builderErr(err error) ginx.Result {
	switch err {
	case session.ErrNodeNotFound:
		return nodeNotFoundResult
	case session.ErrNothingToUndo:
		return nothingToUndoResult
	case session.ErrNothingToRedo:
		return nothingToRedoResult
	case session.ErrEmptyClipboard:
		return emptyClipboardResult
	default:
		return systemErrorResult
	}
}
