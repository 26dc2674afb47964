package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/internfolio/internfolio/internal/template/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.TemplateNotFound.Code,
		Msg:  errs.TemplateNotFound.Msg,
	}
	noPermissionResult = ginx.Result{
		Code: errs.NoPermission.Code,
		Msg:  errs.NoPermission.Msg,
	}
	invalidTemplateResult = ginx.Result{
		Code: errs.InvalidTemplate.Code,
		Msg:  errs.InvalidTemplate.Msg,
	}
	noSessionResult = ginx.Result{
		Code: errs.NoSession.Code,
		Msg:  errs.NoSession.Msg,
	}
	nodeNotFoundResult = ginx.Result{
		Code: errs.NodeNotFound.Code,
		Msg:  errs.NodeNotFound.Msg,
	}
	nothingToUndoResult = ginx.Result{
		Code: errs.NothingToUndo.Code,
		Msg:  errs.NothingToUndo.Msg,
	}
	nothingToRedoResult = ginx.Result{
		Code: errs.NothingToRedo.Code,
		Msg:  errs.NothingToRedo.Msg,
	}
	emptyClipboardResult = ginx.Result{
		Code: errs.EmptyClipboard.Code,
		Msg:  errs.EmptyClipboard.Msg,
	}
)
