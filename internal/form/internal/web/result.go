package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/internfolio/internfolio/internal/form/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)
