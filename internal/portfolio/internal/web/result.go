package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/internfolio/internfolio/internal/portfolio/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.PortfolioNotFound.Code,
		Msg:  errs.PortfolioNotFound.Msg,
	}
	templateUnavailableResult = ginx.Result{
		Code: errs.TemplateUnavailable.Code,
		Msg:  errs.TemplateUnavailable.Msg,
	}
)
