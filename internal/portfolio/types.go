package portfolio

import (
	"github.com/internfolio/internfolio/internal/portfolio/internal/domain"
	"github.com/internfolio/internfolio/internal/portfolio/internal/service"
	"github.com/internfolio/internfolio/internal/portfolio/internal/web"
)

// Module 暴露给 ioc 与其他模块使用
type Module struct {
	Hdl *web.Handler
	Svc service.Service
}

type Handler = web.Handler

type Service = service.Service

type Publication = domain.Publication

var ErrPublicationNotFound = service.ErrPublicationNotFound
