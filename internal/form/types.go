package form

import (
	"github.com/internfolio/internfolio/internal/form/internal/domain"
	"github.com/internfolio/internfolio/internal/form/internal/service"
	"github.com/internfolio/internfolio/internal/form/internal/web"
)

// Module 暴露给 ioc 与其他模块使用
type Module struct {
	Hdl *web.Handler
	Svc service.Service
}

type Handler = web.Handler

type Service = service.Service

var ErrRecordNotFound = service.ErrRecordNotFound

type Record = domain.Record

type BasicInfo = domain.BasicInfo

type TechStack = domain.TechStack

type Learning = domain.Learning

type Project = domain.Project

type PullRequest = domain.PullRequest
