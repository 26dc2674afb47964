// Copyright 2025 internfolio
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package template

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/internfolio/internfolio/internal/form"
	"github.com/internfolio/internfolio/internal/template/internal/cache"
	"github.com/internfolio/internfolio/internal/template/internal/registry"
	"github.com/internfolio/internfolio/internal/template/internal/render"
	"github.com/internfolio/internfolio/internal/template/internal/repository"
	"github.com/internfolio/internfolio/internal/template/internal/repository/dao"
	"github.com/internfolio/internfolio/internal/template/internal/service"
	"github.com/internfolio/internfolio/internal/template/internal/session"
	"github.com/internfolio/internfolio/internal/template/internal/web"
)

func InitModule(db *egorm.Component, ec ecache.Cache, formModule *form.Module) (*Module, error) {
	wire.Build(
		InitTemplateDAO,
		cache.NewTemplateCache,
		repository.NewCachedTemplateRepository,
		registry.Builtin,
		service.NewService,
		session.NewManager,
		render.New,
		web.NewHandler,
		web.NewBuilderHandler,
		wire.FieldsOf(new(*form.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func InitTableOnce(db *egorm.Component) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitTemplateDAO(db *egorm.Component) dao.TemplateDAO {
	InitTableOnce(db)
	return dao.NewGORMTemplateDAO(db)
}
