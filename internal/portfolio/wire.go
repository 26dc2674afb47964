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

package portfolio

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/internfolio/internfolio/internal/form"
	"github.com/internfolio/internfolio/internal/portfolio/internal/cache"
	"github.com/internfolio/internfolio/internal/portfolio/internal/event"
	"github.com/internfolio/internfolio/internal/portfolio/internal/repository"
	"github.com/internfolio/internfolio/internal/portfolio/internal/repository/dao"
	"github.com/internfolio/internfolio/internal/portfolio/internal/service"
	"github.com/internfolio/internfolio/internal/portfolio/internal/web"
	"github.com/internfolio/internfolio/internal/template"
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ,
	formModule *form.Module, templateModule *template.Module) (*Module, error) {
	wire.Build(
		InitPortfolioDAO,
		cache.NewPageCache,
		event.NewPortfolioEventProducer,
		repository.NewPortfolioRepository,
		service.NewService,
		web.NewHandler,
		wire.FieldsOf(new(*form.Module), "Svc"),
		wire.FieldsOf(new(*template.Module), "Svc", "Renderer"),
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

func InitPortfolioDAO(db *egorm.Component) dao.PortfolioDAO {
	InitTableOnce(db)
	return dao.NewGORMPortfolioDAO(db)
}
