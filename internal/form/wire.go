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

package form

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/internfolio/internfolio/internal/form/internal/repository"
	"github.com/internfolio/internfolio/internal/form/internal/repository/dao"
	"github.com/internfolio/internfolio/internal/form/internal/service"
	"github.com/internfolio/internfolio/internal/form/internal/web"
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		InitFormDAO,
		repository.NewFormRepository,
		service.NewService,
		web.NewHandler,
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

func InitFormDAO(db *egorm.Component) dao.FormDAO {
	InitTableOnce(db)
	return dao.NewGORMFormDAO(db)
}
