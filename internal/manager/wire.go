// Copyright 2023 ecodeclub
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

package manager

import (
	"sync"

	"github.com/ecodeclub/recruit/internal/email"
	"github.com/ecodeclub/recruit/internal/manager/internal/repository"
	"github.com/ecodeclub/recruit/internal/manager/internal/repository/dao"
	"github.com/ecodeclub/recruit/internal/manager/internal/service"
	"github.com/ecodeclub/recruit/internal/manager/internal/web"
	"github.com/ecodeclub/recruit/internal/pkg/sngenerator"
	"github.com/ecodeclub/recruit/internal/pkg/snowflake"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component, mailer email.Service) (*Module, error) {
	wire.Build(
		initDAO,
		repository.NewAccountRepository,
		initIDGenerator,
		initTokenGenerator,
		initConfig,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return nil, nil
}

var initOnce sync.Once

func initDAO(db *egorm.Component) dao.AccountDAO {
	initOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMAccountDAO(db)
}

func initIDGenerator() (snowflake.Generator, error) {
	return snowflake.NewGenerator(uint(econf.GetInt("invitation.node")), snowflake.AppInvitation)
}

func initTokenGenerator() *sngenerator.Generator {
	return sngenerator.NewGenerator()
}

func initConfig() service.Config {
	var cfg service.Config
	// invitation.acceptURL 以及 invitation.mailFrom
	_ = econf.UnmarshalKey("invitation", &cfg)
	return cfg
}
