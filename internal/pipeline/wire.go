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

package pipeline

import (
	"context"
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/event/consumer"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/event/producer"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/repository"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/repository/cache"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/repository/dao"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/service"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ, ec ecache.Cache) (*Module, error) {
	wire.Build(
		initJobDAO,
		dao.NewGORMApplicantDAO,
		cache.NewJobCache,
		repository.NewJobRepository,
		repository.NewApplicantRepository,
		producer.NewApplicantEventProducer,
		service.NewJobService,
		service.NewApplicantService,
		web.NewHandler,
		web.NewAdminHandler,
		initRoundResultConsumer,
		wire.Struct(new(Module), "*"),
	)
	return nil, nil
}

var initOnce sync.Once

func initJobDAO(db *egorm.Component) dao.JobDAO {
	initOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMJobDAO(db)
}

func initRoundResultConsumer(svc service.ApplicantService, q mq.MQ) (*consumer.RoundResultConsumer, error) {
	c, err := consumer.NewRoundResultConsumer(svc, q)
	if err == nil {
		c.Start(context.Background())
	}
	return c, err
}
