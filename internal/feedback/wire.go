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

package feedback

import (
	"strconv"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/recruit/internal/feedback/internal/event"
	"github.com/ecodeclub/recruit/internal/feedback/internal/repository"
	"github.com/ecodeclub/recruit/internal/feedback/internal/repository/dao"
	"github.com/ecodeclub/recruit/internal/feedback/internal/service"
	"github.com/ecodeclub/recruit/internal/feedback/internal/web"
	"github.com/ecodeclub/recruit/internal/pipeline"
	"github.com/ecodeclub/recruit/internal/pkg/mqx"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ, pm *pipeline.Module) (*Module, error) {
	wire.Build(
		initFeedbackDAO,
		repository.NewFeedbackRepository,
		initProducer,
		service.NewService,
		wire.FieldsOf(new(*pipeline.Module), "JobSvc", "ApplicantSvc"),
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func initFeedbackDAO(db *egorm.Component) dao.FeedbackDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewFeedbackDAO(db)
}

func initProducer(q mq.MQ) (event.FeedbackEventProducer, error) {
	return mqx.NewGeneralProducer[event.FeedbackEvent](q, event.FeedbackEventName,
		mqx.WithKey[event.FeedbackEvent](func(evt event.FeedbackEvent) string {
			return strconv.FormatInt(evt.ApplicantID, 10)
		}))
}
