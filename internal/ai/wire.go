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

package ai

import (
	"github.com/ecodeclub/recruit/internal/ai/internal/service"
	"github.com/ecodeclub/recruit/internal/ai/internal/service/llm"
	"github.com/ecodeclub/recruit/internal/ai/internal/service/llm/openai"
	"github.com/ecodeclub/recruit/internal/ai/internal/web"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule() (*Module, error) {
	wire.Build(
		initLLMService,
		service.NewGenerator,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initLLMService() llm.Service {
	var cfg openai.Config
	// ai.openai 兼容 OpenAI 协议的大模型配置
	err := econf.UnmarshalKey("ai.openai", &cfg)
	if err != nil {
		panic(err)
	}
	return openai.NewHandler(cfg)
}
