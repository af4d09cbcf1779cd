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

package ai

import (
	"github.com/ecodeclub/recruit/internal/ai/internal/domain"
	"github.com/ecodeclub/recruit/internal/ai/internal/service"
	"github.com/ecodeclub/recruit/internal/ai/internal/web"
)

type Module struct {
	Svc      Generator
	AdminHdl *AdminHandler
}

type (
	Generator       = service.Generator
	AdminHandler    = web.AdminHandler
	InterviewInput  = domain.InterviewInput
	InterviewScript = domain.InterviewScript
	QuestionInput   = domain.QuestionInput
	QuestionDraft   = domain.QuestionDraft
)
