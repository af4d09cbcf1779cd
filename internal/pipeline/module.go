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

package pipeline

import (
	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/event/consumer"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/service"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/web"
)

type Module struct {
	JobSvc       JobService
	ApplicantSvc ApplicantService
	Hdl          *Handler
	AdminHdl     *AdminHandler
	C            *consumer.RoundResultConsumer
}

type (
	JobService       = service.JobService
	ApplicantService = service.ApplicantService
	Handler          = web.Handler
	AdminHandler     = web.AdminHandler
	Job              = domain.Job
	Round            = domain.Round
	Applicant        = domain.Applicant
	Candidate        = domain.Candidate
	Operator         = domain.Operator
)

var (
	ErrApplicantNotFound = service.ErrApplicantNotFound
	ErrJobNotFound       = service.ErrJobNotFound
)
