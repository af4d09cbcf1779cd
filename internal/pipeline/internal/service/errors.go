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

package service

import (
	"errors"

	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/repository"
)

var (
	ErrJobNotFound              = errors.New("职位不存在")
	ErrApplicantNotFound        = errors.New("投递记录不存在")
	ErrInvalidJobStatus         = errors.New("职位状态非法")
	ErrDuplicateApplication     = repository.ErrDuplicateApplicant
	ErrConcurrentModification   = repository.ErrVersionConflict
	ErrInvalidPipeline          = domain.ErrInvalidPipeline
	ErrRoundNotFound            = domain.ErrRoundNotFound
	ErrInvalidTransition        = domain.ErrInvalidTransition
	ErrStaleResult              = domain.ErrStaleResult
	ErrInvalidResult            = domain.ErrInvalidResult
	ErrInvalidDueDate           = domain.ErrInvalidDueDate
	ErrDuplicateActiveSchedule  = domain.ErrDuplicateActiveSchedule
	ErrScheduleNotFound         = domain.ErrScheduleNotFound
	ErrScheduleCompleted        = domain.ErrScheduleCompleted
	ErrJobNotAcceptingApplicant = domain.ErrJobNotAcceptingApplicant
	ErrJobNotEditable           = domain.ErrJobNotEditable
	ErrRoundInUse               = domain.ErrRoundInUse
)
