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

package domain

import "errors"

var (
	ErrInvalidPipeline          = errors.New("招聘流程配置非法")
	ErrRoundNotFound            = errors.New("轮次不存在")
	ErrInvalidTransition        = errors.New("非法的状态流转")
	ErrStaleResult              = errors.New("结果不属于当前轮次，已记录但未触发流转")
	ErrInvalidResult            = errors.New("轮次结果非法")
	ErrInvalidDueDate           = errors.New("截止时间必须晚于当前时间")
	ErrDuplicateActiveSchedule  = errors.New("该轮次已存在未完成的日程")
	ErrScheduleNotFound         = errors.New("该轮次没有日程")
	ErrScheduleCompleted        = errors.New("该轮次的日程已完成，不能重新安排")
	ErrJobNotAcceptingApplicant = errors.New("职位当前不接受投递")
	ErrJobNotEditable           = errors.New("职位当前不允许修改")
	ErrRoundInUse               = errors.New("仍有候选人处于被删除的轮次")
)
