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

import "fmt"

// RoundType 轮次类型，允许扩展
type RoundType string

const (
	RoundTypeApplication      RoundType = "application"
	RoundTypeScreening        RoundType = "screening"
	RoundTypeAssessment       RoundType = "assessment"
	RoundTypeCodingAssessment RoundType = "coding-assessment"
	RoundTypeLiveInterview    RoundType = "live-interview"
	RoundTypeOffer            RoundType = "offer"
)

func (t RoundType) String() string {
	return string(t)
}

// RequiresCandidateAction 候选人需要亲自完成的轮次，这类轮次才会产生日程
func (t RoundType) RequiresCandidateAction() bool {
	switch t {
	case RoundTypeAssessment, RoundTypeCodingAssessment, RoundTypeLiveInterview:
		return true
	default:
		return false
	}
}

// Round 招聘流程中的一个阶段。
// ID 在同一个职位内唯一，并且在调整顺序后保持不变；
// 流程的先后顺序完全由 Round 在切片中的位置决定。
type Round struct {
	ID             int
	Name           string
	Type           RoundType
	AssessmentID   string
	AssessmentName string
	// SelectionCriteria 通过线，nil 表示不设线
	SelectionCriteria *float64
	AutoProceed       bool
	Disabled          bool
	// DueInHours 进入该轮次时自动创建日程的期限，0 表示不自动创建
	DueInHours int
}

func (r Round) IsApplication() bool {
	return r.Type == RoundTypeApplication
}

func (r Round) IsScreening() bool {
	return r.Type == RoundTypeScreening
}

// Passes 根据通过线判定分数，没有通过线或者没有分数时一律视为通过
func (r Round) Passes(score *float64) bool {
	if r.SelectionCriteria == nil || score == nil {
		return true
	}
	return *score >= *r.SelectionCriteria
}

// ValidateRounds 校验职位的流程配置：
// 至少一个轮次，ID 唯一，第一个轮次必须是唯一的、启用的 application 轮次。
func ValidateRounds(rounds []Round) error {
	if len(rounds) == 0 {
		return fmt.Errorf("%w: 至少需要一个轮次", ErrInvalidPipeline)
	}
	ids := make(map[int]struct{}, len(rounds))
	for i, r := range rounds {
		if r.Type == "" {
			return fmt.Errorf("%w: 轮次 %d 缺少类型", ErrInvalidPipeline, r.ID)
		}
		if _, ok := ids[r.ID]; ok {
			return fmt.Errorf("%w: 轮次 ID 重复 %d", ErrInvalidPipeline, r.ID)
		}
		ids[r.ID] = struct{}{}
		if r.IsApplication() && i != 0 {
			return fmt.Errorf("%w: application 轮次只能位于第一位", ErrInvalidPipeline)
		}
		if r.DueInHours < 0 {
			return fmt.Errorf("%w: 轮次 %d 的期限不能为负数", ErrInvalidPipeline, r.ID)
		}
		if r.SelectionCriteria != nil && *r.SelectionCriteria < 0 {
			return fmt.Errorf("%w: 轮次 %d 的通过线不能为负数", ErrInvalidPipeline, r.ID)
		}
	}
	if !rounds[0].IsApplication() {
		return fmt.Errorf("%w: 第一个轮次必须是 application", ErrInvalidPipeline)
	}
	if rounds[0].Disabled {
		return fmt.Errorf("%w: application 轮次不能被禁用", ErrInvalidPipeline)
	}
	return nil
}

// ResolveRound 按 ID 查找轮次，禁用的轮次同样可以被找到
func ResolveRound(rounds []Round, id int) (Round, error) {
	idx := indexOf(rounds, id)
	if idx < 0 {
		return Round{}, fmt.Errorf("%w: %d", ErrRoundNotFound, id)
	}
	return rounds[idx], nil
}

// NextRound 返回 id 之后第一个启用的轮次
func NextRound(rounds []Round, id int) (Round, bool) {
	idx := indexOf(rounds, id)
	if idx < 0 {
		return Round{}, false
	}
	for _, r := range rounds[idx+1:] {
		if !r.Disabled {
			return r, true
		}
	}
	return Round{}, false
}

// PrevRound 返回 id 之前最近一个启用的轮次
func PrevRound(rounds []Round, id int) (Round, bool) {
	idx := indexOf(rounds, id)
	for i := idx - 1; i >= 0; i-- {
		if !rounds[i].Disabled {
			return rounds[i], true
		}
	}
	return Round{}, false
}

// IsLastRound 之后已经没有启用的轮次
func IsLastRound(rounds []Round, id int) bool {
	_, ok := NextRound(rounds, id)
	return !ok
}

// FirstRound 候选人投递之后真正开始考察的轮次，也就是 application 之后第一个启用的轮次。
// 流程中只有 application 一个启用轮次时，返回 application 本身。
func FirstRound(rounds []Round) (Round, error) {
	if len(rounds) == 0 {
		return Round{}, ErrInvalidPipeline
	}
	if next, ok := NextRound(rounds, rounds[0].ID); ok {
		return next, nil
	}
	return rounds[0], nil
}

// Order 轮次在流程中的位置，不存在时返回 -1
func Order(rounds []Round, id int) int {
	return indexOf(rounds, id)
}

func indexOf(rounds []Round, id int) int {
	for i, r := range rounds {
		if r.ID == id {
			return i
		}
	}
	return -1
}
