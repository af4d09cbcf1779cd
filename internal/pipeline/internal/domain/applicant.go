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

import (
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
)

type ResultStatus string

const (
	ResultPending ResultStatus = "Pending"
	ResultPassed  ResultStatus = "Passed"
	ResultFailed  ResultStatus = "Failed"
)

func (s ResultStatus) IsValid() bool {
	switch s {
	case ResultPending, ResultPassed, ResultFailed:
		return true
	default:
		return false
	}
}

func (s ResultStatus) String() string {
	return string(s)
}

// RoundResult 候选人在某个轮次上的结果
type RoundResult struct {
	RoundID     int
	Status      ResultStatus
	Score       *float64
	StartedAt   time.Time
	CompletedAt time.Time
	TimeTaken   time.Duration
	// Answers 测评作答记录，原样保存
	Answers map[string]any
}

// Outcome 终态，只能写入一次
type Outcome string

const (
	OutcomeNone     Outcome = ""
	OutcomeHired    Outcome = "hired"
	OutcomeRejected Outcome = "rejected"
)

type ApplicantStatus string

const (
	StatusSubmitted       ApplicantStatus = "Submitted"
	StatusScreeningPassed ApplicantStatus = "Screening Passed"
	StatusScreeningFailed ApplicantStatus = "Screening Failed"
	StatusInProgress      ApplicantStatus = "In Progress"
	StatusHired           ApplicantStatus = "Hired"
	StatusRejected        ApplicantStatus = "Rejected"
)

func (s ApplicantStatus) String() string {
	return string(s)
}

// Candidate 投递人的基本信息
type Candidate struct {
	ID        int64
	Name      string
	Email     string
	ResumeURL string
}

// Applicant 候选人在某个职位上的投递记录
type Applicant struct {
	ID            int64
	JobID         int64
	Candidate     Candidate
	AppliedAt     time.Time
	ActiveRoundID int
	Outcome       Outcome
	RejectReason  string
	// Status 由 DeriveStatus 计算后缓存，便于列表筛选
	Status       ApplicantStatus
	RoundResults []RoundResult
	Schedules    []Schedule
	Version      int64
}

func (a Applicant) IsTerminal() bool {
	return a.Outcome != OutcomeNone
}

func (a Applicant) Result(roundID int) (RoundResult, bool) {
	return slice.Find(a.RoundResults, func(src RoundResult) bool {
		return src.RoundID == roundID
	})
}

func (a Applicant) Schedule(roundID int) (Schedule, bool) {
	return slice.Find(a.Schedules, func(src Schedule) bool {
		return src.RoundID == roundID
	})
}

// DeriveStatus 根据终态、当前轮次以及历史结果推导展示状态
func (a Applicant) DeriveStatus(rounds []Round) ApplicantStatus {
	switch a.Outcome {
	case OutcomeHired:
		return StatusHired
	case OutcomeRejected:
		return StatusRejected
	}
	active, err := ResolveRound(rounds, a.ActiveRoundID)
	if err != nil {
		return StatusInProgress
	}
	if res, ok := a.Result(active.ID); ok {
		switch {
		case active.IsScreening() && res.Status == ResultPassed:
			return StatusScreeningPassed
		case active.IsScreening() && res.Status == ResultFailed:
			return StatusScreeningFailed
		default:
			return StatusInProgress
		}
	}
	prev, ok := PrevRound(rounds, active.ID)
	if !ok || prev.IsApplication() {
		return StatusSubmitted
	}
	if res, ok := a.Result(prev.ID); ok && prev.IsScreening() && res.Status == ResultPassed {
		return StatusScreeningPassed
	}
	return StatusInProgress
}

// IssueSchedule 为轮次创建日程，只有过期未完成的旧日程会被替换
func (a *Applicant) IssueSchedule(roundID int, dueDate, now time.Time) (Schedule, error) {
	if a.IsTerminal() {
		return Schedule{}, fmt.Errorf("%w: 候选人已处于终态 %s", ErrInvalidTransition, a.Outcome)
	}
	if !dueDate.After(now) {
		return Schedule{}, ErrInvalidDueDate
	}
	s := Schedule{
		RoundID:     roundID,
		Status:      SchedulePending,
		ScheduledAt: now,
		DueDate:     dueDate,
	}
	for i, old := range a.Schedules {
		if old.RoundID != roundID {
			continue
		}
		if old.IsCompleted() {
			return Schedule{}, ErrScheduleCompleted
		}
		if old.IsActive(now) {
			return Schedule{}, ErrDuplicateActiveSchedule
		}
		a.Schedules[i] = s
		return s, nil
	}
	a.Schedules = append(a.Schedules, s)
	return s, nil
}

// CompleteSchedule 幂等，已完成的日程保持不变
func (a *Applicant) CompleteSchedule(roundID int, now time.Time) error {
	if a.IsTerminal() {
		return fmt.Errorf("%w: 候选人已处于终态 %s", ErrInvalidTransition, a.Outcome)
	}
	for i, s := range a.Schedules {
		if s.RoundID != roundID {
			continue
		}
		if s.IsCompleted() {
			return nil
		}
		a.Schedules[i].Status = ScheduleCompleted
		a.Schedules[i].CompletedAt = now
		return nil
	}
	return ErrScheduleNotFound
}

// CanAttempt 候选人打开测评链接时的校验，只读
func (a Applicant) CanAttempt(roundID int, now time.Time) Attempt {
	s, ok := a.Schedule(roundID)
	switch {
	case a.IsTerminal():
		// 已录用或已淘汰的候选人不能再作答，即使还有未完成的日程
		return Attempt{Decision: AttemptClosed, Reason: "你的招聘流程已经结束", Schedule: s}
	case !ok:
		return notScheduled()
	case s.IsCompleted():
		return Attempt{Decision: AttemptAlreadyCompleted, Reason: "你已经完成了该轮次", Schedule: s}
	case s.IsExpired(now):
		return Attempt{Decision: AttemptExpired, Reason: "该轮次的截止时间已过", Schedule: s}
	default:
		return Attempt{Decision: AttemptAllowed, Reason: "可以开始作答", Schedule: s}
	}
}

func (a Applicant) upsertResult(r RoundResult) Applicant {
	for i, old := range a.RoundResults {
		if old.RoundID == r.RoundID {
			a.RoundResults[i] = r
			return a
		}
	}
	a.RoundResults = append(a.RoundResults, r)
	return a
}

// clone 复制切片，保证引擎在出错时不会修改调用方持有的状态
func (a Applicant) clone() Applicant {
	a.RoundResults = append([]RoundResult(nil), a.RoundResults...)
	a.Schedules = append([]Schedule(nil), a.Schedules...)
	return a
}
