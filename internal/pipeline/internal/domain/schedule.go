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

import "time"

type ScheduleStatus string

const (
	SchedulePending   ScheduleStatus = "pending"
	ScheduleCompleted ScheduleStatus = "completed"
)

// Schedule 候选人完成某个轮次的截止时间。
// 过期不单独存储，由 DueDate 和当前时间推导。
type Schedule struct {
	RoundID     int
	Status      ScheduleStatus
	ScheduledAt time.Time
	DueDate     time.Time
	CompletedAt time.Time
}

func (s Schedule) IsCompleted() bool {
	return s.Status == ScheduleCompleted
}

// IsExpired 已完成的日程永远不会过期
func (s Schedule) IsExpired(now time.Time) bool {
	return !s.IsCompleted() && now.After(s.DueDate)
}

// IsActive 未完成并且未过期
func (s Schedule) IsActive(now time.Time) bool {
	return !s.IsCompleted() && !s.IsExpired(now)
}

type AttemptDecision string

const (
	AttemptAllowed          AttemptDecision = "allowed"
	AttemptExpired          AttemptDecision = "expired"
	AttemptNotScheduled     AttemptDecision = "not_scheduled"
	AttemptAlreadyCompleted AttemptDecision = "already_completed"
	AttemptClosed           AttemptDecision = "closed"
)

// Attempt 候选人能否开始作答，以及对应的提示
type Attempt struct {
	Decision AttemptDecision
	Reason   string
	Schedule Schedule
}

func (a Attempt) Allowed() bool {
	return a.Decision == AttemptAllowed
}

func notScheduled() Attempt {
	return Attempt{Decision: AttemptNotScheduled, Reason: "你没有被安排参加该轮次"}
}
