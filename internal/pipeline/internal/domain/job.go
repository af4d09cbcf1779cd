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

type JobStatus string

const (
	JobStatusDraft    JobStatus = "draft"
	JobStatusLive     JobStatus = "live"
	JobStatusOnHold   JobStatus = "on-hold"
	JobStatusClosed   JobStatus = "closed"
	JobStatusArchived JobStatus = "archived"
)

func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusDraft, JobStatusLive, JobStatusOnHold, JobStatusClosed, JobStatusArchived:
		return true
	default:
		return false
	}
}

func (s JobStatus) String() string {
	return string(s)
}

// Job 职位，同时也是招聘流程的定义
type Job struct {
	ID          int64
	CompanyUID  string
	Title       string
	Description string
	Status      JobStatus
	Rounds      []Round
	Ctime       time.Time
	Utime       time.Time
}

func (j Job) AcceptsApplicants() bool {
	return j.Status == JobStatusLive
}

// RoundsEditable 只有草稿和招聘中的职位可以修改流程
func (j Job) RoundsEditable() bool {
	return j.Status == JobStatusDraft || j.Status == JobStatusLive
}

// RemovedRounds 和 updated 相比，被删除的轮次 ID
func (j Job) RemovedRounds(updated []Round) []int {
	kept := make(map[int]struct{}, len(updated))
	for _, r := range updated {
		kept[r.ID] = struct{}{}
	}
	var removed []int
	for _, r := range j.Rounds {
		if _, ok := kept[r.ID]; !ok {
			removed = append(removed, r.ID)
		}
	}
	return removed
}

// Operator 发起操作的管理员
type Operator struct {
	UID        int64
	CompanyUID string
	// Platform 平台管理员可以操作所有公司的职位
	Platform bool
}

// SystemOperator 内部消费者使用的身份
func SystemOperator() Operator {
	return Operator{Platform: true}
}

func (o Operator) CanManage(job Job) bool {
	return o.Platform || (o.CompanyUID != "" && o.CompanyUID == job.CompanyUID)
}
