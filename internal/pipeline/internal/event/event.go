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

package event

const (
	ApplicantEventName   = "applicant_events"
	RoundResultEventName = "round_result_events"
)

const (
	KindApplied   = "applied"
	KindResult    = "result"
	KindAdvanced  = "advanced"
	KindRejected  = "rejected"
	KindScheduled = "scheduled"
)

// ApplicantEvent 投递记录发生流转后发出，通知服务据此给候选人发送邮件
type ApplicantEvent struct {
	Kind          string `json:"kind"`
	ApplicantID   int64  `json:"applicantId"`
	JobID         int64  `json:"jobId"`
	CandidateID   int64  `json:"candidateId"`
	ActiveRoundID int    `json:"activeRoundId"`
	Status        string `json:"status"`
	Outcome       string `json:"outcome"`
}

// RoundResultEvent 测评系统判分完成后发出
type RoundResultEvent struct {
	JobID       int64          `json:"jobId"`
	CandidateID int64          `json:"candidateId"`
	RoundID     int            `json:"roundId"`
	Status      string         `json:"status"`
	Score       *float64       `json:"score,omitempty"`
	StartedAt   int64          `json:"startedAt"`
	CompletedAt int64          `json:"completedAt"`
	TimeTaken   int64          `json:"timeTaken"`
	Answers     map[string]any `json:"answers,omitempty"`
}
