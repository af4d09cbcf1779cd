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

package web

import (
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
)

type Round struct {
	ID                int      `json:"id"`
	Name              string   `json:"name"`
	Type              string   `json:"type"`
	AssessmentID      string   `json:"assessmentId"`
	AssessmentName    string   `json:"assessmentName"`
	SelectionCriteria *float64 `json:"selectionCriteria,omitempty"`
	AutoProceed       bool     `json:"autoProceed"`
	Disabled          bool     `json:"disabled"`
	DueInHours        int      `json:"dueInHours"`
}

type Job struct {
	ID          int64   `json:"id"`
	CompanyUID  string  `json:"companyUid"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Rounds      []Round `json:"rounds"`
	Ctime       int64   `json:"ctime"`
	Utime       int64   `json:"utime"`
}

type SaveJobReq struct {
	Job Job `json:"job"`
}

type UpdateJobStatusReq struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListApplicantReq struct {
	JobID int64 `json:"jobId"`
	// Status 为空时不过滤
	Status string `json:"status"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type RoundResult struct {
	RoundID     int      `json:"roundId"`
	Status      string   `json:"status"`
	Score       *float64 `json:"score,omitempty"`
	StartedAt   int64    `json:"startedAt"`
	CompletedAt int64    `json:"completedAt"`
	// TimeTaken 毫秒
	TimeTaken int64          `json:"timeTaken"`
	Answers   map[string]any `json:"answers,omitempty"`
}

type RecordResultReq struct {
	ApplicantID int64       `json:"applicantId"`
	Result      RoundResult `json:"result"`
}

type AdvanceReq struct {
	ApplicantID int64 `json:"applicantId"`
	ToRoundID   int   `json:"toRoundId"`
}

type RejectReq struct {
	ApplicantID int64  `json:"applicantId"`
	Reason      string `json:"reason"`
}

type IssueScheduleReq struct {
	ApplicantID int64 `json:"applicantId"`
	RoundID     int   `json:"roundId"`
	// DueDate 毫秒时间戳
	DueDate int64 `json:"dueDate"`
}

type CompleteScheduleReq struct {
	ApplicantID int64 `json:"applicantId"`
	RoundID     int   `json:"roundId"`
}

type ApplyReq struct {
	JobID     int64  `json:"jobId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	ResumeURL string `json:"resumeURL"`
}

type Schedule struct {
	RoundID     int    `json:"roundId"`
	Status      string `json:"status"`
	ScheduledAt int64  `json:"scheduledAt"`
	DueDate     int64  `json:"dueDate"`
	CompletedAt int64  `json:"completedAt"`
	Expired     bool   `json:"expired"`
}

type Applicant struct {
	ID             int64         `json:"id"`
	JobID          int64         `json:"jobId"`
	CandidateID    int64         `json:"candidateId"`
	CandidateName  string        `json:"candidateName"`
	CandidateEmail string        `json:"candidateEmail"`
	ResumeURL      string        `json:"resumeURL"`
	AppliedAt      int64         `json:"appliedAt"`
	ActiveRoundID  int           `json:"activeRoundId"`
	Outcome        string        `json:"outcome"`
	RejectReason   string        `json:"rejectReason"`
	Status         string        `json:"status"`
	RoundResults   []RoundResult `json:"roundResults"`
	Schedules      []Schedule    `json:"schedules"`
}

type Attempt struct {
	Decision    string `json:"decision"`
	Reason      string `json:"reason"`
	ScheduledAt int64  `json:"scheduledAt"`
	DueDate     int64  `json:"dueDate"`
}

func (r Round) toDomain() domain.Round {
	return domain.Round{
		ID:                r.ID,
		Name:              r.Name,
		Type:              domain.RoundType(r.Type),
		AssessmentID:      r.AssessmentID,
		AssessmentName:    r.AssessmentName,
		SelectionCriteria: r.SelectionCriteria,
		AutoProceed:       r.AutoProceed,
		Disabled:          r.Disabled,
		DueInHours:        r.DueInHours,
	}
}

func (j Job) toDomain() domain.Job {
	return domain.Job{
		ID:          j.ID,
		CompanyUID:  j.CompanyUID,
		Title:       j.Title,
		Description: j.Description,
		Rounds: slice.Map(j.Rounds, func(_ int, src Round) domain.Round {
			return src.toDomain()
		}),
	}
}

func (r RoundResult) toDomain() domain.RoundResult {
	return domain.RoundResult{
		RoundID:     r.RoundID,
		Status:      domain.ResultStatus(r.Status),
		Score:       r.Score,
		StartedAt:   fromMilli(r.StartedAt),
		CompletedAt: fromMilli(r.CompletedAt),
		TimeTaken:   time.Duration(r.TimeTaken) * time.Millisecond,
		Answers:     r.Answers,
	}
}

func newJob(j domain.Job) Job {
	return Job{
		ID:          j.ID,
		CompanyUID:  j.CompanyUID,
		Title:       j.Title,
		Description: j.Description,
		Status:      j.Status.String(),
		Rounds: slice.Map(j.Rounds, func(_ int, src domain.Round) Round {
			return Round{
				ID:                src.ID,
				Name:              src.Name,
				Type:              string(src.Type),
				AssessmentID:      src.AssessmentID,
				AssessmentName:    src.AssessmentName,
				SelectionCriteria: src.SelectionCriteria,
				AutoProceed:       src.AutoProceed,
				Disabled:          src.Disabled,
				DueInHours:        src.DueInHours,
			}
		}),
		Ctime: toMilli(j.Ctime),
		Utime: toMilli(j.Utime),
	}
}

func newSchedule(s domain.Schedule, now time.Time) Schedule {
	return Schedule{
		RoundID:     s.RoundID,
		Status:      string(s.Status),
		ScheduledAt: toMilli(s.ScheduledAt),
		DueDate:     toMilli(s.DueDate),
		CompletedAt: toMilli(s.CompletedAt),
		Expired:     s.IsExpired(now),
	}
}

func newApplicant(a domain.Applicant, now time.Time) Applicant {
	return Applicant{
		ID:             a.ID,
		JobID:          a.JobID,
		CandidateID:    a.Candidate.ID,
		CandidateName:  a.Candidate.Name,
		CandidateEmail: a.Candidate.Email,
		ResumeURL:      a.Candidate.ResumeURL,
		AppliedAt:      toMilli(a.AppliedAt),
		ActiveRoundID:  a.ActiveRoundID,
		Outcome:        string(a.Outcome),
		RejectReason:   a.RejectReason,
		Status:         a.Status.String(),
		RoundResults: slice.Map(a.RoundResults, func(_ int, src domain.RoundResult) RoundResult {
			return RoundResult{
				RoundID:     src.RoundID,
				Status:      src.Status.String(),
				Score:       src.Score,
				StartedAt:   toMilli(src.StartedAt),
				CompletedAt: toMilli(src.CompletedAt),
				TimeTaken:   src.TimeTaken.Milliseconds(),
				Answers:     src.Answers,
			}
		}),
		Schedules: slice.Map(a.Schedules, func(_ int, src domain.Schedule) Schedule {
			return newSchedule(src, now)
		}),
	}
}

func newAttempt(a domain.Attempt) Attempt {
	return Attempt{
		Decision:    string(a.Decision),
		Reason:      a.Reason,
		ScheduledAt: toMilli(a.Schedule.ScheduledAt),
		DueDate:     toMilli(a.Schedule.DueDate),
	}
}

func toMilli(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMilli(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
