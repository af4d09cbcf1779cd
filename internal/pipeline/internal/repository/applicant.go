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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/repository/dao"
)

var (
	ErrDuplicateApplicant = dao.ErrDuplicateApplicant
	ErrApplicantNotFound  = dao.ErrRecordNotFound
	ErrVersionConflict    = dao.ErrVersionConflict
)

//go:generate mockgen -source=./applicant.go -destination=./mocks/applicant.mock.go -package=repomocks -typed=true ApplicantRepository
type ApplicantRepository interface {
	Create(ctx context.Context, a domain.Applicant) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Applicant, error)
	FindByJobAndCandidate(ctx context.Context, jobID, candidateID int64) (domain.Applicant, error)
	// Transform 原子地读取、修改并写回投递记录，fn 出错时不会写入
	Transform(ctx context.Context, id int64, fn func(a domain.Applicant) (domain.Applicant, error)) (domain.Applicant, error)
	ListByJob(ctx context.Context, jobID int64, status domain.ApplicantStatus, offset, limit int) ([]domain.Applicant, error)
	CountByJob(ctx context.Context, jobID int64, status domain.ApplicantStatus) (int64, error)
	ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Applicant, error)
	CountInFlight(ctx context.Context, jobID int64, roundIDs []int) (int64, error)
}

type applicantRepository struct {
	dao dao.ApplicantDAO
}

func NewApplicantRepository(d dao.ApplicantDAO) ApplicantRepository {
	return &applicantRepository{dao: d}
}

func (r *applicantRepository) Create(ctx context.Context, a domain.Applicant) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(a))
}

func (r *applicantRepository) FindByID(ctx context.Context, id int64) (domain.Applicant, error) {
	a, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Applicant{}, err
	}
	return r.toDomain(a), nil
}

func (r *applicantRepository) FindByJobAndCandidate(ctx context.Context, jobID, candidateID int64) (domain.Applicant, error) {
	a, err := r.dao.FindByJobAndCandidate(ctx, jobID, candidateID)
	if err != nil {
		return domain.Applicant{}, err
	}
	return r.toDomain(a), nil
}

func (r *applicantRepository) Transform(ctx context.Context, id int64,
	fn func(a domain.Applicant) (domain.Applicant, error)) (domain.Applicant, error) {
	res, err := r.dao.Transform(ctx, id, func(a dao.Applicant) (dao.Applicant, error) {
		next, err := fn(r.toDomain(a))
		if err != nil {
			return dao.Applicant{}, err
		}
		return r.toEntity(next), nil
	})
	if err != nil {
		return domain.Applicant{}, err
	}
	return r.toDomain(res), nil
}

func (r *applicantRepository) ListByJob(ctx context.Context, jobID int64, status domain.ApplicantStatus, offset, limit int) ([]domain.Applicant, error) {
	res, err := r.dao.ListByJob(ctx, jobID, status.String(), offset, limit)
	if err != nil {
		return nil, err
	}
	return r.toDomains(res), nil
}

func (r *applicantRepository) CountByJob(ctx context.Context, jobID int64, status domain.ApplicantStatus) (int64, error) {
	return r.dao.CountByJob(ctx, jobID, status.String())
}

func (r *applicantRepository) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Applicant, error) {
	res, err := r.dao.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	return r.toDomains(res), nil
}

func (r *applicantRepository) CountInFlight(ctx context.Context, jobID int64, roundIDs []int) (int64, error) {
	return r.dao.CountInFlight(ctx, jobID, roundIDs)
}

func (r *applicantRepository) toDomains(as []dao.Applicant) []domain.Applicant {
	return slice.Map(as, func(_ int, src dao.Applicant) domain.Applicant {
		return r.toDomain(src)
	})
}

func (r *applicantRepository) toEntity(a domain.Applicant) dao.Applicant {
	return dao.Applicant{
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
		RoundResults: sqlx.JsonColumn[[]dao.RoundResult]{
			Val: slice.Map(a.RoundResults, func(_ int, src domain.RoundResult) dao.RoundResult {
				return dao.RoundResult{
					RoundID:     src.RoundID,
					Status:      src.Status.String(),
					Score:       src.Score,
					StartedAt:   toMilli(src.StartedAt),
					CompletedAt: toMilli(src.CompletedAt),
					TimeTaken:   src.TimeTaken.Milliseconds(),
					Answers:     src.Answers,
				}
			}),
			Valid: true,
		},
		Schedules: sqlx.JsonColumn[[]dao.Schedule]{
			Val: slice.Map(a.Schedules, func(_ int, src domain.Schedule) dao.Schedule {
				return dao.Schedule{
					RoundID:     src.RoundID,
					Status:      string(src.Status),
					ScheduledAt: toMilli(src.ScheduledAt),
					DueDate:     toMilli(src.DueDate),
					CompletedAt: toMilli(src.CompletedAt),
				}
			}),
			Valid: true,
		},
		Version: a.Version,
	}
}

func (r *applicantRepository) toDomain(a dao.Applicant) domain.Applicant {
	return domain.Applicant{
		ID:    a.ID,
		JobID: a.JobID,
		Candidate: domain.Candidate{
			ID:        a.CandidateID,
			Name:      a.CandidateName,
			Email:     a.CandidateEmail,
			ResumeURL: a.ResumeURL,
		},
		AppliedAt:     fromMilli(a.AppliedAt),
		ActiveRoundID: a.ActiveRoundID,
		Outcome:       domain.Outcome(a.Outcome),
		RejectReason:  a.RejectReason,
		Status:        domain.ApplicantStatus(a.Status),
		RoundResults: slice.Map(a.RoundResults.Val, func(_ int, src dao.RoundResult) domain.RoundResult {
			return domain.RoundResult{
				RoundID:     src.RoundID,
				Status:      domain.ResultStatus(src.Status),
				Score:       src.Score,
				StartedAt:   fromMilli(src.StartedAt),
				CompletedAt: fromMilli(src.CompletedAt),
				TimeTaken:   time.Duration(src.TimeTaken) * time.Millisecond,
				Answers:     src.Answers,
			}
		}),
		Schedules: slice.Map(a.Schedules.Val, func(_ int, src dao.Schedule) domain.Schedule {
			return domain.Schedule{
				RoundID:     src.RoundID,
				Status:      domain.ScheduleStatus(src.Status),
				ScheduledAt: fromMilli(src.ScheduledAt),
				DueDate:     fromMilli(src.DueDate),
				CompletedAt: fromMilli(src.CompletedAt),
			}
		}),
		Version: a.Version,
	}
}

// toMilli 零值时间存储为 0
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
