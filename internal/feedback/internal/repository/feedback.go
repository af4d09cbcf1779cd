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
	"github.com/ecodeclub/recruit/internal/feedback/internal/domain"
	"github.com/ecodeclub/recruit/internal/feedback/internal/repository/dao"
)

//go:generate mockgen -source=./feedback.go -package=repomocks -destination=./mocks/feedback.mock.go -typed FeedbackRepository
type FeedbackRepository interface {
	Create(ctx context.Context, fb domain.Feedback) (int64, error)
	// List roundID 为 0 时返回职位下所有轮次的反馈
	List(ctx context.Context, jobID int64, roundID int, offset, limit int) ([]domain.Feedback, error)
	Count(ctx context.Context, jobID int64, roundID int) (int64, error)
	Stats(ctx context.Context, jobID int64) ([]domain.RoundStat, error)
}

type feedbackRepository struct {
	dao dao.FeedbackDAO
}

func NewFeedbackRepository(d dao.FeedbackDAO) FeedbackRepository {
	return &feedbackRepository{
		dao: d,
	}
}

func (r *feedbackRepository) Create(ctx context.Context, fb domain.Feedback) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(fb))
}

func (r *feedbackRepository) List(ctx context.Context, jobID int64, roundID int, offset, limit int) ([]domain.Feedback, error) {
	fbs, err := r.dao.List(ctx, jobID, roundID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(fbs, func(idx int, src dao.Feedback) domain.Feedback {
		return r.toDomain(src)
	}), nil
}

func (r *feedbackRepository) Count(ctx context.Context, jobID int64, roundID int) (int64, error) {
	return r.dao.Count(ctx, jobID, roundID)
}

func (r *feedbackRepository) Stats(ctx context.Context, jobID int64) ([]domain.RoundStat, error) {
	stats, err := r.dao.Stats(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return slice.Map(stats, func(idx int, src dao.RoundStat) domain.RoundStat {
		return domain.RoundStat{
			RoundID:   src.RoundId,
			Count:     src.Cnt,
			AvgRating: src.AvgRating,
		}
	}), nil
}

func (r *feedbackRepository) toDomain(fb dao.Feedback) domain.Feedback {
	return domain.Feedback{
		ID:          fb.Id,
		JobID:       fb.JobId,
		ApplicantID: fb.ApplicantId,
		RoundID:     fb.RoundId,
		UID:         fb.Uid,
		Rating:      fb.Rating,
		Comment:     fb.Comment,
		Ctime:       time.UnixMilli(fb.Ctime),
	}
}

func (r *feedbackRepository) toEntity(fb domain.Feedback) dao.Feedback {
	return dao.Feedback{
		Id:          fb.ID,
		JobId:       fb.JobID,
		ApplicantId: fb.ApplicantID,
		RoundId:     fb.RoundID,
		Uid:         fb.UID,
		Rating:      fb.Rating,
		Comment:     fb.Comment,
	}
}
