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
	"context"

	"github.com/ecodeclub/recruit/internal/feedback/internal/domain"
	"github.com/ecodeclub/recruit/internal/feedback/internal/event"
	"github.com/ecodeclub/recruit/internal/feedback/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidRating = domain.ErrInvalidRating

//go:generate mockgen -source=./feedback.go -package=svcmocks -destination=./mocks/feedback.mock.go -typed Service
type Service interface {
	// Submit 候选人提交反馈，只校验评分，不影响投递流程
	Submit(ctx context.Context, fb domain.Feedback) (int64, error)
	List(ctx context.Context, jobID int64, roundID int, offset, limit int) ([]domain.Feedback, int64, error)
	// Stats 按轮次统计平均分
	Stats(ctx context.Context, jobID int64) ([]domain.RoundStat, error)
}

type service struct {
	repo     repository.FeedbackRepository
	producer event.FeedbackEventProducer
	logger   *elog.Component
}

func NewService(repo repository.FeedbackRepository, p event.FeedbackEventProducer) Service {
	return &service{
		repo:     repo,
		producer: p,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Submit(ctx context.Context, fb domain.Feedback) (int64, error) {
	if err := fb.Validate(); err != nil {
		return 0, err
	}
	id, err := s.repo.Create(ctx, fb)
	if err != nil {
		return 0, err
	}
	evt := event.FeedbackEvent{
		ID:          id,
		JobID:       fb.JobID,
		ApplicantID: fb.ApplicantID,
		RoundID:     fb.RoundID,
		Rating:      fb.Rating,
		Comment:     fb.Comment,
	}
	if err = s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送反馈消息失败",
			elog.FieldErr(err),
			elog.Int64("feedbackId", id),
		)
	}
	return id, nil
}

func (s *service) List(ctx context.Context, jobID int64, roundID int, offset, limit int) ([]domain.Feedback, int64, error) {
	var (
		eg    errgroup.Group
		list  []domain.Feedback
		total int64
	)
	eg.Go(func() error {
		var err error
		list, err = s.repo.List(ctx, jobID, roundID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, jobID, roundID)
		return err
	})
	return list, total, eg.Wait()
}

func (s *service) Stats(ctx context.Context, jobID int64) ([]domain.RoundStat, error) {
	return s.repo.Stats(ctx, jobID)
}
