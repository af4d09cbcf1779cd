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
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/event"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/event/producer"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"
)

var transitionCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "pipeline_transitions_total",
		Help: "Total number of applicant transitions",
	},
	[]string{"kind", "status"},
)

//go:generate mockgen -source=./applicant.go -destination=./mocks/applicant.mock.go -package=svcmocks -typed=true ApplicantService
type ApplicantService interface {
	Apply(ctx context.Context, jobID int64, c domain.Candidate) (domain.Applicant, error)
	// RecordResult 记录轮次结果。结果不属于当前轮次时，依旧会写入历史，同时返回 ErrStaleResult
	RecordResult(ctx context.Context, op domain.Operator, applicantID int64, r domain.RoundResult) (domain.Applicant, error)
	// RecordCandidateResult 测评系统按职位和候选人回传结果
	RecordCandidateResult(ctx context.Context, jobID, candidateID int64, r domain.RoundResult) (domain.Applicant, error)
	Advance(ctx context.Context, op domain.Operator, applicantID int64, toRoundID int) (domain.Applicant, error)
	Reject(ctx context.Context, op domain.Operator, applicantID int64, reason string) (domain.Applicant, error)
	IssueSchedule(ctx context.Context, op domain.Operator, applicantID int64, roundID int, dueDate time.Time) (domain.Schedule, error)
	CompleteSchedule(ctx context.Context, op domain.Operator, applicantID int64, roundID int) (domain.Applicant, error)
	// AssessmentAccess 候选人进入测评前的校验，只读
	AssessmentAccess(ctx context.Context, jobID, candidateID int64, roundID int) (domain.Attempt, error)
	Detail(ctx context.Context, op domain.Operator, applicantID int64) (domain.Applicant, error)
	ListByJob(ctx context.Context, op domain.Operator, jobID int64, status domain.ApplicantStatus, offset, limit int) ([]domain.Applicant, int64, error)
	ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Applicant, error)
}

type applicantService struct {
	repo     repository.ApplicantRepository
	jobRepo  repository.JobRepository
	engine   domain.Engine
	producer producer.ApplicantEventProducer
	now      func() time.Time
	logger   *elog.Component
}

func NewApplicantService(repo repository.ApplicantRepository,
	jobRepo repository.JobRepository,
	p producer.ApplicantEventProducer) ApplicantService {
	return &applicantService{
		repo:     repo,
		jobRepo:  jobRepo,
		engine:   domain.NewEngine(),
		producer: p,
		now:      time.Now,
		logger:   elog.DefaultLogger,
	}
}

func (s *applicantService) Apply(ctx context.Context, jobID int64, c domain.Candidate) (domain.Applicant, error) {
	job, err := s.findJob(ctx, domain.SystemOperator(), jobID)
	if err != nil {
		return domain.Applicant{}, err
	}
	a, err := s.engine.Apply(job, c, s.now())
	if err != nil {
		return domain.Applicant{}, err
	}
	a.ID, err = s.repo.Create(ctx, a)
	if err != nil {
		return domain.Applicant{}, err
	}
	s.committed(ctx, event.KindApplied, a)
	return a, nil
}

func (s *applicantService) RecordResult(ctx context.Context, op domain.Operator, applicantID int64, r domain.RoundResult) (domain.Applicant, error) {
	var stale error
	a, err := s.transform(ctx, op, applicantID, func(job domain.Job, a domain.Applicant) (domain.Applicant, error) {
		next, err := s.engine.RecordResult(job, a, r, s.now())
		if errors.Is(err, domain.ErrStaleResult) {
			// 过期结果同样需要落库
			stale = err
			return next, nil
		}
		return next, err
	})
	if err != nil {
		return domain.Applicant{}, err
	}
	s.committed(ctx, event.KindResult, a)
	return a, stale
}

func (s *applicantService) RecordCandidateResult(ctx context.Context, jobID, candidateID int64, r domain.RoundResult) (domain.Applicant, error) {
	a, err := s.repo.FindByJobAndCandidate(ctx, jobID, candidateID)
	if errors.Is(err, repository.ErrApplicantNotFound) {
		return domain.Applicant{}, fmt.Errorf("%w: job=%d candidate=%d", ErrApplicantNotFound, jobID, candidateID)
	}
	if err != nil {
		return domain.Applicant{}, err
	}
	return s.RecordResult(ctx, domain.SystemOperator(), a.ID, r)
}

func (s *applicantService) Advance(ctx context.Context, op domain.Operator, applicantID int64, toRoundID int) (domain.Applicant, error) {
	a, err := s.transform(ctx, op, applicantID, func(job domain.Job, a domain.Applicant) (domain.Applicant, error) {
		return s.engine.Advance(job, a, toRoundID, s.now())
	})
	if err != nil {
		return domain.Applicant{}, err
	}
	s.committed(ctx, event.KindAdvanced, a)
	return a, nil
}

func (s *applicantService) Reject(ctx context.Context, op domain.Operator, applicantID int64, reason string) (domain.Applicant, error) {
	a, err := s.transform(ctx, op, applicantID, func(job domain.Job, a domain.Applicant) (domain.Applicant, error) {
		return s.engine.Reject(job, a, reason)
	})
	if err != nil {
		return domain.Applicant{}, err
	}
	s.committed(ctx, event.KindRejected, a)
	return a, nil
}

func (s *applicantService) IssueSchedule(ctx context.Context, op domain.Operator, applicantID int64, roundID int, dueDate time.Time) (domain.Schedule, error) {
	var sch domain.Schedule
	a, err := s.transform(ctx, op, applicantID, func(job domain.Job, a domain.Applicant) (domain.Applicant, error) {
		if _, err := domain.ResolveRound(job.Rounds, roundID); err != nil {
			return domain.Applicant{}, err
		}
		var err error
		sch, err = a.IssueSchedule(roundID, dueDate, s.now())
		return a, err
	})
	if err != nil {
		return domain.Schedule{}, err
	}
	s.committed(ctx, event.KindScheduled, a)
	return sch, nil
}

func (s *applicantService) CompleteSchedule(ctx context.Context, op domain.Operator, applicantID int64, roundID int) (domain.Applicant, error) {
	return s.transform(ctx, op, applicantID, func(_ domain.Job, a domain.Applicant) (domain.Applicant, error) {
		err := a.CompleteSchedule(roundID, s.now())
		return a, err
	})
}

func (s *applicantService) AssessmentAccess(ctx context.Context, jobID, candidateID int64, roundID int) (domain.Attempt, error) {
	a, err := s.repo.FindByJobAndCandidate(ctx, jobID, candidateID)
	if errors.Is(err, repository.ErrApplicantNotFound) {
		// 没有投递过该职位，对候选人来说就是没有被安排
		return domain.Applicant{}.CanAttempt(roundID, s.now()), nil
	}
	if err != nil {
		return domain.Attempt{}, err
	}
	return a.CanAttempt(roundID, s.now()), nil
}

func (s *applicantService) Detail(ctx context.Context, op domain.Operator, applicantID int64) (domain.Applicant, error) {
	a, err := s.find(ctx, applicantID)
	if err != nil {
		return domain.Applicant{}, err
	}
	if _, err = s.findJob(ctx, op, a.JobID); err != nil {
		return domain.Applicant{}, err
	}
	return a, nil
}

func (s *applicantService) ListByJob(ctx context.Context, op domain.Operator, jobID int64, status domain.ApplicantStatus, offset, limit int) ([]domain.Applicant, int64, error) {
	if _, err := s.findJob(ctx, op, jobID); err != nil {
		return nil, 0, err
	}
	var (
		eg    errgroup.Group
		list  []domain.Applicant
		total int64
	)
	eg.Go(func() error {
		var err error
		list, err = s.repo.ListByJob(ctx, jobID, status, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByJob(ctx, jobID, status)
		return err
	})
	return list, total, eg.Wait()
}

func (s *applicantService) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Applicant, error) {
	return s.repo.ListByCandidate(ctx, candidateID)
}

// transform 在行锁内加载职位定义并执行流转，fn 出错时不会写入任何数据
func (s *applicantService) transform(ctx context.Context, op domain.Operator, applicantID int64,
	fn func(job domain.Job, a domain.Applicant) (domain.Applicant, error)) (domain.Applicant, error) {
	a, err := s.repo.Transform(ctx, applicantID, func(a domain.Applicant) (domain.Applicant, error) {
		job, err := s.findJob(ctx, op, a.JobID)
		if err != nil {
			return domain.Applicant{}, err
		}
		return fn(job, a)
	})
	if errors.Is(err, repository.ErrApplicantNotFound) {
		return domain.Applicant{}, fmt.Errorf("%w: %d", ErrApplicantNotFound, applicantID)
	}
	return a, err
}

func (s *applicantService) find(ctx context.Context, applicantID int64) (domain.Applicant, error) {
	a, err := s.repo.FindByID(ctx, applicantID)
	if errors.Is(err, repository.ErrApplicantNotFound) {
		return domain.Applicant{}, fmt.Errorf("%w: %d", ErrApplicantNotFound, applicantID)
	}
	return a, err
}

func (s *applicantService) findJob(ctx context.Context, op domain.Operator, jobID int64) (domain.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if errors.Is(err, repository.ErrJobNotFound) {
		return domain.Job{}, fmt.Errorf("%w: %d", ErrJobNotFound, jobID)
	}
	if err != nil {
		return domain.Job{}, err
	}
	if !op.CanManage(job) {
		return domain.Job{}, fmt.Errorf("%w: %d", ErrJobNotFound, jobID)
	}
	return job, nil
}

// committed 流转已经提交，通知失败不影响结果
func (s *applicantService) committed(ctx context.Context, kind string, a domain.Applicant) {
	transitionCounter.WithLabelValues(kind, a.Status.String()).Inc()
	err := s.producer.Produce(ctx, event.ApplicantEvent{
		Kind:          kind,
		ApplicantID:   a.ID,
		JobID:         a.JobID,
		CandidateID:   a.Candidate.ID,
		ActiveRoundID: a.ActiveRoundID,
		Status:        a.Status.String(),
		Outcome:       string(a.Outcome),
	})
	if err != nil {
		s.logger.Error("发送投递流转事件失败",
			elog.FieldErr(err),
			elog.String("kind", kind),
			elog.Int64("applicantId", a.ID),
		)
	}
}
