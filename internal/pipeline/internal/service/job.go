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

	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/repository"
	"golang.org/x/sync/errgroup"
)

type JobService interface {
	// Save 创建或者修改职位，新建的职位处于草稿状态
	Save(ctx context.Context, op domain.Operator, job domain.Job) (int64, error)
	UpdateStatus(ctx context.Context, op domain.Operator, id int64, status domain.JobStatus) error
	// Detail 只能查看自己公司的职位
	Detail(ctx context.Context, op domain.Operator, id int64) (domain.Job, error)
	List(ctx context.Context, op domain.Operator, offset, limit int) ([]domain.Job, int64, error)
}

type jobService struct {
	repo          repository.JobRepository
	applicantRepo repository.ApplicantRepository
}

func NewJobService(repo repository.JobRepository, applicantRepo repository.ApplicantRepository) JobService {
	return &jobService{repo: repo, applicantRepo: applicantRepo}
}

func (s *jobService) Save(ctx context.Context, op domain.Operator, job domain.Job) (int64, error) {
	if err := domain.ValidateRounds(job.Rounds); err != nil {
		return 0, err
	}
	if job.ID == 0 {
		if !op.Platform || job.CompanyUID == "" {
			job.CompanyUID = op.CompanyUID
		}
		job.Status = domain.JobStatusDraft
		return s.repo.Save(ctx, job)
	}

	old, err := s.find(ctx, op, job.ID)
	if err != nil {
		return 0, err
	}
	if !old.RoundsEditable() {
		return 0, fmt.Errorf("%w: 当前状态 %s", ErrJobNotEditable, old.Status)
	}
	if removed := old.RemovedRounds(job.Rounds); len(removed) > 0 {
		cnt, err := s.applicantRepo.CountInFlight(ctx, old.ID, removed)
		if err != nil {
			return 0, err
		}
		if cnt > 0 {
			return 0, fmt.Errorf("%w: 轮次 %v 上还有 %d 位候选人", ErrRoundInUse, removed, cnt)
		}
	}
	job.CompanyUID = old.CompanyUID
	job.Status = old.Status
	return s.repo.Save(ctx, job)
}

func (s *jobService) UpdateStatus(ctx context.Context, op domain.Operator, id int64, status domain.JobStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidJobStatus, status)
	}
	job, err := s.find(ctx, op, id)
	if err != nil {
		return err
	}
	if job.Status == domain.JobStatusArchived {
		return fmt.Errorf("%w: 职位已归档", ErrJobNotEditable)
	}
	if status == domain.JobStatusLive {
		// 草稿阶段可能保存过不完整的流程
		if err = domain.ValidateRounds(job.Rounds); err != nil {
			return err
		}
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *jobService) Detail(ctx context.Context, op domain.Operator, id int64) (domain.Job, error) {
	return s.find(ctx, op, id)
}

func (s *jobService) List(ctx context.Context, op domain.Operator, offset, limit int) ([]domain.Job, int64, error) {
	companyUID := op.CompanyUID
	if op.Platform {
		companyUID = ""
	}
	var (
		eg    errgroup.Group
		jobs  []domain.Job
		total int64
	)
	eg.Go(func() error {
		var err error
		jobs, err = s.repo.List(ctx, companyUID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, companyUID)
		return err
	})
	return jobs, total, eg.Wait()
}

// find 读取职位并校验归属，不属于当前管理员的职位一律视为不存在
func (s *jobService) find(ctx context.Context, op domain.Operator, id int64) (domain.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrJobNotFound) {
		return domain.Job{}, fmt.Errorf("%w: %d", ErrJobNotFound, id)
	}
	if err != nil {
		return domain.Job{}, err
	}
	if !op.CanManage(job) {
		return domain.Job{}, fmt.Errorf("%w: %d", ErrJobNotFound, id)
	}
	return job, nil
}
