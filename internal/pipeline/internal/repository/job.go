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
	"errors"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/repository/cache"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var ErrJobNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./job.go -destination=./mocks/job.mock.go -package=repomocks -typed=true JobRepository
type JobRepository interface {
	Save(ctx context.Context, job domain.Job) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Job, error)
	UpdateStatus(ctx context.Context, id int64, status domain.JobStatus) error
	List(ctx context.Context, companyUID string, offset, limit int) ([]domain.Job, error)
	Count(ctx context.Context, companyUID string) (int64, error)
}

type jobRepository struct {
	dao    dao.JobDAO
	cache  cache.JobCache
	logger *elog.Component
}

func NewJobRepository(d dao.JobDAO, c cache.JobCache) JobRepository {
	return &jobRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *jobRepository) Save(ctx context.Context, job domain.Job) (int64, error) {
	id, err := r.dao.Save(ctx, r.toEntity(job))
	if err != nil {
		return 0, err
	}
	r.evict(ctx, id)
	return id, nil
}

func (r *jobRepository) FindByID(ctx context.Context, id int64) (domain.Job, error) {
	job, err := r.cache.Get(ctx, id)
	if err == nil {
		return job, nil
	}
	if !errors.Is(err, cache.ErrJobNotFound) {
		r.logger.Warn("读取职位缓存失败", elog.Int64("jobId", id), elog.FieldErr(err))
	}
	entity, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	job = r.toDomain(entity)
	if err = r.cache.Set(ctx, job); err != nil {
		r.logger.Warn("回写职位缓存失败", elog.Int64("jobId", id), elog.FieldErr(err))
	}
	return job, nil
}

func (r *jobRepository) UpdateStatus(ctx context.Context, id int64, status domain.JobStatus) error {
	err := r.dao.UpdateStatus(ctx, id, status.String())
	if err != nil {
		return err
	}
	r.evict(ctx, id)
	return nil
}

func (r *jobRepository) List(ctx context.Context, companyUID string, offset, limit int) ([]domain.Job, error) {
	jobs, err := r.dao.List(ctx, companyUID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(jobs, func(_ int, src dao.Job) domain.Job {
		return r.toDomain(src)
	}), nil
}

func (r *jobRepository) Count(ctx context.Context, companyUID string) (int64, error) {
	return r.dao.Count(ctx, companyUID)
}

func (r *jobRepository) evict(ctx context.Context, id int64) {
	if err := r.cache.Delete(ctx, id); err != nil {
		r.logger.Error("删除职位缓存失败", elog.Int64("jobId", id), elog.FieldErr(err))
	}
}

func (r *jobRepository) toEntity(j domain.Job) dao.Job {
	return dao.Job{
		ID:          j.ID,
		CompanyUID:  j.CompanyUID,
		Title:       j.Title,
		Description: j.Description,
		Status:      j.Status.String(),
		Rounds: sqlx.JsonColumn[[]dao.Round]{
			Val: slice.Map(j.Rounds, func(_ int, src domain.Round) dao.Round {
				return dao.Round{
					ID:                src.ID,
					Name:              src.Name,
					Type:              src.Type.String(),
					AssessmentID:      src.AssessmentID,
					AssessmentName:    src.AssessmentName,
					SelectionCriteria: src.SelectionCriteria,
					AutoProceed:       src.AutoProceed,
					Disabled:          src.Disabled,
					DueInHours:        src.DueInHours,
				}
			}),
			Valid: true,
		},
	}
}

func (r *jobRepository) toDomain(j dao.Job) domain.Job {
	return domain.Job{
		ID:          j.ID,
		CompanyUID:  j.CompanyUID,
		Title:       j.Title,
		Description: j.Description,
		Status:      domain.JobStatus(j.Status),
		Rounds: slice.Map(j.Rounds.Val, func(_ int, src dao.Round) domain.Round {
			return domain.Round{
				ID:                src.ID,
				Name:              src.Name,
				Type:              domain.RoundType(src.Type),
				AssessmentID:      src.AssessmentID,
				AssessmentName:    src.AssessmentName,
				SelectionCriteria: src.SelectionCriteria,
				AutoProceed:       src.AutoProceed,
				Disabled:          src.Disabled,
				DueInHours:        src.DueInHours,
			}
		}),
		Ctime: time.UnixMilli(j.Ctime),
		Utime: time.UnixMilli(j.Utime),
	}
}
