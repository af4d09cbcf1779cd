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
	"testing"

	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/repository"
	repomocks "github.com/ecodeclub/recruit/internal/pipeline/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestJobService_Save(t *testing.T) {
	testCases := []struct {
		name    string
		op      domain.Operator
		job     func() domain.Job
		mock    func(repo *repomocks.MockJobRepository, applicantRepo *repomocks.MockApplicantRepository)
		wantErr error
		wantID  int64
	}{
		{
			name: "新建职位",
			op:   testOperator(),
			job: func() domain.Job {
				job := testJob()
				job.ID = 0
				job.CompanyUID = "company-2"
				job.Status = domain.JobStatusLive
				return job
			},
			mock: func(repo *repomocks.MockJobRepository, applicantRepo *repomocks.MockApplicantRepository) {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, job domain.Job) (int64, error) {
					// 新职位只能属于自己公司，并且从草稿开始
					assert.Equal(t, "company-1", job.CompanyUID)
					assert.Equal(t, domain.JobStatusDraft, job.Status)
					return 1, nil
				})
			},
			wantID: 1,
		},
		{
			name: "流程非法",
			op:   testOperator(),
			job: func() domain.Job {
				job := testJob()
				job.Rounds = job.Rounds[1:]
				return job
			},
			mock:    func(repo *repomocks.MockJobRepository, applicantRepo *repomocks.MockApplicantRepository) {},
			wantErr: ErrInvalidPipeline,
		},
		{
			name: "删除仍有候选人的轮次",
			op:   testOperator(),
			job: func() domain.Job {
				job := testJob()
				job.Rounds = []domain.Round{job.Rounds[0], job.Rounds[1], job.Rounds[3]}
				return job
			},
			mock: func(repo *repomocks.MockJobRepository, applicantRepo *repomocks.MockApplicantRepository) {
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(testJob(), nil)
				applicantRepo.EXPECT().CountInFlight(gomock.Any(), int64(1), []int{3}).Return(int64(2), nil)
			},
			wantErr: ErrRoundInUse,
		},
		{
			name: "删除没有候选人的轮次",
			op:   testOperator(),
			job: func() domain.Job {
				job := testJob()
				job.Rounds = []domain.Round{job.Rounds[0], job.Rounds[1], job.Rounds[3]}
				job.Status = domain.JobStatusDraft
				return job
			},
			mock: func(repo *repomocks.MockJobRepository, applicantRepo *repomocks.MockApplicantRepository) {
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(testJob(), nil)
				applicantRepo.EXPECT().CountInFlight(gomock.Any(), int64(1), []int{3}).Return(int64(0), nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, job domain.Job) (int64, error) {
					// 修改流程不会顺带修改状态
					assert.Equal(t, domain.JobStatusLive, job.Status)
					assert.Len(t, job.Rounds, 3)
					return job.ID, nil
				})
			},
			wantID: 1,
		},
		{
			name: "已关闭的职位不能修改",
			op:   testOperator(),
			job:  testJob,
			mock: func(repo *repomocks.MockJobRepository, applicantRepo *repomocks.MockApplicantRepository) {
				job := testJob()
				job.Status = domain.JobStatusClosed
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(job, nil)
			},
			wantErr: ErrJobNotEditable,
		},
		{
			name: "其它公司的职位",
			op:   domain.Operator{CompanyUID: "company-2"},
			job:  testJob,
			mock: func(repo *repomocks.MockJobRepository, applicantRepo *repomocks.MockApplicantRepository) {
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(testJob(), nil)
			},
			wantErr: ErrJobNotFound,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockJobRepository(ctrl)
			applicantRepo := repomocks.NewMockApplicantRepository(ctrl)
			tc.mock(repo, applicantRepo)
			svc := NewJobService(repo, applicantRepo)
			id, err := svc.Save(context.Background(), tc.op, tc.job())
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestJobService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockJobRepository(ctrl)
	svc := NewJobService(repo, repomocks.NewMockApplicantRepository(ctrl))

	err := svc.UpdateStatus(context.Background(), testOperator(), 1, "unknown")
	assert.ErrorIs(t, err, ErrInvalidJobStatus)

	archived := testJob()
	archived.Status = domain.JobStatusArchived
	repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(archived, nil)
	err = svc.UpdateStatus(context.Background(), testOperator(), 1, domain.JobStatusLive)
	assert.ErrorIs(t, err, ErrJobNotEditable)

	repo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(domain.Job{}, repository.ErrJobNotFound)
	err = svc.UpdateStatus(context.Background(), testOperator(), 2, domain.JobStatusLive)
	assert.ErrorIs(t, err, ErrJobNotFound)

	repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(testJob(), nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), domain.JobStatusOnHold).Return(nil)
	err = svc.UpdateStatus(context.Background(), testOperator(), 1, domain.JobStatusOnHold)
	require.NoError(t, err)
}

func TestJobService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockJobRepository(ctrl)
	svc := NewJobService(repo, repomocks.NewMockApplicantRepository(ctrl))

	repo.EXPECT().List(gomock.Any(), "company-1", 0, 10).Return([]domain.Job{testJob()}, nil)
	repo.EXPECT().Count(gomock.Any(), "company-1").Return(int64(1), nil)
	jobs, total, err := svc.List(context.Background(), testOperator(), 0, 10)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
	assert.Equal(t, int64(1), total)

	// 平台管理员可以看到所有公司的职位
	repo.EXPECT().List(gomock.Any(), "", 0, 10).Return([]domain.Job{testJob()}, nil)
	repo.EXPECT().Count(gomock.Any(), "").Return(int64(1), nil)
	_, _, err = svc.List(context.Background(), domain.Operator{CompanyUID: "__platform__", Platform: true}, 0, 10)
	require.NoError(t, err)
}
