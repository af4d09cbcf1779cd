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
	"testing"
	"time"

	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/event"
	evtmocks "github.com/ecodeclub/recruit/internal/pipeline/internal/event/mocks"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/repository"
	repomocks "github.com/ecodeclub/recruit/internal/pipeline/internal/repository/mocks"
	"github.com/gotomicro/ego/core/elog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func testJob() domain.Job {
	return domain.Job{
		ID:         1,
		CompanyUID: "company-1",
		Status:     domain.JobStatusLive,
		Rounds: []domain.Round{
			{ID: 1, Type: domain.RoundTypeApplication},
			{ID: 2, Type: domain.RoundTypeScreening, AutoProceed: true},
			{ID: 3, Type: domain.RoundTypeAssessment, DueInHours: 24},
			{ID: 4, Type: domain.RoundTypeOffer},
		},
	}
}

func testOperator() domain.Operator {
	return domain.Operator{UID: 9, CompanyUID: "company-1"}
}

// testApplicant 刚投递，处于筛选轮次
func testApplicant() domain.Applicant {
	return domain.Applicant{
		ID:            11,
		JobID:         1,
		Candidate:     domain.Candidate{ID: 100},
		ActiveRoundID: 2,
		Status:        domain.StatusSubmitted,
		RoundResults: []domain.RoundResult{
			{RoundID: 1, Status: domain.ResultPassed},
		},
	}
}

type applicantMocks struct {
	repo     *repomocks.MockApplicantRepository
	jobRepo  *repomocks.MockJobRepository
	producer *evtmocks.MockApplicantEventProducer
}

func newApplicantService(ctrl *gomock.Controller) (*applicantService, applicantMocks) {
	m := applicantMocks{
		repo:     repomocks.NewMockApplicantRepository(ctrl),
		jobRepo:  repomocks.NewMockJobRepository(ctrl),
		producer: evtmocks.NewMockApplicantEventProducer(ctrl),
	}
	return &applicantService{
		repo:     m.repo,
		jobRepo:  m.jobRepo,
		engine:   domain.NewEngine(),
		producer: m.producer,
		now:      func() time.Time { return testNow },
		logger:   elog.DefaultLogger,
	}, m
}

// transformOn 模拟行锁内的读改写，fn 出错时不会写入
func transformOn(cur domain.Applicant) func(context.Context, int64, func(domain.Applicant) (domain.Applicant, error)) (domain.Applicant, error) {
	return func(_ context.Context, _ int64, fn func(domain.Applicant) (domain.Applicant, error)) (domain.Applicant, error) {
		next, err := fn(cur)
		if err != nil {
			return domain.Applicant{}, err
		}
		next.Version = cur.Version + 1
		return next, nil
	}
}

func TestApplicantService_Apply(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(m applicantMocks)
		wantErr error
		assert  func(t *testing.T, a domain.Applicant)
	}{
		{
			name: "投递成功",
			mock: func(m applicantMocks) {
				m.jobRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(testJob(), nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a domain.Applicant) (int64, error) {
					assert.Equal(t, 2, a.ActiveRoundID)
					assert.Equal(t, domain.StatusSubmitted, a.Status)
					return 11, nil
				})
				m.producer.EXPECT().Produce(gomock.Any(), event.ApplicantEvent{
					Kind:          event.KindApplied,
					ApplicantID:   11,
					JobID:         1,
					CandidateID:   100,
					ActiveRoundID: 2,
					Status:        domain.StatusSubmitted.String(),
				}).Return(nil)
			},
			assert: func(t *testing.T, a domain.Applicant) {
				assert.Equal(t, int64(11), a.ID)
				assert.Equal(t, testNow, a.AppliedAt)
			},
		},
		{
			name: "通知失败不影响投递",
			mock: func(m applicantMocks) {
				m.jobRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(testJob(), nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(11), nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mock error"))
			},
			assert: func(t *testing.T, a domain.Applicant) {
				assert.Equal(t, int64(11), a.ID)
			},
		},
		{
			name: "职位不存在",
			mock: func(m applicantMocks) {
				m.jobRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Job{}, repository.ErrJobNotFound)
			},
			wantErr: ErrJobNotFound,
		},
		{
			name: "职位已关闭",
			mock: func(m applicantMocks) {
				job := testJob()
				job.Status = domain.JobStatusClosed
				m.jobRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(job, nil)
			},
			wantErr: ErrJobNotAcceptingApplicant,
		},
		{
			name: "重复投递",
			mock: func(m applicantMocks) {
				m.jobRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(testJob(), nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), repository.ErrDuplicateApplicant)
			},
			wantErr: ErrDuplicateApplication,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newApplicantService(ctrl)
			tc.mock(m)
			a, err := svc.Apply(context.Background(), 1, domain.Candidate{ID: 100, Name: "小明"})
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			tc.assert(t, a)
		})
	}
}

func TestApplicantService_RecordResult(t *testing.T) {
	testCases := []struct {
		name    string
		op      domain.Operator
		result  domain.RoundResult
		mock    func(m applicantMocks)
		wantErr error
		assert  func(t *testing.T, a domain.Applicant)
	}{
		{
			name:   "筛选通过自动进入测评",
			op:     testOperator(),
			result: domain.RoundResult{RoundID: 2, Status: domain.ResultPassed},
			mock: func(m applicantMocks) {
				m.jobRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(testJob(), nil)
				m.repo.EXPECT().Transform(gomock.Any(), int64(11), gomock.Any()).DoAndReturn(transformOn(testApplicant()))
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			assert: func(t *testing.T, a domain.Applicant) {
				assert.Equal(t, 3, a.ActiveRoundID)
				assert.Equal(t, domain.StatusScreeningPassed, a.Status)
				sch, ok := a.Schedule(3)
				require.True(t, ok)
				assert.Equal(t, testNow.Add(24*time.Hour), sch.DueDate)
			},
		},
		{
			name:   "已经过去的轮次的结果",
			op:     testOperator(),
			result: domain.RoundResult{RoundID: 2, Status: domain.ResultFailed},
			mock: func(m applicantMocks) {
				a := testApplicant()
				a.ActiveRoundID = 3
				a.RoundResults = append(a.RoundResults, domain.RoundResult{RoundID: 2, Status: domain.ResultPassed})
				m.jobRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(testJob(), nil)
				m.repo.EXPECT().Transform(gomock.Any(), int64(11), gomock.Any()).DoAndReturn(transformOn(a))
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: ErrStaleResult,
			assert: func(t *testing.T, a domain.Applicant) {
				assert.Equal(t, 3, a.ActiveRoundID)
				assert.Equal(t, domain.OutcomeNone, a.Outcome)
				assert.Equal(t, int64(1), a.Version)
				res, ok := a.Result(2)
				require.True(t, ok)
				assert.Equal(t, domain.ResultFailed, res.Status)
			},
		},
		{
			name:   "尚未开始的轮次的结果",
			op:     testOperator(),
			result: domain.RoundResult{RoundID: 3, Status: domain.ResultPassed},
			mock: func(m applicantMocks) {
				m.jobRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(testJob(), nil)
				m.repo.EXPECT().Transform(gomock.Any(), int64(11), gomock.Any()).DoAndReturn(transformOn(testApplicant()))
			},
			wantErr: ErrInvalidTransition,
		},
		{
			name:   "已淘汰的候选人",
			op:     testOperator(),
			result: domain.RoundResult{RoundID: 2, Status: domain.ResultPassed},
			mock: func(m applicantMocks) {
				a := testApplicant()
				a.Outcome = domain.OutcomeRejected
				m.jobRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(testJob(), nil)
				m.repo.EXPECT().Transform(gomock.Any(), int64(11), gomock.Any()).DoAndReturn(transformOn(a))
			},
			wantErr: ErrInvalidTransition,
		},
		{
			name:   "不能操作其它公司的候选人",
			op:     domain.Operator{UID: 9, CompanyUID: "company-2"},
			result: domain.RoundResult{RoundID: 2, Status: domain.ResultPassed},
			mock: func(m applicantMocks) {
				m.jobRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(testJob(), nil)
				m.repo.EXPECT().Transform(gomock.Any(), int64(11), gomock.Any()).DoAndReturn(transformOn(testApplicant()))
			},
			wantErr: ErrJobNotFound,
		},
		{
			name:   "投递记录不存在",
			op:     testOperator(),
			result: domain.RoundResult{RoundID: 2, Status: domain.ResultPassed},
			mock: func(m applicantMocks) {
				m.repo.EXPECT().Transform(gomock.Any(), int64(11), gomock.Any()).Return(domain.Applicant{}, repository.ErrApplicantNotFound)
			},
			wantErr: ErrApplicantNotFound,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newApplicantService(ctrl)
			tc.mock(m)
			a, err := svc.RecordResult(context.Background(), tc.op, 11, tc.result)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.assert != nil {
				tc.assert(t, a)
			}
		})
	}
}

func TestApplicantService_RecordCandidateResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newApplicantService(ctrl)

	m.repo.EXPECT().FindByJobAndCandidate(gomock.Any(), int64(1), int64(404)).Return(domain.Applicant{}, repository.ErrApplicantNotFound)
	_, err := svc.RecordCandidateResult(context.Background(), 1, 404, domain.RoundResult{RoundID: 2, Status: domain.ResultPassed})
	assert.ErrorIs(t, err, ErrApplicantNotFound)

	m.repo.EXPECT().FindByJobAndCandidate(gomock.Any(), int64(1), int64(100)).Return(testApplicant(), nil)
	m.jobRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(testJob(), nil)
	m.repo.EXPECT().Transform(gomock.Any(), int64(11), gomock.Any()).DoAndReturn(transformOn(testApplicant()))
	m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
	a, err := svc.RecordCandidateResult(context.Background(), 1, 100, domain.RoundResult{RoundID: 2, Status: domain.ResultFailed})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, a.Status)
}

func TestApplicantService_Advance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newApplicantService(ctrl)

	passed := testApplicant()
	passed.RoundResults = append(passed.RoundResults, domain.RoundResult{RoundID: 2, Status: domain.ResultPassed})

	// 跳过测评直接进入 Offer
	m.jobRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(testJob(), nil)
	m.repo.EXPECT().Transform(gomock.Any(), int64(11), gomock.Any()).DoAndReturn(transformOn(passed))
	_, err := svc.Advance(context.Background(), testOperator(), 11, 4)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	m.jobRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(testJob(), nil)
	m.repo.EXPECT().Transform(gomock.Any(), int64(11), gomock.Any()).DoAndReturn(transformOn(passed))
	m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
	a, err := svc.Advance(context.Background(), testOperator(), 11, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, a.ActiveRoundID)
}

func TestApplicantService_Reject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newApplicantService(ctrl)

	m.jobRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(testJob(), nil)
	m.repo.EXPECT().Transform(gomock.Any(), int64(11), gomock.Any()).DoAndReturn(transformOn(testApplicant()))
	m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, evt event.ApplicantEvent) error {
		assert.Equal(t, event.KindRejected, evt.Kind)
		assert.Equal(t, string(domain.OutcomeRejected), evt.Outcome)
		return nil
	})
	a, err := svc.Reject(context.Background(), testOperator(), 11, "经验不匹配")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, a.Status)
	assert.Equal(t, "经验不匹配", a.RejectReason)
}

func TestApplicantService_Schedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newApplicantService(ctrl)

	m.jobRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(testJob(), nil)
	m.repo.EXPECT().Transform(gomock.Any(), int64(11), gomock.Any()).DoAndReturn(transformOn(testApplicant()))
	_, err := svc.IssueSchedule(context.Background(), testOperator(), 11, 99, testNow.Add(time.Hour))
	assert.ErrorIs(t, err, ErrRoundNotFound)

	m.jobRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(testJob(), nil)
	m.repo.EXPECT().Transform(gomock.Any(), int64(11), gomock.Any()).DoAndReturn(transformOn(testApplicant()))
	_, err = svc.IssueSchedule(context.Background(), testOperator(), 11, 3, testNow.Add(-time.Hour))
	assert.ErrorIs(t, err, ErrInvalidDueDate)

	m.jobRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(testJob(), nil)
	m.repo.EXPECT().Transform(gomock.Any(), int64(11), gomock.Any()).DoAndReturn(transformOn(testApplicant()))
	m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
	sch, err := svc.IssueSchedule(context.Background(), testOperator(), 11, 3, testNow.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, domain.SchedulePending, sch.Status)

	// 连续两次完成日程，结果一致
	scheduled := testApplicant()
	scheduled.Schedules = []domain.Schedule{sch}
	m.jobRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(testJob(), nil).Times(2)
	m.repo.EXPECT().Transform(gomock.Any(), int64(11), gomock.Any()).DoAndReturn(transformOn(scheduled))
	first, err := svc.CompleteSchedule(context.Background(), testOperator(), 11, 3)
	require.NoError(t, err)
	m.repo.EXPECT().Transform(gomock.Any(), int64(11), gomock.Any()).DoAndReturn(transformOn(first))
	second, err := svc.CompleteSchedule(context.Background(), testOperator(), 11, 3)
	require.NoError(t, err)
	assert.Equal(t, first.Schedules, second.Schedules)
	got, ok := second.Schedule(3)
	require.True(t, ok)
	assert.Equal(t, domain.ScheduleCompleted, got.Status)
}

func TestApplicantService_ScheduleConflict(t *testing.T) {
	completed := domain.Schedule{RoundID: 3, Status: domain.ScheduleCompleted, ScheduledAt: testNow.Add(-48 * time.Hour),
		DueDate: testNow.Add(-24 * time.Hour), CompletedAt: testNow.Add(-30 * time.Hour)}
	pending := domain.Schedule{RoundID: 3, Status: domain.SchedulePending, ScheduledAt: testNow, DueDate: testNow.Add(time.Hour)}
	testCases := []struct {
		name    string
		before  func() domain.Applicant
		call    func(svc *applicantService) error
		wantErr error
	}{
		{
			name: "已完成的日程不能重新安排",
			before: func() domain.Applicant {
				a := testApplicant()
				a.ActiveRoundID = 3
				a.Schedules = []domain.Schedule{completed}
				return a
			},
			call: func(svc *applicantService) error {
				_, err := svc.IssueSchedule(context.Background(), testOperator(), 11, 3, testNow.Add(24*time.Hour))
				return err
			},
			wantErr: ErrScheduleCompleted,
		},
		{
			name: "已淘汰的候选人不能安排日程",
			before: func() domain.Applicant {
				a := testApplicant()
				a.Outcome = domain.OutcomeRejected
				return a
			},
			call: func(svc *applicantService) error {
				_, err := svc.IssueSchedule(context.Background(), testOperator(), 11, 3, testNow.Add(24*time.Hour))
				return err
			},
			wantErr: ErrInvalidTransition,
		},
		{
			name: "已录用的候选人不能完成日程",
			before: func() domain.Applicant {
				a := testApplicant()
				a.Outcome = domain.OutcomeHired
				a.Schedules = []domain.Schedule{pending}
				return a
			},
			call: func(svc *applicantService) error {
				_, err := svc.CompleteSchedule(context.Background(), testOperator(), 11, 3)
				return err
			},
			wantErr: ErrInvalidTransition,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newApplicantService(ctrl)
			m.jobRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(testJob(), nil)
			m.repo.EXPECT().Transform(gomock.Any(), int64(11), gomock.Any()).DoAndReturn(transformOn(tc.before()))
			// 失败时不会发出事件
			m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Times(0)
			err := tc.call(svc)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestApplicantService_AssessmentAccess(t *testing.T) {
	testCases := []struct {
		name string
		mock func(m applicantMocks)
		want domain.AttemptDecision
	}{
		{
			name: "没有投递",
			mock: func(m applicantMocks) {
				m.repo.EXPECT().FindByJobAndCandidate(gomock.Any(), int64(1), int64(100)).Return(domain.Applicant{}, repository.ErrApplicantNotFound)
			},
			want: domain.AttemptNotScheduled,
		},
		{
			name: "可以作答",
			mock: func(m applicantMocks) {
				a := testApplicant()
				a.Schedules = []domain.Schedule{{RoundID: 3, Status: domain.SchedulePending, ScheduledAt: testNow, DueDate: testNow.Add(time.Hour)}}
				m.repo.EXPECT().FindByJobAndCandidate(gomock.Any(), int64(1), int64(100)).Return(a, nil)
			},
			want: domain.AttemptAllowed,
		},
		{
			name: "已经过期",
			mock: func(m applicantMocks) {
				a := testApplicant()
				a.Schedules = []domain.Schedule{{RoundID: 3, Status: domain.SchedulePending, ScheduledAt: testNow.Add(-25 * time.Hour), DueDate: testNow.Add(-time.Hour)}}
				m.repo.EXPECT().FindByJobAndCandidate(gomock.Any(), int64(1), int64(100)).Return(a, nil)
			},
			want: domain.AttemptExpired,
		},
		{
			name: "已淘汰",
			mock: func(m applicantMocks) {
				a := testApplicant()
				a.ActiveRoundID = 3
				a.Outcome = domain.OutcomeRejected
				a.Schedules = []domain.Schedule{{RoundID: 3, Status: domain.SchedulePending, ScheduledAt: testNow, DueDate: testNow.Add(time.Hour)}}
				m.repo.EXPECT().FindByJobAndCandidate(gomock.Any(), int64(1), int64(100)).Return(a, nil)
			},
			want: domain.AttemptClosed,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newApplicantService(ctrl)
			tc.mock(m)
			got, err := svc.AssessmentAccess(context.Background(), 1, 100, 3)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Decision)
		})
	}
}
