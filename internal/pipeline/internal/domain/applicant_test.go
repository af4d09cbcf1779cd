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

package domain

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicant_IssueSchedule(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	testCases := []struct {
		name      string
		outcome   Outcome
		schedules []Schedule
		dueDate   time.Time
		wantErr   error
		wantLen   int
	}{
		{
			name:    "新建日程",
			dueDate: now.Add(24 * time.Hour),
			wantLen: 1,
		},
		{
			name:    "截止时间等于当前时间",
			dueDate: now,
			wantErr: ErrInvalidDueDate,
		},
		{
			name:    "截止时间早于当前时间",
			dueDate: now.Add(-time.Hour),
			wantErr: ErrInvalidDueDate,
		},
		{
			name: "已有有效日程",
			schedules: []Schedule{
				{RoundID: 3, Status: SchedulePending, ScheduledAt: now.Add(-time.Hour), DueDate: now.Add(time.Hour)},
			},
			dueDate: now.Add(24 * time.Hour),
			wantErr: ErrDuplicateActiveSchedule,
			wantLen: 1,
		},
		{
			name: "替换已过期日程",
			schedules: []Schedule{
				{RoundID: 3, Status: SchedulePending, ScheduledAt: now.Add(-48 * time.Hour), DueDate: now.Add(-time.Hour)},
			},
			dueDate: now.Add(24 * time.Hour),
			wantLen: 1,
		},
		{
			name: "其它轮次的日程不受影响",
			schedules: []Schedule{
				{RoundID: 4, Status: SchedulePending, ScheduledAt: now, DueDate: now.Add(time.Hour)},
			},
			dueDate: now.Add(24 * time.Hour),
			wantLen: 2,
		},
		{
			name: "已完成的日程不能重新安排",
			schedules: []Schedule{
				{RoundID: 3, Status: ScheduleCompleted, ScheduledAt: now.Add(-48 * time.Hour),
					DueDate: now.Add(-24 * time.Hour), CompletedAt: now.Add(-30 * time.Hour)},
			},
			dueDate: now.Add(24 * time.Hour),
			wantErr: ErrScheduleCompleted,
			wantLen: 1,
		},
		{
			name:    "已淘汰的候选人",
			outcome: OutcomeRejected,
			dueDate: now.Add(24 * time.Hour),
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "已录用的候选人",
			outcome: OutcomeHired,
			schedules: []Schedule{
				{RoundID: 3, Status: SchedulePending, ScheduledAt: now.Add(-48 * time.Hour), DueDate: now.Add(-time.Hour)},
			},
			dueDate: now.Add(24 * time.Hour),
			wantErr: ErrInvalidTransition,
			wantLen: 1,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			a := Applicant{Outcome: tc.outcome, Schedules: slices.Clone(tc.schedules)}
			s, err := a.IssueSchedule(3, tc.dueDate, now)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Len(t, a.Schedules, tc.wantLen)
			if err != nil {
				// 失败时原有日程保持不变
				assert.Equal(t, tc.schedules, a.Schedules)
				return
			}
			assert.Equal(t, Schedule{RoundID: 3, Status: SchedulePending, ScheduledAt: now, DueDate: tc.dueDate}, s)
			got, ok := a.Schedule(3)
			require.True(t, ok)
			assert.Equal(t, s, got)
		})
	}
}

func TestApplicant_CompleteScheduleIdempotent(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	a := Applicant{ID: 1, ActiveRoundID: 3}
	_, err := a.IssueSchedule(3, now.Add(24*time.Hour), now)
	require.NoError(t, err)

	require.NoError(t, a.CompleteSchedule(3, now.Add(time.Hour)))
	once := a.clone()
	require.NoError(t, a.CompleteSchedule(3, now.Add(2*time.Hour)))
	assert.Equal(t, once, a)

	s, ok := a.Schedule(3)
	require.True(t, ok)
	assert.Equal(t, ScheduleCompleted, s.Status)
	assert.Equal(t, now.Add(time.Hour), s.CompletedAt)

	assert.ErrorIs(t, a.CompleteSchedule(4, now), ErrScheduleNotFound)
}

func TestApplicant_ScheduleAfterCompleted(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	a := Applicant{ID: 1, ActiveRoundID: 3}
	_, err := a.IssueSchedule(3, now.Add(time.Hour), now)
	require.NoError(t, err)
	require.NoError(t, a.CompleteSchedule(3, now.Add(30*time.Minute)))

	// 截止时间过后重新安排，已完成的日程不会被覆盖
	later := now.Add(48 * time.Hour)
	_, err = a.IssueSchedule(3, later.Add(24*time.Hour), later)
	assert.ErrorIs(t, err, ErrScheduleCompleted)
	s, ok := a.Schedule(3)
	require.True(t, ok)
	assert.Equal(t, ScheduleCompleted, s.Status)
	assert.Equal(t, now.Add(30*time.Minute), s.CompletedAt)
	assert.Equal(t, AttemptAlreadyCompleted, a.CanAttempt(3, later).Decision)
}

func TestApplicant_CompleteScheduleTerminal(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	testCases := []struct {
		name    string
		outcome Outcome
	}{
		{name: "已淘汰", outcome: OutcomeRejected},
		{name: "已录用", outcome: OutcomeHired},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			a := Applicant{ID: 1, ActiveRoundID: 3}
			_, err := a.IssueSchedule(3, now.Add(24*time.Hour), now)
			require.NoError(t, err)
			a.Outcome = tc.outcome

			err = a.CompleteSchedule(3, now.Add(time.Hour))
			assert.ErrorIs(t, err, ErrInvalidTransition)
			s, ok := a.Schedule(3)
			require.True(t, ok)
			assert.Equal(t, SchedulePending, s.Status)
			assert.True(t, s.CompletedAt.IsZero())
		})
	}
}

func TestSchedule_IsExpired(t *testing.T) {
	due := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	pending := Schedule{Status: SchedulePending, DueDate: due}
	assert.False(t, pending.IsExpired(due))
	// 一旦过期，之后任何时刻都过期
	for _, d := range []time.Duration{time.Nanosecond, time.Minute, 24 * time.Hour, 365 * 24 * time.Hour} {
		assert.True(t, pending.IsExpired(due.Add(d)))
	}
	completed := Schedule{Status: ScheduleCompleted, DueDate: due}
	assert.False(t, completed.IsExpired(due.Add(time.Hour)))
}

func TestApplicant_CanAttempt(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	testCases := []struct {
		name   string
		before func(t *testing.T) Applicant
		want   AttemptDecision
	}{
		{
			name: "可以作答",
			before: func(t *testing.T) Applicant {
				a := Applicant{ActiveRoundID: 3}
				_, err := a.IssueSchedule(3, now.Add(24*time.Hour), now)
				require.NoError(t, err)
				return a
			},
			want: AttemptAllowed,
		},
		{
			name: "已经过期",
			before: func(t *testing.T) Applicant {
				// 日程在 25 小时前创建，一小时前截止
				a := Applicant{ActiveRoundID: 3}
				_, err := a.IssueSchedule(3, now.Add(-time.Hour), now.Add(-25*time.Hour))
				require.NoError(t, err)
				return a
			},
			want: AttemptExpired,
		},
		{
			name: "没有日程",
			before: func(t *testing.T) Applicant {
				return Applicant{ActiveRoundID: 3}
			},
			want: AttemptNotScheduled,
		},
		{
			name: "已经完成",
			before: func(t *testing.T) Applicant {
				a := Applicant{ActiveRoundID: 3}
				_, err := a.IssueSchedule(3, now.Add(time.Hour), now)
				require.NoError(t, err)
				require.NoError(t, a.CompleteSchedule(3, now))
				return a
			},
			want: AttemptAlreadyCompleted,
		},
		{
			name: "候选人已淘汰",
			before: func(t *testing.T) Applicant {
				a := Applicant{ActiveRoundID: 3}
				_, err := a.IssueSchedule(3, now.Add(24*time.Hour), now)
				require.NoError(t, err)
				a.Outcome = OutcomeRejected
				return a
			},
			want: AttemptClosed,
		},
		{
			name: "候选人已录用且没有日程",
			before: func(t *testing.T) Applicant {
				return Applicant{ActiveRoundID: 3, Outcome: OutcomeHired}
			},
			want: AttemptClosed,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			a := tc.before(t)
			before := a.clone()
			got := a.CanAttempt(3, now)
			assert.Equal(t, tc.want, got.Decision)
			assert.NotEmpty(t, got.Reason)
			// 只读，不会产生结果
			assert.Equal(t, before, a)
			assert.Empty(t, a.RoundResults)
		})
	}
}

func TestApplicant_DeriveStatus(t *testing.T) {
	rounds := []Round{
		{ID: 1, Type: RoundTypeApplication},
		{ID: 2, Type: RoundTypeScreening},
		{ID: 3, Type: RoundTypeAssessment},
		{ID: 4, Type: RoundTypeOffer},
	}
	testCases := []struct {
		name string
		a    Applicant
		want ApplicantStatus
	}{
		{
			name: "已录用",
			a:    Applicant{Outcome: OutcomeHired, ActiveRoundID: 4},
			want: StatusHired,
		},
		{
			name: "已淘汰",
			a:    Applicant{Outcome: OutcomeRejected, ActiveRoundID: 2},
			want: StatusRejected,
		},
		{
			name: "刚投递",
			a: Applicant{ActiveRoundID: 2, RoundResults: []RoundResult{
				{RoundID: 1, Status: ResultPassed},
			}},
			want: StatusSubmitted,
		},
		{
			name: "筛选通过",
			a: Applicant{ActiveRoundID: 2, RoundResults: []RoundResult{
				{RoundID: 1, Status: ResultPassed},
				{RoundID: 2, Status: ResultPassed},
			}},
			want: StatusScreeningPassed,
		},
		{
			name: "筛选通过后进入测评",
			a: Applicant{ActiveRoundID: 3, RoundResults: []RoundResult{
				{RoundID: 2, Status: ResultPassed},
			}},
			want: StatusScreeningPassed,
		},
		{
			name: "测评进行中",
			a: Applicant{ActiveRoundID: 3, RoundResults: []RoundResult{
				{RoundID: 2, Status: ResultPassed},
				{RoundID: 3, Status: ResultPending},
			}},
			want: StatusInProgress,
		},
		{
			name: "进入Offer",
			a: Applicant{ActiveRoundID: 4, RoundResults: []RoundResult{
				{RoundID: 3, Status: ResultPassed},
			}},
			want: StatusInProgress,
		},
		{
			name: "当前轮次已被删除",
			a:    Applicant{ActiveRoundID: 99},
			want: StatusInProgress,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.DeriveStatus(rounds))
		})
	}
}
