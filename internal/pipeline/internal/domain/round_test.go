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
	"testing"

	"github.com/ecodeclub/ekit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRounds(t *testing.T) {
	testCases := []struct {
		name    string
		rounds  []Round
		wantErr error
	}{
		{
			name: "合法流程",
			rounds: []Round{
				{ID: 1, Type: RoundTypeApplication},
				{ID: 2, Type: RoundTypeScreening},
				{ID: 3, Type: RoundTypeOffer},
			},
		},
		{
			name:    "没有轮次",
			wantErr: ErrInvalidPipeline,
		},
		{
			name: "第一个轮次不是application",
			rounds: []Round{
				{ID: 1, Type: RoundTypeScreening},
				{ID: 2, Type: RoundTypeApplication},
			},
			wantErr: ErrInvalidPipeline,
		},
		{
			name: "没有application轮次",
			rounds: []Round{
				{ID: 1, Type: RoundTypeScreening},
			},
			wantErr: ErrInvalidPipeline,
		},
		{
			name: "多个application轮次",
			rounds: []Round{
				{ID: 1, Type: RoundTypeApplication},
				{ID: 2, Type: RoundTypeApplication},
			},
			wantErr: ErrInvalidPipeline,
		},
		{
			name: "轮次ID重复",
			rounds: []Round{
				{ID: 1, Type: RoundTypeApplication},
				{ID: 1, Type: RoundTypeOffer},
			},
			wantErr: ErrInvalidPipeline,
		},
		{
			name: "application被禁用",
			rounds: []Round{
				{ID: 1, Type: RoundTypeApplication, Disabled: true},
				{ID: 2, Type: RoundTypeOffer},
			},
			wantErr: ErrInvalidPipeline,
		},
		{
			name: "缺少类型",
			rounds: []Round{
				{ID: 1, Type: RoundTypeApplication},
				{ID: 2},
			},
			wantErr: ErrInvalidPipeline,
		},
		{
			name: "通过线为负数",
			rounds: []Round{
				{ID: 1, Type: RoundTypeApplication},
				{ID: 2, Type: RoundTypeAssessment, SelectionCriteria: ekit.ToPtr[float64](-1)},
			},
			wantErr: ErrInvalidPipeline,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRounds(tc.rounds)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestRoundNavigation(t *testing.T) {
	// 轮次 ID 与位置无关
	rounds := []Round{
		{ID: 10, Type: RoundTypeApplication},
		{ID: 3, Type: RoundTypeScreening},
		{ID: 7, Type: RoundTypeAssessment, Disabled: true},
		{ID: 5, Type: RoundTypeOffer},
	}

	r, err := ResolveRound(rounds, 7)
	require.NoError(t, err)
	assert.True(t, r.Disabled)

	_, err = ResolveRound(rounds, 99)
	assert.ErrorIs(t, err, ErrRoundNotFound)

	next, ok := NextRound(rounds, 3)
	require.True(t, ok)
	assert.Equal(t, 5, next.ID)

	prev, ok := PrevRound(rounds, 5)
	require.True(t, ok)
	assert.Equal(t, 3, prev.ID)

	_, ok = NextRound(rounds, 99)
	assert.False(t, ok)

	assert.True(t, IsLastRound(rounds, 5))
	assert.False(t, IsLastRound(rounds, 3))

	first, err := FirstRound(rounds)
	require.NoError(t, err)
	assert.Equal(t, 3, first.ID)

	assert.Equal(t, 2, Order(rounds, 7))
	assert.Equal(t, -1, Order(rounds, 99))
}

func TestRound_Passes(t *testing.T) {
	r := Round{SelectionCriteria: ekit.ToPtr[float64](60)}
	assert.True(t, r.Passes(nil))
	assert.True(t, r.Passes(ekit.ToPtr[float64](60)))
	assert.False(t, r.Passes(ekit.ToPtr[float64](59.5)))
	assert.True(t, Round{}.Passes(ekit.ToPtr[float64](0)))
}

func TestJob_RemovedRounds(t *testing.T) {
	job := Job{Rounds: []Round{{ID: 1}, {ID: 2}, {ID: 3}}}
	assert.Equal(t, []int{2}, job.RemovedRounds([]Round{{ID: 3}, {ID: 1}, {ID: 4}}))
	assert.Empty(t, job.RemovedRounds([]Round{{ID: 1}, {ID: 2}, {ID: 3}}))
}

func TestOperator_CanManage(t *testing.T) {
	job := Job{CompanyUID: "c1"}
	assert.True(t, Operator{CompanyUID: "c1"}.CanManage(job))
	assert.False(t, Operator{CompanyUID: "c2"}.CanManage(job))
	assert.False(t, Operator{}.CanManage(Job{}))
	assert.True(t, SystemOperator().CanManage(job))
}
