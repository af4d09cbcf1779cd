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

package web

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/errs"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestErrorResult(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		want    ginx.Result
		wantErr bool
	}{
		{
			name: "日程已完成",
			err:  service.ErrScheduleCompleted,
			want: ginx.Result{Code: errs.ScheduleCompleted.Code, Msg: errs.ScheduleCompleted.Msg},
		},
		{
			name: "包装后的状态冲突",
			err:  fmt.Errorf("%w: 候选人已处于终态 rejected", service.ErrInvalidTransition),
			want: ginx.Result{Code: errs.InvalidTransition.Code, Msg: errs.InvalidTransition.Msg},
		},
		{
			name: "重复的有效日程",
			err:  service.ErrDuplicateActiveSchedule,
			want: ginx.Result{Code: errs.DuplicateActiveSchedule.Code, Msg: errs.DuplicateActiveSchedule.Msg},
		},
		{
			name:    "未知错误",
			err:     errors.New("db error"),
			want:    systemErrorResult,
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := errorResult(tc.err)
			assert.Equal(t, tc.want, got)
			if tc.wantErr {
				assert.Equal(t, tc.err, err)
				return
			}
			assert.NoError(t, err)
		})
	}
	// 不同的冲突错误码不能相同
	assert.NotEqual(t, errs.ScheduleCompleted.Code, errs.DuplicateActiveSchedule.Code)
}
