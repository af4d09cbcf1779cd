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

	"github.com/ecodeclub/recruit/internal/feedback/internal/domain"
	"github.com/ecodeclub/recruit/internal/feedback/internal/event"
	evtmocks "github.com/ecodeclub/recruit/internal/feedback/internal/event/mocks"
	repomocks "github.com/ecodeclub/recruit/internal/feedback/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Submit(t *testing.T) {
	testCases := []struct {
		name    string
		fb      domain.Feedback
		mock    func(ctrl *gomock.Controller) (*repomocks.MockFeedbackRepository, *evtmocks.MockFeedbackEventProducer)
		wantID  int64
		wantErr error
	}{
		{
			name: "提交成功",
			fb: domain.Feedback{
				JobID:       1,
				ApplicantID: 2,
				RoundID:     3,
				UID:         100,
				Rating:      4,
				Comment:     "题目难度合适",
			},
			mock: func(ctrl *gomock.Controller) (*repomocks.MockFeedbackRepository, *evtmocks.MockFeedbackEventProducer) {
				repo := repomocks.NewMockFeedbackRepository(ctrl)
				p := evtmocks.NewMockFeedbackEventProducer(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(10), nil)
				p.EXPECT().Produce(gomock.Any(), event.FeedbackEvent{
					ID:          10,
					JobID:       1,
					ApplicantID: 2,
					RoundID:     3,
					Rating:      4,
					Comment:     "题目难度合适",
				}).Return(nil)
				return repo, p
			},
			wantID: 10,
		},
		{
			name: "评分非法",
			fb:   domain.Feedback{ApplicantID: 2, RoundID: 3, Rating: 6},
			mock: func(ctrl *gomock.Controller) (*repomocks.MockFeedbackRepository, *evtmocks.MockFeedbackEventProducer) {
				return repomocks.NewMockFeedbackRepository(ctrl), evtmocks.NewMockFeedbackEventProducer(ctrl)
			},
			wantErr: ErrInvalidRating,
		},
		{
			name: "发送消息失败不影响提交",
			fb:   domain.Feedback{ApplicantID: 2, RoundID: 3, Rating: 1},
			mock: func(ctrl *gomock.Controller) (*repomocks.MockFeedbackRepository, *evtmocks.MockFeedbackEventProducer) {
				repo := repomocks.NewMockFeedbackRepository(ctrl)
				p := evtmocks.NewMockFeedbackEventProducer(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(11), nil)
				p.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mock error"))
				return repo, p
			},
			wantID: 11,
		},
		{
			name: "存储失败",
			fb:   domain.Feedback{ApplicantID: 2, RoundID: 3, Rating: 5},
			mock: func(ctrl *gomock.Controller) (*repomocks.MockFeedbackRepository, *evtmocks.MockFeedbackEventProducer) {
				repo := repomocks.NewMockFeedbackRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("mock db error"))
				return repo, evtmocks.NewMockFeedbackEventProducer(ctrl)
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, p := tc.mock(ctrl)
			svc := NewService(repo, p)
			id, err := svc.Submit(context.Background(), tc.fb)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockFeedbackRepository(ctrl)
	svc := NewService(repo, evtmocks.NewMockFeedbackEventProducer(ctrl))

	repo.EXPECT().List(gomock.Any(), int64(1), 3, 0, 10).Return([]domain.Feedback{{ID: 1, Rating: 5}}, nil)
	repo.EXPECT().Count(gomock.Any(), int64(1), 3).Return(int64(1), nil)
	list, total, err := svc.List(context.Background(), 1, 3, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []domain.Feedback{{ID: 1, Rating: 5}}, list)
	assert.Equal(t, int64(1), total)
}
