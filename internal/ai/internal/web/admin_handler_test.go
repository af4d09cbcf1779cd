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
	"fmt"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/recruit/internal/ai/internal/domain"
	"github.com/ecodeclub/recruit/internal/ai/internal/errs"
	"github.com/ecodeclub/recruit/internal/ai/internal/service"
	svcmocks "github.com/ecodeclub/recruit/internal/ai/internal/service/mocks"
	"github.com/ecodeclub/recruit/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdminHandler_GenerateInterview(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.Generator
		req      GenerateInterviewReq
		wantCode int
		wantData InterviewScript
	}{
		{
			name: "生成成功",
			mock: func(ctrl *gomock.Controller) service.Generator {
				svc := svcmocks.NewMockGenerator(ctrl)
				svc.EXPECT().GenerateInterview(gomock.Any(), domain.InterviewInput{
					JobTitle:      "后端工程师",
					RoundName:     "技术面",
					QuestionCount: 3,
				}).Return(domain.InterviewScript{
					Intro:     "你好",
					Questions: []string{"GMP"},
					Outro:     "谢谢",
				}, nil)
				return svc
			},
			req: GenerateInterviewReq{
				JobTitle:      "后端工程师",
				RoundName:     "技术面",
				QuestionCount: 3,
			},
			wantData: InterviewScript{
				Intro:     "你好",
				Questions: []string{"GMP"},
				Outro:     "谢谢",
			},
		},
		{
			name: "参数不完整",
			mock: func(ctrl *gomock.Controller) service.Generator {
				svc := svcmocks.NewMockGenerator(ctrl)
				svc.EXPECT().GenerateInterview(gomock.Any(), gomock.Any()).
					Return(domain.InterviewScript{}, fmt.Errorf("%w: 职位和轮次不能为空", service.ErrInvalidInput))
				return svc
			},
			wantCode: errs.InvalidInput.Code,
		},
		{
			name: "无法解析",
			mock: func(ctrl *gomock.Controller) service.Generator {
				svc := svcmocks.NewMockGenerator(ctrl)
				svc.EXPECT().GenerateInterview(gomock.Any(), gomock.Any()).
					Return(domain.InterviewScript{}, service.ErrInvalidAnswer)
				return svc
			},
			req:      GenerateInterviewReq{JobTitle: "后端工程师", RoundName: "技术面"},
			wantCode: errs.InvalidAnswer.Code,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := gin.New()
			NewAdminHandler(tc.mock(ctrl)).PrivateRoutes(server)

			req, err := http.NewRequest(http.MethodPost, "/ai/interview/generate", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[InterviewScript]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantData, res.Data)
		})
	}
}

func TestAdminHandler_RegenerateQuestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := svcmocks.NewMockGenerator(ctrl)
	svc.EXPECT().RegenerateQuestion(gomock.Any(), domain.QuestionInput{
		Question: "什么是 GMP",
		Feedback: "太简单了",
	}).Return(domain.QuestionDraft{
		Question:  "调度器如何处理系统调用",
		FollowUps: []string{"hand off 机制"},
	}, nil)
	server := gin.New()
	NewAdminHandler(svc).PrivateRoutes(server)

	req, err := http.NewRequest(http.MethodPost, "/ai/interview/question/regenerate", iox.NewJSONReader(RegenerateQuestionReq{
		Question: "什么是 GMP",
		Feedback: "太简单了",
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[QuestionDraft]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan()
	assert.Equal(t, 0, res.Code)
	assert.Equal(t, QuestionDraft{
		Question:  "调度器如何处理系统调用",
		FollowUps: []string{"hand off 机制"},
	}, res.Data)
}
