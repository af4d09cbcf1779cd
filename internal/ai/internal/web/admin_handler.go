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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/recruit/internal/ai/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &AdminHandler{}

// AdminHandler 管理员设计面试轮次时使用
type AdminHandler struct {
	svc service.Generator
}

func NewAdminHandler(svc service.Generator) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/ai/interview")
	g.POST("/generate", ginx.B[GenerateInterviewReq](h.GenerateInterview))
	g.POST("/question/regenerate", ginx.B[RegenerateQuestionReq](h.RegenerateQuestion))
}

func (h *AdminHandler) GenerateInterview(ctx *ginx.Context, req GenerateInterviewReq) (ginx.Result, error) {
	script, err := h.svc.GenerateInterview(ctx, req.toDomain())
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: InterviewScript{
			Intro:     script.Intro,
			Questions: script.Questions,
			Outro:     script.Outro,
		},
	}, nil
}

func (h *AdminHandler) RegenerateQuestion(ctx *ginx.Context, req RegenerateQuestionReq) (ginx.Result, error) {
	draft, err := h.svc.RegenerateQuestion(ctx, req.toDomain())
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: QuestionDraft{
			Question:  draft.Question,
			FollowUps: draft.FollowUps,
		},
	}, nil
}
