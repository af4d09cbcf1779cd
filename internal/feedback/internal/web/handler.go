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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/recruit/internal/feedback/internal/domain"
	"github.com/ecodeclub/recruit/internal/feedback/internal/service"
	"github.com/ecodeclub/recruit/internal/pipeline"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

// Handler 候选人提交反馈
type Handler struct {
	svc          service.Service
	applicantSvc pipeline.ApplicantService
}

func NewHandler(svc service.Service, applicantSvc pipeline.ApplicantService) *Handler {
	return &Handler{
		svc:          svc,
		applicantSvc: applicantSvc,
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/feedback/submit", ginx.BS[SubmitReq](h.Submit))
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	// 只能给自己的投递记录提交反馈，职位以投递记录为准
	applicants, err := h.applicantSvc.ListByCandidate(ctx, uid)
	if err != nil {
		return systemErrorResult, err
	}
	a, ok := slice.Find(applicants, func(src pipeline.Applicant) bool {
		return src.ID == req.ApplicantID
	})
	if !ok {
		return errorResult(fmt.Errorf("%w: uid=%d applicant=%d", pipeline.ErrApplicantNotFound, uid, req.ApplicantID))
	}
	id, err := h.svc.Submit(ctx, domain.Feedback{
		JobID:       a.JobID,
		ApplicantID: a.ID,
		RoundID:     req.RoundID,
		UID:         uid,
		Rating:      req.Rating,
		Comment:     req.Comment,
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: id}, nil
}
