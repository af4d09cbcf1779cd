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
	"strconv"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/errs"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

// Handler 候选人投递以及进入测评前的校验
type Handler struct {
	svc service.ApplicantService
	now func() time.Time
}

func NewHandler(svc service.ApplicantService) *Handler {
	return &Handler{
		svc: svc,
		now: time.Now,
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/jobs/apply", ginx.BS[ApplyReq](h.Apply))
	server.POST("/applicants/mine", ginx.S(h.Mine))
	server.GET("/assessment/:jobId/:roundId", ginx.S(h.Assessment))
}

func (h *Handler) Apply(ctx *ginx.Context, req ApplyReq, sess session.Session) (ginx.Result, error) {
	a, err := h.svc.Apply(ctx, req.JobID, domain.Candidate{
		ID:        sess.Claims().Uid,
		Name:      req.Name,
		Email:     req.Email,
		ResumeURL: req.ResumeURL,
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newApplicant(a, h.now())}, nil
}

func (h *Handler) Mine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	list, err := h.svc.ListByCandidate(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	now := h.now()
	return ginx.Result{
		Data: slice.Map(list, func(_ int, src domain.Applicant) Applicant {
			return newApplicant(src, now)
		}),
	}, nil
}

// Assessment 候选人打开测评链接时调用，不允许作答时 Reason 中给出提示
func (h *Handler) Assessment(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	jobID, err := strconv.ParseInt(ctx.Param("jobId").StringOrDefault(""), 10, 64)
	if err != nil {
		return ginx.Result{Code: errs.JobNotFound.Code, Msg: errs.JobNotFound.Msg}, nil
	}
	roundID, err := strconv.Atoi(ctx.Param("roundId").StringOrDefault(""))
	if err != nil {
		return ginx.Result{Code: errs.RoundNotFound.Code, Msg: errs.RoundNotFound.Msg}, nil
	}
	attempt, err := h.svc.AssessmentAccess(ctx, jobID, sess.Claims().Uid, roundID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newAttempt(attempt)}, nil
}
