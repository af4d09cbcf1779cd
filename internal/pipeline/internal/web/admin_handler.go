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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/service"
	"github.com/ecodeclub/recruit/internal/pkg/middleware"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &AdminHandler{}

// AdminHandler 企业管理员维护职位流程，推进候选人
type AdminHandler struct {
	jobSvc       service.JobService
	applicantSvc service.ApplicantService
	now          func() time.Time
}

func NewAdminHandler(jobSvc service.JobService, applicantSvc service.ApplicantService) *AdminHandler {
	return &AdminHandler{
		jobSvc:       jobSvc,
		applicantSvc: applicantSvc,
		now:          time.Now,
	}
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	jg := server.Group("/jobs")
	jg.POST("/save", ginx.BS[SaveJobReq](h.SaveJob))
	jg.POST("/status", ginx.BS[UpdateJobStatusReq](h.UpdateJobStatus))
	jg.POST("/detail", ginx.BS[IDReq](h.JobDetail))
	jg.POST("/list", ginx.BS[Page](h.JobList))

	ag := server.Group("/applicants")
	ag.POST("/list", ginx.BS[ListApplicantReq](h.ApplicantList))
	ag.POST("/detail", ginx.BS[IDReq](h.ApplicantDetail))
	ag.POST("/result", ginx.BS[RecordResultReq](h.RecordResult))
	ag.POST("/advance", ginx.BS[AdvanceReq](h.Advance))
	ag.POST("/reject", ginx.BS[RejectReq](h.Reject))
	ag.POST("/schedule", ginx.BS[IssueScheduleReq](h.IssueSchedule))
	ag.POST("/schedule/complete", ginx.BS[CompleteScheduleReq](h.CompleteSchedule))
}

func (h *AdminHandler) SaveJob(ctx *ginx.Context, req SaveJobReq, sess session.Session) (ginx.Result, error) {
	id, err := h.jobSvc.Save(ctx, h.operator(sess), req.Job.toDomain())
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) UpdateJobStatus(ctx *ginx.Context, req UpdateJobStatusReq, sess session.Session) (ginx.Result, error) {
	err := h.jobSvc.UpdateStatus(ctx, h.operator(sess), req.ID, domain.JobStatus(req.Status))
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) JobDetail(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	job, err := h.jobSvc.Detail(ctx, h.operator(sess), req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newJob(job)}, nil
}

func (h *AdminHandler) JobList(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	jobs, total, err := h.jobSvc.List(ctx, h.operator(sess), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[Job]{
			List: slice.Map(jobs, func(_ int, src domain.Job) Job {
				return newJob(src)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *AdminHandler) ApplicantList(ctx *ginx.Context, req ListApplicantReq, sess session.Session) (ginx.Result, error) {
	list, total, err := h.applicantSvc.ListByJob(ctx, h.operator(sess), req.JobID,
		domain.ApplicantStatus(req.Status), req.Offset, req.Limit)
	if err != nil {
		return errorResult(err)
	}
	now := h.now()
	return ginx.Result{
		Data: ginx.DataList[Applicant]{
			List: slice.Map(list, func(_ int, src domain.Applicant) Applicant {
				return newApplicant(src, now)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *AdminHandler) ApplicantDetail(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	a, err := h.applicantSvc.Detail(ctx, h.operator(sess), req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newApplicant(a, h.now())}, nil
}

// RecordResult 过期的结果已经写入历史，但是不会推动流程，返回对应的错误码提示管理员
func (h *AdminHandler) RecordResult(ctx *ginx.Context, req RecordResultReq, sess session.Session) (ginx.Result, error) {
	a, err := h.applicantSvc.RecordResult(ctx, h.operator(sess), req.ApplicantID, req.Result.toDomain())
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newApplicant(a, h.now())}, nil
}

func (h *AdminHandler) Advance(ctx *ginx.Context, req AdvanceReq, sess session.Session) (ginx.Result, error) {
	a, err := h.applicantSvc.Advance(ctx, h.operator(sess), req.ApplicantID, req.ToRoundID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newApplicant(a, h.now())}, nil
}

func (h *AdminHandler) Reject(ctx *ginx.Context, req RejectReq, sess session.Session) (ginx.Result, error) {
	a, err := h.applicantSvc.Reject(ctx, h.operator(sess), req.ApplicantID, req.Reason)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newApplicant(a, h.now())}, nil
}

func (h *AdminHandler) IssueSchedule(ctx *ginx.Context, req IssueScheduleReq, sess session.Session) (ginx.Result, error) {
	sch, err := h.applicantSvc.IssueSchedule(ctx, h.operator(sess), req.ApplicantID, req.RoundID, time.UnixMilli(req.DueDate))
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newSchedule(sch, h.now())}, nil
}

func (h *AdminHandler) CompleteSchedule(ctx *ginx.Context, req CompleteScheduleReq, sess session.Session) (ginx.Result, error) {
	a, err := h.applicantSvc.CompleteSchedule(ctx, h.operator(sess), req.ApplicantID, req.RoundID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newApplicant(a, h.now())}, nil
}

func (h *AdminHandler) operator(sess session.Session) domain.Operator {
	m := middleware.ManagerFromClaims(sess.Claims())
	return domain.Operator{
		UID:        m.UID,
		CompanyUID: m.CompanyUID,
		Platform:   m.IsPlatform(),
	}
}
