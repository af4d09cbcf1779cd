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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/recruit/internal/feedback/internal/domain"
	"github.com/ecodeclub/recruit/internal/feedback/internal/service"
	"github.com/ecodeclub/recruit/internal/pipeline"
	"github.com/ecodeclub/recruit/internal/pkg/middleware"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &AdminHandler{}

// AdminHandler 管理员查看自己公司职位的反馈
type AdminHandler struct {
	svc    service.Service
	jobSvc pipeline.JobService
}

func NewAdminHandler(svc service.Service, jobSvc pipeline.JobService) *AdminHandler {
	return &AdminHandler{
		svc:    svc,
		jobSvc: jobSvc,
	}
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/feedback")
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/stats", ginx.BS[StatsReq](h.Stats))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	if _, err := h.jobSvc.Detail(ctx, operator(sess), req.JobID); err != nil {
		return errorResult(err)
	}
	fbs, total, err := h.svc.List(ctx, req.JobID, req.RoundID, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[Feedback]{
			List: slice.Map(fbs, func(idx int, src domain.Feedback) Feedback {
				return newFeedback(src)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *AdminHandler) Stats(ctx *ginx.Context, req StatsReq, sess session.Session) (ginx.Result, error) {
	if _, err := h.jobSvc.Detail(ctx, operator(sess), req.JobID); err != nil {
		return errorResult(err)
	}
	stats, err := h.svc.Stats(ctx, req.JobID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(stats, func(idx int, src domain.RoundStat) RoundStat {
			return RoundStat{
				RoundID:   src.RoundID,
				Count:     src.Count,
				AvgRating: src.AvgRating,
			}
		}),
	}, nil
}

func operator(sess session.Session) pipeline.Operator {
	m := middleware.ManagerFromClaims(sess.Claims())
	return pipeline.Operator{
		UID:        m.UID,
		CompanyUID: m.CompanyUID,
		Platform:   m.IsPlatform(),
	}
}
