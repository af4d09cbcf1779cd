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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/recruit/internal/manager/internal/domain"
	"github.com/ecodeclub/recruit/internal/manager/internal/service"
	"github.com/ecodeclub/recruit/internal/pkg/middleware"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

// Handler 受邀人接受邀请
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/accept-invite/validate", ginx.W(h.Validate))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/accept-invite/activate", ginx.BS[ActivateReq](h.Activate))
	server.POST("/managers/profile", ginx.S(h.Profile))
}

func (h *Handler) Validate(ctx *ginx.Context) (ginx.Result, error) {
	inv, err := h.svc.Validate(ctx, ctx.Query("token").StringOrDefault(""))
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: Invitation{
			Name:            inv.Name,
			Email:           inv.Email,
			Designation:     inv.Designation,
			PermissionsRole: inv.PermissionsRole,
			CompanyUID:      inv.CompanyUID,
		},
	}, nil
}

// Activate 登录身份由认证服务提供，激活成功后刷新会话，带上公司和角色
func (h *Handler) Activate(ctx *ginx.Context, req ActivateReq, sess session.Session) (ginx.Result, error) {
	claims := sess.Claims()
	verified, _ := strconv.ParseBool(claims.Get(middleware.ClaimEmailVerified).StringOrDefault("false"))
	acc, err := h.svc.Activate(ctx, service.ActivateReq{
		Token:         req.Token,
		IdentityID:    claims.Uid,
		EmailVerified: verified,
	})
	if err != nil {
		return errorResult(err)
	}
	_, err = session.NewSessionBuilder(ctx, claims.Uid).
		SetJwtData(map[string]string{
			middleware.ClaimCompany:       acc.CompanyUID,
			middleware.ClaimRole:          acc.PermissionsRole,
			middleware.ClaimEmailVerified: strconv.FormatBool(acc.EmailVerified),
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newAccount(acc)}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	acc, err := h.svc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newAccount(acc)}, nil
}

var _ ginx.Handler = &AdminHandler{}

// AdminHandler 管理员邀请新的管理员
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/managers")
	g.POST("/invite", ginx.BS[InviteReq](h.Invite))
	g.POST("/list", ginx.BS[Page](h.List))
}

func (h *AdminHandler) Invite(ctx *ginx.Context, req InviteReq, sess session.Session) (ginx.Result, error) {
	acc, token, err := h.svc.Invite(ctx, inviter(sess), domain.Account{
		Name:            req.Name,
		Email:           req.Email,
		Designation:     req.Designation,
		PermissionsRole: req.PermissionsRole,
		CompanyUID:      req.CompanyUID,
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: InviteResp{
			PlaceholderID: acc.ID,
			Token:         token,
		},
	}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	accs, total, err := h.svc.List(ctx, inviter(sess), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[Account]{
			List:  newAccounts(accs),
			Total: int(total),
		},
	}, nil
}

func inviter(sess session.Session) domain.Inviter {
	m := middleware.ManagerFromClaims(sess.Claims())
	return domain.Inviter{
		UID:        m.UID,
		CompanyUID: m.CompanyUID,
	}
}
