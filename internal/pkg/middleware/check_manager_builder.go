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

package middleware

import (
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// 管理员登录后，认证服务写入 JWT 的字段
const (
	ClaimCompany       = "company"
	ClaimRole          = "role"
	ClaimEmailVerified = "emailVerified"
)

// PlatformCompanyUID 平台管理员所属的公司，可以管理所有公司的数据
const PlatformCompanyUID = "__platform__"

type Manager struct {
	UID        int64
	CompanyUID string
	Role       string
}

func (m Manager) IsPlatform() bool {
	return m.CompanyUID == PlatformCompanyUID
}

func ManagerFromClaims(claims session.Claims) Manager {
	return Manager{
		UID:        claims.Uid,
		CompanyUID: claims.Get(ClaimCompany).StringOrDefault(""),
		Role:       claims.Get(ClaimRole).StringOrDefault(""),
	}
}

// CheckManagerMiddlewareBuilder 只允许已经激活的管理员访问
type CheckManagerMiddlewareBuilder struct {
	sp     session.Provider
	logger *elog.Component
}

func NewCheckManagerMiddlewareBuilder() *CheckManagerMiddlewareBuilder {
	return &CheckManagerMiddlewareBuilder{
		logger: elog.DefaultLogger,
	}
}

func (c *CheckManagerMiddlewareBuilder) Build() gin.HandlerFunc {
	if c.sp == nil {
		c.sp = session.DefaultProvider()
	}
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := c.sp.Get(gctx)
		if err != nil {
			gctx.AbortWithStatus(http.StatusUnauthorized)
			c.logger.Debug("用户未登录", elog.FieldErr(err))
			return
		}
		m := ManagerFromClaims(sess.Claims())
		if m.CompanyUID == "" {
			gctx.AbortWithStatus(http.StatusForbidden)
			c.logger.Error("非法访问管理接口，未绑定公司", elog.Int64("uid", m.UID))
			return
		}
	}
}
