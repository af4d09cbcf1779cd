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

package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"github.com/ecodeclub/recruit/internal/pkg/middleware"
)

// PlatformCompanyUID 平台管理员不属于任何一家公司
const PlatformCompanyUID = middleware.PlatformCompanyUID

type AccountStatus string

const (
	AccountStatusInvited AccountStatus = "invited"
	AccountStatusActive  AccountStatus = "active"
)

func (s AccountStatus) String() string {
	return string(s)
}

// Account 管理员账号。
// 邀请阶段是一个占位记录，持有一次性的邀请令牌；
// 激活后以登录身份的 ID 作为主键，令牌不再保留。
type Account struct {
	ID              string
	Status          AccountStatus
	InvitationToken string
	Name            string
	Email           string
	Designation     string
	PermissionsRole string
	CompanyUID      string
	EmailVerified   bool
	Preferences     Preferences
	Ctime           int64
	Utime           int64
}

func (a Account) IsPlatform() bool {
	return a.CompanyUID == PlatformCompanyUID
}

func (a Account) IsInvited() bool {
	return a.Status == AccountStatusInvited
}

// Activate 由占位记录生成正式账号
func (a Account) Activate(identityID int64, emailVerified bool, now int64) Account {
	return Account{
		ID:              IdentityAccountID(identityID),
		Status:          AccountStatusActive,
		Name:            a.Name,
		Email:           a.Email,
		Designation:     a.Designation,
		PermissionsRole: a.PermissionsRole,
		CompanyUID:      a.CompanyUID,
		EmailVerified:   emailVerified,
		Preferences:     DefaultPreferences(),
		// 创建时间沿用邀请时间
		Ctime: a.Ctime,
		Utime: now,
	}
}

type Preferences struct {
	Language          string `json:"language"`
	Timezone          string `json:"timezone"`
	EmailNotification bool   `json:"emailNotification"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Language:          "zh-CN",
		Timezone:          "Asia/Shanghai",
		EmailNotification: true,
	}
}

// Invitation 邀请链接打开时展示给受邀人的信息
type Invitation struct {
	PlaceholderID   string
	Name            string
	Email           string
	Designation     string
	PermissionsRole string
	CompanyUID      string
}

// Redemption 邀请令牌的兑换记录，令牌只能兑换一次
type Redemption struct {
	TokenHash     string
	PlaceholderID string
	AccountID     string
	Ctime         int64
}

// IdentityAccountID 激活后的账号以登录身份为主键
func IdentityAccountID(identityID int64) string {
	return strconv.FormatInt(identityID, 10)
}

// HashToken 数据库中只保存令牌的摘要
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
