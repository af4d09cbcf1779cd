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

import "errors"

var (
	ErrInvalidInvitation = errors.New("邀请令牌无效")
	ErrInvitationUsed    = errors.New("邀请令牌已被使用")
	ErrActivationFailed  = errors.New("激活管理员账号失败")
	ErrInvalidInviteInfo = errors.New("邀请信息不完整")
)

// Inviter 发出邀请的管理员
type Inviter struct {
	UID        int64
	CompanyUID string
}

func (i Inviter) IsPlatform() bool {
	return i.CompanyUID == PlatformCompanyUID
}
