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
	"github.com/ecodeclub/recruit/internal/manager/internal/domain"
)

type InviteReq struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Designation     string `json:"designation"`
	PermissionsRole string `json:"permissionsRole"`
	// CompanyUID 只有平台管理员可以指定
	CompanyUID string `json:"companyUid"`
}

type InviteResp struct {
	PlaceholderID string `json:"placeholderId"`
	Token         string `json:"token"`
}

type ActivateReq struct {
	Token string `json:"token"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type Invitation struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Designation     string `json:"designation"`
	PermissionsRole string `json:"permissionsRole"`
	CompanyUID      string `json:"companyUid"`
}

type Preferences struct {
	Language          string `json:"language"`
	Timezone          string `json:"timezone"`
	EmailNotification bool   `json:"emailNotification"`
}

type Account struct {
	ID              string      `json:"id"`
	Status          string      `json:"status"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Designation     string      `json:"designation"`
	PermissionsRole string      `json:"permissionsRole"`
	CompanyUID      string      `json:"companyUid"`
	EmailVerified   bool        `json:"emailVerified"`
	Preferences     Preferences `json:"preferences"`
	Ctime           int64       `json:"ctime"`
}

func newAccount(acc domain.Account) Account {
	return Account{
		ID:              acc.ID,
		Status:          acc.Status.String(),
		Name:            acc.Name,
		Email:           acc.Email,
		Designation:     acc.Designation,
		PermissionsRole: acc.PermissionsRole,
		CompanyUID:      acc.CompanyUID,
		EmailVerified:   acc.EmailVerified,
		Preferences:     Preferences(acc.Preferences),
		Ctime:           acc.Ctime,
	}
}

func newAccounts(accs []domain.Account) []Account {
	return slice.Map(accs, func(_ int, src domain.Account) Account {
		return newAccount(src)
	})
}
