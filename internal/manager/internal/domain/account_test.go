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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccount_Activate(t *testing.T) {
	placeholder := Account{
		ID:              "inv_1",
		Status:          AccountStatusInvited,
		InvitationToken: HashToken("token"),
		Name:            "张三",
		Email:           "zhangsan@example.com",
		Designation:     "HR",
		PermissionsRole: "recruiter",
		CompanyUID:      "company-1",
		Ctime:           1,
	}
	acc := placeholder.Activate(123, true, 100)
	assert.Equal(t, Account{
		ID:              "123",
		Status:          AccountStatusActive,
		Name:            "张三",
		Email:           "zhangsan@example.com",
		Designation:     "HR",
		PermissionsRole: "recruiter",
		CompanyUID:      "company-1",
		EmailVerified:   true,
		Preferences:     DefaultPreferences(),
		Ctime:           1,
		Utime:           100,
	}, acc)
	assert.Empty(t, acc.InvitationToken)
	assert.False(t, acc.IsPlatform())
}

func TestHashToken(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}
