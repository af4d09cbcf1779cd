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

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/recruit/internal/email"
	emailmocks "github.com/ecodeclub/recruit/internal/email/mocks"
	"github.com/ecodeclub/recruit/internal/manager/internal/domain"
	"github.com/ecodeclub/recruit/internal/manager/internal/repository"
	repomocks "github.com/ecodeclub/recruit/internal/manager/internal/repository/mocks"
	"github.com/ecodeclub/recruit/internal/pkg/sngenerator"
	"github.com/ecodeclub/recruit/internal/pkg/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "token-1"

func newTestService(t *testing.T, repo repository.AccountRepository, mailer email.Service) *service {
	ids, err := snowflake.NewGenerator(0, snowflake.AppInvitation)
	require.NoError(t, err)
	tokenGen := sngenerator.NewGenerator(sngenerator.WithUUID(func() string {
		return "uuid"
	}))
	svc := NewService(repo, mailer, ids, tokenGen, Config{
		AcceptURL: "https://recruit.example.com/accept-invite",
		MailFrom:  "招聘平台",
	}).(*service)
	svc.now = func() time.Time {
		return time.UnixMilli(1000)
	}
	return svc
}

func testPlaceholder() domain.Account {
	return domain.Account{
		ID:              "inv_1",
		Status:          domain.AccountStatusInvited,
		InvitationToken: domain.HashToken(testToken),
		Name:            "张三",
		Email:           "zhangsan@example.com",
		Designation:     "HR",
		PermissionsRole: "recruiter",
		CompanyUID:      "company-1",
	}
}

func TestService_Invite(t *testing.T) {
	testCases := []struct {
		name        string
		inviter     domain.Inviter
		acc         domain.Account
		mock        func(ctrl *gomock.Controller) (repository.AccountRepository, email.Service)
		wantCompany string
		wantErr     error
	}{
		{
			name:    "邀请本公司管理员",
			inviter: domain.Inviter{UID: 1, CompanyUID: "company-1"},
			acc: domain.Account{
				Name:       "张三",
				Email:      "zhangsan@example.com",
				CompanyUID: "company-2",
			},
			mock: func(ctrl *gomock.Controller) (repository.AccountRepository, email.Service) {
				repo := repomocks.NewMockAccountRepository(ctrl)
				repo.EXPECT().CreatePlaceholder(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, acc domain.Account) error {
					assert.Equal(t, domain.AccountStatusInvited, acc.Status)
					assert.NotEmpty(t, acc.InvitationToken)
					assert.Contains(t, acc.ID, "inv_")
					return nil
				})
				mailer := emailmocks.NewMockService(ctrl)
				mailer.EXPECT().SendMail(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, mail email.Mail) error {
					assert.Equal(t, "zhangsan@example.com", mail.To)
					assert.Contains(t, string(mail.Body), "https://recruit.example.com/accept-invite?token=")
					return nil
				})
				return repo, mailer
			},
			wantCompany: "company-1",
		},
		{
			name:    "平台管理员邀请其它公司",
			inviter: domain.Inviter{UID: 1, CompanyUID: domain.PlatformCompanyUID},
			acc: domain.Account{
				Name:       "张三",
				Email:      "zhangsan@example.com",
				CompanyUID: "company-2",
			},
			mock: func(ctrl *gomock.Controller) (repository.AccountRepository, email.Service) {
				repo := repomocks.NewMockAccountRepository(ctrl)
				repo.EXPECT().CreatePlaceholder(gomock.Any(), gomock.Any()).Return(nil)
				mailer := emailmocks.NewMockService(ctrl)
				mailer.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(nil)
				return repo, mailer
			},
			wantCompany: "company-2",
		},
		{
			name:    "邮件发送失败不影响邀请",
			inviter: domain.Inviter{UID: 1, CompanyUID: "company-1"},
			acc: domain.Account{
				Name:  "张三",
				Email: "zhangsan@example.com",
			},
			mock: func(ctrl *gomock.Controller) (repository.AccountRepository, email.Service) {
				repo := repomocks.NewMockAccountRepository(ctrl)
				repo.EXPECT().CreatePlaceholder(gomock.Any(), gomock.Any()).Return(nil)
				mailer := emailmocks.NewMockService(ctrl)
				mailer.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(errors.New("mock mail error"))
				return repo, mailer
			},
			wantCompany: "company-1",
		},
		{
			name:    "缺少邮箱",
			inviter: domain.Inviter{UID: 1, CompanyUID: "company-1"},
			acc:     domain.Account{Name: "张三"},
			mock: func(ctrl *gomock.Controller) (repository.AccountRepository, email.Service) {
				return repomocks.NewMockAccountRepository(ctrl), emailmocks.NewMockService(ctrl)
			},
			wantErr: ErrInvalidInviteInfo,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, mailer := tc.mock(ctrl)
			svc := newTestService(t, repo, mailer)
			acc, token, err := svc.Invite(context.Background(), tc.inviter, tc.acc)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantCompany, acc.CompanyUID)
			assert.Equal(t, token, acc.InvitationToken)
		})
	}
}

func TestService_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		token   string
		mock    func(repo *repomocks.MockAccountRepository)
		want    domain.Invitation
		wantErr error
	}{
		{
			name:  "有效的邀请",
			token: testToken,
			mock: func(repo *repomocks.MockAccountRepository) {
				repo.EXPECT().FindRedemption(gomock.Any(), testToken).Return(domain.Redemption{}, repository.ErrRedemptionNotFound)
				repo.EXPECT().FindInvited(gomock.Any(), testToken).Return(testPlaceholder(), nil)
			},
			want: domain.Invitation{
				PlaceholderID:   "inv_1",
				Name:            "张三",
				Email:           "zhangsan@example.com",
				Designation:     "HR",
				PermissionsRole: "recruiter",
				CompanyUID:      "company-1",
			},
		},
		{
			name:  "已经使用过的邀请",
			token: testToken,
			mock: func(repo *repomocks.MockAccountRepository) {
				repo.EXPECT().FindRedemption(gomock.Any(), testToken).Return(domain.Redemption{AccountID: "123"}, nil)
			},
			wantErr: ErrInvitationUsed,
		},
		{
			name:  "不存在的令牌",
			token: "unknown",
			mock: func(repo *repomocks.MockAccountRepository) {
				repo.EXPECT().FindRedemption(gomock.Any(), "unknown").Return(domain.Redemption{}, repository.ErrRedemptionNotFound)
				repo.EXPECT().FindInvited(gomock.Any(), "unknown").Return(domain.Account{}, repository.ErrAccountNotFound)
			},
			wantErr: ErrInvalidInvitation,
		},
		{
			name:    "空令牌",
			mock:    func(repo *repomocks.MockAccountRepository) {},
			wantErr: ErrInvalidInvitation,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockAccountRepository(ctrl)
			tc.mock(repo)
			svc := newTestService(t, repo, emailmocks.NewMockService(ctrl))
			inv, err := svc.Validate(context.Background(), tc.token)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, inv)
		})
	}
}

func TestService_Activate(t *testing.T) {
	activated := testPlaceholder().Activate(123, true, 1000)
	testCases := []struct {
		name    string
		req     ActivateReq
		mock    func(repo *repomocks.MockAccountRepository)
		want    domain.Account
		wantErr error
	}{
		{
			name: "激活成功",
			req:  ActivateReq{Token: testToken, IdentityID: 123, EmailVerified: true},
			mock: func(repo *repomocks.MockAccountRepository) {
				repo.EXPECT().FindRedemption(gomock.Any(), testToken).Return(domain.Redemption{}, repository.ErrRedemptionNotFound)
				repo.EXPECT().FindInvited(gomock.Any(), testToken).Return(testPlaceholder(), nil)
				repo.EXPECT().Activate(gomock.Any(), testPlaceholder(), activated).Return(nil)
			},
			want: activated,
		},
		{
			name: "同一个身份重试",
			req:  ActivateReq{Token: testToken, IdentityID: 123, EmailVerified: true},
			mock: func(repo *repomocks.MockAccountRepository) {
				repo.EXPECT().FindRedemption(gomock.Any(), testToken).Return(domain.Redemption{AccountID: "123"}, nil)
				repo.EXPECT().FindByID(gomock.Any(), "123").Return(activated, nil)
			},
			want: activated,
		},
		{
			name: "其它身份已经兑换",
			req:  ActivateReq{Token: testToken, IdentityID: 456},
			mock: func(repo *repomocks.MockAccountRepository) {
				repo.EXPECT().FindRedemption(gomock.Any(), testToken).Return(domain.Redemption{AccountID: "123"}, nil)
			},
			wantErr: ErrInvitationUsed,
		},
		{
			name: "并发激活失败的一方",
			req:  ActivateReq{Token: testToken, IdentityID: 456},
			mock: func(repo *repomocks.MockAccountRepository) {
				gomock.InOrder(
					repo.EXPECT().FindRedemption(gomock.Any(), testToken).Return(domain.Redemption{}, repository.ErrRedemptionNotFound),
					repo.EXPECT().FindInvited(gomock.Any(), testToken).Return(testPlaceholder(), nil),
					repo.EXPECT().Activate(gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.ErrPlaceholderGone),
					repo.EXPECT().FindRedemption(gomock.Any(), testToken).Return(domain.Redemption{AccountID: "123"}, nil),
				)
			},
			wantErr: ErrInvitationUsed,
		},
		{
			name: "身份已经是管理员",
			req:  ActivateReq{Token: testToken, IdentityID: 123},
			mock: func(repo *repomocks.MockAccountRepository) {
				repo.EXPECT().FindRedemption(gomock.Any(), testToken).Return(domain.Redemption{}, repository.ErrRedemptionNotFound)
				repo.EXPECT().FindInvited(gomock.Any(), testToken).Return(testPlaceholder(), nil)
				repo.EXPECT().Activate(gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.ErrAccountExists)
			},
			wantErr: ErrActivationFailed,
		},
		{
			name: "存储失败",
			req:  ActivateReq{Token: testToken, IdentityID: 123},
			mock: func(repo *repomocks.MockAccountRepository) {
				repo.EXPECT().FindRedemption(gomock.Any(), testToken).Return(domain.Redemption{}, repository.ErrRedemptionNotFound)
				repo.EXPECT().FindInvited(gomock.Any(), testToken).Return(testPlaceholder(), nil)
				repo.EXPECT().Activate(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("mock db error"))
			},
			wantErr: ErrActivationFailed,
		},
		{
			name: "无效令牌",
			req:  ActivateReq{Token: "unknown", IdentityID: 123},
			mock: func(repo *repomocks.MockAccountRepository) {
				repo.EXPECT().FindRedemption(gomock.Any(), "unknown").Return(domain.Redemption{}, repository.ErrRedemptionNotFound)
				repo.EXPECT().FindInvited(gomock.Any(), "unknown").Return(domain.Account{}, repository.ErrAccountNotFound)
			},
			wantErr: ErrInvalidInvitation,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockAccountRepository(ctrl)
			tc.mock(repo)
			svc := newTestService(t, repo, emailmocks.NewMockService(ctrl))
			acc, err := svc.Activate(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, acc)
		})
	}
}
