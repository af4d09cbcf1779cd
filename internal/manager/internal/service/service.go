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
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ecodeclub/recruit/internal/email"
	"github.com/ecodeclub/recruit/internal/manager/internal/domain"
	"github.com/ecodeclub/recruit/internal/manager/internal/repository"
	"github.com/ecodeclub/recruit/internal/pkg/sngenerator"
	"github.com/ecodeclub/recruit/internal/pkg/snowflake"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidInvitation = domain.ErrInvalidInvitation
	ErrInvitationUsed    = domain.ErrInvitationUsed
	ErrActivationFailed  = domain.ErrActivationFailed
	ErrInvalidInviteInfo = domain.ErrInvalidInviteInfo
	ErrAccountNotFound   = errors.New("管理员账号不存在")
)

type Config struct {
	// AcceptURL 受邀人打开的页面，令牌以 token 参数附加在后面
	AcceptURL string `yaml:"acceptURL"`
	MailFrom  string `yaml:"mailFrom"`
}

type ActivateReq struct {
	Token string
	// IdentityID 认证服务签发的身份
	IdentityID    int64
	EmailVerified bool
}

//go:generate mockgen -source=./service.go -destination=./mocks/service.mock.go -package=svcmocks -typed=true Service
type Service interface {
	// Invite 创建占位记录并发送邀请邮件，返回占位记录和原始令牌
	Invite(ctx context.Context, inviter domain.Inviter, acc domain.Account) (domain.Account, string, error)
	Validate(ctx context.Context, token string) (domain.Invitation, error)
	// Activate 同一个身份重复激活时返回已经激活的账号
	Activate(ctx context.Context, req ActivateReq) (domain.Account, error)
	Profile(ctx context.Context, identityID int64) (domain.Account, error)
	List(ctx context.Context, inviter domain.Inviter, offset, limit int) ([]domain.Account, int64, error)
}

type service struct {
	repo     repository.AccountRepository
	mailer   email.Service
	ids      snowflake.Generator
	tokenGen *sngenerator.Generator
	cfg      Config
	now      func() time.Time
	logger   *elog.Component
}

func NewService(repo repository.AccountRepository,
	mailer email.Service,
	ids snowflake.Generator,
	tokenGen *sngenerator.Generator,
	cfg Config) Service {
	return &service{
		repo:     repo,
		mailer:   mailer,
		ids:      ids,
		tokenGen: tokenGen,
		cfg:      cfg,
		now:      time.Now,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Invite(ctx context.Context, inviter domain.Inviter, acc domain.Account) (domain.Account, string, error) {
	if strings.TrimSpace(acc.Email) == "" || strings.TrimSpace(acc.Name) == "" {
		return domain.Account{}, "", fmt.Errorf("%w: 缺少姓名或者邮箱", ErrInvalidInviteInfo)
	}
	// 只有平台管理员可以邀请其它公司的管理员
	if !inviter.IsPlatform() || acc.CompanyUID == "" {
		acc.CompanyUID = inviter.CompanyUID
	}
	id, err := s.ids.Generate(snowflake.AppInvitation)
	if err != nil {
		return domain.Account{}, "", err
	}
	token, err := s.tokenGen.Generate(id.Int64())
	if err != nil {
		return domain.Account{}, "", err
	}
	now := s.now().UnixMilli()
	acc.ID = "inv_" + strconv.FormatInt(id.Int64(), 10)
	acc.Status = domain.AccountStatusInvited
	acc.InvitationToken = token
	acc.EmailVerified = false
	acc.Ctime, acc.Utime = now, now
	if err = s.repo.CreatePlaceholder(ctx, acc); err != nil {
		return domain.Account{}, "", err
	}
	// 邮件发送失败时，管理员可以手动把链接发给受邀人
	if err = s.mailer.SendMail(ctx, s.invitationMail(acc, token)); err != nil {
		s.logger.Error("发送邀请邮件失败",
			elog.FieldErr(err),
			elog.String("placeholderId", acc.ID),
			elog.String("email", acc.Email),
		)
	}
	return acc, token, nil
}

func (s *service) invitationMail(acc domain.Account, token string) email.Mail {
	link := s.cfg.AcceptURL + "?token=" + url.QueryEscape(token)
	body := fmt.Sprintf(`<p>%s，你好：</p><p>你被邀请成为招聘管理员（%s）。</p><p><a href="%s">点击这里接受邀请</a></p>`,
		acc.Name, acc.Designation, link)
	return email.Mail{
		From:    s.cfg.MailFrom,
		To:      acc.Email,
		Subject: "招聘管理员邀请",
		Body:    []byte(body),
		Tag:     "manager_invitation",
	}
}

func (s *service) Validate(ctx context.Context, token string) (domain.Invitation, error) {
	if token == "" {
		return domain.Invitation{}, ErrInvalidInvitation
	}
	_, err := s.repo.FindRedemption(ctx, token)
	switch {
	case err == nil:
		return domain.Invitation{}, ErrInvitationUsed
	case !errors.Is(err, repository.ErrRedemptionNotFound):
		return domain.Invitation{}, err
	}
	acc, err := s.repo.FindInvited(ctx, token)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return domain.Invitation{}, ErrInvalidInvitation
	}
	if err != nil {
		return domain.Invitation{}, err
	}
	return domain.Invitation{
		PlaceholderID:   acc.ID,
		Name:            acc.Name,
		Email:           acc.Email,
		Designation:     acc.Designation,
		PermissionsRole: acc.PermissionsRole,
		CompanyUID:      acc.CompanyUID,
	}, nil
}

func (s *service) Activate(ctx context.Context, req ActivateReq) (domain.Account, error) {
	if req.Token == "" || req.IdentityID <= 0 {
		return domain.Account{}, ErrInvalidInvitation
	}
	acc, done, err := s.redeemed(ctx, req)
	if done || err != nil {
		return acc, err
	}
	placeholder, err := s.repo.FindInvited(ctx, req.Token)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return domain.Account{}, ErrInvalidInvitation
	}
	if err != nil {
		return domain.Account{}, err
	}

	acc = placeholder.Activate(req.IdentityID, req.EmailVerified, s.now().UnixMilli())
	err = s.repo.Activate(ctx, placeholder, acc)
	switch {
	case err == nil:
		return acc, nil
	case errors.Is(err, repository.ErrPlaceholderGone), errors.Is(err, repository.ErrAlreadyRedeemed):
		// 并发激活，输给了另外一个请求
		acc, done, err = s.redeemed(ctx, req)
		if done || err != nil {
			return acc, err
		}
		return domain.Account{}, ErrInvitationUsed
	case errors.Is(err, repository.ErrAccountExists):
		return domain.Account{}, fmt.Errorf("%w: 身份 %d 已经是管理员", ErrActivationFailed, req.IdentityID)
	default:
		return domain.Account{}, fmt.Errorf("%w: %w", ErrActivationFailed, err)
	}
}

// redeemed 令牌已经兑换过时，done 为 true。
// 兑换人就是当前身份时返回已经激活的账号，否则返回 ErrInvitationUsed。
func (s *service) redeemed(ctx context.Context, req ActivateReq) (domain.Account, bool, error) {
	red, err := s.repo.FindRedemption(ctx, req.Token)
	if errors.Is(err, repository.ErrRedemptionNotFound) {
		return domain.Account{}, false, nil
	}
	if err != nil {
		return domain.Account{}, true, err
	}
	if red.AccountID != domain.IdentityAccountID(req.IdentityID) {
		return domain.Account{}, true, ErrInvitationUsed
	}
	acc, err := s.repo.FindByID(ctx, red.AccountID)
	return acc, true, err
}

func (s *service) Profile(ctx context.Context, identityID int64) (domain.Account, error) {
	acc, err := s.repo.FindByID(ctx, domain.IdentityAccountID(identityID))
	if errors.Is(err, repository.ErrAccountNotFound) {
		return domain.Account{}, fmt.Errorf("%w: %d", ErrAccountNotFound, identityID)
	}
	return acc, err
}

func (s *service) List(ctx context.Context, inviter domain.Inviter, offset, limit int) ([]domain.Account, int64, error) {
	companyUID := inviter.CompanyUID
	if inviter.IsPlatform() {
		companyUID = ""
	}
	var (
		eg    errgroup.Group
		list  []domain.Account
		total int64
	)
	eg.Go(func() error {
		var err error
		list, err = s.repo.ListByCompany(ctx, companyUID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByCompany(ctx, companyUID)
		return err
	})
	return list, total, eg.Wait()
}
