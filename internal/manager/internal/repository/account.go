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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/recruit/internal/manager/internal/domain"
	"github.com/ecodeclub/recruit/internal/manager/internal/repository/dao"
)

var (
	ErrAccountNotFound    = dao.ErrRecordNotFound
	ErrRedemptionNotFound = dao.ErrRecordNotFound
	ErrPlaceholderGone    = dao.ErrPlaceholderGone
	ErrAccountExists      = dao.ErrAccountExists
	ErrAlreadyRedeemed    = dao.ErrAlreadyRedeemed
)

//go:generate mockgen -source=./account.go -destination=./mocks/account.mock.go -package=repomocks -typed=true AccountRepository
type AccountRepository interface {
	// CreatePlaceholder 令牌以摘要的形式保存
	CreatePlaceholder(ctx context.Context, acc domain.Account) error
	FindByID(ctx context.Context, id string) (domain.Account, error)
	FindInvited(ctx context.Context, token string) (domain.Account, error)
	FindRedemption(ctx context.Context, token string) (domain.Redemption, error)
	Activate(ctx context.Context, placeholder domain.Account, acc domain.Account) error
	ListByCompany(ctx context.Context, companyUID string, offset, limit int) ([]domain.Account, error)
	CountByCompany(ctx context.Context, companyUID string) (int64, error)
}

type accountRepository struct {
	dao dao.AccountDAO
}

func NewAccountRepository(d dao.AccountDAO) AccountRepository {
	return &accountRepository{dao: d}
}

func (r *accountRepository) CreatePlaceholder(ctx context.Context, acc domain.Account) error {
	entity := r.toEntity(acc)
	entity.TokenHash = domain.HashToken(acc.InvitationToken)
	return r.dao.Create(ctx, entity)
}

func (r *accountRepository) FindByID(ctx context.Context, id string) (domain.Account, error) {
	acc, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Account{}, err
	}
	return r.toDomain(acc), nil
}

func (r *accountRepository) FindInvited(ctx context.Context, token string) (domain.Account, error) {
	acc, err := r.dao.FindInvited(ctx, domain.HashToken(token))
	if err != nil {
		return domain.Account{}, err
	}
	return r.toDomain(acc), nil
}

func (r *accountRepository) FindRedemption(ctx context.Context, token string) (domain.Redemption, error) {
	red, err := r.dao.FindRedemption(ctx, domain.HashToken(token))
	if err != nil {
		return domain.Redemption{}, err
	}
	return domain.Redemption{
		TokenHash:     red.TokenHash,
		PlaceholderID: red.PlaceholderID,
		AccountID:     red.AccountID,
		Ctime:         red.Ctime,
	}, nil
}

func (r *accountRepository) Activate(ctx context.Context, placeholder domain.Account, acc domain.Account) error {
	return r.dao.Activate(ctx, placeholder.ID, r.toEntity(acc), dao.Redemption{
		TokenHash:     placeholder.InvitationToken,
		PlaceholderID: placeholder.ID,
		AccountID:     acc.ID,
	})
}

func (r *accountRepository) ListByCompany(ctx context.Context, companyUID string, offset, limit int) ([]domain.Account, error) {
	res, err := r.dao.ListByCompany(ctx, companyUID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(_ int, src dao.Account) domain.Account {
		return r.toDomain(src)
	}), nil
}

func (r *accountRepository) CountByCompany(ctx context.Context, companyUID string) (int64, error) {
	return r.dao.CountByCompany(ctx, companyUID)
}

func (r *accountRepository) toEntity(acc domain.Account) dao.Account {
	return dao.Account{
		ID:              acc.ID,
		Status:          acc.Status.String(),
		Name:            acc.Name,
		Email:           acc.Email,
		Designation:     acc.Designation,
		PermissionsRole: acc.PermissionsRole,
		CompanyUID:      acc.CompanyUID,
		EmailVerified:   acc.EmailVerified,
		Preferences: sqlx.JsonColumn[dao.Preferences]{
			Val:   dao.Preferences(acc.Preferences),
			Valid: acc.Status == domain.AccountStatusActive,
		},
		Ctime: acc.Ctime,
		Utime: acc.Utime,
	}
}

// toDomain 占位记录的 InvitationToken 为令牌摘要，原始令牌不落库
func (r *accountRepository) toDomain(acc dao.Account) domain.Account {
	return domain.Account{
		ID:              acc.ID,
		Status:          domain.AccountStatus(acc.Status),
		InvitationToken: acc.TokenHash,
		Name:            acc.Name,
		Email:           acc.Email,
		Designation:     acc.Designation,
		PermissionsRole: acc.PermissionsRole,
		CompanyUID:      acc.CompanyUID,
		EmailVerified:   acc.EmailVerified,
		Preferences:     domain.Preferences(acc.Preferences.Val),
		Ctime:           acc.Ctime,
		Utime:           acc.Utime,
	}
}
