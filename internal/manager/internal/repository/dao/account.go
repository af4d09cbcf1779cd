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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrPlaceholderGone 占位记录已经被其它请求激活或者删除
	ErrPlaceholderGone = errors.New("邀请占位记录不存在")
	// ErrAccountExists 该身份已经有一个管理员账号
	ErrAccountExists = errors.New("管理员账号已存在")
	// ErrAlreadyRedeemed 令牌已经被兑换
	ErrAlreadyRedeemed = errors.New("邀请令牌已被使用")
)

// Account 占位记录和正式账号共用一张表，通过 status 区分
type Account struct {
	ID              string                       `gorm:"type:VARCHAR(64);primaryKey;comment:'邀请阶段为占位ID，激活后为登录身份ID'"`
	Status          string                       `gorm:"type:VARCHAR(16);NOT NULL;comment:'invited 或者 active'"`
	TokenHash       string                       `gorm:"type:CHAR(64);index:idx_token_hash;comment:'邀请令牌摘要，激活后为空'"`
	Name            string                       `gorm:"type:VARCHAR(255);comment:'姓名'"`
	Email           string                       `gorm:"type:VARCHAR(255);index:idx_email;comment:'邮箱'"`
	Designation     string                       `gorm:"type:VARCHAR(255);comment:'职务'"`
	PermissionsRole string                       `gorm:"type:VARCHAR(64);comment:'权限角色'"`
	CompanyUID      string                       `gorm:"type:VARCHAR(64);NOT NULL;index:idx_company_uid;comment:'所属公司'"`
	EmailVerified   bool                         `gorm:"comment:'邮箱是否已经验证'"`
	Preferences     sqlx.JsonColumn[Preferences] `gorm:"type:json;comment:'个人设置'"`
	Ctime           int64
	Utime           int64
}

func (Account) TableName() string {
	return "manager_accounts"
}

type Preferences struct {
	Language          string `json:"language"`
	Timezone          string `json:"timezone"`
	EmailNotification bool   `json:"emailNotification"`
}

// Redemption 令牌兑换记录，主键保证一个令牌只会被兑换一次
type Redemption struct {
	TokenHash     string `gorm:"type:CHAR(64);primaryKey;comment:'邀请令牌摘要'"`
	PlaceholderID string `gorm:"type:VARCHAR(64);NOT NULL;comment:'占位记录ID'"`
	AccountID     string `gorm:"type:VARCHAR(64);NOT NULL;comment:'激活后的账号ID'"`
	Ctime         int64
}

func (Redemption) TableName() string {
	return "invitation_redemptions"
}

type AccountDAO interface {
	Create(ctx context.Context, acc Account) error
	FindByID(ctx context.Context, id string) (Account, error)
	// FindInvited 根据令牌摘要查找尚未激活的占位记录
	FindInvited(ctx context.Context, tokenHash string) (Account, error)
	FindRedemption(ctx context.Context, tokenHash string) (Redemption, error)
	// Activate 删除占位记录、写入正式账号和兑换记录，三者要么都成功，要么都失败
	Activate(ctx context.Context, placeholderID string, acc Account, r Redemption) error
	ListByCompany(ctx context.Context, companyUID string, offset, limit int) ([]Account, error)
	CountByCompany(ctx context.Context, companyUID string) (int64, error)
}

type GORMAccountDAO struct {
	db *egorm.Component
}

func NewGORMAccountDAO(db *egorm.Component) AccountDAO {
	return &GORMAccountDAO{db: db}
}

func (g *GORMAccountDAO) Create(ctx context.Context, acc Account) error {
	now := time.Now().UnixMilli()
	acc.Ctime, acc.Utime = now, now
	return g.db.WithContext(ctx).Create(&acc).Error
}

func (g *GORMAccountDAO) FindByID(ctx context.Context, id string) (Account, error) {
	var acc Account
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&acc).Error
	return acc, err
}

func (g *GORMAccountDAO) FindInvited(ctx context.Context, tokenHash string) (Account, error) {
	var acc Account
	err := g.db.WithContext(ctx).
		Where("token_hash = ? AND status = ?", tokenHash, "invited").
		First(&acc).Error
	return acc, err
}

func (g *GORMAccountDAO) FindRedemption(ctx context.Context, tokenHash string) (Redemption, error) {
	var r Redemption
	err := g.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&r).Error
	return r, err
}

func (g *GORMAccountDAO) Activate(ctx context.Context, placeholderID string, acc Account, r Redemption) error {
	now := time.Now().UnixMilli()
	acc.Utime = now
	r.Ctime = now
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND status = ?", placeholderID, "invited").Delete(&Account{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return ErrPlaceholderGone
		}
		if err := tx.Create(&acc).Error; err != nil {
			if isDuplicate(err) {
				return ErrAccountExists
			}
			return err
		}
		if err := tx.Create(&r).Error; err != nil {
			if isDuplicate(err) {
				return ErrAlreadyRedeemed
			}
			return err
		}
		return nil
	})
}

func (g *GORMAccountDAO) ListByCompany(ctx context.Context, companyUID string, offset, limit int) ([]Account, error) {
	var res []Account
	err := g.byCompany(ctx, companyUID).
		Order("ctime DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMAccountDAO) CountByCompany(ctx context.Context, companyUID string) (int64, error) {
	var cnt int64
	err := g.byCompany(ctx, companyUID).Model(&Account{}).Count(&cnt).Error
	return cnt, err
}

func (g *GORMAccountDAO) byCompany(ctx context.Context, companyUID string) *gorm.DB {
	db := g.db.WithContext(ctx)
	if companyUID != "" {
		db = db.Where("company_uid = ?", companyUID)
	}
	return db
}

func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}
