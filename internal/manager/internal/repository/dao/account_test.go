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
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGORMAccountDAO_Activate(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "激活成功",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM `manager_accounts` WHERE .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO `manager_accounts` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO `invitation_redemptions` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "占位记录已被其它请求激活",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM `manager_accounts` WHERE .*").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			wantErr: ErrPlaceholderGone,
		},
		{
			name: "身份已有账号，占位记录的删除被回滚",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM `manager_accounts` WHERE .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO `manager_accounts` .*").
					WillReturnError(&mysql.MySQLError{Number: 1062})
				mock.ExpectRollback()
			},
			wantErr: ErrAccountExists,
		},
		{
			name: "令牌已兑换，账号和删除都被回滚",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM `manager_accounts` WHERE .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO `manager_accounts` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO `invitation_redemptions` .*").
					WillReturnError(&mysql.MySQLError{Number: 1062})
				mock.ExpectRollback()
			},
			wantErr: ErrAlreadyRedeemed,
		},
		{
			name: "写入兑换记录时数据库错误",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM `manager_accounts` WHERE .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO `manager_accounts` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO `invitation_redemptions` .*").
					WillReturnError(errors.New("mock db error"))
				mock.ExpectRollback()
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer mockDB.Close()
			tc.mock(mock)

			d := NewGORMAccountDAO(openDB(t, mockDB))
			err = d.Activate(context.Background(), "inv_1", Account{
				ID:         "123",
				Status:     "active",
				CompanyUID: "company-1",
			}, Redemption{
				TokenHash:     "hash",
				PlaceholderID: "inv_1",
				AccountID:     "123",
			})
			assert.Equal(t, tc.wantErr, err)
			// 每一种失败都必须回滚，不能留下半激活的数据
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGORMAccountDAO_ActivateKeepsCtime(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `manager_accounts` WHERE .*").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// 字段顺序：id status token_hash name email designation permissions_role company_uid email_verified preferences ctime utime
	mock.ExpectExec("INSERT INTO `manager_accounts` .*").
		WithArgs("123", "active", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), "company-1", sqlmock.AnyArg(), sqlmock.AnyArg(), int64(1), laterThan(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `invitation_redemptions` .*").
		WithArgs("hash", "inv_1", "123", laterThan(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	d := NewGORMAccountDAO(openDB(t, mockDB))
	err = d.Activate(context.Background(), "inv_1", Account{
		ID:         "123",
		Status:     "active",
		CompanyUID: "company-1",
		Ctime:      1,
	}, Redemption{
		TokenHash:     "hash",
		PlaceholderID: "inv_1",
		AccountID:     "123",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// laterThan 匹配大于给定毫秒数的时间戳
type laterThan int64

func (l laterThan) Match(v driver.Value) bool {
	ms, ok := v.(int64)
	return ok && ms > int64(l)
}

func openDB(t *testing.T, conn *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}
