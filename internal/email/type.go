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

package email

import (
	"context"
	"errors"
	"strings"
)

var ErrInvalidMail = errors.New("邮件信息不完整")

//go:generate mockgen -source=./type.go -package=emailmocks -destination=./mocks/email.mock.go -typed Service
type Service interface {
	SendMail(ctx context.Context, mail Mail) error
}

// Mail 只支持 HTML 正文
type Mail struct {
	// From 发信人昵称，发信地址由渠道配置
	From    string
	To      string
	Subject string
	Body    []byte
	// Tag 渠道侧用于统计的标签，可以为空
	Tag string
}

func (m Mail) Validate() error {
	if !strings.Contains(m.To, "@") || m.Subject == "" || len(m.Body) == 0 {
		return ErrInvalidMail
	}
	return nil
}
