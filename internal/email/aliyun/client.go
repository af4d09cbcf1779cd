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

package aliyun

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dm20151123 "github.com/alibabacloud-go/dm-20151123/v2/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
	credential "github.com/aliyun/credentials-go/credentials"
	"github.com/ecodeclub/recruit/internal/email"
)

const defaultEndpoint = "dm.aliyuncs.com"

type Config struct {
	AccessKeyID     string `yaml:"accessKeyID"`
	AccessKeySecret string `yaml:"accessKeySecret"`
	// AccountName 控制台配置的发信地址
	AccountName string        `yaml:"accountName"`
	Endpoint    string        `yaml:"endpoint"`
	Timeout     time.Duration `yaml:"timeout"`
}

// DirectMail 基于阿里云邮件推送的单封发送
type DirectMail struct {
	client      *dm20151123.Client
	accountName string
	timeout     time.Duration
}

func NewDirectMail(cfg Config) (*DirectMail, error) {
	if cfg.AccountName == "" {
		return nil, errors.New("未配置发信地址")
	}
	cred, err := credential.NewCredential(&credential.Config{
		Type:            tea.String("access_key"),
		AccessKeyId:     tea.String(cfg.AccessKeyID),
		AccessKeySecret: tea.String(cfg.AccessKeySecret),
	})
	if err != nil {
		return nil, fmt.Errorf("创建阿里云凭据失败: %w", err)
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	client, err := dm20151123.NewClient(&openapi.Config{
		Credential: cred,
		Endpoint:   tea.String(endpoint),
	})
	if err != nil {
		return nil, fmt.Errorf("创建邮件推送客户端失败: %w", err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &DirectMail{
		client:      client,
		accountName: cfg.AccountName,
		timeout:     timeout,
	}, nil
}

func (d *DirectMail) SendMail(ctx context.Context, mail email.Mail) error {
	if err := mail.Validate(); err != nil {
		return err
	}
	req := &dm20151123.SingleSendMailRequest{
		AccountName: tea.String(d.accountName),
		FromAlias:   tea.String(mail.From),
		// 1 表示发信地址，0 为随机账号
		AddressType:    tea.Int32(1),
		ToAddress:      tea.String(mail.To),
		Subject:        tea.String(mail.Subject),
		HtmlBody:       tea.String(string(mail.Body)),
		ReplyToAddress: tea.Bool(false),
	}
	if mail.Tag != "" {
		req.TagName = tea.String(mail.Tag)
	}
	timeout := d.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return ctx.Err()
		}
	}
	ms := int(timeout.Milliseconds())
	_, err := d.client.SingleSendMailWithOptions(req, &util.RuntimeOptions{
		ReadTimeout:    tea.Int(ms),
		ConnectTimeout: tea.Int(ms),
	})
	if err != nil {
		return wrapError(err)
	}
	return nil
}

// wrapError 把阿里云返回的建议和 RequestId 带到错误信息里，方便排查
func wrapError(err error) error {
	var sdkErr *tea.SDKError
	if !errors.As(err, &sdkErr) {
		return fmt.Errorf("发送邮件失败: %w", err)
	}
	msg := fmt.Sprintf("阿里云邮件推送失败: code=%s, msg=%s",
		tea.StringValue(sdkErr.Code), tea.StringValue(sdkErr.Message))
	var data struct {
		Recommend string `json:"Recommend"`
		RequestId string `json:"RequestId"`
	}
	if sdkErr.Data != nil && json.Unmarshal([]byte(tea.StringValue(sdkErr.Data)), &data) == nil {
		if data.Recommend != "" {
			msg += ", recommend=" + data.Recommend
		}
		if data.RequestId != "" {
			msg += ", requestId=" + data.RequestId
		}
	}
	return errors.New(msg)
}
