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
	"errors"
	"testing"

	"github.com/alibabacloud-go/tea/tea"
	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	err := wrapError(errors.New("connection reset"))
	assert.Equal(t, "发送邮件失败: connection reset", err.Error())

	err = wrapError(&tea.SDKError{
		Code:    tea.String("InvalidToAddress"),
		Message: tea.String("收件地址非法"),
		Data:    tea.String(`{"Recommend":"https://api.aliyun.com/troubleshoot","RequestId":"req-1"}`),
	})
	assert.Equal(t, "阿里云邮件推送失败: code=InvalidToAddress, msg=收件地址非法, "+
		"recommend=https://api.aliyun.com/troubleshoot, requestId=req-1", err.Error())
}

func TestNewDirectMail(t *testing.T) {
	_, err := NewDirectMail(Config{AccessKeyID: "id", AccessKeySecret: "secret"})
	assert.Error(t, err)

	d, err := NewDirectMail(Config{AccessKeyID: "id", AccessKeySecret: "secret", AccountName: "noreply@example.com"})
	assert.NoError(t, err)
	assert.Equal(t, "noreply@example.com", d.accountName)
}
