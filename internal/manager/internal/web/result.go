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
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/recruit/internal/manager/internal/errs"
	"github.com/ecodeclub/recruit/internal/manager/internal/service"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)

func errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrInvalidInvitation):
		return ginx.Result{Code: errs.InvalidInvitation.Code, Msg: errs.InvalidInvitation.Msg}, nil
	case errors.Is(err, service.ErrInvitationUsed):
		return ginx.Result{Code: errs.InvitationUsed.Code, Msg: errs.InvitationUsed.Msg}, nil
	case errors.Is(err, service.ErrInvalidInviteInfo):
		return ginx.Result{Code: errs.InvalidInviteInfo.Code, Msg: errs.InvalidInviteInfo.Msg}, nil
	case errors.Is(err, service.ErrAccountNotFound):
		return ginx.Result{Code: errs.AccountNotFound.Code, Msg: errs.AccountNotFound.Msg}, nil
	case errors.Is(err, service.ErrActivationFailed):
		// 激活失败需要排查，交给 ginx 记录日志
		return ginx.Result{Code: errs.ActivationFailed.Code, Msg: errs.ActivationFailed.Msg}, err
	default:
		return systemErrorResult, err
	}
}
