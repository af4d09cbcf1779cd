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
	"github.com/ecodeclub/recruit/internal/ai/internal/errs"
	"github.com/ecodeclub/recruit/internal/ai/internal/service"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)

func errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return ginx.Result{Code: errs.InvalidInput.Code, Msg: errs.InvalidInput.Msg}, nil
	case errors.Is(err, service.ErrInvalidAnswer):
		// 需要人关注提示词是否合适
		return ginx.Result{Code: errs.InvalidAnswer.Code, Msg: errs.InvalidAnswer.Msg}, err
	default:
		return systemErrorResult, err
	}
}
