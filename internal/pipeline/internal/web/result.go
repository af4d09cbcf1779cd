package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/errs"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/service"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)

// bizErrors 可以直接告知调用方的业务错误
var bizErrors = []struct {
	err  error
	code errs.ErrorCode
}{
	{err: service.ErrInvalidPipeline, code: errs.InvalidPipeline},
	{err: service.ErrJobNotFound, code: errs.JobNotFound},
	{err: service.ErrJobNotEditable, code: errs.JobNotEditable},
	{err: service.ErrRoundInUse, code: errs.RoundInUse},
	{err: service.ErrJobNotAcceptingApplicant, code: errs.JobNotAcceptingApplicant},
	{err: service.ErrDuplicateApplication, code: errs.DuplicateApplication},
	{err: service.ErrApplicantNotFound, code: errs.ApplicantNotFound},
	{err: service.ErrRoundNotFound, code: errs.RoundNotFound},
	{err: service.ErrInvalidTransition, code: errs.InvalidTransition},
	{err: service.ErrStaleResult, code: errs.StaleResult},
	{err: service.ErrInvalidResult, code: errs.InvalidResult},
	{err: service.ErrInvalidDueDate, code: errs.InvalidDueDate},
	{err: service.ErrDuplicateActiveSchedule, code: errs.DuplicateActiveSchedule},
	{err: service.ErrScheduleNotFound, code: errs.ScheduleNotFound},
	{err: service.ErrScheduleCompleted, code: errs.ScheduleCompleted},
	{err: service.ErrInvalidJobStatus, code: errs.InvalidJobStatus},
	{err: service.ErrConcurrentModification, code: errs.ConcurrentModification},
}

// errorResult 业务错误返回对应的错误码，其余错误按系统错误处理并交给 ginx 记录日志
func errorResult(err error) (ginx.Result, error) {
	for _, be := range bizErrors {
		if errors.Is(err, be.err) {
			return ginx.Result{Code: be.code.Code, Msg: be.code.Msg}, nil
		}
	}
	return systemErrorResult, err
}
