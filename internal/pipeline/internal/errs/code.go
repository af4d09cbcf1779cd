package errs

var (
	SystemError              = ErrorCode{Code: 520001, Msg: "系统错误"}
	InvalidPipeline          = ErrorCode{Code: 520002, Msg: "招聘流程配置非法"}
	JobNotFound              = ErrorCode{Code: 520003, Msg: "职位不存在"}
	JobNotEditable           = ErrorCode{Code: 520004, Msg: "职位当前不允许修改"}
	RoundInUse               = ErrorCode{Code: 520005, Msg: "仍有候选人处于被删除的轮次"}
	JobNotAcceptingApplicant = ErrorCode{Code: 520006, Msg: "职位当前不接受投递"}
	DuplicateApplication     = ErrorCode{Code: 520007, Msg: "你已经投递过该职位"}
	ApplicantNotFound        = ErrorCode{Code: 520008, Msg: "投递记录不存在"}
	RoundNotFound            = ErrorCode{Code: 520009, Msg: "轮次不存在"}
	InvalidTransition        = ErrorCode{Code: 520010, Msg: "非法的状态流转"}
	StaleResult              = ErrorCode{Code: 520011, Msg: "结果已记录，但不属于当前轮次"}
	InvalidResult            = ErrorCode{Code: 520012, Msg: "轮次结果非法"}
	InvalidDueDate           = ErrorCode{Code: 520013, Msg: "截止时间必须晚于当前时间"}
	DuplicateActiveSchedule  = ErrorCode{Code: 520014, Msg: "该轮次已存在未完成的日程"}
	ScheduleNotFound         = ErrorCode{Code: 520015, Msg: "该轮次没有日程"}
	InvalidJobStatus         = ErrorCode{Code: 520016, Msg: "职位状态非法"}
	ConcurrentModification   = ErrorCode{Code: 520017, Msg: "投递记录已被修改，请重试"}
	ScheduleCompleted        = ErrorCode{Code: 520018, Msg: "该轮次的日程已完成，不能重新安排"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
