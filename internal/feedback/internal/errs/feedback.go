package errs

var (
	SystemError       = ErrorCode{Code: 509001, Msg: "系统错误"}
	InvalidRating     = ErrorCode{Code: 509002, Msg: "评分必须在 1 到 5 之间"}
	ApplicantNotFound = ErrorCode{Code: 509003, Msg: "投递记录不存在"}
	JobNotFound       = ErrorCode{Code: 509004, Msg: "职位不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
