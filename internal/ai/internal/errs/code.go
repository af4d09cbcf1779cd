package errs

var (
	SystemError   = ErrorCode{Code: 516001, Msg: "系统错误"}
	InvalidInput  = ErrorCode{Code: 516002, Msg: "生成参数不完整"}
	InvalidAnswer = ErrorCode{Code: 516003, Msg: "大模型返回的内容无法解析，请重试"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
