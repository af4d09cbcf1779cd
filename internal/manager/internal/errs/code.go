package errs

var (
	SystemError       = ErrorCode{Code: 521001, Msg: "系统错误"}
	InvalidInvitation = ErrorCode{Code: 521002, Msg: "邀请链接无效"}
	InvitationUsed    = ErrorCode{Code: 521003, Msg: "邀请链接已被使用"}
	ActivationFailed  = ErrorCode{Code: 521004, Msg: "激活失败，请稍后重试"}
	AccountNotFound   = ErrorCode{Code: 521005, Msg: "管理员账号不存在"}
	InvalidInviteInfo = ErrorCode{Code: 521006, Msg: "邀请信息不完整"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
