package errs

var (
	SystemError         = ErrorCode{Code: 513001, Msg: "系统错误"}
	PortfolioNotFound   = ErrorCode{Code: 513002, Msg: "作品集不存在或未发布"}
	TemplateUnavailable = ErrorCode{Code: 513003, Msg: "模板不存在或不可用"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
