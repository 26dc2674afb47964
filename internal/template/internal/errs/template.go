package errs

var (
	SystemError      = ErrorCode{Code: 512001, Msg: "系统错误"}
	TemplateNotFound = ErrorCode{Code: 512002, Msg: "模板不存在"}
	NoPermission     = ErrorCode{Code: 512003, Msg: "没有权限"}
	InvalidTemplate  = ErrorCode{Code: 512004, Msg: "模板不合法"}
	NoSession        = ErrorCode{Code: 512005, Msg: "编辑会话不存在，请先加载模板"}
	NodeNotFound     = ErrorCode{Code: 512006, Msg: "节点不存在"}
	NothingToUndo    = ErrorCode{Code: 512007, Msg: "没有可撤销的操作"}
	NothingToRedo    = ErrorCode{Code: 512008, Msg: "没有可重做的操作"}
	EmptyClipboard   = ErrorCode{Code: 512009, Msg: "剪贴板为空"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
