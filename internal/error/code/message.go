package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:         "成功",
	ErrUnknown:         "未知错误",
	ErrBind:            "请求参数绑定错误",
	ErrValidation:      "请求参数验证错误",
	ErrAPIKeyMissing:   "缺少API密钥",
	ErrAPIKeyInvalid:   "API密钥不正确",
	ErrTooManyRequests: "请求频率过高",

	// 组织相关错误码
	ErrOrganizationNotFound: "组织不存在",

	// 楼宇相关错误码
	ErrBuildingNotFound: "楼宇不存在",

	// 数据库相关错误码
	ErrDatabase:       "数据库错误",
	ErrRecordNotFound: "记录不存在",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrAPIKeyMissing:   StatusUnauthorized,
	ErrAPIKeyInvalid:   StatusForbidden,
	ErrTooManyRequests: StatusTooManyRequests,

	// 组织相关错误码
	ErrOrganizationNotFound: StatusNotFound,

	// 楼宇相关错误码
	ErrBuildingNotFound: StatusNotFound,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "未知错误"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
