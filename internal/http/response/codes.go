package response

// 错误响应直接使用对应的 HTTP 状态码
const (
	CodeBadRequest      = 400
	CodeUnauthorized    = 401
	CodeNotFound        = 404
	CodeTooManyRequests = 429
	CodeInternal        = 500
)
