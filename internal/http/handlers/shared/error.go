package shared

import (
	"github.com/sneaker-store/internal/constants"
	"github.com/sneaker-store/internal/http/response"
	"github.com/sneaker-store/internal/i18n"
	"github.com/sneaker-store/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get(constants.ContextKeyRequestID); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError 返回国际化错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, code int, key string, err error) {
	msg := i18n.T(i18n.ResolveLocale(c), key)
	RespondErrorWithMsg(c, code, msg, err)
}

// RespondErrorWithMsg 返回自定义消息错误响应，并在有原始错误时记录日志。
func RespondErrorWithMsg(c *gin.Context, code int, msg string, err error) {
	appErr := logAppError(c, code, msg, err)
	response.Error(c, appErr.Code, appErr.Message)
}

// AbortWithError 返回国际化错误响应并终止后续中间件，供鉴权与限流使用。
func AbortWithError(c *gin.Context, code int, key string, err error) {
	appErr := logAppError(c, code, i18n.T(i18n.ResolveLocale(c), key), err)
	response.AbortWithError(c, appErr.Code, appErr.Message)
}

func logAppError(c *gin.Context, code int, msg string, err error) *response.AppError {
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"message", appErr.Message,
			"error", err,
		)
	}
	return appErr
}

// RespondMessage 返回国际化的 {"message": ...}
func RespondMessage(c *gin.Context, code int, key string) {
	response.Message(c, code, i18n.T(i18n.ResolveLocale(c), key))
}
