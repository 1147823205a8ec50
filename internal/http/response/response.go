package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody 错误响应结构
type ErrorBody struct {
	Error string `json:"error"` // 可读错误信息
}

// MessageBody 仅携带提示消息的响应结构
type MessageBody struct {
	Message string `json:"message"`
}

// Success 200 响应，直接输出数据本身
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Message 仅返回 {"message": msg}
func Message(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, MessageBody{Message: msg})
}

// Error 错误响应，HTTP 状态码即错误码
func Error(c *gin.Context, statusCode int, msg string) {
	if statusCode < 400 || statusCode > 599 {
		statusCode = CodeInternal
	}
	c.JSON(statusCode, ErrorBody{Error: msg})
}

// AbortWithError 错误响应并终止后续中间件
func AbortWithError(c *gin.Context, statusCode int, msg string) {
	Error(c, statusCode, msg)
	c.Abort()
}
