package shared

import (
	"strconv"

	"github.com/sneaker-store/internal/constants"
	"github.com/sneaker-store/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetUserID 读取鉴权中间件写入的用户 ID
func GetUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		RespondError(c, response.CodeUnauthorized, "error.token_missing", nil)
		return 0, false
	}
	switch v := value.(type) {
	case uint:
		if v == 0 {
			break
		}
		return v, true
	case int:
		if v <= 0 {
			break
		}
		return uint(v), true
	}
	RespondError(c, response.CodeUnauthorized, "error.token_invalid", nil)
	return 0, false
}

// ParseUintParam 解析路径中的正整数 ID
func ParseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
