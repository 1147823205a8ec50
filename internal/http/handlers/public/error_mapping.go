package public

import (
	"errors"

	"github.com/sneaker-store/internal/http/response"
	"github.com/sneaker-store/internal/i18n"
	"github.com/sneaker-store/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

// policyError 可携带 i18n 参数的业务错误
type policyError interface {
	Key() string
	Args() []interface{}
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	var perr policyError
	if errors.As(err, &perr) {
		msg := i18n.Sprintf(i18n.ResolveLocale(c), perr.Key(), perr.Args()...)
		respondErrorWithMsg(c, response.CodeBadRequest, msg, nil)
		return
	}
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var authErrorRules = []mappedHandlerError{
	{target: service.ErrCredentialsRequired, code: response.CodeBadRequest, key: "error.credentials_required"},
	{target: service.ErrEmailExists, code: response.CodeBadRequest, key: "error.email_exists"},
	{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized, key: "error.invalid_credentials"},
	{target: service.ErrTokenInvalid, code: response.CodeUnauthorized, key: "error.token_invalid"},
	{target: service.ErrUserNotFound, code: response.CodeNotFound, key: "error.user_not_found"},
}

var catalogErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
}

var basketErrorRules = []mappedHandlerError{
	{target: service.ErrBasketItemInvalid, code: response.CodeBadRequest, key: "error.basket_item_invalid"},
	{target: service.ErrBasketQuantityInvalid, code: response.CodeBadRequest, key: "error.quantity_invalid"},
	{target: service.ErrBasketItemNotFound, code: response.CodeNotFound, key: "error.basket_item_not_found"},
}

// 兜底：未单独映射的错误按类别给出状态码
var kindErrorRules = []mappedHandlerError{
	{target: service.ErrValidation, code: response.CodeBadRequest, key: "error.bad_request"},
	{target: service.ErrConflict, code: response.CodeBadRequest, key: "error.bad_request"},
	{target: service.ErrAuth, code: response.CodeUnauthorized, key: "error.token_invalid"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.not_found"},
}

func respondAuthError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(authErrorRules, kindErrorRules), response.CodeInternal, "error.internal")
}

func respondCatalogError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(catalogErrorRules, kindErrorRules), response.CodeInternal, "error.internal")
}

func respondBasketError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(basketErrorRules, catalogErrorRules, kindErrorRules), response.CodeInternal, "error.internal")
}
