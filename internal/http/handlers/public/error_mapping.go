package public

import (
	"errors"

	"github.com/storelane/storelane/internal/http/response"
	"github.com/storelane/storelane/internal/pricing"
	"github.com/storelane/storelane/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
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

var couponErrorRules = []mappedHandlerError{
	{target: pricing.ErrCouponNotFound, code: response.CodeNotFound, msg: "coupon not found"},
	{target: pricing.ErrCouponInactive, code: response.CodeBadRequest, msg: "coupon is inactive"},
	{target: pricing.ErrCouponNotStarted, code: response.CodeBadRequest, msg: "coupon is not active yet"},
	{target: pricing.ErrCouponExpired, code: response.CodeBadRequest, msg: "coupon has expired"},
	{target: pricing.ErrCouponUsageLimit, code: response.CodeBadRequest, msg: "coupon usage limit reached"},
	{target: pricing.ErrCouponPerCustomerLimit, code: response.CodeBadRequest, msg: "coupon already used by this customer"},
	{target: pricing.ErrCouponBelowMinOrder, code: response.CodeBadRequest, msg: "order amount below coupon minimum"},
	{target: pricing.ErrCouponOutOfScope, code: response.CodeBadRequest, msg: "coupon not applicable to cart items"},
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "product not found"},
	{target: service.ErrProductInactive, code: response.CodeBadRequest, msg: "product is not available"},
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest, msg: "invalid quantity"},
}

var orderErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, msg: "cart is empty"},
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, msg: "order not found"},
	{target: service.ErrOrderStateConflict, code: response.CodeConflict, msg: "order state has changed"},
	{target: service.ErrCouponExhausted, code: response.CodeConflict, msg: "coupon was exhausted before confirmation"},
}

func respondCouponError(c *gin.Context, err error) {
	respondWithMappedError(c, err, couponErrorRules, response.CodeInternal, "coupon validation failed")
}

func respondOrderError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(orderErrorRules, couponErrorRules), response.CodeInternal, "order operation failed")
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "cart operation failed")
}
