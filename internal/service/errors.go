package service

import (
	"errors"
	"fmt"
)

// 错误类别，具体错误通过 %w 归入其中之一
var (
	ErrValidation = errors.New("validation error")
	ErrAuth       = errors.New("auth error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// 用户与认证
var (
	ErrCredentialsRequired = fmt.Errorf("%w: email and password are required", ErrValidation)
	ErrWeakPassword        = fmt.Errorf("%w: password does not satisfy policy", ErrValidation)
	ErrEmailExists         = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrInvalidCredentials  = fmt.Errorf("%w: invalid credentials", ErrAuth)
	ErrTokenInvalid        = fmt.Errorf("%w: invalid token", ErrAuth)
	ErrUserNotFound        = fmt.Errorf("%w: user not found", ErrNotFound)
)

// 商品与购物车
var (
	ErrProductNotFound       = fmt.Errorf("%w: product not found", ErrNotFound)
	ErrBasketItemInvalid     = fmt.Errorf("%w: product id and size are required", ErrValidation)
	ErrBasketQuantityInvalid = fmt.Errorf("%w: quantity must be positive", ErrValidation)
	ErrBasketItemNotFound    = fmt.Errorf("%w: basket item not found", ErrNotFound)
)
