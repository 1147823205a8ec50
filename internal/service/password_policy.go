package service

import (
	"unicode"

	"github.com/sneaker-store/internal/config"
)

// PasswordPolicyError 密码策略错误，携带 i18n key 与参数
type PasswordPolicyError struct {
	key  string
	args []interface{}
}

func (e PasswordPolicyError) Error() string {
	return e.key
}

func (e PasswordPolicyError) Is(target error) bool {
	return target == ErrWeakPassword || target == ErrValidation
}

// Key 返回 i18n key
func (e PasswordPolicyError) Key() string {
	return e.key
}

// Args 返回格式化参数
func (e PasswordPolicyError) Args() []interface{} {
	return e.args
}

// maxPasswordBytes bcrypt 只接受不超过 72 字节的输入
const maxPasswordBytes = 72

func validatePassword(policy config.PasswordPolicyConfig, password string) error {
	if len(password) > maxPasswordBytes {
		return PasswordPolicyError{key: "error.password_max_length", args: []interface{}{maxPasswordBytes}}
	}
	if policy.MinLength <= 0 &&
		!policy.RequireUpper &&
		!policy.RequireLower &&
		!policy.RequireNumber &&
		!policy.RequireSpecial {
		return nil
	}

	if policy.MinLength > 0 {
		if len([]rune(password)) < policy.MinLength {
			return PasswordPolicyError{key: "error.password_min_length", args: []interface{}{policy.MinLength}}
		}
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		default:
			hasSpecial = true
		}
	}

	if policy.RequireUpper && !hasUpper {
		return PasswordPolicyError{key: "error.password_require_upper"}
	}
	if policy.RequireLower && !hasLower {
		return PasswordPolicyError{key: "error.password_require_lower"}
	}
	if policy.RequireNumber && !hasNumber {
		return PasswordPolicyError{key: "error.password_require_number"}
	}
	if policy.RequireSpecial && !hasSpecial {
		return PasswordPolicyError{key: "error.password_require_special"}
	}

	return nil
}
