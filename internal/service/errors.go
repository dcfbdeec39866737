package service

import (
	"errors"
	"fmt"
)

// 错误类别，handler据此映射HTTP状态码
var (
	// ErrValidation 输入不合法、缺失或重复 -> 400
	ErrValidation = errors.New("验证失败")
	// ErrUnauthorized 凭证或令牌无效 -> 401
	ErrUnauthorized = errors.New("认证失败")
	// ErrNotFound ID不存在或不属于调用者 -> 404
	ErrNotFound = errors.New("资源不存在")
)

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func unauthorizedError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrUnauthorized, fmt.Sprintf(format, args...))
}
