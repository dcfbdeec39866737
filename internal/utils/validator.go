package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatValidationError 将绑定验证错误格式化为可读消息
func FormatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	var msgs []string
	for _, e := range validationErrors {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		var message string
		switch tag {
		case "required":
			message = fmt.Sprintf("%s是必填字段", field)
		case "min":
			message = fmt.Sprintf("%s长度不能小于%s", field, param)
		case "max":
			message = fmt.Sprintf("%s长度不能大于%s", field, param)
		case "email":
			message = fmt.Sprintf("%s必须是有效的邮箱地址", field)
		case "gte":
			message = fmt.Sprintf("%s不能小于%s", field, param)
		default:
			message = fmt.Sprintf("%s验证失败: %s", field, tag)
		}

		msgs = append(msgs, message)
	}

	if len(msgs) > 0 {
		return errors.New(strings.Join(msgs, "; "))
	}

	return err
}
