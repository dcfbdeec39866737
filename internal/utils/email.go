package utils

import (
	"strings"
)

// NormalizeEmail 规范化邮箱地址：域名部分统一小写
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}
