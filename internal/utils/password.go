package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// 账户密码的bcrypt代价因子，注册和修改密码时统一使用
const passwordHashCost = bcrypt.DefaultCost

// HashPassword 生成账户密码的bcrypt哈希
// 明文密码只在此处经过，数据库中只保存哈希
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// CheckPassword 校验明文密码与存储的哈希是否匹配
func CheckPassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
