package models

import (
	"time"
)

// AuthToken 认证令牌模型
// 每个用户至多持有一个令牌，重复签发时复用已有记录
type AuthToken struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:512;not null" json:"key"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	// 关联
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (AuthToken) TableName() string {
	return "auth_tokens"
}
