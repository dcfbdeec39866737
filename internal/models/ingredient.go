package models

import (
	"time"
)

// Ingredient 食材模型，归属于单个用户
type Ingredient struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (Ingredient) TableName() string {
	return "ingredients"
}

// String 字符串表示
func (i Ingredient) String() string {
	return i.Name
}
