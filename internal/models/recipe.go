package models

import (
	"time"
)

// Recipe 菜谱模型
// Tags/Ingredients 为多对多关联，删除菜谱仅清理关联关系，
// 不删除标签和食材本身
type Recipe struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	TimeMinutes int       `gorm:"not null" json:"time_minutes"`
	Price       float64   `gorm:"type:decimal(5,2);not null" json:"price"`
	Link        string    `gorm:"size:255" json:"link"`
	Image       string    `gorm:"size:255" json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 关联
	User        User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Tags        []Tag        `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
	Ingredients []Ingredient `gorm:"many2many:recipe_ingredients;constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
}

// TableName 指定表名
func (Recipe) TableName() string {
	return "recipes"
}

// String 字符串表示
func (r Recipe) String() string {
	return r.Title
}
