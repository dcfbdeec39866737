package repository

import (
	"recipe-api/internal/models"

	"gorm.io/gorm"
)

// TokenRepository 认证令牌数据访问层
type TokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository 创建令牌Repository
func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// Create 创建令牌
func (r *TokenRepository) Create(token *models.AuthToken) error {
	return r.db.Create(token).Error
}

// GetByKey 根据令牌内容获取记录，附带所属用户
func (r *TokenRepository) GetByKey(key string) (*models.AuthToken, error) {
	var token models.AuthToken
	err := r.db.Preload("User").Where("key = ?", key).First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// GetByUserID 获取用户当前持有的令牌
func (r *TokenRepository) GetByUserID(userID uint) (*models.AuthToken, error) {
	var token models.AuthToken
	err := r.db.Where("user_id = ?", userID).First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// DeleteByUserID 删除用户的令牌
func (r *TokenRepository) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.AuthToken{}).Error
}
