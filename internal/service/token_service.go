package service

import (
	"errors"
	"fmt"

	"recipe-api/internal/models"
	"recipe-api/internal/repository"
	"recipe-api/internal/utils"

	"gorm.io/gorm"
)

// TokenService 令牌服务
// 令牌内容为签名JWT，同时持久化到auth_tokens表并与用户一一对应，
// 解析时必须命中持久化记录，删除记录即可使令牌立即失效
type TokenService struct {
	tokenRepo  *repository.TokenRepository
	jwtManager *utils.JWTManager
}

// NewTokenService 创建令牌服务
func NewTokenService(tokenRepo *repository.TokenRepository, jwtManager *utils.JWTManager) *TokenService {
	return &TokenService{
		tokenRepo:  tokenRepo,
		jwtManager: jwtManager,
	}
}

// Issue 为用户签发令牌，已有且未过期的令牌直接复用
func (s *TokenService) Issue(user *models.User) (string, error) {
	existing, err := s.tokenRepo.GetByUserID(user.ID)
	if err == nil {
		if _, verr := s.jwtManager.ValidateToken(existing.Key); verr == nil {
			return existing.Key, nil
		}
		// 已过期的令牌丢弃后重新签发
		if derr := s.tokenRepo.DeleteByUserID(user.ID); derr != nil {
			return "", fmt.Errorf("清理过期令牌失败: %w", derr)
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("查询令牌失败: %w", err)
	}

	key, err := s.jwtManager.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("生成令牌失败: %w", err)
	}

	token := &models.AuthToken{
		Key:    key,
		UserID: user.ID,
	}
	if err := s.tokenRepo.Create(token); err != nil {
		return "", fmt.Errorf("保存令牌失败: %w", err)
	}

	return key, nil
}

// Resolve 解析令牌，返回所属用户
func (s *TokenService) Resolve(key string) (*models.User, error) {
	claims, err := s.jwtManager.ValidateToken(key)
	if err != nil {
		return nil, unauthorizedError("令牌无效或已过期")
	}

	token, err := s.tokenRepo.GetByKey(key)
	if err != nil {
		return nil, unauthorizedError("令牌无效或已过期")
	}

	if token.UserID != claims.UserID {
		return nil, unauthorizedError("令牌无效或已过期")
	}

	if !token.User.IsActive {
		return nil, unauthorizedError("用户已被禁用")
	}

	return &token.User, nil
}

// Revoke 撤销用户的令牌
func (s *TokenService) Revoke(userID uint) error {
	return s.tokenRepo.DeleteByUserID(userID)
}
