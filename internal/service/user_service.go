package service

import (
	"errors"
	"fmt"

	"recipe-api/internal/config"
	"recipe-api/internal/dto"
	"recipe-api/internal/models"
	"recipe-api/internal/repository"
	"recipe-api/internal/utils"

	"gorm.io/gorm"
)

// UserService 用户服务
type UserService struct {
	userRepo *repository.UserRepository
	cfg      *config.Config
}

// NewUserService 创建用户服务
func NewUserService(userRepo *repository.UserRepository, cfg *config.Config) *UserService {
	return &UserService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// CreateUser 创建普通用户
// 邮箱为空时拒绝，域名部分统一小写，密码仅保存bcrypt哈希
func (s *UserService) CreateUser(email, password, name string) (*models.User, error) {
	if email == "" {
		return nil, validationError("邮箱不能为空")
	}
	email = utils.NormalizeEmail(email)

	exists, err := s.userRepo.ExistsByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("检查邮箱失败: %w", err)
	}
	if exists {
		return nil, validationError("邮箱已被注册")
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("密码哈希失败: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hashedPassword,
		Name:         name,
		IsActive:     true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}

	return user, nil
}

// CreateSuperuser 创建超级管理员
func (s *UserService) CreateSuperuser(email, password string) (*models.User, error) {
	user, err := s.CreateUser(email, password, "")
	if err != nil {
		return nil, err
	}

	user.IsStaff = true
	user.IsSuperuser = true
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("更新用户失败: %w", err)
	}

	return user, nil
}

// Authenticate 校验邮箱密码，返回对应用户
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(utils.NormalizeEmail(email))
	if err != nil {
		return nil, unauthorizedError("邮箱或密码错误")
	}

	if err := utils.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, unauthorizedError("邮箱或密码错误")
	}

	if !user.IsActive {
		return nil, unauthorizedError("用户已被禁用")
	}

	return user, nil
}

// GetMe 获取当前用户信息
func (s *UserService) GetMe(userID uint) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	info := dto.NewUserInfo(user)
	return &info, nil
}

// UpdateMe 部分更新当前用户信息，仅修改请求中出现的字段
func (s *UserService) UpdateMe(userID uint, req *dto.UpdateMeRequest) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Email != nil {
		email := utils.NormalizeEmail(*req.Email)
		if email == "" {
			return nil, validationError("邮箱不能为空")
		}
		if email != user.Email {
			exists, err := s.userRepo.ExistsByEmail(email)
			if err != nil {
				return nil, fmt.Errorf("检查邮箱失败: %w", err)
			}
			if exists {
				return nil, validationError("邮箱已被注册")
			}
			user.Email = email
		}
	}

	if req.Name != nil {
		user.Name = *req.Name
	}

	if req.Password != nil {
		hashedPassword, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("密码哈希失败: %w", err)
		}
		user.PasswordHash = hashedPassword
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("更新用户失败: %w", err)
	}

	info := dto.NewUserInfo(user)
	return &info, nil
}

// ListUsers 获取全部用户（管理员接口）
func (s *UserService) ListUsers() ([]dto.UserInfo, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, err
	}

	infos := make([]dto.UserInfo, 0, len(users))
	for i := range users {
		infos = append(infos, dto.NewUserInfo(&users[i]))
	}
	return infos, nil
}

// InitAdmin 初始化超级管理员账户
// 配置中未提供管理员信息或已存在超级管理员时跳过
func (s *UserService) InitAdmin() error {
	if s.cfg.Admin.Email == "" || s.cfg.Admin.Password == "" {
		return nil
	}

	exists, err := s.userRepo.ExistsSuperuser()
	if err != nil {
		return fmt.Errorf("检查管理员失败: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := s.CreateSuperuser(s.cfg.Admin.Email, s.cfg.Admin.Password); err != nil {
		return fmt.Errorf("创建管理员失败: %w", err)
	}

	return nil
}
