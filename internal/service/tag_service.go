package service

import (
	"errors"
	"fmt"

	"recipe-api/internal/dto"
	"recipe-api/internal/models"
	"recipe-api/internal/repository"

	"gorm.io/gorm"
)

// TagService 标签服务，所有操作按调用者归属过滤
type TagService struct {
	tagRepo *repository.TagRepository
}

// NewTagService 创建标签服务
func NewTagService(tagRepo *repository.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

// List 获取调用者的标签列表
func (s *TagService) List(userID uint, assignedOnly bool) ([]models.Tag, error) {
	return s.tagRepo.ListByUser(userID, assignedOnly)
}

// Create 创建标签，归属设为调用者
func (s *TagService) Create(userID uint, req *dto.TagRequest) (*models.Tag, error) {
	tag := &models.Tag{
		UserID: userID,
		Name:   req.Name,
	}

	if err := s.tagRepo.Create(tag); err != nil {
		return nil, fmt.Errorf("创建标签失败: %w", err)
	}
	return tag, nil
}

// Get 获取调用者的单个标签
func (s *TagService) Get(userID uint, id uint) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByIDAndUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return tag, nil
}

// Update 更新调用者的标签
func (s *TagService) Update(userID uint, id uint, req *dto.TagRequest) (*models.Tag, error) {
	tag, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	tag.Name = req.Name
	if err := s.tagRepo.Update(tag); err != nil {
		return nil, fmt.Errorf("更新标签失败: %w", err)
	}
	return tag, nil
}

// Delete 删除调用者的标签
func (s *TagService) Delete(userID uint, id uint) error {
	tag, err := s.Get(userID, id)
	if err != nil {
		return err
	}
	return s.tagRepo.Delete(tag)
}
