package service

import (
	"errors"
	"fmt"

	"recipe-api/internal/dto"
	"recipe-api/internal/models"
	"recipe-api/internal/repository"

	"gorm.io/gorm"
)

// IngredientService 食材服务，所有操作按调用者归属过滤
type IngredientService struct {
	ingredientRepo *repository.IngredientRepository
}

// NewIngredientService 创建食材服务
func NewIngredientService(ingredientRepo *repository.IngredientRepository) *IngredientService {
	return &IngredientService{ingredientRepo: ingredientRepo}
}

// List 获取调用者的食材列表
func (s *IngredientService) List(userID uint, assignedOnly bool) ([]models.Ingredient, error) {
	return s.ingredientRepo.ListByUser(userID, assignedOnly)
}

// Create 创建食材，归属设为调用者
func (s *IngredientService) Create(userID uint, req *dto.IngredientRequest) (*models.Ingredient, error) {
	ingredient := &models.Ingredient{
		UserID: userID,
		Name:   req.Name,
	}

	if err := s.ingredientRepo.Create(ingredient); err != nil {
		return nil, fmt.Errorf("创建食材失败: %w", err)
	}
	return ingredient, nil
}

// Get 获取调用者的单个食材
func (s *IngredientService) Get(userID uint, id uint) (*models.Ingredient, error) {
	ingredient, err := s.ingredientRepo.GetByIDAndUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ingredient, nil
}

// Update 更新调用者的食材
func (s *IngredientService) Update(userID uint, id uint, req *dto.IngredientRequest) (*models.Ingredient, error) {
	ingredient, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	ingredient.Name = req.Name
	if err := s.ingredientRepo.Update(ingredient); err != nil {
		return nil, fmt.Errorf("更新食材失败: %w", err)
	}
	return ingredient, nil
}

// Delete 删除调用者的食材
func (s *IngredientService) Delete(userID uint, id uint) error {
	ingredient, err := s.Get(userID, id)
	if err != nil {
		return err
	}
	return s.ingredientRepo.Delete(ingredient)
}
