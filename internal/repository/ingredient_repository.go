package repository

import (
	"recipe-api/internal/models"

	"gorm.io/gorm"
)

// IngredientRepository 食材数据访问层
type IngredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository 创建食材Repository
func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

// Create 创建食材
func (r *IngredientRepository) Create(ingredient *models.Ingredient) error {
	return r.db.Create(ingredient).Error
}

// GetByIDAndUser 获取用户自己的食材
func (r *IngredientRepository) GetByIDAndUser(id uint, userID uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&ingredient).Error
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// GetByIDsAndUser 批量获取用户自己的食材
func (r *IngredientRepository) GetByIDsAndUser(ids []uint, userID uint) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	err := r.db.Where("id IN ? AND user_id = ?", ids, userID).Find(&ingredients).Error
	return ingredients, err
}

// ListByUser 获取用户的食材列表，按名称倒序
// assignedOnly 为 true 时只返回已关联到菜谱的食材（去重）
func (r *IngredientRepository) ListByUser(userID uint, assignedOnly bool) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient

	query := r.db.Model(&models.Ingredient{}).Where("ingredients.user_id = ?", userID)
	if assignedOnly {
		query = query.
			Joins("JOIN recipe_ingredients ON recipe_ingredients.ingredient_id = ingredients.id").
			Distinct("ingredients.*")
	}

	err := query.Order("ingredients.name DESC").Find(&ingredients).Error
	return ingredients, err
}

// Update 更新食材
func (r *IngredientRepository) Update(ingredient *models.Ingredient) error {
	return r.db.Save(ingredient).Error
}

// Delete 删除食材并清理与菜谱的关联记录
func (r *IngredientRepository) Delete(ingredient *models.Ingredient) error {
	if err := r.db.Exec("DELETE FROM recipe_ingredients WHERE ingredient_id = ?", ingredient.ID).Error; err != nil {
		return err
	}
	return r.db.Delete(ingredient).Error
}
