package repository

import (
	"recipe-api/internal/models"

	"gorm.io/gorm"
)

// RecipeRepository 菜谱数据访问层
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository 创建菜谱Repository
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create 创建菜谱，关联的标签和食材随之写入关联表
func (r *RecipeRepository) Create(recipe *models.Recipe) error {
	return r.db.Create(recipe).Error
}

// GetByIDAndUser 获取用户自己的菜谱，附带标签和食材
func (r *RecipeRepository) GetByIDAndUser(id uint, userID uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.Preload("Tags").Preload("Ingredients").
		Where("id = ? AND user_id = ?", id, userID).First(&recipe).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ListByUser 获取用户的菜谱列表，按ID倒序
// tagIDs/ingredientIDs 非空时按关联过滤并去重
func (r *RecipeRepository) ListByUser(userID uint, tagIDs []uint, ingredientIDs []uint) ([]models.Recipe, error) {
	var recipes []models.Recipe

	query := r.db.Model(&models.Recipe{}).Where("recipes.user_id = ?", userID)

	if len(tagIDs) > 0 {
		query = query.
			Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
			Where("recipe_tags.tag_id IN ?", tagIDs)
	}
	if len(ingredientIDs) > 0 {
		query = query.
			Joins("JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.id").
			Where("recipe_ingredients.ingredient_id IN ?", ingredientIDs)
	}
	if len(tagIDs) > 0 || len(ingredientIDs) > 0 {
		query = query.Distinct("recipes.*")
	}

	err := query.Preload("Tags").Preload("Ingredients").
		Order("recipes.id DESC").Find(&recipes).Error
	return recipes, err
}

// Update 保存菜谱基础字段
func (r *RecipeRepository) Update(recipe *models.Recipe) error {
	return r.db.Omit("Tags", "Ingredients").Save(recipe).Error
}

// ReplaceTags 整体替换菜谱的标签关联，空集合表示清空
func (r *RecipeRepository) ReplaceTags(recipe *models.Recipe, tags []models.Tag) error {
	if len(tags) == 0 {
		return r.db.Model(recipe).Association("Tags").Clear()
	}
	return r.db.Model(recipe).Association("Tags").Replace(tags)
}

// ReplaceIngredients 整体替换菜谱的食材关联，空集合表示清空
func (r *RecipeRepository) ReplaceIngredients(recipe *models.Recipe, ingredients []models.Ingredient) error {
	if len(ingredients) == 0 {
		return r.db.Model(recipe).Association("Ingredients").Clear()
	}
	return r.db.Model(recipe).Association("Ingredients").Replace(ingredients)
}

// UpdateImage 更新菜谱图片路径
func (r *RecipeRepository) UpdateImage(recipe *models.Recipe, imagePath string) error {
	return r.db.Model(recipe).Update("image", imagePath).Error
}

// Delete 删除菜谱，关联表记录一并清理，标签和食材本身保留
func (r *RecipeRepository) Delete(recipe *models.Recipe) error {
	if err := r.db.Model(recipe).Association("Tags").Clear(); err != nil {
		return err
	}
	if err := r.db.Model(recipe).Association("Ingredients").Clear(); err != nil {
		return err
	}
	return r.db.Delete(recipe).Error
}
