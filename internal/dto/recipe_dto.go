package dto

import (
	"recipe-api/internal/models"
)

// RecipeRequest 创建/整体更新菜谱请求
// PUT语义：省略Tags/Ingredients等同于传空数组，原有关联被清空
type RecipeRequest struct {
	Title       string   `json:"title" binding:"required"`
	TimeMinutes *int     `json:"time_minutes" binding:"required,gte=0"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Link        string   `json:"link"`
	Tags        []uint   `json:"tags"`
	Ingredients []uint   `json:"ingredients"`
}

// RecipePatchRequest 部分更新菜谱请求
// 指针字段缺席时不修改；Tags/Ingredients为nil时保持原关联
type RecipePatchRequest struct {
	Title       *string  `json:"title"`
	TimeMinutes *int     `json:"time_minutes" binding:"omitempty,gte=0"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Link        *string  `json:"link"`
	Tags        *[]uint  `json:"tags"`
	Ingredients *[]uint  `json:"ingredients"`
}

// RecipeListItem 菜谱列表项，关联仅含ID
type RecipeListItem struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	TimeMinutes int     `json:"time_minutes"`
	Price       float64 `json:"price"`
	Link        string  `json:"link"`
	Tags        []uint  `json:"tags"`
	Ingredients []uint  `json:"ingredients"`
	Image       string  `json:"image"`
}

// RecipeDetail 菜谱详情，关联展开为完整对象
type RecipeDetail struct {
	ID          uint                 `json:"id"`
	Title       string               `json:"title"`
	TimeMinutes int                  `json:"time_minutes"`
	Price       float64              `json:"price"`
	Link        string               `json:"link"`
	Tags        []TagResponse        `json:"tags"`
	Ingredients []IngredientResponse `json:"ingredients"`
	Image       string               `json:"image"`
}

// NewRecipeListItem 从模型构造列表项
func NewRecipeListItem(recipe *models.Recipe, imageURL string) RecipeListItem {
	tagIDs := make([]uint, 0, len(recipe.Tags))
	for _, tag := range recipe.Tags {
		tagIDs = append(tagIDs, tag.ID)
	}
	ingredientIDs := make([]uint, 0, len(recipe.Ingredients))
	for _, ingredient := range recipe.Ingredients {
		ingredientIDs = append(ingredientIDs, ingredient.ID)
	}

	return RecipeListItem{
		ID:          recipe.ID,
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Link:        recipe.Link,
		Tags:        tagIDs,
		Ingredients: ingredientIDs,
		Image:       imageURL,
	}
}

// NewRecipeDetail 从模型构造详情
func NewRecipeDetail(recipe *models.Recipe, imageURL string) RecipeDetail {
	return RecipeDetail{
		ID:          recipe.ID,
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Link:        recipe.Link,
		Tags:        NewTagResponses(recipe.Tags),
		Ingredients: NewIngredientResponses(recipe.Ingredients),
		Image:       imageURL,
	}
}
