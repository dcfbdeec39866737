package dto

import (
	"recipe-api/internal/models"
)

// IngredientRequest 创建/更新食材请求
type IngredientRequest struct {
	Name string `json:"name" binding:"required"`
}

// IngredientResponse 食材响应
type IngredientResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// NewIngredientResponse 从模型构造食材响应
func NewIngredientResponse(ingredient *models.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:   ingredient.ID,
		Name: ingredient.Name,
	}
}

// NewIngredientResponses 批量构造食材响应
func NewIngredientResponses(ingredients []models.Ingredient) []IngredientResponse {
	responses := make([]IngredientResponse, 0, len(ingredients))
	for i := range ingredients {
		responses = append(responses, NewIngredientResponse(&ingredients[i]))
	}
	return responses
}
