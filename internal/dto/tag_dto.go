package dto

import (
	"recipe-api/internal/models"
)

// TagRequest 创建/更新标签请求
type TagRequest struct {
	Name string `json:"name" binding:"required"`
}

// TagResponse 标签响应
type TagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// NewTagResponse 从模型构造标签响应
func NewTagResponse(tag *models.Tag) TagResponse {
	return TagResponse{
		ID:   tag.ID,
		Name: tag.Name,
	}
}

// NewTagResponses 批量构造标签响应
func NewTagResponses(tags []models.Tag) []TagResponse {
	responses := make([]TagResponse, 0, len(tags))
	for i := range tags {
		responses = append(responses, NewTagResponse(&tags[i]))
	}
	return responses
}
