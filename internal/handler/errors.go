package handler

import (
	"errors"

	"recipe-api/internal/service"
	"recipe-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// handleServiceError 将service层错误映射为HTTP响应
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, service.ErrValidation):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		utils.Unauthorized(c, err.Error())
	default:
		utils.InternalError(c, err.Error())
	}
}
