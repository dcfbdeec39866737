package handler

import (
	"strconv"

	"recipe-api/internal/dto"
	"recipe-api/internal/middleware"
	"recipe-api/internal/service"
	"recipe-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// IngredientHandler 食材处理器
type IngredientHandler struct {
	ingredientService *service.IngredientService
}

// NewIngredientHandler 创建食材处理器
func NewIngredientHandler(ingredientService *service.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredientService: ingredientService}
}

// List 获取食材列表
// assigned_only=1 时仅返回已关联菜谱的食材
func (h *IngredientHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	assignedOnly := c.Query("assigned_only") == "1"

	ingredients, err := h.ingredientService.List(userID, assignedOnly)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, dto.NewIngredientResponses(ingredients))
}

// Create 创建食材
func (h *IngredientHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.FormatValidationError(err).Error())
		return
	}

	ingredient, err := h.ingredientService.Create(userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.NewIngredientResponse(ingredient))
}

// Update 更新食材
func (h *IngredientHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	var req dto.IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.FormatValidationError(err).Error())
		return
	}

	ingredient, err := h.ingredientService.Update(userID, uint(id), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, dto.NewIngredientResponse(ingredient))
}

// Delete 删除食材
func (h *IngredientHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	if err := h.ingredientService.Delete(userID, uint(id)); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
