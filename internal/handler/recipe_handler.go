package handler

import (
	"io"
	"strconv"
	"strings"

	"recipe-api/internal/dto"
	"recipe-api/internal/middleware"
	"recipe-api/internal/service"
	"recipe-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// RecipeHandler 菜谱处理器
type RecipeHandler struct {
	recipeService *service.RecipeService
}

// NewRecipeHandler 创建菜谱处理器
func NewRecipeHandler(recipeService *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// List 获取菜谱列表
// 支持 tags=1,2 和 ingredients=3,4 过滤
func (h *RecipeHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	tagIDs := parseIDList(c.Query("tags"))
	ingredientIDs := parseIDList(c.Query("ingredients"))

	recipes, err := h.recipeService.List(userID, tagIDs, ingredientIDs)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	items := make([]dto.RecipeListItem, 0, len(recipes))
	for i := range recipes {
		items = append(items, dto.NewRecipeListItem(&recipes[i], h.recipeService.ImageURL(&recipes[i])))
	}

	utils.SuccessResponse(c, items)
}

// Create 创建菜谱
func (h *RecipeHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.FormatValidationError(err).Error())
		return
	}

	recipe, err := h.recipeService.Create(userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.NewRecipeDetail(recipe, h.recipeService.ImageURL(recipe)))
}

// Get 获取菜谱详情
func (h *RecipeHandler) Get(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	recipe, err := h.recipeService.Get(userID, uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, dto.NewRecipeDetail(recipe, h.recipeService.ImageURL(recipe)))
}

// Update 整体更新菜谱（PUT），省略的关联字段会被清空
func (h *RecipeHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	var req dto.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.FormatValidationError(err).Error())
		return
	}

	recipe, err := h.recipeService.FullUpdate(userID, uint(id), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, dto.NewRecipeDetail(recipe, h.recipeService.ImageURL(recipe)))
}

// Patch 部分更新菜谱，仅修改请求中出现的字段
func (h *RecipeHandler) Patch(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	var req dto.RecipePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.FormatValidationError(err).Error())
		return
	}

	recipe, err := h.recipeService.PartialUpdate(userID, uint(id), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, dto.NewRecipeDetail(recipe, h.recipeService.ImageURL(recipe)))
}

// Delete 删除菜谱
func (h *RecipeHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	if err := h.recipeService.Delete(userID, uint(id)); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// UploadImage 上传菜谱图片（multipart字段名为image）
func (h *RecipeHandler) UploadImage(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	file, err := c.FormFile("image")
	if err != nil {
		utils.BadRequest(c, "图片上传失败: "+err.Error())
		return
	}

	src, err := file.Open()
	if err != nil {
		utils.BadRequest(c, "打开文件失败: "+err.Error())
		return
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		utils.BadRequest(c, "读取文件失败: "+err.Error())
		return
	}

	recipe, err := h.recipeService.UploadImage(userID, uint(id), file.Filename, content)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, dto.NewRecipeDetail(recipe, h.recipeService.ImageURL(recipe)))
}

// parseIDList 解析逗号分隔的ID参数
func parseIDList(raw string) []uint {
	if raw == "" {
		return nil
	}

	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}
