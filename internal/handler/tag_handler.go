package handler

import (
	"strconv"

	"recipe-api/internal/dto"
	"recipe-api/internal/middleware"
	"recipe-api/internal/service"
	"recipe-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// TagHandler 标签处理器
type TagHandler struct {
	tagService *service.TagService
}

// NewTagHandler 创建标签处理器
func NewTagHandler(tagService *service.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// List 获取标签列表
// assigned_only=1 时仅返回已关联菜谱的标签
func (h *TagHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	assignedOnly := c.Query("assigned_only") == "1"

	tags, err := h.tagService.List(userID, assignedOnly)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, dto.NewTagResponses(tags))
}

// Create 创建标签
func (h *TagHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.FormatValidationError(err).Error())
		return
	}

	tag, err := h.tagService.Create(userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.NewTagResponse(tag))
}

// Update 更新标签
func (h *TagHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	var req dto.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.FormatValidationError(err).Error())
		return
	}

	tag, err := h.tagService.Update(userID, uint(id), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, dto.NewTagResponse(tag))
}

// Delete 删除标签
func (h *TagHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	if err := h.tagService.Delete(userID, uint(id)); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
