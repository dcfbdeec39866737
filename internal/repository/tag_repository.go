package repository

import (
	"recipe-api/internal/models"

	"gorm.io/gorm"
)

// TagRepository 标签数据访问层
type TagRepository struct {
	db *gorm.DB
}

// NewTagRepository 创建标签Repository
func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// Create 创建标签
func (r *TagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

// GetByIDAndUser 获取用户自己的标签
// 查询集合按归属过滤，他人的ID与不存在的ID表现一致
func (r *TagRepository) GetByIDAndUser(id uint, userID uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetByIDsAndUser 批量获取用户自己的标签
func (r *TagRepository) GetByIDsAndUser(ids []uint, userID uint) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Where("id IN ? AND user_id = ?", ids, userID).Find(&tags).Error
	return tags, err
}

// ListByUser 获取用户的标签列表，按名称倒序
// assignedOnly 为 true 时只返回已关联到菜谱的标签（去重）
func (r *TagRepository) ListByUser(userID uint, assignedOnly bool) ([]models.Tag, error) {
	var tags []models.Tag

	query := r.db.Model(&models.Tag{}).Where("tags.user_id = ?", userID)
	if assignedOnly {
		query = query.
			Joins("JOIN recipe_tags ON recipe_tags.tag_id = tags.id").
			Distinct("tags.*")
	}

	err := query.Order("tags.name DESC").Find(&tags).Error
	return tags, err
}

// Update 更新标签
func (r *TagRepository) Update(tag *models.Tag) error {
	return r.db.Save(tag).Error
}

// Delete 删除标签并清理与菜谱的关联记录
func (r *TagRepository) Delete(tag *models.Tag) error {
	if err := r.db.Exec("DELETE FROM recipe_tags WHERE tag_id = ?", tag.ID).Error; err != nil {
		return err
	}
	return r.db.Delete(tag).Error
}
