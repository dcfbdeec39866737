package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"recipe-api/internal/config"
	"recipe-api/internal/dto"
	"recipe-api/internal/models"
	"recipe-api/internal/repository"
	"recipe-api/internal/utils"

	"gorm.io/gorm"
)

// RecipeService 菜谱服务
type RecipeService struct {
	recipeRepo     *repository.RecipeRepository
	tagRepo        *repository.TagRepository
	ingredientRepo *repository.IngredientRepository
	cfg            *config.Config
}

// NewRecipeService 创建菜谱服务
func NewRecipeService(
	recipeRepo *repository.RecipeRepository,
	tagRepo *repository.TagRepository,
	ingredientRepo *repository.IngredientRepository,
	cfg *config.Config,
) *RecipeService {
	return &RecipeService{
		recipeRepo:     recipeRepo,
		tagRepo:        tagRepo,
		ingredientRepo: ingredientRepo,
		cfg:            cfg,
	}
}

// List 获取调用者的菜谱列表，可按标签、食材过滤
func (s *RecipeService) List(userID uint, tagIDs []uint, ingredientIDs []uint) ([]models.Recipe, error) {
	return s.recipeRepo.ListByUser(userID, tagIDs, ingredientIDs)
}

// Get 获取调用者的单个菜谱
func (s *RecipeService) Get(userID uint, id uint) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByIDAndUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return recipe, nil
}

// Create 创建菜谱
// 关联的标签和食材必须已存在且属于调用者本人
func (s *RecipeService) Create(userID uint, req *dto.RecipeRequest) (*models.Recipe, error) {
	tags, err := s.resolveTags(userID, req.Tags)
	if err != nil {
		return nil, err
	}
	ingredients, err := s.resolveIngredients(userID, req.Ingredients)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		UserID:      userID,
		Title:       req.Title,
		TimeMinutes: *req.TimeMinutes,
		Price:       *req.Price,
		Link:        req.Link,
		Tags:        tags,
		Ingredients: ingredients,
	}

	if err := s.recipeRepo.Create(recipe); err != nil {
		return nil, fmt.Errorf("创建菜谱失败: %w", err)
	}

	return s.Get(userID, recipe.ID)
}

// FullUpdate 整体替换菜谱
// 请求中省略的关联字段视为空集合，原有关联被清空
func (s *RecipeService) FullUpdate(userID uint, id uint, req *dto.RecipeRequest) (*models.Recipe, error) {
	recipe, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	tags, err := s.resolveTags(userID, req.Tags)
	if err != nil {
		return nil, err
	}
	ingredients, err := s.resolveIngredients(userID, req.Ingredients)
	if err != nil {
		return nil, err
	}

	recipe.Title = req.Title
	recipe.TimeMinutes = *req.TimeMinutes
	recipe.Price = *req.Price
	recipe.Link = req.Link

	if err := s.recipeRepo.Update(recipe); err != nil {
		return nil, fmt.Errorf("更新菜谱失败: %w", err)
	}
	if err := s.recipeRepo.ReplaceTags(recipe, tags); err != nil {
		return nil, fmt.Errorf("更新标签关联失败: %w", err)
	}
	if err := s.recipeRepo.ReplaceIngredients(recipe, ingredients); err != nil {
		return nil, fmt.Errorf("更新食材关联失败: %w", err)
	}

	return s.Get(userID, id)
}

// PartialUpdate 部分更新菜谱，仅修改请求中出现的字段
// 关联字段缺席时保持不变，显式传空数组时清空
func (s *RecipeService) PartialUpdate(userID uint, id uint, req *dto.RecipePatchRequest) (*models.Recipe, error) {
	recipe, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	// 先解析全部关联，任一ID非法时在写入前失败，不留下部分更新
	var tags []models.Tag
	if req.Tags != nil {
		if tags, err = s.resolveTags(userID, *req.Tags); err != nil {
			return nil, err
		}
	}
	var ingredients []models.Ingredient
	if req.Ingredients != nil {
		if ingredients, err = s.resolveIngredients(userID, *req.Ingredients); err != nil {
			return nil, err
		}
	}

	if req.Title != nil {
		recipe.Title = *req.Title
	}
	if req.TimeMinutes != nil {
		recipe.TimeMinutes = *req.TimeMinutes
	}
	if req.Price != nil {
		recipe.Price = *req.Price
	}
	if req.Link != nil {
		recipe.Link = *req.Link
	}

	if err := s.recipeRepo.Update(recipe); err != nil {
		return nil, fmt.Errorf("更新菜谱失败: %w", err)
	}

	if req.Tags != nil {
		if err := s.recipeRepo.ReplaceTags(recipe, tags); err != nil {
			return nil, fmt.Errorf("更新标签关联失败: %w", err)
		}
	}
	if req.Ingredients != nil {
		if err := s.recipeRepo.ReplaceIngredients(recipe, ingredients); err != nil {
			return nil, fmt.Errorf("更新食材关联失败: %w", err)
		}
	}

	return s.Get(userID, id)
}

// Delete 删除菜谱及其关联记录
func (s *RecipeService) Delete(userID uint, id uint) error {
	recipe, err := s.Get(userID, id)
	if err != nil {
		return err
	}
	return s.recipeRepo.Delete(recipe)
}

// UploadImage 上传菜谱图片
// 内容必须是可解码的图片，校验失败时不落盘；
// 新图片写入随机生成的路径，旧文件保留在磁盘上
func (s *RecipeService) UploadImage(userID uint, id uint, filename string, content []byte) (*models.Recipe, error) {
	recipe, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	format, err := utils.ValidateImage(content)
	if err != nil {
		return nil, validationError("%s", err.Error())
	}

	relPath := utils.RecipeImagePath(filename, format)
	fullPath := filepath.Join(s.cfg.Upload.Path, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return nil, fmt.Errorf("创建图片目录失败: %w", err)
	}
	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		return nil, fmt.Errorf("保存图片失败: %w", err)
	}

	if err := s.recipeRepo.UpdateImage(recipe, relPath); err != nil {
		return nil, fmt.Errorf("更新图片路径失败: %w", err)
	}

	return s.Get(userID, id)
}

// ImageURL 返回菜谱图片的访问URL，无图片时为空串
func (s *RecipeService) ImageURL(recipe *models.Recipe) string {
	if recipe.Image == "" {
		return ""
	}
	return s.cfg.Upload.URLPrefix + "/" + filepath.ToSlash(recipe.Image)
}

// resolveTags 将标签ID解析为调用者自己的标签实体
func (s *RecipeService) resolveTags(userID uint, ids []uint) ([]models.Tag, error) {
	if len(ids) == 0 {
		return []models.Tag{}, nil
	}

	tags, err := s.tagRepo.GetByIDsAndUser(ids, userID)
	if err != nil {
		return nil, fmt.Errorf("查询标签失败: %w", err)
	}
	if len(tags) != len(uniqueIDs(ids)) {
		return nil, validationError("标签不存在或不属于当前用户")
	}
	return tags, nil
}

// resolveIngredients 将食材ID解析为调用者自己的食材实体
func (s *RecipeService) resolveIngredients(userID uint, ids []uint) ([]models.Ingredient, error) {
	if len(ids) == 0 {
		return []models.Ingredient{}, nil
	}

	ingredients, err := s.ingredientRepo.GetByIDsAndUser(ids, userID)
	if err != nil {
		return nil, fmt.Errorf("查询食材失败: %w", err)
	}
	if len(ingredients) != len(uniqueIDs(ids)) {
		return nil, validationError("食材不存在或不属于当前用户")
	}
	return ingredients, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	result := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
