package service

import (
	"context"
	"time"

	"github.com/storelane/storelane/internal/cache"
	"github.com/storelane/storelane/internal/constants"
	"github.com/storelane/storelane/internal/logger"
	"github.com/storelane/storelane/internal/models"
	"github.com/storelane/storelane/internal/repository"
)

const categoryListCacheTTL = 10 * time.Minute

// CategoryService 分类服务
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// List 获取分类列表（走 Redis 缓存）
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	var cached []models.Category
	hit, err := cache.GetJSON(ctx, constants.CacheKeyCategoryList, &cached)
	if err != nil {
		logger.Warnw("category_list_cache_read_failed", "error", err)
	} else if hit {
		return cached, nil
	}

	categories, err := s.categoryRepo.ListAll()
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, constants.CacheKeyCategoryList, categories, categoryListCacheTTL); err != nil {
		logger.Warnw("category_list_cache_write_failed", "error", err)
	}
	return categories, nil
}

// GetBySlug 根据标识获取分类
func (s *CategoryService) GetBySlug(slug string) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// InvalidateListCache 分类变更后清理列表缓存
func (s *CategoryService) InvalidateListCache(ctx context.Context) {
	if err := cache.Del(ctx, constants.CacheKeyCategoryList); err != nil {
		logger.Warnw("category_list_cache_del_failed", "error", err)
	}
}
