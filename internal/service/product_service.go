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

const productListCacheTTL = 5 * time.Minute

// ProductService 商品目录服务
type ProductService struct {
	productRepo repository.ProductRepository
	dealService *DealService
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository, dealService *DealService) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		dealService: dealService,
	}
}

// ProductView 商品展示视图（含促销价）
type ProductView struct {
	ID                 uint         `json:"id"`
	CategoryID         uint         `json:"category_id"`
	Slug               string       `json:"slug"`
	Name               string       `json:"name"`
	Description        string       `json:"description,omitempty"`
	UnitPriceOriginal  models.Money `json:"unit_price_original"`
	UnitPriceAfterDeal models.Money `json:"unit_price_after_deal"`
	DealID             *uint        `json:"deal_id,omitempty"`
	DealName           string       `json:"deal_name,omitempty"`
}

// List 获取上架商品列表。无筛选条件的基础列表走 Redis 缓存，
// 促销价随 now 变化，每次请求重新解析，保证价签与规则窗口一致。
func (s *ProductService) List(ctx context.Context, categoryID uint, keyword string, page, pageSize int, now time.Time) ([]ProductView, int64, error) {
	products, total, err := s.listActive(ctx, categoryID, keyword, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	resolved, err := s.dealService.ResolvePrices(products, now)
	if err != nil {
		return nil, 0, err
	}

	views := make([]ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, buildProductView(product, resolved[product.ID]))
	}
	return views, total, nil
}

// GetBySlug 获取商品详情（含促销价）
func (s *ProductService) GetBySlug(slug string, now time.Time) (*ProductView, error) {
	product, err := s.productRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotFound
	}
	price, err := s.dealService.ResolvePrice(product, now)
	if err != nil {
		return nil, err
	}
	view := buildProductView(*product, price)
	return &view, nil
}

type cachedProductList struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
}

func (s *ProductService) listActive(ctx context.Context, categoryID uint, keyword string, page, pageSize int) ([]models.Product, int64, error) {
	useCache := categoryID == 0 && keyword == "" && page <= 1 && pageSize <= 0
	if useCache {
		var cached cachedProductList
		hit, err := cache.GetJSON(ctx, constants.CacheKeyProductList, &cached)
		if err != nil {
			logger.Warnw("product_list_cache_read_failed", "error", err)
		} else if hit {
			return cached.Products, cached.Total, nil
		}
	}

	isActive := true
	products, total, err := s.productRepo.List(repository.ProductListFilter{
		CategoryID: categoryID,
		IsActive:   &isActive,
		Keyword:    keyword,
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		return nil, 0, err
	}

	if useCache {
		if err := cache.SetJSON(ctx, constants.CacheKeyProductList, cachedProductList{Products: products, Total: total}, productListCacheTTL); err != nil {
			logger.Warnw("product_list_cache_write_failed", "error", err)
		}
	}
	return products, total, nil
}

// InvalidateListCache 商品变更后清理列表缓存
func (s *ProductService) InvalidateListCache(ctx context.Context) {
	if err := cache.Del(ctx, constants.CacheKeyProductList); err != nil {
		logger.Warnw("product_list_cache_del_failed", "error", err)
	}
}

func buildProductView(product models.Product, price ResolvedPrice) ProductView {
	return ProductView{
		ID:                 product.ID,
		CategoryID:         product.CategoryID,
		Slug:               product.Slug,
		Name:               product.Name,
		Description:        product.Description,
		UnitPriceOriginal:  price.UnitPriceOriginal,
		UnitPriceAfterDeal: price.UnitPriceAfterDeal,
		DealID:             price.DealID,
		DealName:           price.DealName,
	}
}
