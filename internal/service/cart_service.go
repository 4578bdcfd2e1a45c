package service

import (
	"time"

	"github.com/storelane/storelane/internal/models"
	"github.com/storelane/storelane/internal/pricing"
	"github.com/storelane/storelane/internal/repository"
)

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	dealService *DealService
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, dealService *DealService) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		dealService: dealService,
	}
}

// AddItem 添加商品到购物车（已存在则覆盖数量）
func (s *CartService) AddItem(customerID, productID uint, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	if !product.IsActive {
		return ErrProductInactive
	}
	return s.cartRepo.Upsert(&models.CartItem{
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   quantity,
	})
}

// RemoveItem 从购物车删除商品
func (s *CartService) RemoveItem(customerID, productID uint) error {
	return s.cartRepo.DeleteByCustomerAndProduct(customerID, productID)
}

// Clear 清空购物车
func (s *CartService) Clear(customerID uint) error {
	return s.cartRepo.ClearByCustomer(customerID)
}

// PricedLine 购物车行的计价视图
type PricedLine struct {
	ProductID          uint         `json:"product_id"`
	ProductName        string       `json:"product_name"`
	CategoryID         uint         `json:"category_id"`
	Quantity           int          `json:"quantity"`
	UnitPriceOriginal  models.Money `json:"unit_price_original"`
	UnitPriceAfterDeal models.Money `json:"unit_price_after_deal"`
	DealID             *uint        `json:"deal_id,omitempty"`
	DealName           string       `json:"deal_name,omitempty"`
}

// PricedCart 购物车计价快照：行价已按促销价调整，作为后续活动与优惠券的计算基数
type PricedCart struct {
	Cart  pricing.Cart
	Lines []PricedLine
}

// BuildPricedCart 读取购物车并解析促销价，产出计价引擎所需的快照。
// 已下架或删除的商品行跳过，不阻塞整车计价。
func (s *CartService) BuildPricedCart(customerID uint, now time.Time) (*PricedCart, error) {
	items, err := s.cartRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(items))
	for _, item := range items {
		if item.Product == nil || !item.Product.IsActive {
			continue
		}
		products = append(products, *item.Product)
	}
	resolved, err := s.dealService.ResolvePrices(products, now)
	if err != nil {
		return nil, err
	}

	priced := &PricedCart{Cart: pricing.Cart{CustomerID: customerID}}
	for _, item := range items {
		if item.Product == nil || !item.Product.IsActive {
			continue
		}
		price := resolved[item.ProductID]
		priced.Cart.Lines = append(priced.Cart.Lines, pricing.Line{
			ProductID:          item.ProductID,
			CategoryID:         item.Product.CategoryID,
			Quantity:           item.Quantity,
			UnitPriceOriginal:  price.UnitPriceOriginal.Decimal,
			UnitPriceAfterDeal: price.UnitPriceAfterDeal.Decimal,
			DealID:             price.DealID,
		})
		priced.Lines = append(priced.Lines, PricedLine{
			ProductID:          item.ProductID,
			ProductName:        item.Product.Name,
			CategoryID:         item.Product.CategoryID,
			Quantity:           item.Quantity,
			UnitPriceOriginal:  price.UnitPriceOriginal,
			UnitPriceAfterDeal: price.UnitPriceAfterDeal,
			DealID:             price.DealID,
			DealName:           price.DealName,
		})
	}
	return priced, nil
}
