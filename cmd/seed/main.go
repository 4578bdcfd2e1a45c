package main

import (
	"context"
	"fmt"
	"time"

	"github.com/storelane/storelane/internal/auth"
	"github.com/storelane/storelane/internal/config"
	"github.com/storelane/storelane/internal/constants"
	"github.com/storelane/storelane/internal/logger"
	"github.com/storelane/storelane/internal/models"
	"github.com/storelane/storelane/internal/provider"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{Slug: "electronics", Name: "电子产品", SortOrder: 300},
		{Slug: "lifestyle", Name: "生活用品", SortOrder: 200},
		{Slug: "accessories", Name: "数码配件", SortOrder: 100},
	}

	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Slug)
		}
	}

	// 获取分类ID
	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Where("slug IN ?", []string{"electronics", "lifestyle", "accessories"}).Find(&categoryList).Error; err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Slug] = cat.ID
	}
	electronicsID := categoryIDs["electronics"]
	lifestyleID := categoryIDs["lifestyle"]
	accessoriesID := categoryIDs["accessories"]

	// 添加商品
	products := []models.Product{
		{
			Slug:        "wireless-earphones",
			Name:        "无线蓝牙耳机",
			Description: "高品质音质，长续航，舒适佩戴",
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(99.99)),
			CategoryID:  electronicsID,
			SortOrder:   400,
			IsActive:    true,
		},
		{
			Slug:        "smart-watch",
			Name:        "智能手表",
			Description: "健康监测，运动追踪，消息提醒",
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(199.99)),
			CategoryID:  electronicsID,
			SortOrder:   300,
			IsActive:    true,
		},
		{
			Slug:        "power-bank",
			Name:        "便携充电宝",
			Description: "大容量，快速充电，多设备兼容",
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(49.99)),
			CategoryID:  accessoriesID,
			SortOrder:   200,
			IsActive:    true,
		},
		{
			Slug:        "backpack",
			Name:        "多功能背包",
			Description: "大容量，防水防盗，USB充电接口",
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(79.99)),
			CategoryID:  lifestyleID,
			SortOrder:   100,
			IsActive:    true,
		},
	}

	productIDs := map[string]uint{}
	for _, prod := range products {
		if prod.CategoryID == 0 {
			stdLog.Printf("Skip product %s: category_id missing", prod.Slug)
			continue
		}
		var existing models.Product
		if err := models.DB.Where("slug = ?", prod.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Slug, err)
				continue
			}
			stdLog.Printf("Created product: %s", prod.Slug)
			productIDs[prod.Slug] = prod.ID
			continue
		}
		existing.Name = prod.Name
		existing.Description = prod.Description
		existing.PriceAmount = prod.PriceAmount
		existing.CategoryID = prod.CategoryID
		existing.SortOrder = prod.SortOrder
		existing.IsActive = prod.IsActive
		if err := models.DB.Save(&existing).Error; err != nil {
			stdLog.Printf("Failed to update product %s: %v", prod.Slug, err)
			continue
		}
		stdLog.Printf("Updated product: %s", prod.Slug)
		productIDs[prod.Slug] = existing.ID
	}

	now := time.Now()
	dealStart := now.Add(-24 * time.Hour)
	dealEnd := now.AddDate(0, 1, 0)
	promoStart := now.Add(-12 * time.Hour)
	promoEnd := now.AddDate(0, 2, 0)

	// 添加限时特价
	deals := []models.Deal{
		{
			Name:       "耳机限时 8 折",
			Kind:       constants.DiscountKindPercent,
			Value:      models.NewMoneyFromDecimal(decimal.NewFromInt(20)),
			ProductIDs: models.UintList{productIDs["wireless-earphones"]},
			Priority:   10,
			StartsAt:   &dealStart,
			EndsAt:     &dealEnd,
			IsActive:   true,
		},
		{
			Name:       "手表立减 30",
			Kind:       constants.DiscountKindFixed,
			Value:      models.NewMoneyFromDecimal(decimal.NewFromInt(30)),
			ProductIDs: models.UintList{productIDs["smart-watch"]},
			Priority:   5,
			StartsAt:   &dealStart,
			EndsAt:     &dealEnd,
			IsActive:   true,
		},
	}

	for _, deal := range deals {
		var existing models.Deal
		if err := models.DB.Where("name = ?", deal.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&deal).Error; err != nil {
				stdLog.Printf("Failed to create deal %s: %v", deal.Name, err)
			} else {
				stdLog.Printf("Created deal: %s", deal.Name)
			}
		} else {
			stdLog.Printf("Deal already exists: %s", deal.Name)
		}
	}

	// 添加满减活动
	promotions := []models.Promotion{
		{
			Name:              "满 100 减 10%（封顶 80）",
			Kind:              constants.DiscountKindPercent,
			Value:             models.NewMoneyFromDecimal(decimal.NewFromInt(10)),
			ScopeType:         constants.ScopeTypeAll,
			Priority:          10,
			MinOrderAmount:    models.NewMoneyFromDecimal(decimal.NewFromInt(100)),
			MaxDiscountAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(80)),
			StartsAt:          &promoStart,
			EndsAt:            &promoEnd,
			IsActive:          true,
		},
	}

	for _, promo := range promotions {
		var existing models.Promotion
		if err := models.DB.Where("name = ?", promo.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&promo).Error; err != nil {
				stdLog.Printf("Failed to create promotion %s: %v", promo.Name, err)
			} else {
				stdLog.Printf("Created promotion: %s", promo.Name)
			}
		} else {
			stdLog.Printf("Promotion already exists: %s", promo.Name)
		}
	}

	// 添加优惠券
	coupons := []models.Coupon{
		{
			Code:           "WELCOME10",
			Name:           "新客九折券",
			Kind:           constants.DiscountKindPercent,
			Value:          models.NewMoneyFromDecimal(decimal.NewFromInt(10)),
			ScopeType:      constants.ScopeTypeAll,
			MinOrderAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(50)),
			UsageLimit:     100,
			IsActive:       true,
		},
		{
			Code:             "SAVE20",
			Name:             "立减 20 券",
			Kind:             constants.DiscountKindFixed,
			Value:            models.NewMoneyFromDecimal(decimal.NewFromInt(20)),
			ScopeType:        constants.ScopeTypeCategory,
			CategoryIDs:      models.UintList{electronicsID},
			MinOrderAmount:   models.NewMoneyFromDecimal(decimal.NewFromInt(100)),
			UsageLimit:       50,
			PerCustomerLimit: 1,
			IsActive:         true,
		},
	}

	for _, coupon := range coupons {
		var existing models.Coupon
		if err := models.DB.Where("code = ?", coupon.Code).First(&existing).Error; err != nil {
			if err := models.DB.Create(&coupon).Error; err != nil {
				stdLog.Printf("Failed to create coupon %s: %v", coupon.Code, err)
			} else {
				stdLog.Printf("Created coupon: %s", coupon.Code)
			}
		} else {
			stdLog.Printf("Coupon already exists: %s", coupon.Code)
		}
	}

	// 目录数据有改动，清理列表缓存让前台立即看到新数据
	c := provider.NewContainer(cfg)
	if c.QueueClient != nil {
		defer c.QueueClient.Close()
	}
	ctx := context.Background()
	c.CategoryService.InvalidateListCache(ctx)
	c.ProductService.InvalidateListCache(ctx)

	// 签发一个演示顾客令牌，方便直接调用需鉴权的接口
	expireHours := cfg.Auth.ExpireHours
	if expireHours <= 0 {
		expireHours = 72
	}
	demoToken, err := auth.IssueCustomerToken(cfg.Auth.Secret, 1, time.Duration(expireHours)*time.Hour)
	if err != nil {
		stdLog.Printf("Failed to issue demo customer token: %v", err)
	}

	fmt.Println("\n✅ Test data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 3 Categories")
	fmt.Println("- 4 Products")
	fmt.Println("- 2 Deals")
	fmt.Println("- 1 Promotion")
	fmt.Println("- 2 Coupons")
	if demoToken != "" {
		fmt.Printf("\nDemo customer token (customer_id=1):\nBearer %s\n", demoToken)
	}
}
