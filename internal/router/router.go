package router

import (
	"fmt"
	"strings"

	"github.com/storelane/storelane/internal/cache"
	"github.com/storelane/storelane/internal/config"
	adminhandlers "github.com/storelane/storelane/internal/http/handlers/admin"
	publichandlers "github.com/storelane/storelane/internal/http/handlers/public"
	"github.com/storelane/storelane/internal/logger"
	"github.com/storelane/storelane/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按店面/管理端分组）
	publicHandler := publichandlers.NewHandler(
		c.CategoryService,
		c.ProductService,
		c.CartService,
		c.CouponService,
		c.OrderService,
	)
	adminHandler := adminhandlers.NewHandler(
		c.DealAdminService,
		c.PromotionAdminService,
		c.CouponAdminService,
		c.OrderAdminService,
	)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "sl"
	}
	redisClient := cache.Client()
	couponRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:coupon", redisPrefix),
		WindowSeconds: cfg.Security.CouponRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CouponRateLimit.MaxAttempts,
		Message:       "too many coupon attempts, try again later",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/categories", publicHandler.ListCategories)
			public.GET("/products", publicHandler.ListProducts)
			public.GET("/products/:slug", publicHandler.GetProduct)
		}

		// 顾客接口（需鉴权）
		customer := apiV1.Group("")
		customer.Use(CustomerAuthMiddleware(cfg.Auth))
		{
			customer.GET("/cart", publicHandler.GetCart)
			customer.POST("/cart/items", publicHandler.AddCartItem)
			customer.DELETE("/cart/items/:product_id", publicHandler.RemoveCartItem)
			customer.DELETE("/cart", publicHandler.ClearCart)
			customer.POST("/coupons/validate", RateLimitMiddleware(redisClient, couponRule, KeyByCustomerAndIP), publicHandler.ValidateCoupon)
			customer.POST("/orders/preview", publicHandler.PreviewOrder)
			customer.POST("/orders", publicHandler.CreateOrder)
			customer.GET("/orders", publicHandler.ListOrders)
			customer.GET("/orders/:id", publicHandler.GetOrder)
			customer.POST("/orders/:id/cancel", publicHandler.CancelOrder)
		}

		// 管理员接口
		admin := apiV1.Group("/admin")
		{
			// 限时特价管理
			admin.GET("/deals", adminHandler.ListDeals)
			admin.GET("/deals/:id", adminHandler.GetDeal)
			admin.POST("/deals", adminHandler.CreateDeal)
			admin.PUT("/deals/:id", adminHandler.UpdateDeal)
			admin.DELETE("/deals/:id", adminHandler.DeleteDeal)

			// 满减活动管理
			admin.GET("/promotions", adminHandler.ListPromotions)
			admin.GET("/promotions/:id", adminHandler.GetPromotion)
			admin.POST("/promotions", adminHandler.CreatePromotion)
			admin.PUT("/promotions/:id", adminHandler.UpdatePromotion)
			admin.DELETE("/promotions/:id", adminHandler.DeletePromotion)

			// 优惠券管理
			admin.GET("/coupons", adminHandler.ListCoupons)
			admin.GET("/coupons/:id", adminHandler.GetCoupon)
			admin.POST("/coupons", adminHandler.CreateCoupon)
			admin.PUT("/coupons/:id", adminHandler.UpdateCoupon)
			admin.DELETE("/coupons/:id", adminHandler.DeleteCoupon)
			admin.GET("/coupons/:id/usages", adminHandler.ListCouponUsages)

			// 订单查询
			admin.GET("/orders", adminHandler.ListOrders)
			admin.GET("/orders/:order_no", adminHandler.GetOrder)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
