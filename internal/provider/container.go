package provider

import (
	"github.com/storelane/storelane/internal/cache"
	"github.com/storelane/storelane/internal/config"
	"github.com/storelane/storelane/internal/logger"
	"github.com/storelane/storelane/internal/models"
	"github.com/storelane/storelane/internal/queue"
	"github.com/storelane/storelane/internal/repository"
	"github.com/storelane/storelane/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	CategoryRepo    repository.CategoryRepository
	ProductRepo     repository.ProductRepository
	DealRepo        repository.DealRepository
	PromotionRepo   repository.PromotionRepository
	CouponRepo      repository.CouponRepository
	CouponUsageRepo repository.CouponUsageRepository
	CartRepo        repository.CartRepository
	OrderRepo       repository.OrderRepository

	// Services
	CategoryService       *service.CategoryService
	ProductService        *service.ProductService
	DealService           *service.DealService
	PromotionService      *service.PromotionService
	CouponService         *service.CouponService
	CartService           *service.CartService
	OrderService          *service.OrderService
	DealAdminService      *service.DealAdminService
	PromotionAdminService *service.PromotionAdminService
	CouponAdminService    *service.CouponAdminService
	OrderAdminService     *service.OrderAdminService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.DealRepo = repository.NewDealRepository(db)
	c.PromotionRepo = repository.NewPromotionRepository(db)
	c.CouponRepo = repository.NewCouponRepository(db)
	c.CouponUsageRepo = repository.NewCouponUsageRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.DealService = service.NewDealService(c.DealRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.DealService)
	c.PromotionService = service.NewPromotionService(c.PromotionRepo)
	c.CouponService = service.NewCouponService(c.CouponRepo, c.CouponUsageRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, c.DealService)
	c.OrderService = service.NewOrderService(
		models.DB,
		c.OrderRepo,
		c.CartRepo,
		c.CartService,
		c.PromotionService,
		c.CouponService,
		c.QueueClient,
		c.Config.Order,
		c.Config.Pricing,
	)
	c.DealAdminService = service.NewDealAdminService(c.DealRepo)
	c.PromotionAdminService = service.NewPromotionAdminService(c.PromotionRepo)
	c.CouponAdminService = service.NewCouponAdminService(c.CouponRepo, c.CouponUsageRepo)
	c.OrderAdminService = service.NewOrderAdminService(c.OrderRepo)
}
