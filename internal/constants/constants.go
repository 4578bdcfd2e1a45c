package constants

// 订单状态常量
const (
	OrderStatusPendingPayment = "pending_payment"
	OrderStatusPaid           = "paid"
	OrderStatusCanceled       = "canceled"
)

// 折扣类型常量
const (
	DiscountKindFixed   = "fixed"
	DiscountKindPercent = "percent"
)

// 适用范围常量
const (
	ScopeTypeAll      = "all"
	ScopeTypeCategory = "category"
	ScopeTypeProduct  = "product"
)

// 队列常量
const (
	QueueDefault               = "default"
	TaskOrderConfirmationEmail = "order:confirmation_email"
	TaskOrderTimeoutCancel     = "order:timeout_cancel"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault   = "sl"
	CacheKeyProductList  = "catalog:products"
	CacheKeyCategoryList = "catalog:categories"
)

// 币种常量
const (
	SiteCurrencyDefault = "USD"
)
