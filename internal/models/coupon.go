package models

import (
	"time"

	"gorm.io/gorm"
)

// Coupon 优惠券
type Coupon struct {
	ID                uint           `gorm:"primarykey" json:"id"`                                             // 主键
	Code              string         `gorm:"uniqueIndex;not null" json:"code"`                                 // 优惠码（统一大写存储）
	Name              string         `gorm:"not null" json:"name"`                                             // 名称
	Kind              string         `gorm:"not null" json:"kind"`                                             // 类型（fixed/percent）
	Value             Money          `gorm:"type:decimal(20,2);not null" json:"value"`                         // 数值（固定金额或百分比）
	ScopeType         string         `gorm:"not null;default:'all'" json:"scope_type"`                         // 适用范围（all/category/product）
	CategoryIDs       UintList       `gorm:"type:text" json:"category_ids"`                                    // 适用分类ID集合（JSON数组）
	ProductIDs        UintList       `gorm:"type:text" json:"product_ids"`                                     // 适用商品ID集合（JSON数组）
	MinOrderAmount    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"min_order_amount"`    // 使用门槛
	MaxDiscountAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"max_discount_amount"` // 最大优惠金额（0 表示不限制）
	UsageLimit        int            `gorm:"not null;default:0" json:"usage_limit"`                            // 总使用上限（0 表示不限制）
	UsedCount         int            `gorm:"not null;default:0" json:"used_count"`                             // 已使用次数（仅由兑换提交器修改）
	PerCustomerLimit  int            `gorm:"not null;default:0" json:"per_customer_limit"`                     // 每人使用上限（0 表示不限制）
	StartsAt          *time.Time     `gorm:"index" json:"starts_at"`                                           // 生效时间（可空 = 立即生效）
	EndsAt            *time.Time     `gorm:"index" json:"ends_at"`                                             // 失效时间（可空 = 永不过期）
	IsActive          bool           `gorm:"not null;default:true" json:"is_active"`                           // 是否启用
	CreatedAt         time.Time      `gorm:"index" json:"created_at"`                                          // 创建时间
	UpdatedAt         time.Time      `gorm:"index" json:"updated_at"`                                          // 更新时间
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`                                                   // 软删除时间
}

// TableName 指定表名
func (Coupon) TableName() string {
	return "coupons"
}
