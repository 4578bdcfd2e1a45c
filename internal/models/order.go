package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表
type Order struct {
	ID                      uint           `gorm:"primarykey" json:"id"`                                                   // 主键
	OrderNo                 string         `gorm:"uniqueIndex;not null" json:"order_no"`                                   // 订单编号
	CustomerID              uint           `gorm:"index;not null" json:"customer_id"`                                      // 顾客ID
	Status                  string         `gorm:"index;not null" json:"status"`                                           // 订单状态
	Currency                string         `gorm:"not null" json:"currency"`                                               // 币种
	ItemsSubtotal           Money          `gorm:"type:decimal(20,2);not null;default:0" json:"items_subtotal"`            // 促销价后商品小计
	PromotionID             *uint          `gorm:"index" json:"promotion_id,omitempty"`                                    // 活动ID
	PromotionDiscountAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"promotion_discount_amount"` // 活动优惠金额
	CouponID                *uint          `gorm:"index" json:"coupon_id,omitempty"`                                       // 优惠券ID
	CouponCode              string         `gorm:"index" json:"coupon_code,omitempty"`                                     // 优惠码快照
	CouponDiscountAmount    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"coupon_discount_amount"`    // 优惠券优惠金额
	DiscountAmount          Money          `gorm:"type:decimal(20,2);not null;default:0" json:"discount_amount"`           // 合计优惠金额（含钳制）
	ShippingAmount          Money          `gorm:"type:decimal(20,2);not null;default:0" json:"shipping_amount"`           // 运费
	TaxAmount               Money          `gorm:"type:decimal(20,2);not null;default:0" json:"tax_amount"`                // 税费
	TotalAmount             Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`              // 实付金额
	ExpiresAt               *time.Time     `gorm:"index" json:"expires_at"`                                                // 过期时间
	PaidAt                  *time.Time     `gorm:"index" json:"paid_at"`                                                   // 支付时间
	CanceledAt              *time.Time     `gorm:"index" json:"canceled_at"`                                               // 取消时间
	CreatedAt               time.Time      `gorm:"index" json:"created_at"`                                                // 创建时间
	UpdatedAt               time.Time      `gorm:"index" json:"updated_at"`                                                // 更新时间
	DeletedAt               gorm.DeletedAt `gorm:"index" json:"-"`                                                         // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
