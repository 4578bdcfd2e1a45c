package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem 订单项表
type OrderItem struct {
	ID                 uint           `gorm:"primarykey" json:"id"`                                               // 主键
	OrderID            uint           `gorm:"index;not null" json:"order_id"`                                     // 订单ID
	ProductID          uint           `gorm:"index;not null" json:"product_id"`                                   // 商品ID
	CategoryID         uint           `gorm:"index;not null" json:"category_id"`                                  // 分类ID快照
	Name               string         `gorm:"not null" json:"name"`                                               // 商品名称快照
	Quantity           int            `gorm:"not null" json:"quantity"`                                           // 数量
	UnitPriceOriginal  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price_original"`   // 原始单价
	UnitPriceAfterDeal Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price_after_deal"` // 促销价后单价
	DealID             *uint          `gorm:"index" json:"deal_id,omitempty"`                                     // 促销价规则ID
	TotalPrice         Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"`           // 小计（促销价后）
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`                                            // 创建时间
	UpdatedAt          time.Time      `gorm:"index" json:"updated_at"`                                            // 更新时间
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`                                                     // 软删除时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
