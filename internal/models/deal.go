package models

import (
	"time"

	"gorm.io/gorm"
)

// Deal 商品促销价规则（仅按商品ID集合生效）
type Deal struct {
	ID         uint           `gorm:"primarykey" json:"id"`                     // 主键
	Name       string         `gorm:"not null" json:"name"`                     // 名称
	Kind       string         `gorm:"not null" json:"kind"`                     // 类型（fixed/percent）
	Value      Money          `gorm:"type:decimal(20,2);not null" json:"value"` // 数值（固定金额或百分比）
	ProductIDs UintList       `gorm:"type:text" json:"product_ids"`             // 适用商品ID集合（JSON数组）
	Priority   int            `gorm:"not null;default:0;index" json:"priority"` // 优先级（大者优先）
	StartsAt   *time.Time     `gorm:"index" json:"starts_at"`                   // 生效时间（必填）
	EndsAt     *time.Time     `gorm:"index" json:"ends_at"`                     // 失效时间（必填）
	IsActive   bool           `gorm:"not null;default:true" json:"is_active"`   // 是否启用
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                  // 创建时间
	UpdatedAt  time.Time      `gorm:"index" json:"updated_at"`                  // 更新时间
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                           // 软删除时间
}

// TableName 指定表名
func (Deal) TableName() string {
	return "deals"
}
