package repository

import (
	"errors"
	"time"

	"github.com/storelane/storelane/internal/models"

	"gorm.io/gorm"
)

// DealRepository 促销价规则数据访问接口
type DealRepository interface {
	GetByID(id uint) (*models.Deal, error)
	ListUsable(now time.Time) ([]models.Deal, error)
	List(filter DealListFilter) ([]models.Deal, int64, error)
	Create(deal *models.Deal) error
	Update(deal *models.Deal) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) *GormDealRepository
}

// DealListFilter 促销价规则列表筛选
type DealListFilter struct {
	IsActive *bool
	Page     int
	PageSize int
}

// GormDealRepository GORM 实现
type GormDealRepository struct {
	db *gorm.DB
}

// NewDealRepository 创建促销价规则仓库
func NewDealRepository(db *gorm.DB) *GormDealRepository {
	return &GormDealRepository{db: db}
}

// WithTx 绑定事务
func (r *GormDealRepository) WithTx(tx *gorm.DB) *GormDealRepository {
	if tx == nil {
		return r
	}
	return &GormDealRepository{db: tx}
}

// GetByID 根据ID获取促销价规则
func (r *GormDealRepository) GetByID(id uint) (*models.Deal, error) {
	var deal models.Deal
	if err := r.db.First(&deal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &deal, nil
}

// ListUsable 获取 now 时刻可用的促销价规则（粗过滤，精确判定由计价引擎完成）
func (r *GormDealRepository) ListUsable(now time.Time) ([]models.Deal, error) {
	var deals []models.Deal
	err := r.db.
		Where("is_active = ?", true).
		Where("starts_at IS NULL OR starts_at <= ?", now).
		Where("ends_at IS NULL OR ends_at > ?", now).
		Order("priority desc, created_at desc").
		Find(&deals).Error
	if err != nil {
		return nil, err
	}
	return deals, nil
}

// List 获取促销价规则列表
func (r *GormDealRepository) List(filter DealListFilter) ([]models.Deal, int64, error) {
	var deals []models.Deal
	query := r.db.Model(&models.Deal{})

	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("id desc").Find(&deals).Error; err != nil {
		return nil, 0, err
	}
	return deals, total, nil
}

// Create 创建促销价规则
func (r *GormDealRepository) Create(deal *models.Deal) error {
	return r.db.Create(deal).Error
}

// Update 更新促销价规则
func (r *GormDealRepository) Update(deal *models.Deal) error {
	return r.db.Save(deal).Error
}

// Delete 删除促销价规则
func (r *GormDealRepository) Delete(id uint) error {
	return r.db.Delete(&models.Deal{}, id).Error
}
