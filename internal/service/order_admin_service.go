package service

import (
	"github.com/storelane/storelane/internal/models"
	"github.com/storelane/storelane/internal/repository"
)

// OrderAdminService 订单后台查询服务
type OrderAdminService struct {
	orderRepo repository.OrderRepository
}

// NewOrderAdminService 创建订单后台服务
func NewOrderAdminService(orderRepo repository.OrderRepository) *OrderAdminService {
	return &OrderAdminService{orderRepo: orderRepo}
}

// List 按状态与顾客筛选订单
func (s *OrderAdminService) List(status string, customerID uint, page, pageSize int) ([]models.Order, int64, error) {
	return s.orderRepo.List(repository.OrderListFilter{
		CustomerID: customerID,
		Status:     status,
		Page:       page,
		PageSize:   pageSize,
	})
}

// GetByOrderNo 根据订单编号查询订单
func (s *OrderAdminService) GetByOrderNo(orderNo string) (*models.Order, error) {
	order, err := s.orderRepo.GetByOrderNo(orderNo)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
