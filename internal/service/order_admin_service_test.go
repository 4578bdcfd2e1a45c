package service

import (
	"errors"
	"testing"

	"github.com/storelane/storelane/internal/constants"
	"github.com/storelane/storelane/internal/models"
)

func TestOrderAdminListFilterByStatus(t *testing.T) {
	env := setupServiceTest(t)
	admin := NewOrderAdminService(env.orderRepo)

	orders := []models.Order{
		{OrderNo: "SL20260801000001AAAA", CustomerID: 1, Status: constants.OrderStatusPendingPayment, Currency: "USD"},
		{OrderNo: "SL20260801000002BBBB", CustomerID: 1, Status: constants.OrderStatusPaid, Currency: "USD"},
		{OrderNo: "SL20260801000003CCCC", CustomerID: 2, Status: constants.OrderStatusPaid, Currency: "USD"},
	}
	for i := range orders {
		if err := env.db.Create(&orders[i]).Error; err != nil {
			t.Fatalf("创建订单失败: %v", err)
		}
	}

	paid, total, err := admin.List(constants.OrderStatusPaid, 0, 1, 10)
	if err != nil {
		t.Fatalf("查询订单失败: %v", err)
	}
	if total != 2 || len(paid) != 2 {
		t.Fatalf("已支付订单数量不符, want 2, got total=%d len=%d", total, len(paid))
	}

	byCustomer, total, err := admin.List(constants.OrderStatusPaid, 2, 1, 10)
	if err != nil {
		t.Fatalf("查询订单失败: %v", err)
	}
	if total != 1 || len(byCustomer) != 1 || byCustomer[0].OrderNo != "SL20260801000003CCCC" {
		t.Fatalf("按顾客筛选结果不符: total=%d", total)
	}
}

func TestOrderAdminGetByOrderNo(t *testing.T) {
	env := setupServiceTest(t)
	admin := NewOrderAdminService(env.orderRepo)

	order := models.Order{OrderNo: "SL20260801000009ZZZZ", CustomerID: 3, Status: constants.OrderStatusPendingPayment, Currency: "USD"}
	if err := env.db.Create(&order).Error; err != nil {
		t.Fatalf("创建订单失败: %v", err)
	}

	found, err := admin.GetByOrderNo("SL20260801000009ZZZZ")
	if err != nil {
		t.Fatalf("查询订单失败: %v", err)
	}
	if found.ID != order.ID {
		t.Fatalf("订单ID不一致, want %d, got %d", order.ID, found.ID)
	}

	if _, err := admin.GetByOrderNo("SL-NO-SUCH-ORDER"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("订单不存在时应返回 ErrOrderNotFound, got %v", err)
	}
}
