package worker

import (
	"context"
	"testing"

	"github.com/storelane/storelane/internal/provider"
	"github.com/storelane/storelane/internal/queue"

	"github.com/hibiken/asynq"
)

func TestHandleOrderTimeoutCancelInvalidPayload(t *testing.T) {
	consumer := NewConsumer(&provider.Container{})
	task := asynq.NewTask(queue.TaskOrderTimeoutCancel, []byte("not-json"))
	if err := consumer.handleOrderTimeoutCancel(context.Background(), task); err == nil {
		t.Fatalf("非法载荷应返回错误")
	}
}

func TestHandleOrderTimeoutCancelZeroOrderID(t *testing.T) {
	consumer := NewConsumer(&provider.Container{})
	task, err := queue.NewOrderTimeoutCancelTask(queue.OrderTimeoutCancelPayload{OrderID: 0})
	if err != nil {
		t.Fatalf("创建任务失败: %v", err)
	}
	if err := consumer.handleOrderTimeoutCancel(context.Background(), task); err != nil {
		t.Fatalf("空订单ID应直接跳过, got %v", err)
	}
}

func TestHandleOrderTimeoutCancelNilOrderService(t *testing.T) {
	consumer := NewConsumer(&provider.Container{})
	task, err := queue.NewOrderTimeoutCancelTask(queue.OrderTimeoutCancelPayload{OrderID: 42})
	if err != nil {
		t.Fatalf("创建任务失败: %v", err)
	}
	if err := consumer.handleOrderTimeoutCancel(context.Background(), task); err != nil {
		t.Fatalf("订单服务未初始化时应跳过, got %v", err)
	}
}
