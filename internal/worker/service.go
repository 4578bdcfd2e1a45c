package worker

import (
	"context"
	"errors"

	"github.com/storelane/storelane/internal/config"
	"github.com/storelane/storelane/internal/queue"

	"github.com/hibiken/asynq"
)

// Service 订单后台任务消费服务，接入 app.Runner 生命周期
type Service struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

// NewService 构建消费服务并注册全部任务处理器
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}

	opt, serverCfg := queue.BuildServerConfig(cfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)

	return &Service{
		server: asynq.NewServer(opt, serverCfg),
		mux:    mux,
	}, nil
}

// Name 服务名称
func (s *Service) Name() string {
	return "worker"
}

// Start 阻塞运行，直到 Shutdown 被调用
func (s *Service) Start(_ context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	return s.server.Run(s.mux)
}

// Stop 优雅停机，等待在途任务完成
func (s *Service) Stop(_ context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	s.server.Shutdown()
	return nil
}
