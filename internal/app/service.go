package app

import (
	"context"
	"errors"
	"os/signal"
	"time"

	"go.uber.org/zap"
)

// Service 可被 Runner 托管的长生命周期服务
type Service interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Runner 聚合多个服务：任一服务退出或收到停机信号，整体退出
type Runner struct {
	services []Service
}

// NewRunner 创建服务运行器
func NewRunner(services ...Service) *Runner {
	return &Runner{services: services}
}

// RunWithOptions 挂接系统信号后运行
func RunWithOptions(runner *Runner, opts Options) error {
	if runner == nil {
		return errors.New("runner is nil")
	}
	opts = normalizeOptions(opts)

	ctx := context.Background()
	if len(opts.Signals) > 0 {
		notifyCtx, cancel := signal.NotifyContext(ctx, opts.Signals...)
		defer cancel()
		ctx = notifyCtx
	}
	return runner.Run(ctx, opts.ShutdownTimeout, opts.Logger)
}

// Run 并发启动全部服务并阻塞至停机完成
func (r *Runner) Run(ctx context.Context, stopTimeout time.Duration, log *zap.SugaredLogger) error {
	if r == nil || len(r.services) == 0 {
		return errors.New("no services to run")
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	exited := make(chan error, len(r.services))
	for _, svc := range r.services {
		go r.startOne(ctx, svc, log, exited)
	}

	var cause error
	select {
	case <-ctx.Done():
		cause = ctx.Err()
	case err := <-exited:
		cause = err
	}
	cancel()

	r.stopAll(stopTimeout, log)

	// 信号触发的停机属于正常退出
	if errors.Is(cause, context.Canceled) {
		return nil
	}
	return cause
}

func (r *Runner) startOne(ctx context.Context, svc Service, log *zap.SugaredLogger, exited chan<- error) {
	if svc == nil {
		exited <- errors.New("service is nil")
		return
	}
	if log != nil {
		log.Infow("service_start", "service", svc.Name())
	}
	err := svc.Start(ctx)
	if log != nil {
		log.Infow("service_exit", "service", svc.Name(), "error", err)
	}
	exited <- err
}

// stopAll 按注册顺序停止：HTTP 入口在前先停止接流，后台消费随后收尾
func (r *Runner) stopAll(stopTimeout time.Duration, log *zap.SugaredLogger) {
	if stopTimeout <= 0 {
		stopTimeout = 10 * time.Second
	}
	stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTimeout)
	defer stopCancel()

	for _, svc := range r.services {
		if svc == nil {
			continue
		}
		if err := svc.Stop(stopCtx); err != nil && log != nil {
			log.Errorw("service_stop_failed", "service", svc.Name(), "error", err)
		}
	}
}
