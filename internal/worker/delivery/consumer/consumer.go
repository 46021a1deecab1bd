package consumer

import (
	"context"
	"sync"
	"time"

	"golang-family-office/internal/worker/config"
	"golang-family-office/internal/worker/service"
	"golang-family-office/pkg/common"
	"golang-family-office/pkg/logger"
	"golang-family-office/pkg/utils"
)

// RedisConsumer manages the consumption of tasks from the Redis stream.
type RedisConsumer struct {
	cfg           *config.Config
	workerService service.WorkerService
	logger        *logger.Logger
	stopChan      chan struct{}
	wg            sync.WaitGroup
}

// NewRedisConsumer creates a new RedisConsumer.
func NewRedisConsumer(cfg *config.Config, workerService service.WorkerService, log *logger.Logger) *RedisConsumer {
	return &RedisConsumer{
		cfg:           cfg,
		workerService: workerService,
		logger:        log,
		stopChan:      make(chan struct{}),
	}
}

// Start begins the consumer's task processing loop.
func (c *RedisConsumer) Start(ctx context.Context) {
	c.logger.Info("Redis consumer started")
	c.registerStreamHandler(ctx, c.workerService.ProcessTask, common.RedisStreamPatrimonyTasks, c.cfg.Worker.StreamTimeout)
}

func (c *RedisConsumer) registerStreamHandler(ctx context.Context, fn func(ctx context.Context), streamName string, timeout time.Duration) {
	c.logger.Info("Registering stream handler", logger.Field("stream", streamName))
	c.wg.Add(1)
	utils.GoSafe(func() {
		defer c.wg.Done()
		for {
			select {
			case <-ctx.Done():
				c.logger.Info("Redis consumer stopping due to context cancellation")
				return
			case <-c.stopChan:
				c.logger.Info("Redis consumer stopping")
				return
			default:
				ctxTimeout, cancel := context.WithTimeout(ctx, timeout)
				fn(ctxTimeout)
				cancel()
			}
		}
	})
}

// Stop signals the consumer to stop and waits for in-flight work.
func (c *RedisConsumer) Stop() {
	close(c.stopChan)
	c.wg.Wait()
}
