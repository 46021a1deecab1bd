package service

import (
	"context"
	"encoding/json"
	"time"

	"golang-family-office/internal/entity"
	"golang-family-office/internal/patrimony/repository"
	"golang-family-office/internal/worker/strategy"
	"golang-family-office/pkg/common"
	"golang-family-office/pkg/logger"
	"golang-family-office/pkg/utils"

	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
)

// WorkerService consumes tasks from the Redis stream and dispatches them to
// the matching execution strategy.
type WorkerService interface {
	ProcessTask(ctx context.Context)
}

// NewWorkerService creates a new WorkerService.
func NewWorkerService(
	redisClient *redis.Client,
	jobLogRepo repository.JobLogRepository,
	log *logger.Logger,
	strategies []strategy.TaskExecutionStrategy,
) WorkerService {
	strategyMap := make(map[string]strategy.TaskExecutionStrategy)
	for _, s := range strategies {
		strategyMap[s.GetType()] = s
	}

	return &workerService{
		redisClient: redisClient,
		jobLogRepo:  jobLogRepo,
		logger:      log,
		strategies:  strategyMap,
	}
}

type workerService struct {
	redisClient *redis.Client
	jobLogRepo  repository.JobLogRepository
	logger      *logger.Logger
	strategies  map[string]strategy.TaskExecutionStrategy
}

// ProcessTask dequeues and executes a single task.
func (s *workerService) ProcessTask(ctx context.Context) {
	streams, err := s.redisClient.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    common.RedisStreamGroup,
		Consumer: common.RedisStreamConsumer,
		Streams:  []string{common.RedisStreamPatrimonyTasks, ">"},
		Count:    1,
		Block:    2 * time.Second,
		NoAck:    true,
	}).Result()

	if err != nil {
		if err == context.Canceled || err == context.DeadlineExceeded || err == redis.Nil {
			return
		}
		s.logger.Error("Failed to read from stream", logger.ErrorField(err))
		return
	}

	if len(streams) == 0 || len(streams[0].Messages) == 0 {
		return
	}

	message := streams[0].Messages[0]
	taskData, ok := message.Values["payload"].(string)
	if !ok {
		s.logger.Error("field 'payload' not found or not a string in stream message",
			logger.Field("message_id", message.ID))
		return
	}

	var task TaskMessage
	if err := json.Unmarshal([]byte(taskData), &task); err != nil {
		s.logger.Error("Failed to unmarshal task data",
			logger.ErrorField(err),
			logger.Field("message_id", message.ID))
		return
	}

	s.logger.Info("Processing task", logger.StringField("task_type", task.TaskType))
	s.executeAndLog(ctx, task.TaskType)
}

func (s *workerService) executeAndLog(ctx context.Context, taskType string) {
	jobLog := &entity.JobLog{
		TaskType:   taskType,
		ExecutedAt: utils.TimeNowBRT(),
	}

	strat, ok := s.strategies[taskType]
	if !ok {
		s.logger.Error("No strategy found for task type", logger.StringField("task_type", taskType))
		jobLog.Status = entity.JobStatusFailed
		jobLog.Result = datatypes.JSON(`{"error":"no strategy for task type"}`)
	} else if output, err := strat.Execute(ctx); err != nil {
		s.logger.Error("Task execution failed",
			logger.StringField("task_type", taskType),
			logger.ErrorField(err))
		jobLog.Status = entity.JobStatusFailed
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		jobLog.Result = datatypes.JSON(errJSON)
	} else {
		jobLog.Status = entity.JobStatusSuccess
		if output != "" {
			jobLog.Result = datatypes.JSON(output)
		}
	}

	if err := s.jobLogRepo.Create(ctx, jobLog); err != nil {
		s.logger.Error("Failed to record job log", logger.ErrorField(err))
	}
}
