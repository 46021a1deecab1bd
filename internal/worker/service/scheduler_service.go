package service

import (
	"context"
	"encoding/json"
	"time"

	"golang-family-office/internal/worker/config"
	"golang-family-office/pkg/common"
	"golang-family-office/pkg/logger"
	"golang-family-office/pkg/utils"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

// TaskMessage is the payload published to the task stream.
type TaskMessage struct {
	TaskType    string    `json:"task_type"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

// SchedulerService publishes recurring tasks to the Redis stream when their
// cron schedule comes due.
type SchedulerService interface {
	Start(ctx context.Context)
	ProcessDueTasks(ctx context.Context)
}

type taskSchedule struct {
	taskType string
	schedule cron.Schedule
	nextRun  time.Time
}

// NewSchedulerService creates a new scheduler service from the configured
// cron expressions. Tasks with an empty expression are not scheduled.
func NewSchedulerService(cfg *config.Config, redisClient *redis.Client, log *logger.Logger) (SchedulerService, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	now := utils.TimeNowBRT()

	exprs := map[string]string{
		common.TaskTypeQuoteRefresh: cfg.Worker.Schedules.QuoteRefresh,
		common.TaskTypeAlertCheck:   cfg.Worker.Schedules.AlertCheck,
		common.TaskTypeCleanup:      cfg.Worker.Schedules.Cleanup,
	}

	var schedules []*taskSchedule
	for taskType, expr := range exprs {
		if expr == "" {
			continue
		}
		schedule, err := parser.Parse(expr)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, &taskSchedule{
			taskType: taskType,
			schedule: schedule,
			nextRun:  schedule.Next(now),
		})
	}

	return &schedulerService{
		cfg:         cfg,
		redisClient: redisClient,
		logger:      log,
		schedules:   schedules,
	}, nil
}

type schedulerService struct {
	cfg         *config.Config
	redisClient *redis.Client
	logger      *logger.Logger
	schedules   []*taskSchedule
}

// Start begins the periodic scheduling loop.
func (s *schedulerService) Start(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Worker.PollingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler service stopping")
			return
		case <-ticker.C:
			s.ProcessDueTasks(ctx)
		}
	}
}

// ProcessDueTasks publishes every task whose next run time has passed.
func (s *schedulerService) ProcessDueTasks(ctx context.Context) {
	now := utils.TimeNowBRT()
	for _, schedule := range s.schedules {
		if schedule.nextRun.After(now) {
			continue
		}
		s.publishTask(ctx, schedule.taskType, now)
		schedule.nextRun = schedule.schedule.Next(now)
	}
}

func (s *schedulerService) publishTask(ctx context.Context, taskType string, now time.Time) {
	payload, err := json.Marshal(TaskMessage{TaskType: taskType, ScheduledAt: now})
	if err != nil {
		s.logger.Error("Failed to marshal task payload", logger.ErrorField(err))
		return
	}

	if err := s.redisClient.XAdd(ctx, &redis.XAddArgs{
		Stream: common.RedisStreamPatrimonyTasks,
		Values: map[string]interface{}{"payload": payload},
		MaxLen: s.cfg.Redis.StreamMaxLen,
	}).Err(); err != nil {
		s.logger.Error("Failed to enqueue task",
			logger.StringField("task_type", taskType),
			logger.ErrorField(err))
		return
	}

	s.logger.Info("Task published", logger.StringField("task_type", taskType))
}
