package strategy

import (
	"context"
	"encoding/json"
	"time"

	"golang-family-office/internal/patrimony/repository"
	"golang-family-office/pkg/common"
	"golang-family-office/pkg/logger"
	"golang-family-office/pkg/utils"
)

// CleanupStrategy prunes alerts, quote history and job logs past the
// retention window.
type CleanupStrategy struct {
	logger        *logger.Logger
	alertRepo     repository.AlertRepository
	quoteRepo     repository.QuoteHistoryRepository
	jobLogRepo    repository.JobLogRepository
	retentionDays int
}

// NewCleanupStrategy creates a new CleanupStrategy.
func NewCleanupStrategy(
	log *logger.Logger,
	alertRepo repository.AlertRepository,
	quoteRepo repository.QuoteHistoryRepository,
	jobLogRepo repository.JobLogRepository,
	retentionDays int,
) TaskExecutionStrategy {
	return &CleanupStrategy{
		logger:        log,
		alertRepo:     alertRepo,
		quoteRepo:     quoteRepo,
		jobLogRepo:    jobLogRepo,
		retentionDays: retentionDays,
	}
}

// GetType returns the task type this strategy handles.
func (s *CleanupStrategy) GetType() string {
	return common.TaskTypeCleanup
}

// Execute deletes everything older than the retention cutoff.
func (s *CleanupStrategy) Execute(ctx context.Context) (string, error) {
	cutoff := utils.TimeNowBRT().Add(-time.Duration(s.retentionDays) * 24 * time.Hour)

	alerts, err := s.alertRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return "", err
	}
	quotes, err := s.quoteRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return "", err
	}
	jobLogs, err := s.jobLogRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return "", err
	}

	s.logger.Info("Cleanup completed",
		logger.Field("alerts_deleted", alerts),
		logger.Field("quotes_deleted", quotes),
		logger.Field("job_logs_deleted", jobLogs))

	result, _ := json.Marshal(map[string]int64{
		"alerts_deleted":   alerts,
		"quotes_deleted":   quotes,
		"job_logs_deleted": jobLogs,
	})
	return string(result), nil
}
