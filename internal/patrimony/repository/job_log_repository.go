package repository

import (
	"context"
	"time"

	"golang-family-office/internal/entity"

	"gorm.io/gorm"
)

// JobLogRepository records worker task executions.
type JobLogRepository interface {
	Create(ctx context.Context, log *entity.JobLog) error
	FindRecent(ctx context.Context, limit int) ([]entity.JobLog, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type jobLogRepository struct {
	db *gorm.DB
}

// NewJobLogRepository creates a new JobLogRepository.
func NewJobLogRepository(db *gorm.DB) JobLogRepository {
	return &jobLogRepository{db: db}
}

func (r *jobLogRepository) Create(ctx context.Context, log *entity.JobLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *jobLogRepository) FindRecent(ctx context.Context, limit int) ([]entity.JobLog, error) {
	var logs []entity.JobLog
	err := r.db.WithContext(ctx).
		Order("executed_at DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *jobLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("executed_at < ?", cutoff).
		Delete(&entity.JobLog{})
	return result.RowsAffected, result.Error
}
