package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Job execution statuses.
const (
	JobStatusSuccess = "success"
	JobStatusFailed  = "failed"
)

// JobLog records one execution of a scheduled worker task.
type JobLog struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	TaskType   string         `gorm:"not null;size:50;index" json:"task_type"`
	Status     string         `gorm:"not null;size:20" json:"status"`
	Result     datatypes.JSON `json:"result,omitempty"`
	ExecutedAt time.Time      `gorm:"not null" json:"executed_at"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (JobLog) TableName() string {
	return "job_logs"
}
