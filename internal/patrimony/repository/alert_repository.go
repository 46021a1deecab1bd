package repository

import (
	"context"
	"time"

	"golang-family-office/internal/entity"

	"gorm.io/gorm"
)

// AlertRepository provides access to alert records.
type AlertRepository interface {
	FindByFamilyID(ctx context.Context, familyID uint) ([]entity.Alert, error)
	FindRecentByFamilyID(ctx context.Context, familyID uint, limit int) ([]entity.Alert, error)
	ReplaceForFamily(ctx context.Context, familyID uint, kinds []string, alerts []entity.Alert) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository creates a new AlertRepository.
func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) FindByFamilyID(ctx context.Context, familyID uint) ([]entity.Alert, error) {
	var alerts []entity.Alert
	err := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("created_at DESC").
		Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *alertRepository) FindRecentByFamilyID(ctx context.Context, familyID uint, limit int) ([]entity.Alert, error) {
	var alerts []entity.Alert
	err := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

// ReplaceForFamily atomically removes every alert of the managed kinds for a
// family and inserts the freshly generated set. Alerts of other kinds are
// untouched.
func (r *alertRepository) ReplaceForFamily(ctx context.Context, familyID uint, kinds []string, alerts []entity.Alert) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("family_id = ? AND kind IN ?", familyID, kinds).
			Delete(&entity.Alert{}).Error
		if err != nil {
			return err
		}
		if len(alerts) == 0 {
			return nil
		}
		return tx.Create(&alerts).Error
	})
}

func (r *alertRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&entity.Alert{})
	return result.RowsAffected, result.Error
}
