package repository

import (
	"context"
	"time"

	"golang-family-office/internal/entity"

	"gorm.io/gorm"
)

// QuoteHistoryRepository provides access to stored price snapshots.
type QuoteHistoryRepository interface {
	Create(ctx context.Context, quote *entity.QuoteHistory) error
	FindLatestByAssetID(ctx context.Context, assetID uint) (*entity.QuoteHistory, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type quoteHistoryRepository struct {
	db *gorm.DB
}

// NewQuoteHistoryRepository creates a new QuoteHistoryRepository.
func NewQuoteHistoryRepository(db *gorm.DB) QuoteHistoryRepository {
	return &quoteHistoryRepository{db: db}
}

func (r *quoteHistoryRepository) Create(ctx context.Context, quote *entity.QuoteHistory) error {
	return r.db.WithContext(ctx).Create(quote).Error
}

func (r *quoteHistoryRepository) FindLatestByAssetID(ctx context.Context, assetID uint) (*entity.QuoteHistory, error) {
	var quote entity.QuoteHistory
	err := r.db.WithContext(ctx).
		Where("asset_id = ?", assetID).
		Order("quoted_at DESC").
		First(&quote).Error
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *quoteHistoryRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("quoted_at < ?", cutoff).
		Delete(&entity.QuoteHistory{})
	return result.RowsAffected, result.Error
}
