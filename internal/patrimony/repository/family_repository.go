package repository

import (
	"context"

	"golang-family-office/internal/entity"

	"gorm.io/gorm"
)

// FamilyRepository provides access to family records.
type FamilyRepository interface {
	Create(ctx context.Context, family *entity.Family) error
	FindByID(ctx context.Context, id uint) (*entity.Family, error)
	FindAll(ctx context.Context) ([]entity.Family, error)
	UpdateCashBalance(ctx context.Context, id uint, balance float64) error
	Delete(ctx context.Context, id uint) error
}

type familyRepository struct {
	db *gorm.DB
}

// NewFamilyRepository creates a new FamilyRepository.
func NewFamilyRepository(db *gorm.DB) FamilyRepository {
	return &familyRepository{db: db}
}

func (r *familyRepository) Create(ctx context.Context, family *entity.Family) error {
	return r.db.WithContext(ctx).Create(family).Error
}

// FindByID loads the family with its assets and their ledgers, ordered the way
// the valuation engine expects them.
func (r *familyRepository) FindByID(ctx context.Context, id uint) (*entity.Family, error) {
	var family entity.Family
	err := r.db.WithContext(ctx).
		Preload("Assets").
		Preload("Assets.Transactions", func(db *gorm.DB) *gorm.DB {
			return db.Order("transaction_date ASC, id ASC")
		}).
		First(&family, id).Error
	if err != nil {
		return nil, err
	}
	return &family, nil
}

func (r *familyRepository) FindAll(ctx context.Context) ([]entity.Family, error) {
	var families []entity.Family
	if err := r.db.WithContext(ctx).Find(&families).Error; err != nil {
		return nil, err
	}
	return families, nil
}

func (r *familyRepository) UpdateCashBalance(ctx context.Context, id uint, balance float64) error {
	return r.db.WithContext(ctx).
		Model(&entity.Family{}).
		Where("id = ?", id).
		Update("cash_balance", balance).Error
}

func (r *familyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Family{}, id).Error
}
