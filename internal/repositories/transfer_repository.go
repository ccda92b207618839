package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/fleet_inventory/internal/models"
)

// TransferRepository defines the handover-record data access interface.
type TransferRepository interface {
	// Create records a phone handover.
	Create(ctx context.Context, transfer *models.Transfer) error
	// GetByPhoneID returns a phone's handover records, newest first.
	GetByPhoneID(ctx context.Context, phoneID int64) ([]models.Transfer, error)
}

// gormTransferRepository is the GORM implementation of TransferRepository.
type gormTransferRepository struct {
	db *gorm.DB
}

// NewGormTransferRepository creates a new gormTransferRepository instance.
func NewGormTransferRepository(db *gorm.DB) TransferRepository {
	return &gormTransferRepository{db: db}
}

// Create records a phone handover.
func (r *gormTransferRepository) Create(ctx context.Context, transfer *models.Transfer) error {
	return r.db.WithContext(ctx).Create(transfer).Error
}

// GetByPhoneID returns a phone's handover records, newest first.
func (r *gormTransferRepository) GetByPhoneID(ctx context.Context, phoneID int64) ([]models.Transfer, error) {
	var transfers []models.Transfer
	err := r.db.WithContext(ctx).
		Where("phone_id = ?", phoneID).
		Order("transferred_at DESC, id DESC").
		Find(&transfers).Error
	return transfers, err
}
