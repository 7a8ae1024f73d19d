package repository

import (
	"context"
	"errors"

	"github.com/yukikurage/dashboard-demo-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSlotRepository is a GORM implementation of SlotRepository
type GormSlotRepository struct {
	db *gorm.DB
}

// NewSlotRepository creates a new SlotRepository backed by the storage_slots table
func NewSlotRepository(db *gorm.DB) SlotRepository {
	return &GormSlotRepository{db: db}
}

// Get finds a slot by key
func (r *GormSlotRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var slot models.StorageSlot
	if err := r.db.WithContext(ctx).Where("slot_key = ?", key).First(&slot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return slot.Value, true, nil
}

// Set upserts a slot
func (r *GormSlotRepository) Set(ctx context.Context, key, value string) error {
	slot := models.StorageSlot{
		Key:   key,
		Value: value,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&slot).Error
}

// Delete removes a slot
func (r *GormSlotRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("slot_key = ?", key).Delete(&models.StorageSlot{}).Error
}
