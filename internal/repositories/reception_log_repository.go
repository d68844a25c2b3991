package repositories

import (
	"context"

	"gorm.io/gorm"

	"bukutamu/internal/models/db_models"
)

type ReceptionLogRepository interface {
	ListRecent(ctx context.Context, limit int) ([]db_models.ReceptionLog, error)
	CountByGuest(ctx context.Context, guestID string) (int64, error)
}

type receptionLogRepository struct {
	db *gorm.DB
}

func NewReceptionLogRepository(db *gorm.DB) ReceptionLogRepository {
	return &receptionLogRepository{db: db}
}

// ListRecent returns the newest entries first with their guests preloaded.
// Check-in is the only writer of this table, so there is no Insert here; log
// rows are created inside the guest repository's check-in transaction.
func (r *receptionLogRepository) ListRecent(ctx context.Context, limit int) ([]db_models.ReceptionLog, error) {
	var logs []db_models.ReceptionLog
	err := r.db.WithContext(ctx).
		Preload("Guest").
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

func (r *receptionLogRepository) CountByGuest(ctx context.Context, guestID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.ReceptionLog{}).
		Where("guest_id = ?", guestID).
		Count(&count).Error
	return count, err
}
