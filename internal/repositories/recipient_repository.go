package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bukutamu/internal/models/db_models"
)

type RecipientRepository interface {
	Insert(ctx context.Context, recipient *db_models.Recipient) error
	Update(ctx context.Context, recipient *db_models.Recipient) error
	Deactivate(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*db_models.Recipient, error)
	FindActiveByName(ctx context.Context, name string) (*db_models.Recipient, error)
	ListActive(ctx context.Context) ([]db_models.Recipient, error)
}

type recipientRepository struct {
	db *gorm.DB
}

func NewRecipientRepository(db *gorm.DB) RecipientRepository {
	return &recipientRepository{db: db}
}

func (r *recipientRepository) Insert(ctx context.Context, recipient *db_models.Recipient) error {
	return r.db.WithContext(ctx).Create(recipient).Error
}

func (r *recipientRepository) Update(ctx context.Context, recipient *db_models.Recipient) error {
	res := r.db.WithContext(ctx).Model(&db_models.Recipient{}).
		Where("id = ?", recipient.ID).
		Updates(map[string]interface{}{
			"name":       recipient.Name,
			"position":   recipient.Position,
			"whatsapp":   recipient.Whatsapp,
			"is_active":  recipient.IsActive,
			"updated_at": recipient.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Deactivate is the only delete this directory supports: the row stays so
// past guests keep resolving, it just stops being offered on the form.
func (r *recipientRepository) Deactivate(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&db_models.Recipient{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *recipientRepository) FindByID(ctx context.Context, id string) (*db_models.Recipient, error) {
	var recipient db_models.Recipient
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &recipient, nil
}

func (r *recipientRepository) FindActiveByName(ctx context.Context, name string) (*db_models.Recipient, error) {
	var recipient db_models.Recipient
	err := r.db.WithContext(ctx).
		Where("name = ? AND is_active = ?", name, true).
		First(&recipient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &recipient, nil
}

func (r *recipientRepository) ListActive(ctx context.Context) ([]db_models.Recipient, error) {
	var recipients []db_models.Recipient
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&recipients).Error
	return recipients, err
}
