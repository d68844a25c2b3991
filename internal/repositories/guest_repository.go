package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"bukutamu/internal/models/db_models"
)

// ErrNoPendingGuest means the conditional check-in update matched no row: the
// token either vanished or a concurrent scan won the transition first.
var ErrNoPendingGuest = errors.New("no pending guest for qr code")

// ErrDuplicateQRCode surfaces a unique-index collision on a freshly minted
// token so the registration path can retry with a new one.
var ErrDuplicateQRCode = errors.New("qr code already exists")

const pgUniqueViolation = "23505"

type GuestRepository interface {
	Insert(ctx context.Context, guest *db_models.Guest) error
	FindByQRCode(ctx context.Context, qrCode string) (*db_models.Guest, error)
	FindByID(ctx context.Context, id string) (*db_models.Guest, error)
	ListAll(ctx context.Context) ([]db_models.Guest, error)
	ListPending(ctx context.Context, since time.Time, limit int) ([]db_models.Guest, error)
	MarkCheckedIn(ctx context.Context, qrCode string, at time.Time, notes string) (*db_models.Guest, error)
}

type guestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) GuestRepository {
	return &guestRepository{db: db}
}

func (r *guestRepository) Insert(ctx context.Context, guest *db_models.Guest) error {
	if err := r.db.WithContext(ctx).Create(guest).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateQRCode
		}
		return err
	}
	return nil
}

func (r *guestRepository) FindByQRCode(ctx context.Context, qrCode string) (*db_models.Guest, error) {
	var guest db_models.Guest
	err := r.db.WithContext(ctx).Where("qr_code = ?", qrCode).First(&guest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &guest, nil
}

func (r *guestRepository) FindByID(ctx context.Context, id string) (*db_models.Guest, error) {
	var guest db_models.Guest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&guest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &guest, nil
}

func (r *guestRepository) ListAll(ctx context.Context) ([]db_models.Guest, error) {
	var guests []db_models.Guest
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&guests).Error
	return guests, err
}

func (r *guestRepository) ListPending(ctx context.Context, since time.Time, limit int) ([]db_models.Guest, error) {
	var guests []db_models.Guest
	err := r.db.WithContext(ctx).
		Where("checked_in = ? AND created_at >= ?", false, since.Unix()).
		Order("created_at DESC").
		Limit(limit).
		Find(&guests).Error
	return guests, err
}

// MarkCheckedIn flips the guest to checked-in and appends the reception log
// entry in one transaction. The WHERE clause on checked_in is the
// compare-and-set that keeps two concurrent scans of the same code from both
// succeeding: the loser sees zero affected rows and gets ErrNoPendingGuest,
// and its log insert never happens.
func (r *guestRepository) MarkCheckedIn(ctx context.Context, qrCode string, at time.Time, notes string) (*db_models.Guest, error) {
	var guest db_models.Guest

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&db_models.Guest{}).
			Where("qr_code = ? AND checked_in = ?", qrCode, false).
			Updates(map[string]interface{}{
				"checked_in":    true,
				"checked_in_at": at,
				"updated_at":    at.Unix(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNoPendingGuest
		}

		if err := tx.Where("qr_code = ?", qrCode).First(&guest).Error; err != nil {
			return err
		}

		entry := db_models.ReceptionLog{
			GuestID: guest.ID,
			Action:  db_models.ActionCheckin,
			Notes:   notes,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Drivers without typed errors (e.g. sqlite in tests) only give us text.
	return strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "duplicate key")
}
