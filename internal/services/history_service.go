package services

import (
	"context"

	"bukutamu/internal/models/db_models"
	"bukutamu/internal/models/response_models"
	"bukutamu/internal/repositories"
	"bukutamu/pkg/utils"
)

const (
	StatusCheckinDone = "Check-in Berhasil"
	StatusCheckout    = "Check-out"
	StatusDone        = "Selesai"
)

type HistoryServiceInterface interface {
	GetHistory(ctx context.Context) ([]response_models.HistoryEntry, error)
}

type HistoryService struct {
	logRepo repositories.ReceptionLogRepository
}

func NewHistoryService(logRepo repositories.ReceptionLogRepository) HistoryServiceInterface {
	return &HistoryService{
		logRepo: logRepo,
	}
}

// GetHistory projects the reception audit trail, newest first.
func (h *HistoryService) GetHistory(ctx context.Context) ([]response_models.HistoryEntry, error) {
	logs, err := h.logRepo.ListRecent(ctx, queryLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	entries := make([]response_models.HistoryEntry, 0, len(logs))
	for i := range logs {
		entry := &logs[i]
		entries = append(entries, response_models.HistoryEntry{
			ID:       entry.ID.String(),
			Nama:     entry.Guest.Name,
			Host:     entry.Guest.To,
			Whatsapp: entry.Guest.Whatsapp,
			Waktu:    utils.FormatVisitTime(utils.FromUnixSecondsWIB(entry.CreatedAt)),
			Status:   deriveStatus(entry),
			Action:   entry.Action,
			Notes:    entry.Notes,
			QRCode:   entry.Guest.QRCode,
		})
	}
	return entries, nil
}

func deriveStatus(entry *db_models.ReceptionLog) string {
	switch {
	case entry.Action == db_models.ActionCheckin && entry.Guest.CheckedIn:
		return StatusCheckinDone
	case entry.Action == "checkout":
		return StatusCheckout
	case !entry.Guest.CheckedIn:
		return StatusWaiting
	default:
		return StatusDone
	}
}
