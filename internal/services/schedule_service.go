package services

import (
	"context"
	"time"

	"bukutamu/internal/models/response_models"
	"bukutamu/internal/repositories"
	"bukutamu/pkg/utils"
)

const (
	// scheduleWindow keeps stale registrations off the pending view.
	scheduleWindow = 30 * 24 * time.Hour
	queryLimit     = 100

	StatusWaiting = "Menunggu Check-in"
)

type ScheduleServiceInterface interface {
	GetSchedule(ctx context.Context) ([]response_models.ScheduleEntry, error)
}

type ScheduleService struct {
	guestRepo repositories.GuestRepository
}

func NewScheduleService(guestRepo repositories.GuestRepository) ScheduleServiceInterface {
	return &ScheduleService{
		guestRepo: guestRepo,
	}
}

// GetSchedule projects guests who have not checked in yet, newest first.
func (s *ScheduleService) GetSchedule(ctx context.Context) ([]response_models.ScheduleEntry, error) {
	since := time.Now().Add(-scheduleWindow)

	guests, err := s.guestRepo.ListPending(ctx, since, queryLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	entries := make([]response_models.ScheduleEntry, 0, len(guests))
	for i := range guests {
		guest := &guests[i]
		createdAt := utils.FromUnixSecondsWIB(guest.CreatedAt)
		entries = append(entries, response_models.ScheduleEntry{
			ID:        guest.ID.String(),
			Nama:      guest.Name,
			Host:      guest.To,
			Whatsapp:  guest.Whatsapp,
			Waktu:     utils.FormatVisitTime(createdAt),
			Status:    StatusWaiting,
			Purpose:   guest.Purpose,
			QRCode:    guest.QRCode,
			CreatedAt: createdAt,
		})
	}
	return entries, nil
}
