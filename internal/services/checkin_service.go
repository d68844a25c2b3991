package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"bukutamu/internal/models/response_models"
	"bukutamu/internal/repositories"
	"bukutamu/pkg/utils"
)

// CheckinServiceInterface drives the single state transition a guest ever
// makes: Registered -> CheckedIn. The transition is terminal; there is no
// check-out in the current design.
type CheckinServiceInterface interface {
	// Verify checks a scanned token in. On ErrAlreadyCheckedIn the existing
	// guest is still returned so reception can show who scanned twice.
	Verify(ctx context.Context, qrCode string) (*response_models.GuestResponse, error)
}

type CheckinService struct {
	guestRepo repositories.GuestRepository
	notifier  NotifierInterface
}

func NewCheckinService(
	guestRepo repositories.GuestRepository,
	notifier NotifierInterface) CheckinServiceInterface {
	return &CheckinService{
		guestRepo: guestRepo,
		notifier:  notifier,
	}
}

func (s *CheckinService) Verify(ctx context.Context, qrCode string) (*response_models.GuestResponse, error) {

	qrCode = strings.TrimSpace(qrCode)
	if qrCode == "" {
		return nil, utils.ErrMissingField
	}

	guest, err := s.guestRepo.FindByQRCode(ctx, qrCode)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if guest == nil {
		return nil, utils.ErrGuestNotFound
	}
	if guest.CheckedIn {
		resp := toGuestResponse(guest)
		return &resp, utils.ErrAlreadyCheckedIn
	}

	now := time.Now()
	notes := "Check-in oleh resepsionis pada " + utils.FormatCheckinNote(now)

	updated, err := s.guestRepo.MarkCheckedIn(ctx, qrCode, now, notes)
	if err != nil {
		if errors.Is(err, repositories.ErrNoPendingGuest) {
			// A concurrent scan won between our read and the update. Report
			// the same conflict a sequential double scan would get.
			if current, findErr := s.guestRepo.FindByQRCode(ctx, qrCode); findErr == nil && current != nil {
				resp := toGuestResponse(current)
				return &resp, utils.ErrAlreadyCheckedIn
			}
			return nil, utils.ErrAlreadyCheckedIn
		}
		return nil, utils.ErrDatabaseError
	}

	// Host notification is fire-and-forget and happens strictly after the
	// transaction committed; its failure must never undo a check-in.
	s.notifier.NotifyCheckin(*updated)

	resp := toGuestResponse(updated)
	return &resp, nil
}
