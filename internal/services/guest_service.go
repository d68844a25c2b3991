package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"bukutamu/internal/models/db_models"
	"bukutamu/internal/models/request_models"
	"bukutamu/internal/models/response_models"
	"bukutamu/internal/repositories"
	"bukutamu/pkg/utils"
)

// tokenBytes gives 128 bits of entropy, rendered as 32 hex characters.
const tokenBytes = 16

// tokenInsertRetries bounds the defensive retry loop on a qr_code collision.
// A collision is statistically impossible at this entropy; the loop exists so
// the unique index stays the single source of truth.
const tokenInsertRetries = 3

type GuestServiceInterface interface {
	RegisterGuest(ctx context.Context, request request_models.RegisterGuestRequest) (*response_models.RegisterGuestResponse, error)
	GetGuestByQRCode(ctx context.Context, qrCode string) (*response_models.GuestResponse, error)
	ListGuests(ctx context.Context) ([]response_models.GuestResponse, error)
	RenderGuestQRCode(ctx context.Context, id string) ([]byte, error)
}

type GuestService struct {
	guestRepo     repositories.GuestRepository
	recipientRepo repositories.RecipientRepository
}

func NewGuestService(
	guestRepo repositories.GuestRepository,
	recipientRepo repositories.RecipientRepository) GuestServiceInterface {
	return &GuestService{
		guestRepo:     guestRepo,
		recipientRepo: recipientRepo,
	}
}

func (g *GuestService) RegisterGuest(ctx context.Context, request request_models.RegisterGuestRequest) (*response_models.RegisterGuestResponse, error) {

	name := strings.TrimSpace(request.Name)
	whatsapp := strings.TrimSpace(request.Whatsapp)
	to := strings.TrimSpace(request.To)
	purpose := strings.TrimSpace(request.Purpose)

	if name == "" || whatsapp == "" || to == "" || purpose == "" {
		return nil, utils.ErrMissingField
	}

	recipient, err := g.recipientRepo.FindActiveByName(ctx, to)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if recipient == nil {
		return nil, utils.ErrRecipientNotFound
	}

	var guest *db_models.Guest
	for attempt := 0; attempt < tokenInsertRetries; attempt++ {
		qrCode, err := utils.GenerateSecureToken(tokenBytes)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}

		candidate := &db_models.Guest{
			Name:        name,
			Whatsapp:    whatsapp,
			To:          recipient.Name,
			RecipientID: recipient.ID,
			Purpose:     purpose,
			QRCode:      qrCode,
			CheckedIn:   false,
		}

		err = g.guestRepo.Insert(ctx, candidate)
		if err == nil {
			guest = candidate
			break
		}
		if errors.Is(err, repositories.ErrDuplicateQRCode) {
			log.Printf("QR code collision on attempt %d, regenerating", attempt+1)
			continue
		}
		return nil, utils.ErrDatabaseError
	}
	if guest == nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.RegisterGuestResponse{
		Guest:  toGuestResponse(guest),
		QRCode: guest.QRCode,
	}, nil
}

func (g *GuestService) GetGuestByQRCode(ctx context.Context, qrCode string) (*response_models.GuestResponse, error) {
	if strings.TrimSpace(qrCode) == "" {
		return nil, utils.ErrMissingField
	}

	guest, err := g.guestRepo.FindByQRCode(ctx, qrCode)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if guest == nil {
		return nil, utils.ErrGuestNotFound
	}

	resp := toGuestResponse(guest)
	return &resp, nil
}

func (g *GuestService) ListGuests(ctx context.Context) ([]response_models.GuestResponse, error) {
	guests, err := g.guestRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.GuestResponse, 0, len(guests))
	for i := range guests {
		responses = append(responses, toGuestResponse(&guests[i]))
	}
	return responses, nil
}

// RenderGuestQRCode rebuilds the scannable PNG for a registered guest, the
// server-side twin of what the form page shows after registration.
func (g *GuestService) RenderGuestQRCode(ctx context.Context, id string) ([]byte, error) {
	guest, err := g.guestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if guest == nil {
		return nil, utils.ErrGuestNotFound
	}

	png, err := utils.RenderQRCode(utils.QRPayload{
		ID:        guest.QRCode,
		Name:      guest.Name,
		Whatsapp:  guest.Whatsapp,
		To:        guest.To,
		Purpose:   guest.Purpose,
		Timestamp: utils.FromUnixSecondsWIB(guest.CreatedAt),
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return png, nil
}

func toGuestResponse(guest *db_models.Guest) response_models.GuestResponse {
	return response_models.GuestResponse{
		ID:          guest.ID.String(),
		Name:        guest.Name,
		Whatsapp:    guest.Whatsapp,
		To:          guest.To,
		Purpose:     guest.Purpose,
		QRCode:      guest.QRCode,
		CheckedIn:   guest.CheckedIn,
		CheckedInAt: guest.CheckedInAt,
		CreatedAt:   utils.FromUnixSecondsWIB(guest.CreatedAt),
	}
}
