package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"bukutamu/internal/models/db_models"
	"bukutamu/internal/models/request_models"
	"bukutamu/internal/models/response_models"
	"bukutamu/internal/repositories"
	"bukutamu/pkg/utils"
)

type RecipientServiceInterface interface {
	ListActiveRecipients(ctx context.Context) ([]response_models.RecipientResponse, error)
	CreateRecipient(ctx context.Context, request request_models.CreateRecipientRequest) (*response_models.RecipientResponse, error)
	UpdateRecipient(ctx context.Context, id string, request request_models.UpdateRecipientRequest) (*response_models.RecipientResponse, error)
	DeactivateRecipient(ctx context.Context, id string) error
}

type RecipientService struct {
	recipientRepo repositories.RecipientRepository
}

func NewRecipientService(recipientRepo repositories.RecipientRepository) RecipientServiceInterface {
	return &RecipientService{
		recipientRepo: recipientRepo,
	}
}

func (r *RecipientService) ListActiveRecipients(ctx context.Context) ([]response_models.RecipientResponse, error) {
	recipients, err := r.recipientRepo.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.RecipientResponse, 0, len(recipients))
	for i := range recipients {
		responses = append(responses, toRecipientResponse(&recipients[i]))
	}
	return responses, nil
}

func (r *RecipientService) CreateRecipient(ctx context.Context, request request_models.CreateRecipientRequest) (*response_models.RecipientResponse, error) {
	name := strings.TrimSpace(request.Name)
	position := strings.TrimSpace(request.Position)
	if name == "" || position == "" {
		return nil, utils.ErrMissingField
	}

	recipient := &db_models.Recipient{
		Name:     name,
		Position: position,
		Whatsapp: strings.TrimSpace(request.Whatsapp),
		IsActive: true,
	}
	if err := r.recipientRepo.Insert(ctx, recipient); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toRecipientResponse(recipient)
	return &resp, nil
}

func (r *RecipientService) UpdateRecipient(ctx context.Context, id string, request request_models.UpdateRecipientRequest) (*response_models.RecipientResponse, error) {
	name := strings.TrimSpace(request.Name)
	position := strings.TrimSpace(request.Position)
	if name == "" || position == "" {
		return nil, utils.ErrMissingField
	}

	recipient, err := r.recipientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if recipient == nil {
		return nil, utils.ErrRecipientNotFound
	}

	recipient.Name = name
	recipient.Position = position
	recipient.Whatsapp = strings.TrimSpace(request.Whatsapp)
	recipient.IsActive = request.IsActive
	recipient.UpdatedAt = utils.NowUnixSeconds()

	if err := r.recipientRepo.Update(ctx, recipient); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrRecipientNotFound
		}
		return nil, utils.ErrDatabaseError
	}

	resp := toRecipientResponse(recipient)
	return &resp, nil
}

func (r *RecipientService) DeactivateRecipient(ctx context.Context, id string) error {
	if err := r.recipientRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrRecipientNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func toRecipientResponse(recipient *db_models.Recipient) response_models.RecipientResponse {
	return response_models.RecipientResponse{
		ID:       recipient.ID.String(),
		Name:     recipient.Name,
		Position: recipient.Position,
		Whatsapp: recipient.Whatsapp,
		IsActive: recipient.IsActive,
	}
}
