package request_models

type CreateRecipientRequest struct {
	Name     string `json:"name" binding:"required"`
	Position string `json:"position" binding:"required"`
	Whatsapp string `json:"whatsapp"`
}

type UpdateRecipientRequest struct {
	Name     string `json:"name" binding:"required"`
	Position string `json:"position" binding:"required"`
	Whatsapp string `json:"whatsapp"`
	IsActive bool   `json:"isActive"`
}
