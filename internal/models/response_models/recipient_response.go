package response_models

type RecipientResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Whatsapp string `json:"whatsapp"`
	IsActive bool   `json:"isActive"`
}
