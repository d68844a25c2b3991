package response_models

import "time"

type GuestResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Whatsapp    string     `json:"whatsapp"`
	To          string     `json:"to"`
	Purpose     string     `json:"purpose"`
	QRCode      string     `json:"qrCode"`
	CheckedIn   bool       `json:"checkedIn"`
	CheckedInAt *time.Time `json:"checkedInAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type RegisterGuestResponse struct {
	Guest  GuestResponse `json:"guest"`
	QRCode string        `json:"qrCode"`
}
