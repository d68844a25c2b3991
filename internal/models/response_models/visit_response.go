package response_models

import "time"

// ScheduleEntry is one pending visitor row in the reception dashboard. Field
// names mirror what the dashboard renders (id-ID labels).
type ScheduleEntry struct {
	ID        string    `json:"id"`
	Nama      string    `json:"nama"`
	Host      string    `json:"host"`
	Whatsapp  string    `json:"whatsapp"`
	Waktu     string    `json:"waktu"`
	Status    string    `json:"status"`
	Purpose   string    `json:"purpose"`
	QRCode    string    `json:"qrCode"`
	CreatedAt time.Time `json:"createdAt"`
}

// HistoryEntry is one reception log row joined with its guest.
type HistoryEntry struct {
	ID       string `json:"id"`
	Nama     string `json:"nama"`
	Host     string `json:"host"`
	Whatsapp string `json:"whatsapp"`
	Waktu    string `json:"waktu"`
	Status   string `json:"status"`
	Action   string `json:"action"`
	Notes    string `json:"notes"`
	QRCode   string `json:"qrCode"`
}
