package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Guest is one registered visit. Rows are append-only: the only mutation a
// guest ever sees is the single check-in transition.
//
// To keeps the recipient display name the visitor picked; RecipientID is the
// referential key so renaming a recipient cannot orphan history.
type Guest struct {
	BaseModel
	Name        string    `json:"name"`
	Whatsapp    string    `json:"whatsapp"`
	To          string    `json:"to"`
	RecipientID uuid.UUID `gorm:"type:uuid;index" json:"recipientId"`
	Purpose     string    `json:"purpose"`

	// QRCode is the opaque token minted at registration, immutable, and the
	// sole lookup key a scan is verified with.
	QRCode      string     `gorm:"uniqueIndex;column:qr_code" json:"qrCode"`
	CheckedIn   bool       `json:"checkedIn"`
	CheckedInAt *time.Time `json:"checkedInAt"`

	Recipient     Recipient      `gorm:"foreignKey:RecipientID" json:"-"`
	ReceptionLogs []ReceptionLog `gorm:"foreignKey:GuestID" json:"-"`
}
