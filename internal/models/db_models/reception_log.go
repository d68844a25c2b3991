package db_models

import "github.com/google/uuid"

const ActionCheckin = "checkin"

// ReceptionLog is the append-only audit trail of guest state transitions.
// Entries are never updated or deleted.
type ReceptionLog struct {
	BaseModel
	GuestID uuid.UUID `gorm:"type:uuid;index" json:"guestId"`
	Action  string    `json:"action"`
	Notes   string    `json:"notes"`

	Guest Guest `gorm:"foreignKey:GuestID" json:"-"`
}
