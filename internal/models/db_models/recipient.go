package db_models

// Recipient is a person visitors can be directed to. Deactivation is a flag
// flip; rows are never removed so old guests keep a valid reference.
type Recipient struct {
	BaseModel
	Name     string `gorm:"index" json:"name"`
	Position string `json:"position"`
	Whatsapp string `json:"whatsapp"`
	IsActive bool   `json:"isActive"`

	Guests []Guest `gorm:"foreignKey:RecipientID" json:"-"`
}
