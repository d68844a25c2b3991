package utils

import (
	"encoding/json"
	"time"

	"github.com/skip2/go-qrcode"
)

// QRPayload is the document encoded into the scannable code. The scanner may
// read the denormalized guest fields offline, but only ID (the token) is
// authoritative when verifying.
type QRPayload struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Whatsapp  string    `json:"whatsapp"`
	To        string    `json:"to"`
	Purpose   string    `json:"purpose"`
	Timestamp time.Time `json:"timestamp"`
}

// RenderQRCode encodes the payload as a 512px PNG.
func RenderQRCode(payload QRPayload) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(string(data), qrcode.Medium, 512)
}
