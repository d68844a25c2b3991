package request_models

type RegisterGuestRequest struct {
	Name     string `json:"name" binding:"required"`
	Whatsapp string `json:"whatsapp" binding:"required"`
	To       string `json:"to" binding:"required"`
	Purpose  string `json:"purpose" binding:"required"`
}

type VerifyGuestRequest struct {
	QRCode string `json:"qrCode" binding:"required"`
}
