package response_models

// SendResult reports the outcome of one outbound WhatsApp message. When the
// gateway is unreachable Fallback is set and WhatsappURL carries a wa.me deep
// link with the message pre-filled, so reception can send it by hand.
type SendResult struct {
	Success     bool   `json:"success"`
	MessageID   string `json:"messageId,omitempty"`
	Fallback    bool   `json:"fallback,omitempty"`
	WhatsappURL string `json:"whatsappUrl,omitempty"`
	Error       string `json:"error,omitempty"`
}
