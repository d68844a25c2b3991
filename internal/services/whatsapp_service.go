package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"bukutamu/internal/models/response_models"
	"bukutamu/pkg/utils"
)

type WhatsAppServiceInterface interface {
	// SendText delivers a message through the WAHA gateway. Transport and
	// session failures are absorbed into a fallback deep-link result; the
	// only error returned is a missing API key.
	SendText(ctx context.Context, to string, message string) (*response_models.SendResult, error)
}

// WAHAConfig points at a WAHA (WhatsApp HTTP API) server.
type WAHAConfig struct {
	BaseURL string
	APIKey  string
	Session string
}

func WAHAConfigFromEnv() WAHAConfig {
	baseURL := os.Getenv("WAHA_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	return WAHAConfig{
		BaseURL: baseURL,
		APIKey:  os.Getenv("WAHA_API_KEY"),
		Session: "default",
	}
}

type WhatsAppService struct {
	cfg    WAHAConfig
	client *http.Client
	log    zerolog.Logger
}

func NewWhatsAppService(cfg WAHAConfig) WhatsAppServiceInterface {
	return &WhatsAppService{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    zerolog.New(os.Stdout).With().Timestamp().Str("component", "whatsapp").Logger(),
	}
}

type sessionStatusResponse struct {
	Status string `json:"status"`
}

type sendTextRequest struct {
	ChatID  string `json:"chatId"`
	Text    string `json:"text"`
	Session string `json:"session"`
}

type sendTextResponse struct {
	ID string `json:"id"`
}

func (w *WhatsAppService) SendText(ctx context.Context, to string, message string) (*response_models.SendResult, error) {
	if w.cfg.APIKey == "" {
		w.log.Warn().Msg("WAHA_API_KEY not configured")
		return nil, utils.ErrGatewayNotReady
	}

	phone := NormalizePhoneNumber(to)

	messageID, err := w.sendViaGateway(ctx, phone, message)
	if err != nil {
		w.log.Error().Err(err).Str("to", phone).Msg("WAHA send failed, falling back to deep link")
		return &response_models.SendResult{
			Fallback:    true,
			WhatsappURL: DeepLink(phone, message),
			Error:       err.Error(),
		}, nil
	}

	w.log.Info().Str("to", phone).Str("message_id", messageID).Msg("WhatsApp message sent")
	return &response_models.SendResult{
		Success:   true,
		MessageID: messageID,
	}, nil
}

func (w *WhatsAppService) sendViaGateway(ctx context.Context, phone string, message string) (string, error) {
	statusURL := fmt.Sprintf("%s/api/sessions/%s/status", w.cfg.BaseURL, w.cfg.Session)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, statusURL, nil)
	if err != nil {
		return "", err
	}
	w.decorate(req)

	resp, err := w.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("WAHA session not ready: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("WAHA session not ready: status %d", resp.StatusCode)
	}

	var session sessionStatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return "", fmt.Errorf("WAHA session not ready: %w", err)
	}
	if session.Status != "WORKING" {
		return "", fmt.Errorf("WAHA session status: %s", session.Status)
	}

	body, err := json.Marshal(sendTextRequest{
		ChatID:  phone + "@c.us",
		Text:    message,
		Session: w.cfg.Session,
	})
	if err != nil {
		return "", err
	}

	sendReq, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.BaseURL+"/api/sendText", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	w.decorate(sendReq)

	sendResp, err := w.client.Do(sendReq)
	if err != nil {
		return "", fmt.Errorf("WAHA send failed: %w", err)
	}
	defer sendResp.Body.Close()
	if sendResp.StatusCode != http.StatusOK && sendResp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("WAHA send failed: status %d", sendResp.StatusCode)
	}

	var sent sendTextResponse
	if err := json.NewDecoder(sendResp.Body).Decode(&sent); err != nil {
		return "", fmt.Errorf("WAHA send failed: %w", err)
	}
	return sent.ID, nil
}

func (w *WhatsAppService) decorate(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", w.cfg.APIKey)
}

// NormalizePhoneNumber strips formatting and converts local Indonesian
// numbers (leading 0) to international 62 form.
func NormalizePhoneNumber(phoneNumber string) string {
	var digits strings.Builder
	for _, r := range phoneNumber {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	normalized := digits.String()
	if strings.HasPrefix(normalized, "0") {
		normalized = "62" + normalized[1:]
	}
	return normalized
}

// DeepLink builds the wa.me URL reception can open manually when the gateway
// is down.
func DeepLink(phone string, message string) string {
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(message)
}
