package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bukutamu/pkg/utils"
)

func TestSendTextWithoutAPIKey(t *testing.T) {
	svc := NewWhatsAppService(WAHAConfig{BaseURL: "http://localhost:3000", Session: "default"})

	_, err := svc.SendText(context.Background(), "081234567890", "halo")
	assert.ErrorIs(t, err, utils.ErrGatewayNotReady)
}

func TestSendTextHappyPath(t *testing.T) {
	var sentBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		switch r.URL.Path {
		case "/api/sessions/default/status":
			json.NewEncoder(w).Encode(map[string]string{"status": "WORKING"})
		case "/api/sendText":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&sentBody))
			json.NewEncoder(w).Encode(map[string]string{"id": "msg-123"})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	svc := NewWhatsAppService(WAHAConfig{BaseURL: server.URL, APIKey: "secret", Session: "default"})

	result, err := svc.SendText(context.Background(), "0812-3456-7890", "Tamu baru menunggu")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "msg-123", result.MessageID)
	assert.False(t, result.Fallback)

	// Local numbers go out as international chat ids.
	assert.Equal(t, "6281234567890@c.us", sentBody["chatId"])
	assert.Equal(t, "default", sentBody["session"])
}

func TestSendTextSessionNotWorkingFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "SCAN_QR_CODE"})
	}))
	defer server.Close()

	svc := NewWhatsAppService(WAHAConfig{BaseURL: server.URL, APIKey: "secret", Session: "default"})

	result, err := svc.SendText(context.Background(), "6281234567890", "halo kak")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.True(t, result.Fallback)
	assert.Contains(t, result.WhatsappURL, "https://wa.me/6281234567890?text=")
	assert.NotEmpty(t, result.Error)
}

func TestSendTextGatewayDownFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	svc := NewWhatsAppService(WAHAConfig{BaseURL: server.URL, APIKey: "secret", Session: "default"})

	result, err := svc.SendText(context.Background(), "6281234567890", "halo")
	require.NoError(t, err)
	assert.True(t, result.Fallback)
	assert.NotEmpty(t, result.WhatsappURL)
}

func TestNormalizePhoneNumber(t *testing.T) {
	cases := map[string]string{
		"081234567890":     "6281234567890",
		"+62 812-3456-789": "628123456789",
		"6281234567890":    "6281234567890",
		"(0812) 345 678":   "62812345678",
	}
	for input, expected := range cases {
		assert.Equal(t, expected, NormalizePhoneNumber(input), "input %q", input)
	}
}
