package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// RespondConflict is used when the request is rejected but the caller still
// needs the current record, e.g. a second scan of an already used QR code.
func RespondConflict(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusConflict, APIResponse{
		Status:  "error",
		Code:    http.StatusConflict,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingField):
		RespondError(c, http.StatusBadRequest, "Semua field harus diisi")
	case errors.Is(err, ErrGuestNotFound):
		RespondError(c, http.StatusNotFound, "QR Code tidak ditemukan")
	case errors.Is(err, ErrRecipientNotFound):
		RespondError(c, http.StatusNotFound, "Penerima tidak ditemukan")
	case errors.Is(err, ErrAlreadyCheckedIn):
		RespondConflict(c, nil, "Tamu sudah check-in sebelumnya")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Password salah")
	case errors.Is(err, ErrGatewayNotReady):
		RespondError(c, http.StatusInternalServerError, "WAHA API key tidak dikonfigurasi")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
