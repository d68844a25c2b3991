package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bukutamu/internal/models/request_models"
	"bukutamu/internal/services"
	"bukutamu/pkg/utils"
)

type WhatsAppController struct {
	whatsappService services.WhatsAppServiceInterface
}

func NewWhatsAppController(whatsappService services.WhatsAppServiceInterface) *WhatsAppController {
	return &WhatsAppController{
		whatsappService: whatsappService,
	}
}

// Send godoc
// @Summary Send a WhatsApp message
// @Description Delivers via the WAHA gateway; on gateway failure returns a wa.me fallback link instead of an error
// @Tags Notifications
// @Accept json
// @Produce json
// @Param request body request_models.SendMessageRequest true "Recipient number and text"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /notify [post]
func (w *WhatsAppController) Send(c *gin.Context) {
	var req request_models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Nomor telepon dan pesan diperlukan")
		return
	}

	result, err := w.whatsappService.SendText(c.Request.Context(), req.To, req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Pesan WhatsApp berhasil dikirim"
	if result.Fallback {
		message = "WAHA tidak tersedia, gunakan link fallback"
	}
	utils.RespondSuccess(c, result, message)
}
