package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bukutamu/internal/models/request_models"
	"bukutamu/internal/services"
	"bukutamu/pkg/utils"
)

type GuestsController struct {
	guestService   services.GuestServiceInterface
	checkinService services.CheckinServiceInterface
}

func NewGuestsController(
	guestService services.GuestServiceInterface,
	checkinService services.CheckinServiceInterface) *GuestsController {
	return &GuestsController{
		guestService:   guestService,
		checkinService: checkinService,
	}
}

// Register godoc
// @Summary Register a guest visit
// @Description Store the visitor form and mint the QR token shown on the final step
// @Tags Guests
// @Accept json
// @Produce json
// @Param request body request_models.RegisterGuestRequest true "Visitor form payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /guests [post]
func (g *GuestsController) Register(c *gin.Context) {
	var req request_models.RegisterGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Semua field harus diisi")
		return
	}

	result, err := g.guestService.RegisterGuest(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Tamu berhasil didaftarkan")
}

// GetGuests godoc
// @Summary Fetch guests
// @Description With a qrCode query parameter returns that guest; otherwise lists all guests newest first
// @Tags Guests
// @Produce json
// @Param qrCode query string false "QR token to look up"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /guests [get]
func (g *GuestsController) GetGuests(c *gin.Context) {
	if qrCode := c.Query("qrCode"); qrCode != "" {
		guest, err := g.guestService.GetGuestByQRCode(c.Request.Context(), qrCode)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, gin.H{"guest": guest}, "")
		return
	}

	guests, err := g.guestService.ListGuests(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"guests": guests}, "")
}

// RenderQRCode godoc
// @Summary Render a guest's QR code
// @Description Returns the scannable code as a PNG image
// @Tags Guests
// @Produce png
// @Param id path string true "Guest id"
// @Success 200 {file} binary
// @Failure 404 {object} utils.APIResponse
// @Router /guests/{id}/qrcode [get]
func (g *GuestsController) RenderQRCode(c *gin.Context) {
	png, err := g.guestService.RenderGuestQRCode(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// Verify godoc
// @Summary Check a scanned guest in
// @Description Validates the QR token and performs the one-way check-in transition
// @Tags Guests
// @Accept json
// @Produce json
// @Param request body request_models.VerifyGuestRequest true "Scanned QR token"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /guests/verify [post]
func (g *GuestsController) Verify(c *gin.Context) {
	var req request_models.VerifyGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "QR Code diperlukan")
		return
	}

	guest, err := g.checkinService.Verify(c.Request.Context(), req.QRCode)
	if err != nil {
		if errors.Is(err, utils.ErrAlreadyCheckedIn) {
			utils.RespondConflict(c, gin.H{"guest": guest}, "Tamu sudah check-in sebelumnya")
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"guest": guest}, "Tamu berhasil diverifikasi")
}
