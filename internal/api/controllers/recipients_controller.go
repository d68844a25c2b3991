package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bukutamu/internal/models/request_models"
	"bukutamu/internal/services"
	"bukutamu/pkg/utils"
)

type RecipientsController struct {
	recipientService services.RecipientServiceInterface
}

func NewRecipientsController(recipientService services.RecipientServiceInterface) *RecipientsController {
	return &RecipientsController{
		recipientService: recipientService,
	}
}

// List godoc
// @Summary List active recipients
// @Description The people the visitor form offers as visit targets, name ascending
// @Tags Recipients
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /recipients [get]
func (r *RecipientsController) List(c *gin.Context) {
	recipients, err := r.recipientService.ListActiveRecipients(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"recipients": recipients}, "")
}

// Create godoc
// @Summary Add a recipient
// @Tags Recipients
// @Accept json
// @Produce json
// @Param request body request_models.CreateRecipientRequest true "Recipient payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /recipients [post]
func (r *RecipientsController) Create(c *gin.Context) {
	var req request_models.CreateRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Nama dan jabatan harus diisi")
		return
	}

	recipient, err := r.recipientService.CreateRecipient(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"recipient": recipient}, "Penerima berhasil ditambahkan")
}

// Update godoc
// @Summary Update a recipient
// @Tags Recipients
// @Accept json
// @Produce json
// @Param id path string true "Recipient id"
// @Param request body request_models.UpdateRecipientRequest true "Recipient payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /recipients/{id} [put]
func (r *RecipientsController) Update(c *gin.Context) {
	var req request_models.UpdateRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Nama dan jabatan harus diisi")
		return
	}

	recipient, err := r.recipientService.UpdateRecipient(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"recipient": recipient}, "Penerima berhasil diupdate")
}

// Delete godoc
// @Summary Deactivate a recipient
// @Description Soft delete: the recipient disappears from the form but the row stays
// @Tags Recipients
// @Produce json
// @Param id path string true "Recipient id"
// @Success 200 {object} utils.APIResponse
// @Router /recipients/{id} [delete]
func (r *RecipientsController) Delete(c *gin.Context) {
	if err := r.recipientService.DeactivateRecipient(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Penerima berhasil dinonaktifkan")
}
