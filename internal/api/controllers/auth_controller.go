package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bukutamu/internal/models/request_models"
	"bukutamu/internal/services"
	"bukutamu/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login godoc
// @Summary Admin login
// @Description Exchanges the admin password for a bearer token guarding the dashboard routes
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Admin password"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Password diperlukan")
		return
	}

	token, err := a.authService.Login(req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Login berhasil")
}
