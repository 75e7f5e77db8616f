package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kampadmin/internal/models/request_models"
	"kampadmin/internal/models/response_models"
	"kampadmin/internal/services"
	"kampadmin/pkg/middleware"
	"kampadmin/pkg/utils"
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
// @Summary Log in
// @Description Exchange email and password for a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := a.authService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Login successful")
}

// Me godoc
// @Summary Current user
// @Description Resolve the caller's identity from the bearer token
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/me [get]
func (a *AuthController) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.RespondError(c, http.StatusUnauthorized, "Authorization required")
		return
	}

	utils.RespondSuccess(c, response_models.NewUserResponse(user), "User resolved")
}
