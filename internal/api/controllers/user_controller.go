package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kampadmin/internal/models/request_models"
	"kampadmin/internal/services"
	"kampadmin/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{
		userService: userService,
	}
}

// CreateUser godoc
// @Summary Create a user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.UserCreateRequest true "User payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/users [post]
func (u *UserController) CreateUser(c *gin.Context) {
	var req request_models.UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := u.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User created successfully")
}

// ListUsers godoc
// @Summary List users
// @Description Returns every user, inactive ones included
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/users [get]
func (u *UserController) ListUsers(c *gin.Context) {
	users, err := u.userService.ListUsers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "Users fetched successfully")
}

// UpdateUser godoc
// @Summary Update a user's permissions
// @Description Partial update; omitted fields keep their stored values
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param request body request_models.UserUpdateRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/users/{id} [put]
func (u *UserController) UpdateUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req request_models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := u.userService.UpdateUser(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User updated successfully")
}

// DeactivateUser godoc
// @Summary Deactivate a user
// @Description Sets is_active to false; accounts are never removed
// @Tags Users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/users/{id} [delete]
func (u *UserController) DeactivateUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := u.userService.DeactivateUser(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User deactivated")
}
