package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
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

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Incorrect email or password")
	case errors.Is(err, ErrAccountInactive):
		RespondError(c, http.StatusForbidden, "User account is inactive")
	case errors.Is(err, ErrUserNotFound):
		RespondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrUserEmailExists):
		RespondError(c, http.StatusBadRequest, "User with this email already exists")
	case errors.Is(err, ErrProtectedUser):
		RespondError(c, http.StatusForbidden, "Cannot modify protected user accounts")
	case errors.Is(err, ErrCustomerNotFound):
		RespondError(c, http.StatusNotFound, "Customer not found")
	case errors.Is(err, ErrCampPriceMismatch):
		RespondError(c, http.StatusBadRequest, "Camps and prices must have the same length")
	case errors.Is(err, ErrInvalidPartnershipCode):
		RespondError(c, http.StatusBadRequest, "Invalid or inactive partnership code")
	case errors.Is(err, ErrPartnershipCodeNotFound):
		RespondError(c, http.StatusNotFound, "Partnership code not found")
	case errors.Is(err, ErrPartnershipCodeExists):
		RespondError(c, http.StatusBadRequest, "Partnership code already exists")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
