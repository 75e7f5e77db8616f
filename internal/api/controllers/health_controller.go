package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"kampadmin/internal/models/db_models"
)

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{
		db: db,
	}
}

// Root godoc
// @Summary Service banner
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *HealthController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Kamp Admin API",
		"status":  "running",
	})
}

// Health godoc
// @Summary Health check
// @Description Verifies database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/health [get]
func (h *HealthController) Health(c *gin.Context) {
	var userCount int64
	err := h.db.WithContext(c.Request.Context()).
		Model(&db_models.User{}).
		Count(&userCount).Error
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"status":   "unhealthy",
			"database": "error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"database":   "connected",
		"user_count": userCount,
	})
}
