package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kampadmin/internal/models/request_models"
	"kampadmin/internal/services"
	"kampadmin/pkg/utils"
)

type PartnershipController struct {
	partnershipService services.PartnershipServiceInterface
}

func NewPartnershipController(partnershipService services.PartnershipServiceInterface) *PartnershipController {
	return &PartnershipController{
		partnershipService: partnershipService,
	}
}

// CreateCode godoc
// @Summary Create a partnership code
// @Tags Partnership
// @Accept json
// @Produce json
// @Param request body request_models.PartnershipCodeCreateRequest true "Code payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/partnership-codes [post]
func (p *PartnershipController) CreateCode(c *gin.Context) {
	var req request_models.PartnershipCodeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	code, err := p.partnershipService.CreateCode(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, code, "Partnership code created successfully")
}

// ListCodes godoc
// @Summary List partnership codes
// @Tags Partnership
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/partnership-codes [get]
func (p *PartnershipController) ListCodes(c *gin.Context) {
	codes, err := p.partnershipService.ListCodes(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, codes, "Partnership codes fetched successfully")
}

// DeactivateCode godoc
// @Summary Deactivate a partnership code
// @Description The code row is kept so historical references stay resolvable
// @Tags Partnership
// @Produce json
// @Param id path string true "Code id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/partnership-codes/{id} [delete]
func (p *PartnershipController) DeactivateCode(c *gin.Context) {
	codeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid partnership code id")
		return
	}

	if err := p.partnershipService.DeactivateCode(c.Request.Context(), codeID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Partnership code deactivated")
}

// GetStats godoc
// @Summary Partnership statistics
// @Description Per-code customer counts and totals, highest total first
// @Tags Partnership
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/partnership-stats [get]
func (p *PartnershipController) GetStats(c *gin.Context) {
	stats, err := p.partnershipService.BuildStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Partnership stats built successfully")
}
