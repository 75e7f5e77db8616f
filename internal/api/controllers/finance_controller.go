package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"kampadmin/internal/services"
	"kampadmin/pkg/utils"
)

type FinanceController struct {
	financeService services.FinanceServiceInterface
}

func NewFinanceController(financeService services.FinanceServiceInterface) *FinanceController {
	return &FinanceController{
		financeService: financeService,
	}
}

// GetFinancials godoc
// @Summary Financial report
// @Description Daily/weekly/monthly/yearly sums plus per-transaction detail
// @Tags Financials
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/financials [get]
func (f *FinanceController) GetFinancials(c *gin.Context) {
	report, err := f.financeService.BuildReport(c.Request.Context(), time.Now())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Financial report built successfully")
}
