package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kampadmin/internal/models/request_models"
	"kampadmin/internal/services"
	"kampadmin/pkg/utils"
)

type CustomerController struct {
	customerService services.CustomerServiceInterface
}

func NewCustomerController(customerService services.CustomerServiceInterface) *CustomerController {
	return &CustomerController{
		customerService: customerService,
	}
}

// CreateCustomer godoc
// @Summary Create an enrollment
// @Description Register a customer; a paid enrollment also records its financial transaction
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body request_models.CustomerCreateRequest true "Enrollment payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/customers [post]
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req request_models.CustomerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	customer, err := cc.customerService.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, customer, "Customer created successfully")
}

// ListCustomers godoc
// @Summary List customers
// @Description Newest first; soft-deleted customers only with include_deleted=true
// @Tags Customers
// @Produce json
// @Param include_deleted query bool false "Include soft-deleted customers"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/customers [get]
func (cc *CustomerController) ListCustomers(c *gin.Context) {
	includeDeleted, _ := strconv.ParseBool(c.DefaultQuery("include_deleted", "false"))

	customers, err := cc.customerService.ListCustomers(c.Request.Context(), includeDeleted)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, customers, "Customers fetched successfully")
}

// DeleteCustomer godoc
// @Summary Soft-delete a customer
// @Description Flags the customer deleted and cascades to its transactions
// @Tags Customers
// @Produce json
// @Param id path string true "Customer id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/customers/{id} [delete]
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid customer id")
		return
	}

	if err := cc.customerService.DeleteCustomer(c.Request.Context(), customerID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Customer marked as deleted")
}
