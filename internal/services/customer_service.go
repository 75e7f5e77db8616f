package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"kampadmin/internal/models/db_models"
	"kampadmin/internal/models/request_models"
	"kampadmin/internal/models/response_models"
	"kampadmin/internal/repositories"
	"kampadmin/pkg/utils"
)

type CustomerServiceInterface interface {
	CreateCustomer(ctx context.Context, request request_models.CustomerCreateRequest) (*response_models.CustomerResponse, error)
	ListCustomers(ctx context.Context, includeDeleted bool) ([]response_models.CustomerResponse, error)
	DeleteCustomer(ctx context.Context, customerID uuid.UUID) error
}

type CustomerService struct {
	customerRepo repositories.CustomerRepository
	codeRepo     repositories.PartnershipCodeRepository
}

func NewCustomerService(customerRepo repositories.CustomerRepository, codeRepo repositories.PartnershipCodeRepository) CustomerServiceInterface {
	return &CustomerService{
		customerRepo: customerRepo,
		codeRepo:     codeRepo,
	}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, request request_models.CustomerCreateRequest) (*response_models.CustomerResponse, error) {
	if len(request.Camps) != len(request.Prices) {
		return nil, utils.ErrCampPriceMismatch
	}

	if request.PartnershipCode != "" {
		code, err := s.codeRepo.FindActiveByCode(ctx, request.PartnershipCode)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if code == nil {
			return nil, utils.ErrInvalidPartnershipCode
		}
	}

	var totalPrice float64
	for _, price := range request.Prices {
		totalPrice += price
	}

	customer := &db_models.Customer{
		FullName:        request.FullName,
		Phone:           request.Phone,
		Email:           request.Email,
		ClassLevel:      request.ClassLevel,
		Camps:           request.Camps,
		Prices:          request.Prices,
		PartnershipCode: request.PartnershipCode,
		PreviousRank:    request.PreviousRank,
		City:            request.City,
		IsPaid:          totalPrice > 0,
	}

	// The transaction row is written in the same database transaction as the
	// customer, so a paid enrollment can never appear without its payment.
	var txn *db_models.FinancialTransaction
	if totalPrice > 0 {
		txn = &db_models.FinancialTransaction{
			Amount:          totalPrice,
			TransactionDate: time.Now().Unix(),
		}
	}

	if err := s.customerRepo.InsertWithTransaction(ctx, customer, txn); err != nil {
		return nil, utils.ErrDatabaseError
	}

	response := response_models.NewCustomerResponse(customer)
	return &response, nil
}

func (s *CustomerService) ListCustomers(ctx context.Context, includeDeleted bool) ([]response_models.CustomerResponse, error) {
	customers, err := s.customerRepo.ListAll(ctx, includeDeleted)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.CustomerResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, response_models.NewCustomerResponse(&customers[i]))
	}
	return responses, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, customerID uuid.UUID) error {
	customer, err := s.customerRepo.FindById(ctx, customerID.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if customer == nil {
		return utils.ErrCustomerNotFound
	}

	if err := s.customerRepo.SoftDelete(ctx, customerID, time.Now().Unix()); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
