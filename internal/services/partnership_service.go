package services

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"kampadmin/internal/models/db_models"
	"kampadmin/internal/models/request_models"
	"kampadmin/internal/models/response_models"
	"kampadmin/internal/repositories"
	"kampadmin/pkg/utils"
)

type PartnershipServiceInterface interface {
	CreateCode(ctx context.Context, request request_models.PartnershipCodeCreateRequest) (*response_models.PartnershipCodeResponse, error)
	ListCodes(ctx context.Context) ([]response_models.PartnershipCodeResponse, error)
	DeactivateCode(ctx context.Context, codeID uuid.UUID) error
	BuildStats(ctx context.Context) ([]response_models.PartnershipStats, error)
}

type PartnershipService struct {
	codeRepo     repositories.PartnershipCodeRepository
	customerRepo repositories.CustomerRepository
}

func NewPartnershipService(codeRepo repositories.PartnershipCodeRepository, customerRepo repositories.CustomerRepository) PartnershipServiceInterface {
	return &PartnershipService{
		codeRepo:     codeRepo,
		customerRepo: customerRepo,
	}
}

func (s *PartnershipService) CreateCode(ctx context.Context, request request_models.PartnershipCodeCreateRequest) (*response_models.PartnershipCodeResponse, error) {
	existing, err := s.codeRepo.FindByCode(ctx, request.Code)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrPartnershipCodeExists
	}

	code := &db_models.PartnershipCode{
		Code:     request.Code,
		IsActive: true,
	}
	if err := s.codeRepo.Insert(ctx, code); err != nil {
		return nil, utils.ErrDatabaseError
	}

	response := response_models.NewPartnershipCodeResponse(code)
	return &response, nil
}

func (s *PartnershipService) ListCodes(ctx context.Context) ([]response_models.PartnershipCodeResponse, error) {
	codes, err := s.codeRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.PartnershipCodeResponse, 0, len(codes))
	for i := range codes {
		responses = append(responses, response_models.NewPartnershipCodeResponse(&codes[i]))
	}
	return responses, nil
}

// DeactivateCode never removes the row; historical customer references must
// stay resolvable for stats.
func (s *PartnershipService) DeactivateCode(ctx context.Context, codeID uuid.UUID) error {
	code, err := s.codeRepo.FindById(ctx, codeID.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if code == nil {
		return utils.ErrPartnershipCodeNotFound
	}

	code.IsActive = false
	if err := s.codeRepo.Save(ctx, code); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// BuildStats reports every code, active or not. Totals are recomputed from
// customer prices rather than financial transactions, so a code's number
// reflects enrollments even when payments were never recorded.
func (s *PartnershipService) BuildStats(ctx context.Context) ([]response_models.PartnershipStats, error) {
	codes, err := s.codeRepo.ListChronological(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	stats := make([]response_models.PartnershipStats, 0, len(codes))
	for _, code := range codes {
		customers, err := s.customerRepo.ListActiveByPartnershipCode(ctx, code.Code)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}

		var totalAmount float64
		for i := range customers {
			totalAmount += customers[i].TotalPrice()
		}

		stats = append(stats, response_models.PartnershipStats{
			Code:          code.Code,
			CustomerCount: len(customers),
			TotalAmount:   totalAmount,
		})
	}

	// Stable: equal totals keep their chronological code order.
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalAmount > stats[j].TotalAmount
	})

	return stats, nil
}
