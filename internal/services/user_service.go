package services

import (
	"context"

	"github.com/google/uuid"

	"kampadmin/internal/models/db_models"
	"kampadmin/internal/models/request_models"
	"kampadmin/internal/models/response_models"
	"kampadmin/internal/repositories"
	"kampadmin/pkg/utils"
)

type UserServiceInterface interface {
	CreateUser(ctx context.Context, request request_models.UserCreateRequest) (*response_models.UserResponse, error)
	ListUsers(ctx context.Context) ([]response_models.UserResponse, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, request request_models.UserUpdateRequest) (*response_models.UserResponse, error)
	DeactivateUser(ctx context.Context, userID uuid.UUID) error
}

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserServiceInterface {
	return &UserService{
		userRepo: userRepo,
	}
}

func (s *UserService) CreateUser(ctx context.Context, request request_models.UserCreateRequest) (*response_models.UserResponse, error) {
	existing, err := s.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrUserEmailExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Email:        request.Email,
		PasswordHash: hashedPassword,
		IsActive:     true,

		CanManageCustomers:        request.CanManageCustomers,
		CanViewFinancials:         request.CanViewFinancials,
		CanManagePartnershipCodes: request.CanManagePartnershipCodes,
		CanViewPartnershipStats:   request.CanViewPartnershipStats,
		CanManageAccess:           request.CanManageAccess,
	}

	if err := s.userRepo.Insert(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	response := response_models.NewUserResponse(user)
	return &response, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]response_models.UserResponse, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, response_models.NewUserResponse(&users[i]))
	}
	return responses, nil
}

// UpdateUser applies only the fields present in the request; nil pointers
// leave the stored value untouched, so an explicit false still lands.
func (s *UserService) UpdateUser(ctx context.Context, userID uuid.UUID, request request_models.UserUpdateRequest) (*response_models.UserResponse, error) {
	user, err := s.userRepo.FindById(ctx, userID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	if user.IsProtected {
		return nil, utils.ErrProtectedUser
	}

	if request.CanManageCustomers != nil {
		user.CanManageCustomers = *request.CanManageCustomers
	}
	if request.CanViewFinancials != nil {
		user.CanViewFinancials = *request.CanViewFinancials
	}
	if request.CanManagePartnershipCodes != nil {
		user.CanManagePartnershipCodes = *request.CanManagePartnershipCodes
	}
	if request.CanViewPartnershipStats != nil {
		user.CanViewPartnershipStats = *request.CanViewPartnershipStats
	}
	if request.CanManageAccess != nil {
		user.CanManageAccess = *request.CanManageAccess
	}
	if request.IsActive != nil {
		user.IsActive = *request.IsActive
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	response := response_models.NewUserResponse(user)
	return &response, nil
}

// DeactivateUser flips is_active off. Users are never hard-deleted.
func (s *UserService) DeactivateUser(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.FindById(ctx, userID.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}
	if user.IsProtected {
		return utils.ErrProtectedUser
	}

	user.IsActive = false
	if err := s.userRepo.Save(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
