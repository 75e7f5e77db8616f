package services

import (
	"context"

	"kampadmin/internal/models/request_models"
	"kampadmin/internal/models/response_models"
	"kampadmin/internal/repositories"
	"kampadmin/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
}

type AuthService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthServiceInterface {
	return &AuthService{
		userRepo: userRepo,
	}
}

func (a *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Unknown email and bad password are indistinguishable to the caller.
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, utils.ErrAccountInactive
	}

	token, err := utils.CreateToken(user.Email)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        response_models.NewUserResponse(user),
	}, nil
}
