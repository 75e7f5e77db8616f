package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kampadmin/internal/models/db_models"
	"kampadmin/internal/models/request_models"
	"kampadmin/pkg/utils"
)

func boolPtr(v bool) *bool { return &v }

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	userRepo := &stubUserRepo{}
	service := NewUserService(userRepo)

	_, err := service.CreateUser(context.Background(), request_models.UserCreateRequest{
		Email:    "staff@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	_, err = service.CreateUser(context.Background(), request_models.UserCreateRequest{
		Email:    "staff@example.com",
		Password: "secret2",
	})
	assert.ErrorIs(t, err, utils.ErrUserEmailExists)
}

func TestCreateUserStoresHashAndFlags(t *testing.T) {
	userRepo := &stubUserRepo{}
	service := NewUserService(userRepo)

	created, err := service.CreateUser(context.Background(), request_models.UserCreateRequest{
		Email:              "staff@example.com",
		Password:           "secret1",
		CanManageCustomers: true,
		CanViewFinancials:  true,
	})
	require.NoError(t, err)

	assert.True(t, created.CanManageCustomers)
	assert.True(t, created.CanViewFinancials)
	assert.False(t, created.CanManageAccess)
	assert.True(t, created.IsActive)

	require.Len(t, userRepo.users, 1)
	stored := userRepo.users[0]
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(stored.PasswordHash, "secret1"))
}

func TestListUsersIncludesInactive(t *testing.T) {
	userRepo := &stubUserRepo{users: []*db_models.User{
		{BaseModel: db_models.BaseModel{ID: uuid.New()}, Email: "a@example.com", IsActive: true},
		{BaseModel: db_models.BaseModel{ID: uuid.New()}, Email: "b@example.com", IsActive: false},
	}}
	service := NewUserService(userRepo)

	users, err := service.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUpdateUserNotFound(t *testing.T) {
	service := NewUserService(&stubUserRepo{})

	_, err := service.UpdateUser(context.Background(), uuid.New(), request_models.UserUpdateRequest{})
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestUpdateUserAppliesOnlyProvidedFields(t *testing.T) {
	user := &db_models.User{
		BaseModel:          db_models.BaseModel{ID: uuid.New()},
		Email:              "staff@example.com",
		IsActive:           true,
		CanManageCustomers: true,
		CanViewFinancials:  true,
	}
	userRepo := &stubUserRepo{users: []*db_models.User{user}}
	service := NewUserService(userRepo)

	updated, err := service.UpdateUser(context.Background(), user.ID, request_models.UserUpdateRequest{
		CanViewFinancials: boolPtr(false),
		CanManageAccess:   boolPtr(true),
	})
	require.NoError(t, err)

	// Explicit false applied, omitted fields untouched.
	assert.False(t, updated.CanViewFinancials)
	assert.True(t, updated.CanManageAccess)
	assert.True(t, updated.CanManageCustomers)
	assert.True(t, updated.IsActive)
}

func TestUpdateUserRefusesProtectedAccount(t *testing.T) {
	protected := &db_models.User{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		Email:       "owner@example.com",
		IsActive:    true,
		IsProtected: true,
	}
	service := NewUserService(&stubUserRepo{users: []*db_models.User{protected}})

	_, err := service.UpdateUser(context.Background(), protected.ID, request_models.UserUpdateRequest{
		CanViewFinancials: boolPtr(true),
	})
	assert.ErrorIs(t, err, utils.ErrProtectedUser)
}

func TestDeactivateUserRefusesProtectedAccount(t *testing.T) {
	protected := &db_models.User{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		Email:       "owner@example.com",
		IsActive:    true,
		IsProtected: true,
	}
	service := NewUserService(&stubUserRepo{users: []*db_models.User{protected}})

	err := service.DeactivateUser(context.Background(), protected.ID)
	assert.ErrorIs(t, err, utils.ErrProtectedUser)
	assert.True(t, protected.IsActive)
}

func TestDeactivateUserFlipsActiveFlagOnly(t *testing.T) {
	user := &db_models.User{
		BaseModel:          db_models.BaseModel{ID: uuid.New()},
		Email:              "staff@example.com",
		IsActive:           true,
		CanManageCustomers: true,
	}
	userRepo := &stubUserRepo{users: []*db_models.User{user}}
	service := NewUserService(userRepo)

	require.NoError(t, service.DeactivateUser(context.Background(), user.ID))

	assert.False(t, user.IsActive)
	assert.True(t, user.CanManageCustomers)
	assert.Len(t, userRepo.users, 1)
}

func TestSeedProtectedAdminsCreatesMissingAccounts(t *testing.T) {
	t.Setenv("SEED_ADMIN_EMAILS", "gokhan@example.com, emre@example.com")
	t.Setenv("SEED_ADMIN_PASSWORD", "bootstrap")

	userRepo := &stubUserRepo{}
	require.NoError(t, SeedProtectedAdmins(context.Background(), userRepo))

	require.Len(t, userRepo.users, 2)
	for _, admin := range userRepo.users {
		assert.True(t, admin.IsProtected)
		assert.True(t, admin.IsActive)
		assert.True(t, admin.CanManageAccess)
		assert.True(t, admin.CanManageCustomers)
	}

	// Second run is a no-op.
	require.NoError(t, SeedProtectedAdmins(context.Background(), userRepo))
	assert.Len(t, userRepo.users, 2)
}
