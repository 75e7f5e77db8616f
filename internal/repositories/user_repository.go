package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"kampadmin/internal/models/db_models"
)

type UserRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	FindById(ctx context.Context, id string) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	ListAll(ctx context.Context) ([]db_models.User, error)
	Save(ctx context.Context, user *db_models.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (u *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	return u.db.WithContext(ctx).Create(user).Error
}

func (u *userRepository) FindById(ctx context.Context, id string) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (u *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (u *userRepository) ListAll(ctx context.Context) ([]db_models.User, error) {
	var users []db_models.User
	err := u.db.WithContext(ctx).Order("created_at ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (u *userRepository) Save(ctx context.Context, user *db_models.User) error {
	return u.db.WithContext(ctx).Save(user).Error
}
