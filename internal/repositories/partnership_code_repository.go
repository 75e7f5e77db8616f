package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"kampadmin/internal/models/db_models"
)

type PartnershipCodeRepository interface {
	Insert(ctx context.Context, code *db_models.PartnershipCode) error
	FindById(ctx context.Context, id string) (*db_models.PartnershipCode, error)
	FindByCode(ctx context.Context, code string) (*db_models.PartnershipCode, error)
	FindActiveByCode(ctx context.Context, code string) (*db_models.PartnershipCode, error)
	ListAll(ctx context.Context) ([]db_models.PartnershipCode, error)
	// ListChronological returns every code, oldest first. Partnership stats
	// rely on this order for stable tie-breaking.
	ListChronological(ctx context.Context) ([]db_models.PartnershipCode, error)
	Save(ctx context.Context, code *db_models.PartnershipCode) error
}

type partnershipCodeRepository struct {
	db *gorm.DB
}

func NewPartnershipCodeRepository(db *gorm.DB) PartnershipCodeRepository {
	return &partnershipCodeRepository{
		db: db,
	}
}

func (p *partnershipCodeRepository) Insert(ctx context.Context, code *db_models.PartnershipCode) error {
	return p.db.WithContext(ctx).Create(code).Error
}

func (p *partnershipCodeRepository) FindById(ctx context.Context, id string) (*db_models.PartnershipCode, error) {
	var code db_models.PartnershipCode
	err := p.db.WithContext(ctx).First(&code, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &code, nil
}

func (p *partnershipCodeRepository) FindByCode(ctx context.Context, codeValue string) (*db_models.PartnershipCode, error) {
	var code db_models.PartnershipCode
	err := p.db.WithContext(ctx).First(&code, "code = ?", codeValue).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &code, nil
}

func (p *partnershipCodeRepository) FindActiveByCode(ctx context.Context, codeValue string) (*db_models.PartnershipCode, error) {
	var code db_models.PartnershipCode
	err := p.db.WithContext(ctx).
		Where("code = ? AND is_active = ?", codeValue, true).
		First(&code).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &code, nil
}

func (p *partnershipCodeRepository) ListAll(ctx context.Context) ([]db_models.PartnershipCode, error) {
	var codes []db_models.PartnershipCode
	err := p.db.WithContext(ctx).Order("created_at DESC").Find(&codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}

func (p *partnershipCodeRepository) ListChronological(ctx context.Context) ([]db_models.PartnershipCode, error) {
	var codes []db_models.PartnershipCode
	err := p.db.WithContext(ctx).Order("created_at ASC").Find(&codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}

func (p *partnershipCodeRepository) Save(ctx context.Context, code *db_models.PartnershipCode) error {
	return p.db.WithContext(ctx).Save(code).Error
}
