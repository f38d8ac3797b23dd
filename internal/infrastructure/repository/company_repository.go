package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/prism-finance/prism/internal/domain/company"
	"github.com/prism-finance/prism/internal/infrastructure/persistence/mappers"
	"github.com/prism-finance/prism/internal/infrastructure/persistence/models"
	"github.com/prism-finance/prism/internal/shared/db"
)

type CompanyRepository struct {
	db     *gorm.DB
	mapper mappers.CompanyMapper
}

func NewCompanyRepository(db *gorm.DB) company.Repository {
	return &CompanyRepository{db: db, mapper: mappers.NewCompanyMapper()}
}

func (r *CompanyRepository) Create(ctx context.Context, c *company.Company) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.ToModel(c)).Error; err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*company.Company, error) {
	var model models.CompanyModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *CompanyRepository) List(ctx context.Context, page, pageSize int) ([]*company.Company, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.CompanyModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count companies: %w", err)
	}

	var list []*models.CompanyModel
	if err := query.Order("name ASC").Scopes(db.Paginate(page, pageSize)).Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list companies: %w", err)
	}

	out := make([]*company.Company, 0, len(list))
	for _, model := range list {
		entity, err := r.mapper.ToEntity(model)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, entity)
	}
	return out, total, nil
}

func (r *CompanyRepository) ExistsBySIRET(ctx context.Context, siret string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.CompanyModel{}).Where("siret = ?", siret).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check company SIRET: %w", err)
	}
	return count > 0, nil
}
