package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/prism-finance/prism/internal/domain/supplier"
	"github.com/prism-finance/prism/internal/infrastructure/persistence/mappers"
	"github.com/prism-finance/prism/internal/infrastructure/persistence/models"
	"github.com/prism-finance/prism/internal/shared/db"
)

type SupplierRepository struct {
	db     *gorm.DB
	mapper mappers.SupplierMapper
}

func NewSupplierRepository(db *gorm.DB) supplier.Repository {
	return &SupplierRepository{db: db, mapper: mappers.NewSupplierMapper()}
}

func (r *SupplierRepository) Create(ctx context.Context, s *supplier.Supplier) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.ToModel(s)).Error; err != nil {
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepository) GetByID(ctx context.Context, id string) (*supplier.Supplier, error) {
	var model models.SupplierModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

// Update writes every editable column. company_id and created_at never change.
func (r *SupplierRepository) Update(ctx context.Context, s *supplier.Supplier) error {
	model := r.mapper.ToModel(s)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.SupplierModel{}).
		Where("id = ?", model.ID).
		Select("name", "siret", "vat_number", "profession", "address", "postal_code", "city", "country",
			"iban", "bic", "emails", "phone", "status", "contract_variables", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update supplier: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("supplier not found")
	}
	return nil
}

func (r *SupplierRepository) List(ctx context.Context, filter supplier.ListFilter) ([]*supplier.Supplier, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.SupplierModel{}).Scopes(db.ForCompany(filter.CompanyID))
	if filter.SupplierID != "" {
		query = query.Where("id = ?", filter.SupplierID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR siret LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count suppliers: %w", err)
	}

	var list []*models.SupplierModel
	if err := query.Order("name ASC").Scopes(db.Paginate(filter.Page, filter.PageSize)).Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list suppliers: %w", err)
	}

	entities, err := r.mapper.ToEntities(list)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *SupplierRepository) ExistsBySIRET(ctx context.Context, companyID, siret string) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.SupplierModel{}).
		Where("company_id = ? AND siret = ?", companyID, siret).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check supplier SIRET: %w", err)
	}
	return count > 0, nil
}
