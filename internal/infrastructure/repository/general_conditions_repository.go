package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/prism-finance/prism/internal/domain/generalconditions"
	"github.com/prism-finance/prism/internal/infrastructure/persistence/mappers"
	"github.com/prism-finance/prism/internal/infrastructure/persistence/models"
	"github.com/prism-finance/prism/internal/shared/db"
)

type GeneralConditionsRepository struct {
	db     *gorm.DB
	mapper mappers.GeneralConditionsMapper
}

func NewGeneralConditionsRepository(db *gorm.DB) generalconditions.Repository {
	return &GeneralConditionsRepository{db: db, mapper: mappers.NewGeneralConditionsMapper()}
}

func (r *GeneralConditionsRepository) Create(ctx context.Context, gc *generalconditions.GeneralConditions) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.ToModel(gc)).Error; err != nil {
		return fmt.Errorf("failed to create general conditions: %w", err)
	}
	return nil
}

func (r *GeneralConditionsRepository) GetByID(ctx context.Context, id string) (*generalconditions.GeneralConditions, error) {
	var model models.GeneralConditionsModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get general conditions: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *GeneralConditionsRepository) Update(ctx context.Context, gc *generalconditions.GeneralConditions) error {
	model := r.mapper.ToModel(gc)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.GeneralConditionsModel{}).
		Where("id = ?", model.ID).
		Select("version", "content", "is_active", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update general conditions: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("general conditions not found")
	}
	return nil
}

func (r *GeneralConditionsRepository) Delete(ctx context.Context, id string) error {
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).Delete(&models.GeneralConditionsModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete general conditions: %w", err)
	}
	return nil
}

func (r *GeneralConditionsRepository) List(ctx context.Context, filter generalconditions.ListFilter) ([]*generalconditions.GeneralConditions, error) {
	query := db.GetTxFromContext(ctx, r.db).Scopes(db.ForCompany(filter.CompanyID))
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	var list []*models.GeneralConditionsModel
	if err := query.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list general conditions: %w", err)
	}
	return r.mapper.ToEntities(list)
}

func (r *GeneralConditionsRepository) GetActive(ctx context.Context, companyID string) (*generalconditions.GeneralConditions, error) {
	var model models.GeneralConditionsModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("company_id = ? AND is_active = ?", companyID, true).
		Order("updated_at DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active general conditions: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *GeneralConditionsRepository) DeactivateOthers(ctx context.Context, companyID, keepID string) error {
	err := db.GetTxFromContext(ctx, r.db).Model(&models.GeneralConditionsModel{}).
		Where("company_id = ? AND is_active = ? AND id <> ?", companyID, true, keepID).
		Update("is_active", false).Error
	if err != nil {
		return fmt.Errorf("failed to deactivate general conditions: %w", err)
	}
	return nil
}

type AcceptanceRepository struct {
	db     *gorm.DB
	mapper mappers.GeneralConditionsMapper
}

func NewAcceptanceRepository(db *gorm.DB) generalconditions.AcceptanceRepository {
	return &AcceptanceRepository{db: db, mapper: mappers.NewGeneralConditionsMapper()}
}

func (r *AcceptanceRepository) Create(ctx context.Context, a *generalconditions.Acceptance) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.AcceptanceToModel(a)).Error; err != nil {
		return fmt.Errorf("failed to create acceptance: %w", err)
	}
	return nil
}

func (r *AcceptanceRepository) Find(ctx context.Context, supplierID, conditionsID string) (*generalconditions.Acceptance, error) {
	var model models.AcceptanceModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("supplier_id = ? AND conditions_id = ?", supplierID, conditionsID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get acceptance: %w", err)
	}
	return r.mapper.AcceptanceToEntity(&model), nil
}

func (r *AcceptanceRepository) ListByConditions(ctx context.Context, conditionsID string) ([]*generalconditions.Acceptance, error) {
	var list []*models.AcceptanceModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("conditions_id = ?", conditionsID).
		Order("accepted_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list acceptances: %w", err)
	}
	out := make([]*generalconditions.Acceptance, 0, len(list))
	for _, m := range list {
		out = append(out, r.mapper.AcceptanceToEntity(m))
	}
	return out, nil
}

func (r *AcceptanceRepository) CountByConditions(ctx context.Context, conditionsID string) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.AcceptanceModel{}).
		Where("conditions_id = ?", conditionsID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count acceptances: %w", err)
	}
	return count, nil
}
