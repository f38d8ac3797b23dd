package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/prism-finance/prism/internal/domain/template"
	"github.com/prism-finance/prism/internal/infrastructure/persistence/mappers"
	"github.com/prism-finance/prism/internal/infrastructure/persistence/models"
	"github.com/prism-finance/prism/internal/shared/db"
)

type TemplateRepository struct {
	db     *gorm.DB
	mapper mappers.TemplateMapper
}

func NewTemplateRepository(db *gorm.DB) template.Repository {
	return &TemplateRepository{db: db, mapper: mappers.NewTemplateMapper()}
}

func (r *TemplateRepository) Create(ctx context.Context, t *template.Template) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.ToModel(t)).Error; err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}
	return nil
}

func (r *TemplateRepository) GetByID(ctx context.Context, id string) (*template.Template, error) {
	var model models.TemplateModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *TemplateRepository) Update(ctx context.Context, t *template.Template) error {
	model := r.mapper.ToModel(t)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.TemplateModel{}).
		Where("id = ?", model.ID).
		Select("name", "description", "file_name", "file_path", "variables", "validity_period_days", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update template: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("template not found")
	}
	return nil
}

// Delete soft deletes the template.
func (r *TemplateRepository) Delete(ctx context.Context, id string) error {
	result := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).Delete(&models.TemplateModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete template: %w", result.Error)
	}
	return nil
}

func (r *TemplateRepository) List(ctx context.Context, filter template.ListFilter) ([]*template.Template, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.TemplateModel{}).Scopes(db.ForCompany(filter.CompanyID))
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count templates: %w", err)
	}

	var list []*models.TemplateModel
	if err := query.Order("created_at DESC").Scopes(db.Paginate(filter.Page, filter.PageSize)).Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list templates: %w", err)
	}

	entities, err := r.mapper.ToEntities(list)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}
