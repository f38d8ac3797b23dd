package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/prism-finance/prism/internal/domain/document"
	"github.com/prism-finance/prism/internal/infrastructure/persistence/mappers"
	"github.com/prism-finance/prism/internal/infrastructure/persistence/models"
	"github.com/prism-finance/prism/internal/shared/db"
)

type DocumentRepository struct {
	db     *gorm.DB
	mapper mappers.DocumentMapper
}

func NewDocumentRepository(db *gorm.DB) document.Repository {
	return &DocumentRepository{db: db, mapper: mappers.NewDocumentMapper()}
}

func (r *DocumentRepository) Create(ctx context.Context, d *document.Document) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.ToModel(d)).Error; err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*document.Document, error) {
	var model models.DocumentModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

// Update persists the review fields.
func (r *DocumentRepository) Update(ctx context.Context, d *document.Document) error {
	model := r.mapper.ToModel(d)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.DocumentModel{}).
		Where("id = ?", model.ID).
		Select("name", "category", "status", "validation_notes", "validated_by", "validated_at", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update document: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("document not found")
	}
	return nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).Delete(&models.DocumentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) List(ctx context.Context, filter document.ListFilter) ([]*document.Document, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.DocumentModel{})
	if filter.SupplierID != "" {
		query = query.Where("supplier_id = ?", filter.SupplierID)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count documents: %w", err)
	}

	var list []*models.DocumentModel
	if err := query.Order("created_at DESC").Scopes(db.Paginate(filter.Page, filter.PageSize)).Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list documents: %w", err)
	}

	entities, err := r.mapper.ToEntities(list)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}
