package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/prism-finance/prism/internal/domain/invoice"
	"github.com/prism-finance/prism/internal/infrastructure/persistence/mappers"
	"github.com/prism-finance/prism/internal/infrastructure/persistence/models"
	"github.com/prism-finance/prism/internal/shared/db"
)

type InvoiceRepository struct {
	db     *gorm.DB
	mapper mappers.InvoiceMapper
}

func NewInvoiceRepository(db *gorm.DB) invoice.Repository {
	return &InvoiceRepository{db: db, mapper: mappers.NewInvoiceMapper()}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.ToModel(inv)).Error; err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*invoice.Invoice, error) {
	var model models.InvoiceModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

// Update persists the review fields. Amount, file and links are immutable.
func (r *InvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	model := r.mapper.ToModel(inv)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.InvoiceModel{}).
		Where("id = ?", model.ID).
		Select("status", "notes", "payment_date", "approved_by", "approved_at", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update invoice: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("invoice not found")
	}
	return nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).Delete(&models.InvoiceModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepository) List(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.InvoiceModel{}).Scopes(db.ForCompany(filter.CompanyID))
	if filter.SupplierID != "" {
		query = query.Where("supplier_id = ?", filter.SupplierID)
	}
	if filter.PurchaseOrderID != "" {
		query = query.Where("purchase_order_id = ?", filter.PurchaseOrderID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	var list []*models.InvoiceModel
	if err := query.Order("created_at DESC").Scopes(db.Paginate(filter.Page, filter.PageSize)).Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}

	entities, err := r.mapper.ToEntities(list)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *InvoiceRepository) ExistsByNumber(ctx context.Context, supplierID, number string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.InvoiceModel{}).
		Where("supplier_id = ? AND number = ?", supplierID, number).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check invoice number: %w", err)
	}
	return count > 0, nil
}
