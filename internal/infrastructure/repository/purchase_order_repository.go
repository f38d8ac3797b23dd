package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/prism-finance/prism/internal/domain/purchaseorder"
	"github.com/prism-finance/prism/internal/infrastructure/persistence/mappers"
	"github.com/prism-finance/prism/internal/infrastructure/persistence/models"
	"github.com/prism-finance/prism/internal/shared/db"
)

type PurchaseOrderRepository struct {
	db     *gorm.DB
	mapper mappers.PurchaseOrderMapper
}

func NewPurchaseOrderRepository(db *gorm.DB) purchaseorder.Repository {
	return &PurchaseOrderRepository{db: db, mapper: mappers.NewPurchaseOrderMapper()}
}

func (r *PurchaseOrderRepository) Create(ctx context.Context, po *purchaseorder.PurchaseOrder) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.ToModel(po)).Error; err != nil {
		return fmt.Errorf("failed to create purchase order: %w", err)
	}
	return nil
}

func (r *PurchaseOrderRepository) GetByID(ctx context.Context, id string) (*purchaseorder.PurchaseOrder, error) {
	var model models.PurchaseOrderModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get purchase order: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

// Update saves a draft's editable fields. It is a no-op on any other status.
func (r *PurchaseOrderRepository) Update(ctx context.Context, po *purchaseorder.PurchaseOrder) error {
	model := r.mapper.ToModel(po)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.PurchaseOrderModel{}).
		Where("id = ? AND status = ?", model.ID, purchaseorder.StatusDraft.String()).
		Select("number", "items", "subtotal_cents", "tax_cents", "total_cents", "currency",
			"notes", "require_signature", "due_date", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update purchase order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return purchaseorder.ErrConcurrentModification
	}
	return nil
}

func (r *PurchaseOrderRepository) ApplyTransition(ctx context.Context, po *purchaseorder.PurchaseOrder, from purchaseorder.Status) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.PurchaseOrderModel{}).
		Where("id = ? AND status = ?", po.ID(), from.String()).
		Updates(r.mapper.TransitionColumns(po))
	if result.Error != nil {
		return fmt.Errorf("failed to update purchase order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return purchaseorder.ErrConcurrentModification
	}
	return nil
}

func (r *PurchaseOrderRepository) List(ctx context.Context, filter purchaseorder.ListFilter) ([]*purchaseorder.PurchaseOrder, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.PurchaseOrderModel{}).Scopes(db.ForCompany(filter.CompanyID))
	if filter.SupplierID != "" {
		query = query.Where("supplier_id = ?", filter.SupplierID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.HideDrafts {
		query = query.Where("status <> ?", purchaseorder.StatusDraft.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count purchase orders: %w", err)
	}

	var list []*models.PurchaseOrderModel
	if err := query.Order("created_at DESC").Scopes(db.Paginate(filter.Page, filter.PageSize)).Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list purchase orders: %w", err)
	}

	entities, err := r.mapper.ToEntities(list)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *PurchaseOrderRepository) ExistsByNumber(ctx context.Context, companyID, number string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.PurchaseOrderModel{}).
		Where("company_id = ? AND number = ?", companyID, number).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check purchase order number: %w", err)
	}
	return count > 0, nil
}
