package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/prism-finance/prism/internal/domain/purchaseorder"
	"github.com/prism-finance/prism/internal/infrastructure/persistence/models"
)

type PurchaseOrderMapper interface {
	ToEntity(model *models.PurchaseOrderModel) (*purchaseorder.PurchaseOrder, error)
	ToModel(entity *purchaseorder.PurchaseOrder) *models.PurchaseOrderModel
	ToEntities(models []*models.PurchaseOrderModel) ([]*purchaseorder.PurchaseOrder, error)
	// TransitionColumns returns the only columns a status transition may write.
	TransitionColumns(entity *purchaseorder.PurchaseOrder) map[string]interface{}
}

type PurchaseOrderMapperImpl struct{}

func NewPurchaseOrderMapper() PurchaseOrderMapper {
	return &PurchaseOrderMapperImpl{}
}

func (m *PurchaseOrderMapperImpl) ToEntity(model *models.PurchaseOrderModel) (*purchaseorder.PurchaseOrder, error) {
	if model == nil {
		return nil, nil
	}
	items := make([]purchaseorder.Item, 0, len(model.Items))
	for _, it := range model.Items {
		items = append(items, purchaseorder.Item(it))
	}
	entity, err := purchaseorder.ReconstructPurchaseOrder(purchaseorder.ReconstructParams{
		ID:               model.ID,
		CompanyID:        model.CompanyID,
		SupplierID:       model.SupplierID,
		Number:           model.Number,
		Items:            items,
		Currency:         model.Currency,
		Notes:            model.Notes,
		RequireSignature: model.RequireSignature,
		DueDate:          model.DueDate,
		Status:           purchaseorder.Status(model.Status),
		SentAt:           model.SentAt,
		SignedAt:         model.SignedAt,
		SignedBy:         stringValue(model.SignedBy),
		CancelledAt:      model.CancelledAt,
		CreatedBy:        model.CreatedBy,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct purchase order entity: %w", err)
	}
	return entity, nil
}

func (m *PurchaseOrderMapperImpl) ToModel(entity *purchaseorder.PurchaseOrder) *models.PurchaseOrderModel {
	if entity == nil {
		return nil
	}
	items := make([]models.PurchaseOrderItem, 0, len(entity.Items()))
	for _, it := range entity.Items() {
		items = append(items, models.PurchaseOrderItem(it))
	}
	return &models.PurchaseOrderModel{
		ID:               entity.ID(),
		CompanyID:        entity.CompanyID(),
		SupplierID:       entity.SupplierID(),
		Number:           entity.Number(),
		Items:            datatypes.JSONSlice[models.PurchaseOrderItem](items),
		SubtotalCents:    entity.Subtotal().AmountInCents(),
		TaxCents:         entity.TaxAmount().AmountInCents(),
		TotalCents:       entity.Total().AmountInCents(),
		Currency:         entity.Currency(),
		Notes:            entity.Notes(),
		RequireSignature: entity.RequireSignature(),
		DueDate:          entity.DueDate(),
		Status:           entity.Status().String(),
		SentAt:           entity.SentAt(),
		SignedAt:         entity.SignedAt(),
		SignedBy:         nullableString(entity.SignedBy()),
		CancelledAt:      entity.CancelledAt(),
		CreatedBy:        entity.CreatedBy(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}
}

func (m *PurchaseOrderMapperImpl) ToEntities(list []*models.PurchaseOrderModel) ([]*purchaseorder.PurchaseOrder, error) {
	out := make([]*purchaseorder.PurchaseOrder, 0, len(list))
	for _, model := range list {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		out = append(out, entity)
	}
	return out, nil
}

func (m *PurchaseOrderMapperImpl) TransitionColumns(entity *purchaseorder.PurchaseOrder) map[string]interface{} {
	model := m.ToModel(entity)
	return map[string]interface{}{
		"status":       model.Status,
		"sent_at":      model.SentAt,
		"signed_at":    model.SignedAt,
		"signed_by":    model.SignedBy,
		"cancelled_at": model.CancelledAt,
		"updated_at":   model.UpdatedAt,
	}
}
