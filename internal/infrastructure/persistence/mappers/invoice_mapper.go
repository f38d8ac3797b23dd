package mappers

import (
	"fmt"

	"github.com/prism-finance/prism/internal/domain/invoice"
	vo "github.com/prism-finance/prism/internal/domain/shared/valueobjects"
	"github.com/prism-finance/prism/internal/infrastructure/persistence/models"
)

type InvoiceMapper interface {
	ToEntity(model *models.InvoiceModel) (*invoice.Invoice, error)
	ToModel(entity *invoice.Invoice) *models.InvoiceModel
	ToEntities(models []*models.InvoiceModel) ([]*invoice.Invoice, error)
}

type InvoiceMapperImpl struct{}

func NewInvoiceMapper() InvoiceMapper {
	return &InvoiceMapperImpl{}
}

func (m *InvoiceMapperImpl) ToEntity(model *models.InvoiceModel) (*invoice.Invoice, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := invoice.ReconstructInvoice(invoice.ReconstructParams{
		ID:              model.ID,
		CompanyID:       model.CompanyID,
		SupplierID:      model.SupplierID,
		PurchaseOrderID: stringValue(model.PurchaseOrderID),
		Number:          stringValue(model.Number),
		Amount:          vo.NewMoney(model.AmountCents, model.Currency),
		DueDate:         model.DueDate,
		Status:          invoice.Status(model.Status),
		Notes:           model.Notes,
		FileName:        model.FileName,
		FilePath:        model.FilePath,
		PaymentDate:     model.PaymentDate,
		ApprovedBy:      stringValue(model.ApprovedBy),
		ApprovedAt:      model.ApprovedAt,
		UploadedBy:      model.UploadedBy,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct invoice entity: %w", err)
	}
	return entity, nil
}

func (m *InvoiceMapperImpl) ToModel(entity *invoice.Invoice) *models.InvoiceModel {
	if entity == nil {
		return nil
	}
	return &models.InvoiceModel{
		ID:              entity.ID(),
		CompanyID:       entity.CompanyID(),
		SupplierID:      entity.SupplierID(),
		PurchaseOrderID: nullableString(entity.PurchaseOrderID()),
		Number:          nullableString(entity.Number()),
		AmountCents:     entity.Amount().AmountInCents(),
		Currency:        entity.Amount().Currency(),
		DueDate:         entity.DueDate(),
		Status:          entity.Status().String(),
		Notes:           entity.Notes(),
		FileName:        entity.FileName(),
		FilePath:        entity.FilePath(),
		PaymentDate:     entity.PaymentDate(),
		ApprovedBy:      nullableString(entity.ApprovedBy()),
		ApprovedAt:      entity.ApprovedAt(),
		UploadedBy:      entity.UploadedBy(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}
}

func (m *InvoiceMapperImpl) ToEntities(list []*models.InvoiceModel) ([]*invoice.Invoice, error) {
	out := make([]*invoice.Invoice, 0, len(list))
	for _, model := range list {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		out = append(out, entity)
	}
	return out, nil
}
