package dto

import (
	"time"

	"github.com/prism-finance/prism/internal/domain/invoice"
	"github.com/prism-finance/prism/internal/shared/mapper"
)

type InvoiceDTO struct {
	ID              string     `json:"id"`
	CompanyID       string     `json:"company_id"`
	SupplierID      string     `json:"supplier_id"`
	PurchaseOrderID string     `json:"purchase_order_id,omitempty"`
	Number          string     `json:"number,omitempty"`
	AmountCents     int64      `json:"amount_cents"`
	Currency        string     `json:"currency"`
	DueDate         time.Time  `json:"due_date"`
	Status          string     `json:"status"`
	StatusLabel     string     `json:"status_label"`
	Notes           string     `json:"notes,omitempty"`
	FileName        string     `json:"file_name"`
	PaymentDate     *time.Time `json:"payment_date,omitempty"`
	ApprovedBy      string     `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	UploadedBy      string     `json:"uploaded_by"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type UploadInvoiceRequest struct {
	SupplierID      string
	PurchaseOrderID string
	Number          string
	AmountCents     int64
	Currency        string
	DueDate         time.Time
	Notes           string
	FileName        string
	Data            []byte
}

type UpdateInvoiceStatusRequest struct {
	Status      string     `json:"status" binding:"required,oneof=pending approved rejected paid"`
	Notes       *string    `json:"notes" binding:"omitempty,max=2000"`
	PaymentDate *time.Time `json:"payment_date"`
}

type ListInvoicesRequest struct {
	SupplierID      string
	PurchaseOrderID string
	Status          string
	Page            int
	PageSize        int
}

type ListInvoicesResponse struct {
	Items    []*InvoiceDTO `json:"items"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

type InvoiceFile struct {
	FileName string
	Data     []byte
}

func ToInvoiceDTO(i *invoice.Invoice) *InvoiceDTO {
	if i == nil {
		return nil
	}
	return &InvoiceDTO{
		ID:              i.ID(),
		CompanyID:       i.CompanyID(),
		SupplierID:      i.SupplierID(),
		PurchaseOrderID: i.PurchaseOrderID(),
		Number:          i.Number(),
		AmountCents:     i.Amount().AmountInCents(),
		Currency:        i.Amount().Currency(),
		DueDate:         i.DueDate(),
		Status:          string(i.Status()),
		StatusLabel:     i.Label(),
		Notes:           i.Notes(),
		FileName:        i.FileName(),
		PaymentDate:     i.PaymentDate(),
		ApprovedBy:      i.ApprovedBy(),
		ApprovedAt:      i.ApprovedAt(),
		UploadedBy:      i.UploadedBy(),
		CreatedAt:       i.CreatedAt(),
		UpdatedAt:       i.UpdatedAt(),
	}
}

func ToInvoiceDTOList(items []*invoice.Invoice) []*InvoiceDTO {
	out := mapper.MapSlice(items, ToInvoiceDTO)
	if out == nil {
		return []*InvoiceDTO{}
	}
	return out
}
