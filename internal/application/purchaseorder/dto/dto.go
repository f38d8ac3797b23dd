package dto

import (
	"time"

	"github.com/prism-finance/prism/internal/domain/purchaseorder"
	"github.com/prism-finance/prism/internal/shared/mapper"
)

type ItemDTO struct {
	Description    string  `json:"description" binding:"required,max=500"`
	Quantity       float64 `json:"quantity" binding:"gt=0"`
	UnitPriceCents int64   `json:"unit_price_cents" binding:"gte=0"`
	TaxRate        float64 `json:"tax_rate" binding:"gte=0,lte=100"`
}

type PurchaseOrderDTO struct {
	ID               string     `json:"id"`
	CompanyID        string     `json:"company_id"`
	SupplierID       string     `json:"supplier_id"`
	Number           string     `json:"number"`
	Items            []ItemDTO  `json:"items"`
	Currency         string     `json:"currency"`
	SubtotalCents    int64      `json:"subtotal_cents"`
	TaxCents         int64      `json:"tax_cents"`
	TotalCents       int64      `json:"total_cents"`
	Notes            string     `json:"notes,omitempty"`
	RequireSignature bool       `json:"require_signature"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	Status           string     `json:"status"`
	SentAt           *time.Time `json:"sent_at,omitempty"`
	SignedAt         *time.Time `json:"signed_at,omitempty"`
	SignedBy         string     `json:"signed_by,omitempty"`
	CancelledAt      *time.Time `json:"cancelled_at,omitempty"`
	CreatedBy        string     `json:"created_by"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type CreatePurchaseOrderRequest struct {
	SupplierID       string     `json:"supplier_id" binding:"required"`
	Number           string     `json:"number" binding:"required,max=64"`
	Items            []ItemDTO  `json:"items" binding:"required,min=1,dive"`
	Currency         string     `json:"currency" binding:"omitempty,len=3"`
	Notes            string     `json:"notes" binding:"omitempty,max=2000"`
	RequireSignature bool       `json:"require_signature"`
	DueDate          *time.Time `json:"due_date"`
}

type UpdatePurchaseOrderRequest struct {
	Number           *string    `json:"number" binding:"omitempty,max=64"`
	Items            []ItemDTO  `json:"items" binding:"omitempty,min=1,dive"`
	Currency         *string    `json:"currency" binding:"omitempty,len=3"`
	Notes            *string    `json:"notes" binding:"omitempty,max=2000"`
	RequireSignature *bool      `json:"require_signature"`
	DueDate          *time.Time `json:"due_date"`
}

type ListPurchaseOrdersRequest struct {
	SupplierID string
	Status     string
	Page       int
	PageSize   int
}

type ListPurchaseOrdersResponse struct {
	Items    []*PurchaseOrderDTO `json:"items"`
	Total    int64               `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
}

func ToItems(in []ItemDTO) []purchaseorder.Item {
	if in == nil {
		return nil
	}
	out := make([]purchaseorder.Item, 0, len(in))
	for _, it := range in {
		out = append(out, purchaseorder.Item(it))
	}
	return out
}

func ToPurchaseOrderDTO(po *purchaseorder.PurchaseOrder) *PurchaseOrderDTO {
	if po == nil {
		return nil
	}
	items := make([]ItemDTO, 0, len(po.Items()))
	for _, it := range po.Items() {
		items = append(items, ItemDTO(it))
	}
	return &PurchaseOrderDTO{
		ID:               po.ID(),
		CompanyID:        po.CompanyID(),
		SupplierID:       po.SupplierID(),
		Number:           po.Number(),
		Items:            items,
		Currency:         po.Currency(),
		SubtotalCents:    po.Subtotal().AmountInCents(),
		TaxCents:         po.TaxAmount().AmountInCents(),
		TotalCents:       po.Total().AmountInCents(),
		Notes:            po.Notes(),
		RequireSignature: po.RequireSignature(),
		DueDate:          po.DueDate(),
		Status:           po.Status().String(),
		SentAt:           po.SentAt(),
		SignedAt:         po.SignedAt(),
		SignedBy:         po.SignedBy(),
		CancelledAt:      po.CancelledAt(),
		CreatedBy:        po.CreatedBy(),
		CreatedAt:        po.CreatedAt(),
		UpdatedAt:        po.UpdatedAt(),
	}
}

func ToPurchaseOrderDTOList(items []*purchaseorder.PurchaseOrder) []*PurchaseOrderDTO {
	out := mapper.MapSlice(items, ToPurchaseOrderDTO)
	if out == nil {
		return []*PurchaseOrderDTO{}
	}
	return out
}
