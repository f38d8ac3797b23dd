package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/prism-finance/prism/internal/shared/constants"
)

// PurchaseOrderItem is the JSON shape of one order line.
type PurchaseOrderItem struct {
	Description    string  `json:"description"`
	Quantity       float64 `json:"quantity"`
	UnitPriceCents int64   `json:"unit_price_cents"`
	TaxRate        float64 `json:"tax_rate"`
}

type PurchaseOrderModel struct {
	ID               string `gorm:"primaryKey;size:32"`
	CompanyID        string `gorm:"size:32;not null;uniqueIndex:idx_purchase_orders_company_number"`
	SupplierID       string `gorm:"size:32;not null;index:idx_purchase_orders_supplier_status"`
	Number           string `gorm:"size:64;not null;uniqueIndex:idx_purchase_orders_company_number"`
	Items            datatypes.JSONSlice[PurchaseOrderItem]
	SubtotalCents    int64  `gorm:"not null;default:0"`
	TaxCents         int64  `gorm:"not null;default:0"`
	TotalCents       int64  `gorm:"not null;default:0"`
	Currency         string `gorm:"size:3;not null;default:'EUR'"`
	Notes            string `gorm:"type:text"`
	RequireSignature bool   `gorm:"not null;default:false"`
	DueDate          *time.Time
	Status           string `gorm:"size:20;not null;index:idx_purchase_orders_supplier_status"`
	SentAt           *time.Time
	SignedAt         *time.Time
	SignedBy         *string `gorm:"size:32"`
	CancelledAt      *time.Time
	CreatedBy        string `gorm:"size:32"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (PurchaseOrderModel) TableName() string {
	return constants.TablePurchaseOrders
}
