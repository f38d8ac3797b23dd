package models

import (
	"time"

	"github.com/prism-finance/prism/internal/shared/constants"
)

type InvoiceModel struct {
	ID              string    `gorm:"primaryKey;size:32"`
	CompanyID       string    `gorm:"size:32;not null;index"`
	SupplierID      string    `gorm:"size:32;not null;index:idx_invoices_supplier_status;uniqueIndex:idx_invoices_supplier_number"`
	PurchaseOrderID *string   `gorm:"size:32;index"`
	Number          *string   `gorm:"size:64;uniqueIndex:idx_invoices_supplier_number"`
	AmountCents     int64     `gorm:"not null"`
	Currency        string    `gorm:"size:3;not null;default:'EUR'"`
	DueDate         time.Time `gorm:"not null"`
	Status          string    `gorm:"size:20;not null;index:idx_invoices_supplier_status"`
	Notes           string    `gorm:"type:text"`
	FileName        string    `gorm:"size:255;not null"`
	FilePath        string    `gorm:"size:512;not null"`
	PaymentDate     *time.Time
	ApprovedBy      *string `gorm:"size:32"`
	ApprovedAt      *time.Time
	UploadedBy      string `gorm:"size:32"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (InvoiceModel) TableName() string {
	return constants.TableInvoices
}
