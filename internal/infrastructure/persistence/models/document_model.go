package models

import (
	"time"

	"github.com/prism-finance/prism/internal/shared/constants"
)

type DocumentModel struct {
	ID              string  `gorm:"primaryKey;size:32"`
	CompanyID       string  `gorm:"size:32;not null;index"`
	SupplierID      string  `gorm:"size:32;not null;index:idx_documents_supplier_status"`
	Name            string  `gorm:"size:255;not null"`
	Category        string  `gorm:"size:64;index"`
	FileName        string  `gorm:"size:255;not null"`
	FilePath        string  `gorm:"size:512;not null"`
	Status          string  `gorm:"size:20;not null;index:idx_documents_supplier_status"`
	ValidationNotes string  `gorm:"type:text"`
	ValidatedBy     *string `gorm:"size:32"`
	ValidatedAt     *time.Time
	UploadedBy      string `gorm:"size:32"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (DocumentModel) TableName() string {
	return constants.TableDocuments
}
