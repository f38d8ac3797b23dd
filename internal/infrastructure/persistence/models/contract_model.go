package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/prism-finance/prism/internal/shared/constants"
)

// ContractModel stores both signatures inline. Content holds the rendered
// HTML base64 encoded.
type ContractModel struct {
	ID                    string  `gorm:"primaryKey;size:32"`
	CompanyID             string  `gorm:"size:32;not null;index:idx_contracts_company_status"`
	TemplateID            string  `gorm:"size:32;not null;index"`
	SupplierID            string  `gorm:"size:32;not null;index"`
	Name                  string  `gorm:"size:255;not null"`
	Variables             datatypes.JSONMap
	Content               string  `gorm:"type:longtext;not null"`
	FilePath              string  `gorm:"size:512;not null"`
	Status                string  `gorm:"size:20;not null;index:idx_contracts_company_status;index:idx_contracts_status_expiry"`
	SupplierSignerName    *string `gorm:"size:100"`
	SupplierSignerSurname *string `gorm:"size:100"`
	SupplierSignerID      *string `gorm:"size:32"`
	SupplierSignedAt      *time.Time
	AdminSignerName       *string `gorm:"size:100"`
	AdminSignerSurname    *string `gorm:"size:100"`
	AdminSignerID         *string `gorm:"size:32"`
	AdminSignedAt         *time.Time
	ExpiryDate            *time.Time `gorm:"index:idx_contracts_status_expiry"`
	CreatedBy             string     `gorm:"size:32"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (ContractModel) TableName() string {
	return constants.TableContracts
}
