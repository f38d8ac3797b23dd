package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/prism-finance/prism/internal/shared/constants"
)

type SupplierModel struct {
	ID                string `gorm:"primaryKey;size:32"`
	CompanyID         string `gorm:"size:32;not null;uniqueIndex:idx_suppliers_company_siret"`
	Name              string `gorm:"size:200;not null"`
	SIRET             string `gorm:"column:siret;size:20;not null;uniqueIndex:idx_suppliers_company_siret"`
	VATNumber         string `gorm:"column:vat_number;size:32"`
	Profession        string `gorm:"size:100"`
	Address           string `gorm:"size:255"`
	PostalCode        string `gorm:"size:16"`
	City              string `gorm:"size:100"`
	Country           string `gorm:"size:100"`
	IBAN              string `gorm:"column:iban;size:42"`
	BIC               string `gorm:"column:bic;size:11"`
	Emails            datatypes.JSONSlice[string]
	Phone             string `gorm:"size:32"`
	Status            string `gorm:"size:20;not null;default:'active';index"`
	ContractVariables datatypes.JSONMap
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (SupplierModel) TableName() string {
	return constants.TableSuppliers
}
