package models

import (
	"time"

	"github.com/prism-finance/prism/internal/shared/constants"
)

type GeneralConditionsModel struct {
	ID        string `gorm:"primaryKey;size:32"`
	CompanyID string `gorm:"size:32;not null;index:idx_general_conditions_company_active"`
	Version   string `gorm:"size:64;not null"`
	Content   string `gorm:"type:longtext;not null"`
	IsActive  bool   `gorm:"not null;default:false;index:idx_general_conditions_company_active"`
	CreatedBy string `gorm:"size:32"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (GeneralConditionsModel) TableName() string {
	return constants.TableConditions
}

type AcceptanceModel struct {
	ID           string    `gorm:"primaryKey;size:32"`
	ConditionsID string    `gorm:"size:32;not null;uniqueIndex:idx_gc_acceptances_supplier_conditions;index"`
	SupplierID   string    `gorm:"size:32;not null;uniqueIndex:idx_gc_acceptances_supplier_conditions"`
	CompanyID    string    `gorm:"size:32;not null;index"`
	AcceptedBy   string    `gorm:"size:32;not null"`
	IPAddress    string    `gorm:"column:ip_address;size:64"`
	AcceptedAt   time.Time `gorm:"not null"`
}

func (AcceptanceModel) TableName() string {
	return constants.TableAcceptances
}
