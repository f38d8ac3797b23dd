package models

import (
	"time"

	"github.com/prism-finance/prism/internal/shared/constants"
)

type CompanyModel struct {
	ID        string `gorm:"primaryKey;size:32"`
	Name      string `gorm:"size:200;not null"`
	SIRET     string `gorm:"column:siret;size:20;not null;uniqueIndex:idx_companies_siret"`
	Address   string `gorm:"size:255"`
	IsActive  bool   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CompanyModel) TableName() string {
	return constants.TableCompanies
}
