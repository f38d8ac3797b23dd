package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/prism-finance/prism/internal/shared/constants"
)

// TemplateModel is soft deleted so contracts keep a resolvable template id.
type TemplateModel struct {
	ID                 string `gorm:"primaryKey;size:32"`
	CompanyID          string `gorm:"size:32;not null;index"`
	Name               string `gorm:"size:200;not null"`
	Description        string `gorm:"type:text"`
	FileName           string `gorm:"size:255;not null"`
	FilePath           string `gorm:"size:512;not null"`
	Variables          datatypes.JSONSlice[string]
	ValidityPeriodDays *int
	CreatedBy          string `gorm:"size:32"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

func (TemplateModel) TableName() string {
	return constants.TableTemplates
}
