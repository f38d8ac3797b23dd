package models

import (
	"time"

	"github.com/prism-finance/prism/internal/shared/constants"
)

type UserModel struct {
	ID           string  `gorm:"primaryKey;size:32"`
	Email        string  `gorm:"size:255;not null;uniqueIndex:idx_users_email"`
	PasswordHash string  `gorm:"size:255;not null"`
	Name         string  `gorm:"size:100"`
	Surname      string  `gorm:"size:100"`
	Role         string  `gorm:"size:20;not null;index:idx_users_company_role"`
	CompanyID    *string `gorm:"size:32;index:idx_users_company_role"`
	SupplierID   *string `gorm:"size:32;index"`
	IsActive     bool    `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
