package models

import (
	"time"

	"github.com/prism-finance/prism/internal/shared/constants"
)

type NotificationModel struct {
	ID         string `gorm:"primaryKey;size:32"`
	UserID     string `gorm:"size:32;not null;index:idx_user_read"`
	CompanyID  string `gorm:"size:32;index"`
	Type       string `gorm:"size:50;not null"`
	Title      string `gorm:"size:255;not null"`
	Message    string `gorm:"type:text;not null"`
	TargetID   string `gorm:"size:32"`
	TargetType string `gorm:"size:32"`
	IsRead     bool   `gorm:"not null;index:idx_user_read"`
	ReadAt     *time.Time
	CreatedAt  time.Time `gorm:"index"`
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
