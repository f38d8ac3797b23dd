package notification

import (
	"fmt"
	"time"

	"github.com/prism-finance/prism/internal/shared/id"
)

// Notification is a per-user record of a business event.
type Notification struct {
	id               string
	userID           string
	companyID        string
	notificationType Type
	title            string
	message          string
	targetID         string
	targetType       string
	read             bool
	readAt           *time.Time
	createdAt        time.Time
}

type NewNotificationParams struct {
	UserID     string
	CompanyID  string
	Type       Type
	Title      string
	Message    string
	TargetID   string
	TargetType string
	Now        time.Time
}

func NewNotification(p NewNotificationParams) (*Notification, error) {
	if p.UserID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if !p.Type.IsValid() {
		return nil, fmt.Errorf("invalid notification type")
	}
	if len(p.Title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(p.Title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(p.Message) > 5000 {
		return nil, fmt.Errorf("message exceeds maximum length of 5000 characters")
	}

	notificationID, err := id.NewNotificationID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate notification ID: %w", err)
	}

	return &Notification{
		id:               notificationID,
		userID:           p.UserID,
		companyID:        p.CompanyID,
		notificationType: p.Type,
		title:            p.Title,
		message:          p.Message,
		targetID:         p.TargetID,
		targetType:       p.TargetType,
		createdAt:        p.Now.UTC(),
	}, nil
}

type ReconstructParams struct {
	ID         string
	UserID     string
	CompanyID  string
	Type       Type
	Title      string
	Message    string
	TargetID   string
	TargetType string
	Read       bool
	ReadAt     *time.Time
	CreatedAt  time.Time
}

func ReconstructNotification(p ReconstructParams) (*Notification, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("notification ID cannot be empty")
	}
	if !p.Type.IsValid() {
		return nil, fmt.Errorf("invalid notification type")
	}
	return &Notification{
		id:               p.ID,
		userID:           p.UserID,
		companyID:        p.CompanyID,
		notificationType: p.Type,
		title:            p.Title,
		message:          p.Message,
		targetID:         p.TargetID,
		targetType:       p.TargetType,
		read:             p.Read,
		readAt:           p.ReadAt,
		createdAt:        p.CreatedAt,
	}, nil
}

func (n *Notification) ID() string           { return n.id }
func (n *Notification) UserID() string       { return n.userID }
func (n *Notification) CompanyID() string    { return n.companyID }
func (n *Notification) Type() Type           { return n.notificationType }
func (n *Notification) Title() string        { return n.title }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) TargetID() string     { return n.targetID }
func (n *Notification) TargetType() string   { return n.targetType }
func (n *Notification) IsRead() bool         { return n.read }
func (n *Notification) ReadAt() *time.Time   { return n.readAt }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

// MarkAsRead is a no-op on an already read notification.
func (n *Notification) MarkAsRead(now time.Time) {
	if n.read {
		return
	}
	at := now.UTC()
	n.read = true
	n.readAt = &at
}
