package notification

import (
	"context"

	"github.com/prism-finance/prism/internal/domain/notification"
	"github.com/prism-finance/prism/internal/domain/shared/events"
	"github.com/prism-finance/prism/internal/domain/user"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/biztime"
	"github.com/prism-finance/prism/internal/shared/logger"
)

// Audience names the groups of users an event is addressed to.
// Empty fields select nobody.
type Audience struct {
	AdminsOfCompany    string
	UsersOfSupplier    string
	SuppliersOfCompany string
}

func CompanyAdmins(companyID string) Audience {
	return Audience{AdminsOfCompany: companyID}
}

func SupplierUsers(supplierID string) Audience {
	return Audience{UsersOfSupplier: supplierID}
}

// CompanySuppliers selects every supplier user working for companyID.
func CompanySuppliers(companyID string) Audience {
	return Audience{SuppliersOfCompany: companyID}
}

// And merges two audiences. Fields set on other win.
func (a Audience) And(other Audience) Audience {
	if other.AdminsOfCompany != "" {
		a.AdminsOfCompany = other.AdminsOfCompany
	}
	if other.UsersOfSupplier != "" {
		a.UsersOfSupplier = other.UsersOfSupplier
	}
	if other.SuppliersOfCompany != "" {
		a.SuppliersOfCompany = other.SuppliersOfCompany
	}
	return a
}

// Event describes something users should hear about.
type Event struct {
	Type       notification.Type
	Title      string
	Message    string
	TargetID   string
	TargetType string
	CompanyID  string
	Audience   Audience
}

// RecipientFinder is the slice of the user repository the dispatcher needs.
type RecipientFinder interface {
	FindActive(ctx context.Context, filter user.ListFilter) ([]*user.User, error)
}

// Dispatcher turns events into per-user notifications. It never fails the
// caller: every error is logged and dropped.
type Dispatcher struct {
	users     RecipientFinder
	repo      notification.Repository
	publisher events.EventPublisher
	logger    logger.Interface
}

// NewDispatcher creates a dispatcher. publisher may be nil, in which case
// no notification.created events are emitted.
func NewDispatcher(
	users RecipientFinder,
	repo notification.Repository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *Dispatcher {
	return &Dispatcher{
		users:     users,
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, evt Event) {
	recipients := d.resolveAudience(ctx, evt.Audience)
	if len(recipients) == 0 {
		d.logger.Debugw("no recipients for notification", "type", evt.Type, "target_id", evt.TargetID)
		return
	}

	now := biztime.NowUTC()
	records := make([]*notification.Notification, 0, len(recipients))
	owners := make(map[string]*user.User, len(recipients))

	for _, u := range recipients {
		n, err := notification.NewNotification(notification.NewNotificationParams{
			UserID:     u.ID(),
			CompanyID:  evt.CompanyID,
			Type:       evt.Type,
			Title:      evt.Title,
			Message:    evt.Message,
			TargetID:   evt.TargetID,
			TargetType: evt.TargetType,
			Now:        now,
		})
		if err != nil {
			d.logger.Warnw("failed to build notification", "type", evt.Type, "user_id", u.ID(), "error", err)
			continue
		}
		records = append(records, n)
		owners[n.ID()] = u
	}

	if len(records) == 0 {
		return
	}

	if err := d.repo.BulkCreate(ctx, records); err != nil {
		d.logger.Errorw("failed to store notifications",
			"type", evt.Type,
			"target_id", evt.TargetID,
			"count", len(records),
			"error", err,
		)
		return
	}

	d.logger.Infow("notifications dispatched", "type", evt.Type, "target_id", evt.TargetID, "count", len(records))

	if d.publisher == nil {
		return
	}
	for _, n := range records {
		u := owners[n.ID()]
		if err := d.publisher.Publish(notification.NewCreatedEvent(n, u.Email(), u.FullName())); err != nil {
			d.logger.Warnw("failed to publish notification event", "notification_id", n.ID(), "error", err)
		}
	}
}

func (d *Dispatcher) resolveAudience(ctx context.Context, a Audience) []*user.User {
	var filters []user.ListFilter
	if a.AdminsOfCompany != "" {
		role := authorization.RoleAdmin
		filters = append(filters, user.ListFilter{CompanyID: a.AdminsOfCompany, Role: &role})
	}
	if a.UsersOfSupplier != "" {
		role := authorization.RoleSupplier
		filters = append(filters, user.ListFilter{SupplierID: a.UsersOfSupplier, Role: &role})
	}
	if a.SuppliersOfCompany != "" {
		role := authorization.RoleSupplier
		filters = append(filters, user.ListFilter{CompanyID: a.SuppliersOfCompany, Role: &role})
	}

	seen := make(map[string]struct{})
	var out []*user.User
	for _, f := range filters {
		users, err := d.users.FindActive(ctx, f)
		if err != nil {
			d.logger.Errorw("failed to resolve notification audience",
				"company_id", f.CompanyID,
				"supplier_id", f.SupplierID,
				"error", err,
			)
			continue
		}
		for _, u := range users {
			if _, dup := seen[u.ID()]; dup {
				continue
			}
			seen[u.ID()] = struct{}{}
			out = append(out, u)
		}
	}
	return out
}
