package usecases

import (
	"context"
	"fmt"

	appnotification "github.com/prism-finance/prism/internal/application/notification"
	"github.com/prism-finance/prism/internal/domain/generalconditions"
	"github.com/prism-finance/prism/internal/domain/notification"
	"github.com/prism-finance/prism/internal/domain/supplier"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type SupplierReader interface {
	GetByID(ctx context.Context, id string) (*supplier.Supplier, error)
}

type Notifier interface {
	Dispatch(ctx context.Context, evt appnotification.Event)
}

// TransactionManager runs fn in a database transaction carried by ctx.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	targetTypeConditions = "general_conditions"
	targetTypeSupplier   = "supplier"
)

func loadConditions(ctx context.Context, repo generalconditions.Repository, log logger.Interface, identity *authorization.Identity, id string) (*generalconditions.GeneralConditions, error) {
	gc, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to load general conditions", "id", id, "error", err)
		return nil, errors.NewInternalError("failed to load general conditions")
	}
	if gc == nil || !identity.CanAccessCompany(gc.CompanyID()) {
		return nil, errors.NewNotFoundError("general conditions not found")
	}
	return gc, nil
}

// loadManaged is loadConditions restricted to admins of the owning company.
func loadManaged(ctx context.Context, repo generalconditions.Repository, log logger.Interface, identity *authorization.Identity, id string) (*generalconditions.GeneralConditions, error) {
	gc, err := loadConditions(ctx, repo, log, identity, id)
	if err != nil {
		return nil, err
	}
	if !identity.IsAdminFor(gc.CompanyID()) {
		return nil, errors.NewForbiddenError("only company admins can manage general conditions")
	}
	return gc, nil
}

func loadSupplier(ctx context.Context, suppliers SupplierReader, log logger.Interface, identity *authorization.Identity, supplierID string) (*supplier.Supplier, error) {
	s, err := suppliers.GetByID(ctx, supplierID)
	if err != nil {
		log.Errorw("failed to load supplier", "supplier_id", supplierID, "error", err)
		return nil, errors.NewInternalError("failed to load supplier")
	}
	if s == nil {
		return nil, errors.NewNotFoundError("supplier not found")
	}
	if !identity.CanAccessSupplier(s.ID(), s.CompanyID()) {
		return nil, errors.NewForbiddenError("access to this supplier is not allowed")
	}
	return s, nil
}

// activate makes gc the only active version of its company.
func activate(ctx context.Context, repo generalconditions.Repository, gc *generalconditions.GeneralConditions) error {
	return repo.DeactivateOthers(ctx, gc.CompanyID(), gc.ID())
}

func acceptanceRequiredEvent(gc *generalconditions.GeneralConditions) appnotification.Event {
	return appnotification.Event{
		Type:       notification.TypeGCAcceptanceRequired,
		Title:      "New general conditions",
		Message:    fmt.Sprintf("Version %s of the general conditions is in force. Please review and accept it.", gc.Version()),
		TargetID:   gc.ID(),
		TargetType: targetTypeConditions,
		CompanyID:  gc.CompanyID(),
		Audience:   appnotification.CompanySuppliers(gc.CompanyID()),
	}
}
