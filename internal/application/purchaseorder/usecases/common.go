package usecases

import (
	"context"
	"errors"
	"fmt"

	appnotification "github.com/prism-finance/prism/internal/application/notification"
	"github.com/prism-finance/prism/internal/domain/notification"
	"github.com/prism-finance/prism/internal/domain/purchaseorder"
	"github.com/prism-finance/prism/internal/domain/supplier"
	"github.com/prism-finance/prism/internal/shared/authorization"
	apperrors "github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type SupplierReader interface {
	GetByID(ctx context.Context, id string) (*supplier.Supplier, error)
}

type Notifier interface {
	Dispatch(ctx context.Context, evt appnotification.Event)
}

const targetTypePurchaseOrder = "purchase_order"

// loadOrder fetches an order the caller may see. Suppliers never see drafts.
func loadOrder(ctx context.Context, repo purchaseorder.Repository, log logger.Interface, identity *authorization.Identity, id string) (*purchaseorder.PurchaseOrder, error) {
	po, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to load purchase order", "id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to load purchase order")
	}
	if po == nil {
		return nil, apperrors.NewNotFoundError("purchase order not found")
	}
	if !identity.CanAccessSupplier(po.SupplierID(), po.CompanyID()) {
		return nil, apperrors.NewForbiddenError("access to this purchase order is not allowed")
	}
	if po.Status() == purchaseorder.StatusDraft && !identity.IsAdminFor(po.CompanyID()) {
		return nil, apperrors.NewNotFoundError("purchase order not found")
	}
	return po, nil
}

// applyTransition persists po conditionally on from. A lost race is a
// Conflict.
func applyTransition(ctx context.Context, repo purchaseorder.Repository, log logger.Interface, po *purchaseorder.PurchaseOrder, from purchaseorder.Status) error {
	err := repo.ApplyTransition(ctx, po, from)
	if err == nil {
		return nil
	}
	if errors.Is(err, purchaseorder.ErrConcurrentModification) {
		log.Warnw("purchase order changed concurrently", "id", po.ID(), "from", from, "to", po.Status())
		return apperrors.NewConflictError("purchase order was modified by another request")
	}
	log.Errorw("failed to update purchase order status", "id", po.ID(), "from", from, "to", po.Status(), "error", err)
	return apperrors.NewInternalError("failed to update purchase order")
}

func orderEvent(po *purchaseorder.PurchaseOrder, t notification.Type, title, message string, audience appnotification.Audience) appnotification.Event {
	return appnotification.Event{
		Type:       t,
		Title:      title,
		Message:    message,
		TargetID:   po.ID(),
		TargetType: targetTypePurchaseOrder,
		CompanyID:  po.CompanyID(),
		Audience:   audience,
	}
}

func sentEvent(po *purchaseorder.PurchaseOrder) appnotification.Event {
	message := fmt.Sprintf("You received purchase order %s for %s.", po.Number(), po.Total())
	if po.RequireSignature() {
		message += " Your signature is required."
	}
	return orderEvent(po, notification.TypePOCreated, "New purchase order", message,
		appnotification.SupplierUsers(po.SupplierID()))
}

func cancelledEvent(po *purchaseorder.PurchaseOrder) appnotification.Event {
	return orderEvent(po, notification.TypePOCancelled, "Purchase order cancelled",
		fmt.Sprintf("Purchase order %s has been cancelled.", po.Number()),
		appnotification.SupplierUsers(po.SupplierID()))
}

func signedEvent(po *purchaseorder.PurchaseOrder, supplierName string) appnotification.Event {
	return orderEvent(po, notification.TypePOSigned, "Purchase order signed",
		fmt.Sprintf("%s signed purchase order %s.", supplierName, po.Number()),
		appnotification.CompanyAdmins(po.CompanyID()))
}
