package usecases

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/google/uuid"

	appnotification "github.com/prism-finance/prism/internal/application/notification"
	"github.com/prism-finance/prism/internal/domain/invoice"
	"github.com/prism-finance/prism/internal/domain/purchaseorder"
	"github.com/prism-finance/prism/internal/domain/supplier"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type SupplierReader interface {
	GetByID(ctx context.Context, id string) (*supplier.Supplier, error)
}

type PurchaseOrderReader interface {
	GetByID(ctx context.Context, id string) (*purchaseorder.PurchaseOrder, error)
}

// ConditionsChecker reports whether a supplier accepted the active general
// conditions of its company. A company without active conditions counts
// as accepted.
type ConditionsChecker interface {
	AcceptedActive(ctx context.Context, companyID, supplierID string) (bool, error)
}

type Notifier interface {
	Dispatch(ctx context.Context, evt appnotification.Event)
}

const targetTypeInvoice = "invoice"

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func invoiceFileKey(supplierID, fileName string) string {
	base := unsafeFileChars.ReplaceAllString(filepath.Base(fileName), "_")
	return fmt.Sprintf("invoices/%s/%s_%s", supplierID, uuid.NewString(), base)
}

// displayName is how an invoice is referred to in notifications.
func displayName(inv *invoice.Invoice) string {
	if inv.Number() != "" {
		return inv.Number()
	}
	return inv.FileName()
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

// loadInvoice fetches an invoice and checks the caller may see it.
func loadInvoice(ctx context.Context, repo invoice.Repository, log logger.Interface, identity *authorization.Identity, id string) (*invoice.Invoice, error) {
	inv, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to load invoice", "id", id, "error", err)
		return nil, errors.NewInternalError("failed to load invoice")
	}
	if inv == nil {
		return nil, errors.NewNotFoundError("invoice not found")
	}
	if !identity.CanAccessSupplier(inv.SupplierID(), inv.CompanyID()) {
		return nil, errors.NewForbiddenError("access to this invoice is not allowed")
	}
	return inv, nil
}
