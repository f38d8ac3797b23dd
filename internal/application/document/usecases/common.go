package usecases

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/google/uuid"

	appnotification "github.com/prism-finance/prism/internal/application/notification"
	"github.com/prism-finance/prism/internal/domain/document"
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

const targetTypeDocument = "document"

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func documentFileKey(supplierID, fileName string) string {
	base := unsafeFileChars.ReplaceAllString(filepath.Base(fileName), "_")
	return fmt.Sprintf("documents/%s/%s_%s", supplierID, uuid.NewString(), base)
}

// loadSupplier fetches the supplier owning the documents and checks access.
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

// loadDocument fetches a document that belongs to supplierID.
func loadDocument(ctx context.Context, repo document.Repository, log logger.Interface, supplierID, id string) (*document.Document, error) {
	d, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to load document", "id", id, "error", err)
		return nil, errors.NewInternalError("failed to load document")
	}
	if d == nil || d.SupplierID() != supplierID {
		return nil, errors.NewNotFoundError("document not found")
	}
	return d, nil
}
