package usecases

import (
	"context"
	"fmt"

	"github.com/prism-finance/prism/internal/application/common"
	"github.com/prism-finance/prism/internal/application/invoice/dto"
	appnotification "github.com/prism-finance/prism/internal/application/notification"
	"github.com/prism-finance/prism/internal/domain/invoice"
	"github.com/prism-finance/prism/internal/domain/notification"
	vo "github.com/prism-finance/prism/internal/domain/shared/valueobjects"
	"github.com/prism-finance/prism/internal/domain/supplier"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/biztime"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type UploadInvoiceUseCase struct {
	repo       invoice.Repository
	suppliers  SupplierReader
	orders     PurchaseOrderReader
	conditions ConditionsChecker
	store      common.BlobStore
	notifier   Notifier
	logger     logger.Interface
}

func NewUploadInvoiceUseCase(
	repo invoice.Repository,
	suppliers SupplierReader,
	orders PurchaseOrderReader,
	conditions ConditionsChecker,
	store common.BlobStore,
	notifier Notifier,
	logger logger.Interface,
) *UploadInvoiceUseCase {
	return &UploadInvoiceUseCase{
		repo:       repo,
		suppliers:  suppliers,
		orders:     orders,
		conditions: conditions,
		store:      store,
		notifier:   notifier,
		logger:     logger,
	}
}

// Execute stores an invoice file for a supplier. Supplier users must have
// accepted the active general conditions first, and a referenced purchase
// order must belong to the same supplier and be ready for invoicing.
func (uc *UploadInvoiceUseCase) Execute(ctx context.Context, identity *authorization.Identity, req dto.UploadInvoiceRequest) (*dto.InvoiceDTO, error) {
	s, err := loadSupplier(ctx, uc.suppliers, uc.logger, identity, req.SupplierID)
	if err != nil {
		return nil, err
	}
	if len(req.Data) == 0 {
		return nil, errors.NewValidationError("invoice file is empty")
	}

	if identity.Role == authorization.RoleSupplier {
		accepted, err := uc.conditions.AcceptedActive(ctx, s.CompanyID(), s.ID())
		if err != nil {
			uc.logger.Errorw("failed to check general conditions acceptance", "supplier_id", s.ID(), "error", err)
			return nil, errors.NewInternalError("failed to upload invoice")
		}
		if !accepted {
			return nil, errors.NewForbiddenError("general conditions must be accepted before uploading invoices")
		}
	}

	if err := uc.checkPurchaseOrder(ctx, s, req.PurchaseOrderID); err != nil {
		return nil, err
	}

	if req.Number != "" {
		exists, err := uc.repo.ExistsByNumber(ctx, s.ID(), req.Number)
		if err != nil {
			uc.logger.Errorw("failed to check invoice number", "supplier_id", s.ID(), "error", err)
			return nil, errors.NewInternalError("failed to upload invoice")
		}
		if exists {
			return nil, errors.NewConflictError("invoice number already uploaded", req.Number)
		}
	}

	key := invoiceFileKey(s.ID(), req.FileName)
	if err := uc.store.Put(ctx, key, req.Data, ""); err != nil {
		uc.logger.Errorw("failed to store invoice file", "key", key, "error", err)
		return nil, errors.NewUpstreamError("failed to store invoice file")
	}

	inv, err := invoice.NewInvoice(invoice.NewInvoiceParams{
		CompanyID:       s.CompanyID(),
		SupplierID:      s.ID(),
		PurchaseOrderID: req.PurchaseOrderID,
		Number:          req.Number,
		Amount:          vo.NewMoney(req.AmountCents, req.Currency),
		DueDate:         req.DueDate,
		Notes:           req.Notes,
		FileName:        req.FileName,
		FilePath:        key,
		UploadedBy:      identity.UserID,
		Now:             biztime.NowUTC(),
	})
	if err != nil {
		uc.discardFile(ctx, key)
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.repo.Create(ctx, inv); err != nil {
		uc.logger.Errorw("failed to persist invoice", "supplier_id", s.ID(), "error", err)
		uc.discardFile(ctx, key)
		return nil, errors.NewInternalError("failed to upload invoice")
	}

	uc.logger.Infow("invoice uploaded", "id", inv.ID(), "supplier_id", s.ID(), "amount", inv.Amount().String())

	if identity.Role == authorization.RoleSupplier {
		uc.notifier.Dispatch(ctx, appnotification.Event{
			Type:       notification.TypeInvoiceUploaded,
			Title:      "New invoice",
			Message:    fmt.Sprintf("%s uploaded invoice %s for %s.", s.Name(), displayName(inv), inv.Amount()),
			TargetID:   inv.ID(),
			TargetType: targetTypeInvoice,
			CompanyID:  s.CompanyID(),
			Audience:   appnotification.CompanyAdmins(s.CompanyID()),
		})
	}

	return dto.ToInvoiceDTO(inv), nil
}

func (uc *UploadInvoiceUseCase) checkPurchaseOrder(ctx context.Context, s *supplier.Supplier, orderID string) error {
	if orderID == "" {
		return nil
	}
	po, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		uc.logger.Errorw("failed to load purchase order", "id", orderID, "error", err)
		return errors.NewInternalError("failed to load purchase order")
	}
	if po == nil {
		return errors.NewNotFoundError("purchase order not found")
	}
	if po.SupplierID() != s.ID() {
		return errors.NewForbiddenError("purchase order belongs to another supplier")
	}
	if !po.Invoiceable() {
		return errors.NewValidationError("purchase order cannot be invoiced yet", string(po.Status()))
	}
	return nil
}

func (uc *UploadInvoiceUseCase) discardFile(ctx context.Context, key string) {
	if err := uc.store.Delete(ctx, key); err != nil {
		uc.logger.Warnw("failed to remove orphaned invoice file", "key", key, "error", err)
	}
}
