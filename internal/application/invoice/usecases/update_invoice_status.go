package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/prism-finance/prism/internal/application/invoice/dto"
	appnotification "github.com/prism-finance/prism/internal/application/notification"
	"github.com/prism-finance/prism/internal/domain/invoice"
	"github.com/prism-finance/prism/internal/domain/notification"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/biztime"
	apperrors "github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type UpdateInvoiceStatusUseCase struct {
	repo     invoice.Repository
	notifier Notifier
	logger   logger.Interface
}

func NewUpdateInvoiceStatusUseCase(repo invoice.Repository, notifier Notifier, logger logger.Interface) *UpdateInvoiceStatusUseCase {
	return &UpdateInvoiceStatusUseCase{repo: repo, notifier: notifier, logger: logger}
}

// Execute records an admin decision on an invoice and tells the supplier.
func (uc *UpdateInvoiceStatusUseCase) Execute(ctx context.Context, identity *authorization.Identity, id string, req dto.UpdateInvoiceStatusRequest) (*dto.InvoiceDTO, error) {
	inv, err := loadInvoice(ctx, uc.repo, uc.logger, identity, id)
	if err != nil {
		return nil, err
	}
	if !identity.IsAdminFor(inv.CompanyID()) {
		return nil, apperrors.NewForbiddenError("only company admins can change invoice status")
	}

	err = inv.ChangeStatus(invoice.StatusChange{
		Status:      invoice.Status(req.Status),
		Notes:       req.Notes,
		PaymentDate: req.PaymentDate,
		ReviewerID:  identity.UserID,
	}, biztime.NowUTC())
	if errors.Is(err, invoice.ErrAlreadyPaid) {
		return nil, apperrors.NewConflictError(err.Error())
	}
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error(), req.Status)
	}
	if err := uc.repo.Update(ctx, inv); err != nil {
		uc.logger.Errorw("failed to update invoice", "id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to update invoice")
	}

	uc.logger.Infow("invoice status changed", "id", id, "status", inv.Status(), "reviewer", identity.UserID)

	if evt, ok := statusEvent(inv); ok {
		uc.notifier.Dispatch(ctx, evt)
	}
	return dto.ToInvoiceDTO(inv), nil
}

func statusEvent(inv *invoice.Invoice) (appnotification.Event, bool) {
	evt := appnotification.Event{
		TargetID:   inv.ID(),
		TargetType: targetTypeInvoice,
		CompanyID:  inv.CompanyID(),
		Audience:   appnotification.SupplierUsers(inv.SupplierID()),
	}
	switch inv.Status() {
	case invoice.StatusApproved:
		evt.Type = notification.TypeInvoiceApproved
	case invoice.StatusRejected:
		evt.Type = notification.TypeInvoiceRejected
	case invoice.StatusPaid:
		evt.Type = notification.TypeInvoicePaid
	default:
		return evt, false
	}
	evt.Title = "Invoice " + inv.Label()
	evt.Message = fmt.Sprintf("Your invoice %s is now: %s.", displayName(inv), inv.Label())
	if inv.Status() == invoice.StatusRejected && inv.Notes() != "" {
		evt.Message += " Reason: " + inv.Notes()
	}
	return evt, true
}
