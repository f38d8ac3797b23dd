package usecases

import (
	"context"
	"fmt"

	"github.com/prism-finance/prism/internal/application/document/dto"
	appnotification "github.com/prism-finance/prism/internal/application/notification"
	"github.com/prism-finance/prism/internal/domain/document"
	"github.com/prism-finance/prism/internal/domain/notification"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/biztime"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type ReviewDocumentUseCase struct {
	repo      document.Repository
	suppliers SupplierReader
	notifier  Notifier
	logger    logger.Interface
}

func NewReviewDocumentUseCase(repo document.Repository, suppliers SupplierReader, notifier Notifier, logger logger.Interface) *ReviewDocumentUseCase {
	return &ReviewDocumentUseCase{
		repo:      repo,
		suppliers: suppliers,
		notifier:  notifier,
		logger:    logger,
	}
}

// Execute records an admin decision on a document and tells the supplier.
func (uc *ReviewDocumentUseCase) Execute(ctx context.Context, identity *authorization.Identity, supplierID, id string, req dto.ReviewDocumentRequest) (*dto.DocumentDTO, error) {
	s, err := loadSupplier(ctx, uc.suppliers, uc.logger, identity, supplierID)
	if err != nil {
		return nil, err
	}
	if !identity.IsAdminFor(s.CompanyID()) {
		return nil, errors.NewForbiddenError("only company admins can review documents")
	}
	doc, err := loadDocument(ctx, uc.repo, uc.logger, s.ID(), id)
	if err != nil {
		return nil, err
	}

	status := document.Status(req.Status)
	if err := doc.Review(status, req.Notes, identity.UserID, biztime.NowUTC()); err != nil {
		return nil, errors.NewValidationError(err.Error(), req.Status)
	}
	if err := uc.repo.Update(ctx, doc); err != nil {
		uc.logger.Errorw("failed to update document", "id", id, "error", err)
		return nil, errors.NewInternalError("failed to update document")
	}

	uc.logger.Infow("document reviewed", "id", id, "status", status, "reviewer", identity.UserID)

	if evt, ok := reviewEvent(doc); ok {
		uc.notifier.Dispatch(ctx, evt)
	}
	return dto.ToDocumentDTO(doc), nil
}

func reviewEvent(doc *document.Document) (appnotification.Event, bool) {
	evt := appnotification.Event{
		TargetID:   doc.ID(),
		TargetType: targetTypeDocument,
		CompanyID:  doc.CompanyID(),
		Audience:   appnotification.SupplierUsers(doc.SupplierID()),
	}
	switch doc.Status() {
	case document.StatusValidated:
		evt.Type = notification.TypeDocumentValidated
		evt.Title = "Document validated"
		evt.Message = fmt.Sprintf("Your document %q has been validated.", doc.Name())
	case document.StatusRejected:
		evt.Type = notification.TypeDocumentRejected
		evt.Title = "Document rejected"
		evt.Message = fmt.Sprintf("Your document %q has been rejected.", doc.Name())
		if doc.ValidationNotes() != "" {
			evt.Message += " Reason: " + doc.ValidationNotes()
		}
	default:
		return evt, false
	}
	return evt, true
}
