package usecases

import (
	"context"

	"github.com/prism-finance/prism/internal/application/common"
	"github.com/prism-finance/prism/internal/application/invoice/dto"
	"github.com/prism-finance/prism/internal/domain/invoice"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type GetInvoiceUseCase struct {
	repo   invoice.Repository
	store  common.BlobStore
	logger logger.Interface
}

func NewGetInvoiceUseCase(repo invoice.Repository, store common.BlobStore, logger logger.Interface) *GetInvoiceUseCase {
	return &GetInvoiceUseCase{repo: repo, store: store, logger: logger}
}

func (uc *GetInvoiceUseCase) Execute(ctx context.Context, identity *authorization.Identity, id string) (*dto.InvoiceDTO, error) {
	inv, err := loadInvoice(ctx, uc.repo, uc.logger, identity, id)
	if err != nil {
		return nil, err
	}
	return dto.ToInvoiceDTO(inv), nil
}

func (uc *GetInvoiceUseCase) Download(ctx context.Context, identity *authorization.Identity, id string) (*dto.InvoiceFile, error) {
	inv, err := loadInvoice(ctx, uc.repo, uc.logger, identity, id)
	if err != nil {
		return nil, err
	}
	data, err := uc.store.Get(ctx, inv.FilePath())
	if err != nil {
		uc.logger.Errorw("failed to read invoice file", "id", id, "error", err)
		return nil, errors.NewUpstreamError("failed to read invoice file")
	}
	return &dto.InvoiceFile{FileName: inv.FileName(), Data: data}, nil
}

type ListInvoicesUseCase struct {
	repo   invoice.Repository
	logger logger.Interface
}

func NewListInvoicesUseCase(repo invoice.Repository, logger logger.Interface) *ListInvoicesUseCase {
	return &ListInvoicesUseCase{repo: repo, logger: logger}
}

// Execute lists the invoices visible to the caller. Supplier users are
// pinned to their own supplier.
func (uc *ListInvoicesUseCase) Execute(ctx context.Context, identity *authorization.Identity, req dto.ListInvoicesRequest) (*dto.ListInvoicesResponse, error) {
	if identity == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	filter := invoice.ListFilter{
		CompanyID:       identity.ScopeCompanyID(),
		SupplierID:      req.SupplierID,
		PurchaseOrderID: req.PurchaseOrderID,
		Page:            req.Page,
		PageSize:        req.PageSize,
	}
	if identity.Role == authorization.RoleSupplier {
		filter.SupplierID = identity.SupplierID
	}
	if req.Status != "" {
		status := invoice.Status(req.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid invoice status", req.Status)
		}
		filter.Status = &status
	}

	items, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list invoices", "company_id", filter.CompanyID, "error", err)
		return nil, errors.NewInternalError("failed to list invoices")
	}

	return &dto.ListInvoicesResponse{
		Items:    dto.ToInvoiceDTOList(items),
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

type DeleteInvoiceUseCase struct {
	repo   invoice.Repository
	store  common.BlobStore
	logger logger.Interface
}

func NewDeleteInvoiceUseCase(repo invoice.Repository, store common.BlobStore, logger logger.Interface) *DeleteInvoiceUseCase {
	return &DeleteInvoiceUseCase{repo: repo, store: store, logger: logger}
}

// Execute removes an invoice and its file. Suppliers may only withdraw
// invoices still pending review.
func (uc *DeleteInvoiceUseCase) Execute(ctx context.Context, identity *authorization.Identity, id string) error {
	inv, err := loadInvoice(ctx, uc.repo, uc.logger, identity, id)
	if err != nil {
		return err
	}
	if !identity.IsAdminFor(inv.CompanyID()) && !inv.Deletable() {
		return errors.NewForbiddenError("only pending invoices can be deleted", string(inv.Status()))
	}

	if err := uc.repo.Delete(ctx, inv.ID()); err != nil {
		uc.logger.Errorw("failed to delete invoice", "id", id, "error", err)
		return errors.NewInternalError("failed to delete invoice")
	}
	if err := uc.store.Delete(ctx, inv.FilePath()); err != nil {
		uc.logger.Warnw("failed to remove invoice file", "key", inv.FilePath(), "error", err)
	}

	uc.logger.Infow("invoice deleted", "id", id, "supplier_id", inv.SupplierID())
	return nil
}
