package usecases

import (
	"context"

	"github.com/prism-finance/prism/internal/application/supplier/dto"
	"github.com/prism-finance/prism/internal/domain/supplier"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/biztime"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type CreateSupplierUseCase struct {
	repo   supplier.Repository
	logger logger.Interface
}

func NewCreateSupplierUseCase(repo supplier.Repository, logger logger.Interface) *CreateSupplierUseCase {
	return &CreateSupplierUseCase{repo: repo, logger: logger}
}

func (uc *CreateSupplierUseCase) Execute(ctx context.Context, identity *authorization.Identity, req dto.CreateSupplierRequest) (*dto.SupplierDTO, error) {
	companyID := req.CompanyID
	if identity != nil && !identity.IsSuperAdmin() {
		companyID = identity.CompanyID
	}
	if companyID == "" {
		return nil, errors.NewValidationError("company_id is required")
	}
	if !identity.IsAdminFor(companyID) {
		return nil, errors.NewForbiddenError("only company admins can create suppliers")
	}

	uc.logger.Infow("executing create supplier use case", "company_id", companyID, "siret", req.SIRET)

	exists, err := uc.repo.ExistsBySIRET(ctx, companyID, req.SIRET)
	if err != nil {
		uc.logger.Errorw("failed to check supplier SIRET", "company_id", companyID, "error", err)
		return nil, errors.NewInternalError("failed to create supplier")
	}
	if exists {
		return nil, errors.NewConflictError("a supplier with this SIRET already exists")
	}

	s, err := supplier.NewSupplier(companyID, supplier.Details{
		Name:              req.Name,
		SIRET:             req.SIRET,
		VATNumber:         req.VATNumber,
		Profession:        req.Profession,
		Address:           req.Address,
		PostalCode:        req.PostalCode,
		City:              req.City,
		Country:           req.Country,
		IBAN:              req.IBAN,
		BIC:               req.BIC,
		Emails:            req.Emails,
		Phone:             req.Phone,
		ContractVariables: req.ContractVariables,
	}, biztime.NowUTC())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a supplier with this SIRET already exists")
		}
		uc.logger.Errorw("failed to persist supplier", "company_id", companyID, "error", err)
		return nil, errors.NewInternalError("failed to create supplier")
	}

	uc.logger.Infow("supplier created", "id", s.ID(), "company_id", companyID)
	return dto.ToSupplierDTO(s), nil
}
