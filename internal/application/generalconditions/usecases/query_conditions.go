package usecases

import (
	"context"

	"github.com/prism-finance/prism/internal/application/common"
	"github.com/prism-finance/prism/internal/application/generalconditions/dto"
	"github.com/prism-finance/prism/internal/domain/generalconditions"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type GetConditionsUseCase struct {
	repo      generalconditions.Repository
	converter common.DocumentConverter
	logger    logger.Interface
}

func NewGetConditionsUseCase(repo generalconditions.Repository, converter common.DocumentConverter, logger logger.Interface) *GetConditionsUseCase {
	return &GetConditionsUseCase{repo: repo, converter: converter, logger: logger}
}

func (uc *GetConditionsUseCase) Execute(ctx context.Context, identity *authorization.Identity, id string) (*dto.ConditionsDTO, error) {
	gc, err := loadConditions(ctx, uc.repo, uc.logger, identity, id)
	if err != nil {
		return nil, err
	}
	return dto.ToConditionsDTO(gc), nil
}

// Active returns the version in force for companyID. Everyone but super
// admins is pinned to their own company.
func (uc *GetConditionsUseCase) Active(ctx context.Context, identity *authorization.Identity, companyID string) (*dto.ConditionsDTO, error) {
	if identity == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if !identity.IsSuperAdmin() {
		companyID = identity.CompanyID
	}
	if companyID == "" {
		return nil, errors.NewValidationError("company_id is required")
	}

	gc, err := uc.repo.GetActive(ctx, companyID)
	if err != nil {
		uc.logger.Errorw("failed to load active general conditions", "company_id", companyID, "error", err)
		return nil, errors.NewInternalError("failed to load general conditions")
	}
	if gc == nil {
		return nil, errors.NewNotFoundError("no active general conditions")
	}
	return dto.ToConditionsDTO(gc), nil
}

// HTML renders the markdown content of a version.
func (uc *GetConditionsUseCase) HTML(ctx context.Context, identity *authorization.Identity, id string) (string, error) {
	gc, err := loadConditions(ctx, uc.repo, uc.logger, identity, id)
	if err != nil {
		return "", err
	}
	html, err := uc.converter.ToHTML(ctx, "conditions.md", []byte(gc.Content()))
	if err != nil {
		uc.logger.Errorw("failed to render general conditions", "id", id, "error", err)
		return "", errors.NewInternalError("failed to render general conditions")
	}
	return html, nil
}

type ListConditionsUseCase struct {
	repo        generalconditions.Repository
	acceptances generalconditions.AcceptanceRepository
	logger      logger.Interface
}

func NewListConditionsUseCase(repo generalconditions.Repository, acceptances generalconditions.AcceptanceRepository, logger logger.Interface) *ListConditionsUseCase {
	return &ListConditionsUseCase{repo: repo, acceptances: acceptances, logger: logger}
}

// Execute lists versions newest first. Supplier users only see the active
// one.
func (uc *ListConditionsUseCase) Execute(ctx context.Context, identity *authorization.Identity, req dto.ListConditionsRequest) ([]*dto.ConditionsDTO, error) {
	if identity == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	filter := generalconditions.ListFilter{
		CompanyID:  identity.ScopeCompanyID(),
		ActiveOnly: req.ActiveOnly || identity.Role == authorization.RoleSupplier,
	}
	if identity.IsSuperAdmin() {
		filter.CompanyID = req.CompanyID
	}

	items, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list general conditions", "company_id", filter.CompanyID, "error", err)
		return nil, errors.NewInternalError("failed to list general conditions")
	}
	return dto.ToConditionsDTOList(items), nil
}

// Acceptances lists who accepted version id. Admins only.
func (uc *ListConditionsUseCase) Acceptances(ctx context.Context, identity *authorization.Identity, id string) ([]*dto.AcceptanceDTO, error) {
	gc, err := loadManaged(ctx, uc.repo, uc.logger, identity, id)
	if err != nil {
		return nil, err
	}
	items, err := uc.acceptances.ListByConditions(ctx, gc.ID())
	if err != nil {
		uc.logger.Errorw("failed to list acceptances", "id", id, "error", err)
		return nil, errors.NewInternalError("failed to list acceptances")
	}
	return dto.ToAcceptanceDTOList(items), nil
}
