package usecases

import (
	"context"
	"fmt"

	"github.com/prism-finance/prism/internal/application/generalconditions/dto"
	appnotification "github.com/prism-finance/prism/internal/application/notification"
	"github.com/prism-finance/prism/internal/domain/generalconditions"
	"github.com/prism-finance/prism/internal/domain/notification"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/biztime"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type AcceptanceStatusUseCase struct {
	repo        generalconditions.Repository
	acceptances generalconditions.AcceptanceRepository
	suppliers   SupplierReader
	logger      logger.Interface
}

func NewAcceptanceStatusUseCase(repo generalconditions.Repository, acceptances generalconditions.AcceptanceRepository, suppliers SupplierReader, logger logger.Interface) *AcceptanceStatusUseCase {
	return &AcceptanceStatusUseCase{repo: repo, acceptances: acceptances, suppliers: suppliers, logger: logger}
}

// Execute reports whether the supplier accepted the active version of its
// company. Without an active version the answer is false.
func (uc *AcceptanceStatusUseCase) Execute(ctx context.Context, identity *authorization.Identity, supplierID string) (*dto.AcceptanceStatusDTO, error) {
	s, err := loadSupplier(ctx, uc.suppliers, uc.logger, identity, supplierID)
	if err != nil {
		return nil, err
	}

	gc, err := uc.repo.GetActive(ctx, s.CompanyID())
	if err != nil {
		uc.logger.Errorw("failed to load active general conditions", "company_id", s.CompanyID(), "error", err)
		return nil, errors.NewInternalError("failed to check general conditions")
	}
	if gc == nil {
		return &dto.AcceptanceStatusDTO{}, nil
	}

	acc, err := uc.acceptances.Find(ctx, s.ID(), gc.ID())
	if err != nil {
		uc.logger.Errorw("failed to load acceptance", "supplier_id", s.ID(), "error", err)
		return nil, errors.NewInternalError("failed to check general conditions")
	}
	return &dto.AcceptanceStatusDTO{Accepted: acc != nil, ConditionsID: gc.ID(), Version: gc.Version()}, nil
}

// AcceptedActive is the unauthenticated check other modules gate on. A
// company without an active version imposes nothing.
func (uc *AcceptanceStatusUseCase) AcceptedActive(ctx context.Context, companyID, supplierID string) (bool, error) {
	gc, err := uc.repo.GetActive(ctx, companyID)
	if err != nil {
		return false, err
	}
	if gc == nil {
		return true, nil
	}
	acc, err := uc.acceptances.Find(ctx, supplierID, gc.ID())
	if err != nil {
		return false, err
	}
	return acc != nil, nil
}

type AcceptConditionsUseCase struct {
	repo        generalconditions.Repository
	acceptances generalconditions.AcceptanceRepository
	suppliers   SupplierReader
	notifier    Notifier
	logger      logger.Interface
}

func NewAcceptConditionsUseCase(
	repo generalconditions.Repository,
	acceptances generalconditions.AcceptanceRepository,
	suppliers SupplierReader,
	notifier Notifier,
	logger logger.Interface,
) *AcceptConditionsUseCase {
	return &AcceptConditionsUseCase{
		repo:        repo,
		acceptances: acceptances,
		suppliers:   suppliers,
		notifier:    notifier,
		logger:      logger,
	}
}

// Execute records that the supplier accepted a version of its company's
// conditions. Accepting twice returns the first record.
func (uc *AcceptConditionsUseCase) Execute(ctx context.Context, identity *authorization.Identity, supplierID, ipAddress string, req dto.AcceptConditionsRequest) (*dto.AcceptanceDTO, error) {
	s, err := loadSupplier(ctx, uc.suppliers, uc.logger, identity, supplierID)
	if err != nil {
		return nil, err
	}

	gc, err := uc.repo.GetByID(ctx, req.ConditionsID)
	if err != nil {
		uc.logger.Errorw("failed to load general conditions", "id", req.ConditionsID, "error", err)
		return nil, errors.NewInternalError("failed to load general conditions")
	}
	if gc == nil {
		return nil, errors.NewNotFoundError("general conditions not found")
	}
	if gc.CompanyID() != s.CompanyID() {
		return nil, errors.NewForbiddenError("general conditions do not belong to this company")
	}

	existing, err := uc.acceptances.Find(ctx, s.ID(), gc.ID())
	if err != nil {
		uc.logger.Errorw("failed to load acceptance", "supplier_id", s.ID(), "error", err)
		return nil, errors.NewInternalError("failed to accept general conditions")
	}
	if existing != nil {
		return dto.ToAcceptanceDTO(existing), nil
	}

	acc, err := generalconditions.NewAcceptance(generalconditions.NewAcceptanceParams{
		ConditionsID: gc.ID(),
		SupplierID:   s.ID(),
		CompanyID:    s.CompanyID(),
		AcceptedBy:   identity.UserID,
		IPAddress:    ipAddress,
		Now:          biztime.NowUTC(),
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.acceptances.Create(ctx, acc); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("general conditions already accepted")
		}
		uc.logger.Errorw("failed to persist acceptance", "supplier_id", s.ID(), "error", err)
		return nil, errors.NewInternalError("failed to accept general conditions")
	}

	uc.logger.Infow("general conditions accepted", "conditions_id", gc.ID(), "supplier_id", s.ID(), "user_id", identity.UserID)
	uc.notifier.Dispatch(ctx, appnotification.Event{
		Type:       notification.TypeGCAccepted,
		Title:      "General conditions accepted",
		Message:    fmt.Sprintf("%s accepted version %s of the general conditions.", s.Name(), gc.Version()),
		TargetID:   s.ID(),
		TargetType: targetTypeSupplier,
		CompanyID:  s.CompanyID(),
		Audience:   appnotification.CompanyAdmins(s.CompanyID()),
	})
	return dto.ToAcceptanceDTO(acc), nil
}
