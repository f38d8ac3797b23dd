package usecases

import (
	"context"
	"fmt"

	appnotification "github.com/prism-finance/prism/internal/application/notification"
	"github.com/prism-finance/prism/internal/application/supplier/dto"
	"github.com/prism-finance/prism/internal/domain/notification"
	"github.com/prism-finance/prism/internal/domain/supplier"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/biztime"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type Notifier interface {
	Dispatch(ctx context.Context, evt appnotification.Event)
}

type UpdateSupplierUseCase struct {
	repo     supplier.Repository
	notifier Notifier
	logger   logger.Interface
}

func NewUpdateSupplierUseCase(repo supplier.Repository, notifier Notifier, logger logger.Interface) *UpdateSupplierUseCase {
	return &UpdateSupplierUseCase{repo: repo, notifier: notifier, logger: logger}
}

// Execute applies a partial update. Supplier users may edit their own
// profile but not its status or contract variables; when they change a
// legal or banking field the company admins are told.
func (uc *UpdateSupplierUseCase) Execute(ctx context.Context, identity *authorization.Identity, id string, req dto.UpdateSupplierRequest) (*dto.SupplierDTO, error) {
	s, err := load(ctx, uc.repo, uc.logger, identity, id)
	if err != nil {
		return nil, err
	}
	selfEdit := !identity.IsAdminFor(s.CompanyID())
	if selfEdit && (req.Status != nil || req.ContractVariables != nil) {
		return nil, errors.NewForbiddenError("only company admins can change supplier status or contract variables")
	}

	before := s.Details()
	d := s.Details()
	if req.SIRET != nil && *req.SIRET != s.SIRET() {
		exists, err := uc.repo.ExistsBySIRET(ctx, s.CompanyID(), *req.SIRET)
		if err != nil {
			uc.logger.Errorw("failed to check supplier SIRET", "id", id, "error", err)
			return nil, errors.NewInternalError("failed to update supplier")
		}
		if exists {
			return nil, errors.NewConflictError("a supplier with this SIRET already exists")
		}
	}
	applyUpdate(&d, req)

	now := biztime.NowUTC()
	if err := s.Update(d, now); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if req.Status != nil {
		if err := s.SetStatus(supplier.Status(*req.Status), now); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.repo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to update supplier", "id", id, "error", err)
		return nil, errors.NewInternalError("failed to update supplier")
	}

	uc.logger.Infow("supplier updated", "id", id, "by", identity.UserID, "self_edit", selfEdit)

	if selfEdit && keyDetailsChanged(before, s.Details()) {
		uc.notifier.Dispatch(ctx, appnotification.Event{
			Type:       notification.TypeSupplierUpdated,
			Title:      "Supplier updated",
			Message:    fmt.Sprintf("Supplier %s has changed its legal or banking details.", before.Name),
			TargetID:   s.ID(),
			TargetType: "supplier",
			CompanyID:  s.CompanyID(),
			Audience:   appnotification.CompanyAdmins(s.CompanyID()),
		})
	}
	return dto.ToSupplierDTO(s), nil
}

// keyDetailsChanged reports a change to a field admins must review.
func keyDetailsChanged(before, after supplier.Details) bool {
	return before.Name != after.Name ||
		before.SIRET != after.SIRET ||
		before.VATNumber != after.VATNumber ||
		before.IBAN != after.IBAN
}

func applyUpdate(d *supplier.Details, req dto.UpdateSupplierRequest) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&d.Name, req.Name)
	set(&d.SIRET, req.SIRET)
	set(&d.VATNumber, req.VATNumber)
	set(&d.Profession, req.Profession)
	set(&d.Address, req.Address)
	set(&d.PostalCode, req.PostalCode)
	set(&d.City, req.City)
	set(&d.Country, req.Country)
	set(&d.IBAN, req.IBAN)
	set(&d.BIC, req.BIC)
	set(&d.Phone, req.Phone)
	if req.Emails != nil {
		d.Emails = *req.Emails
	}
	if req.ContractVariables != nil {
		d.ContractVariables = *req.ContractVariables
	}
}
