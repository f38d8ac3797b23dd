package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/prism-finance/prism/internal/application/common"
	"github.com/prism-finance/prism/internal/application/contract/dto"
	"github.com/prism-finance/prism/internal/domain/contract"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/biztime"
	"github.com/prism-finance/prism/internal/shared/constants"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

const contractFileKey = "contracts/contract_%s_%s_%s.html"

type GenerateContractUseCase struct {
	contracts contract.Repository
	templates TemplateReader
	suppliers SupplierReader
	renderer  ContractRenderer
	store     common.BlobStore
	notifier  Notifier
	logger    logger.Interface
}

func NewGenerateContractUseCase(
	contracts contract.Repository,
	templates TemplateReader,
	suppliers SupplierReader,
	renderer ContractRenderer,
	store common.BlobStore,
	notifier Notifier,
	logger logger.Interface,
) *GenerateContractUseCase {
	return &GenerateContractUseCase{
		contracts: contracts,
		templates: templates,
		suppliers: suppliers,
		renderer:  renderer,
		store:     store,
		notifier:  notifier,
		logger:    logger,
	}
}

// Execute renders the template for the supplier, stores the HTML file and
// persists a draft contract. Nothing is persisted when rendering or storage
// fails.
func (uc *GenerateContractUseCase) Execute(ctx context.Context, identity *authorization.Identity, req dto.GenerateContractRequest) (*dto.ContractDTO, error) {
	log := uc.logger.WithContext(ctx)
	log.Infow("executing generate contract use case",
		"template_id", req.TemplateID,
		"supplier_id", req.SupplierID,
		"user_id", userIDOf(identity),
	)

	tpl, err := uc.templates.GetByID(ctx, req.TemplateID)
	if err != nil {
		log.Errorw("failed to load template", "template_id", req.TemplateID, "error", err)
		return nil, errors.NewInternalError("failed to load template")
	}
	if tpl == nil {
		return nil, errors.NewNotFoundError("template not found")
	}
	if !identity.IsAdminFor(tpl.CompanyID()) {
		return nil, errors.NewForbiddenError("access to this template is not allowed")
	}

	sup, err := uc.suppliers.GetByID(ctx, req.SupplierID)
	if err != nil {
		log.Errorw("failed to load supplier", "supplier_id", req.SupplierID, "error", err)
		return nil, errors.NewInternalError("failed to load supplier")
	}
	if sup == nil {
		return nil, errors.NewNotFoundError("supplier not found")
	}
	if !identity.CanAccessSupplier(sup.ID(), sup.CompanyID()) {
		return nil, errors.NewForbiddenError("access to this supplier is not allowed")
	}
	if sup.CompanyID() != tpl.CompanyID() {
		return nil, errors.NewValidationError("template and supplier belong to different companies")
	}

	rendered, err := uc.renderer.Render(ctx, tpl, sup, req.Variables)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf(contractFileKey, sup.ID(), tpl.ID(), uuid.NewString())
	if err := uc.store.Put(ctx, key, []byte(rendered.HTML), constants.ContentTypeHTML); err != nil {
		log.Errorw("failed to store contract file", "key", key, "error", err)
		return nil, errors.NewUpstreamError("failed to store contract file")
	}

	now := biztime.NowUTC()
	c, err := contract.NewContract(contract.NewContractParams{
		CompanyID:  tpl.CompanyID(),
		TemplateID: tpl.ID(),
		SupplierID: sup.ID(),
		Name:       req.Name,
		Variables:  rendered.Variables,
		HTML:       rendered.HTML,
		FilePath:   key,
		ExpiryDate: tpl.ExpiryFrom(now),
		CreatedBy:  userIDOf(identity),
		Now:        now,
	})
	if err != nil {
		uc.discardFile(ctx, key)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.contracts.Create(ctx, c); err != nil {
		log.Errorw("failed to persist contract", "template_id", tpl.ID(), "supplier_id", sup.ID(), "error", err)
		uc.discardFile(ctx, key)
		return nil, errors.NewInternalError("failed to create contract")
	}

	log.Infow("contract generated", "id", c.ID(), "template_id", tpl.ID(), "supplier_id", sup.ID())

	uc.notifier.Dispatch(ctx, createdEvent(c))

	return dto.ToContractDTO(c), nil
}

func (uc *GenerateContractUseCase) discardFile(ctx context.Context, key string) {
	if err := uc.store.Delete(ctx, key); err != nil {
		uc.logger.Warnw("failed to remove orphaned contract file", "key", key, "error", err)
	}
}
