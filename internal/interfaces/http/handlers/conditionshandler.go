package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prism-finance/prism/internal/application/generalconditions/dto"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/id"
	"github.com/prism-finance/prism/internal/shared/logger"
	"github.com/prism-finance/prism/internal/shared/utils"
)

type conditionsService interface {
	Create(ctx context.Context, identity *authorization.Identity, req dto.CreateConditionsRequest) (*dto.ConditionsDTO, error)
	Update(ctx context.Context, identity *authorization.Identity, id string, req dto.UpdateConditionsRequest) (*dto.ConditionsDTO, error)
	Delete(ctx context.Context, identity *authorization.Identity, id string) error
	Get(ctx context.Context, identity *authorization.Identity, id string) (*dto.ConditionsDTO, error)
	Active(ctx context.Context, identity *authorization.Identity, companyID string) (*dto.ConditionsDTO, error)
	HTML(ctx context.Context, identity *authorization.Identity, id string) (string, error)
	List(ctx context.Context, identity *authorization.Identity, req dto.ListConditionsRequest) ([]*dto.ConditionsDTO, error)
	Acceptances(ctx context.Context, identity *authorization.Identity, id string) ([]*dto.AcceptanceDTO, error)
	AcceptanceStatus(ctx context.Context, identity *authorization.Identity, supplierID string) (*dto.AcceptanceStatusDTO, error)
	Accept(ctx context.Context, identity *authorization.Identity, supplierID, ipAddress string, req dto.AcceptConditionsRequest) (*dto.AcceptanceDTO, error)
}

// ConditionsHandler serves /general-conditions and the acceptance
// endpoints nested under /suppliers/:id.
type ConditionsHandler struct {
	service conditionsService
	logger  logger.Interface
}

func NewConditionsHandler(service conditionsService, logger logger.Interface) *ConditionsHandler {
	return &ConditionsHandler{
		service: service,
		logger:  logger,
	}
}

func (h *ConditionsHandler) Create(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateConditionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create general conditions", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.service.Create(c.Request.Context(), identity, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "General conditions created successfully")
}

func (h *ConditionsHandler) List(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	activeOnly, err := utils.ParseBoolQuery(c, "active_only")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.List(c.Request.Context(), identity, dto.ListConditionsRequest{
		CompanyID:  c.Query("company_id"),
		ActiveOnly: activeOnly,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ConditionsHandler) Active(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	result, err := h.service.Active(c.Request.Context(), identity, c.Query("company_id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ConditionsHandler) Get(c *gin.Context) {
	identity, conditionsID, ok := h.conditionsParam(c)
	if !ok {
		return
	}

	result, err := h.service.Get(c.Request.Context(), identity, conditionsID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ConditionsHandler) HTML(c *gin.Context) {
	identity, conditionsID, ok := h.conditionsParam(c)
	if !ok {
		return
	}

	html, err := h.service.HTML(c.Request.Context(), identity, conditionsID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.HTMLResponse(c, html)
}

func (h *ConditionsHandler) Update(c *gin.Context) {
	identity, conditionsID, ok := h.conditionsParam(c)
	if !ok {
		return
	}

	var req dto.UpdateConditionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update general conditions", "id", conditionsID, "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.service.Update(c.Request.Context(), identity, conditionsID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "General conditions updated", result)
}

func (h *ConditionsHandler) Delete(c *gin.Context) {
	identity, conditionsID, ok := h.conditionsParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), identity, conditionsID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *ConditionsHandler) Acceptances(c *gin.Context) {
	identity, conditionsID, ok := h.conditionsParam(c)
	if !ok {
		return
	}

	result, err := h.service.Acceptances(c.Request.Context(), identity, conditionsID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ConditionsHandler) AcceptanceStatus(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	supplierID, err := utils.ParseSIDParam(c, "id", id.PrefixSupplier, "supplier")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.AcceptanceStatus(c.Request.Context(), identity, supplierID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ConditionsHandler) Accept(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	supplierID, err := utils.ParseSIDParam(c, "id", id.PrefixSupplier, "supplier")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.AcceptConditionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for accept general conditions", "supplier_id", supplierID, "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.service.Accept(c.Request.Context(), identity, supplierID, c.ClientIP(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "General conditions accepted", result)
}

func (h *ConditionsHandler) conditionsParam(c *gin.Context) (*authorization.Identity, string, bool) {
	identity, ok := requireIdentity(c)
	if !ok {
		return nil, "", false
	}

	conditionsID, err := utils.ParseSIDParam(c, "id", id.PrefixConditions, "general conditions")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return nil, "", false
	}
	return identity, conditionsID, true
}
