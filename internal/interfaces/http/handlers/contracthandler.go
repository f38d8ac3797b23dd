package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prism-finance/prism/internal/application/contract/dto"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/id"
	"github.com/prism-finance/prism/internal/shared/logger"
	"github.com/prism-finance/prism/internal/shared/utils"
)

type contractService interface {
	Generate(ctx context.Context, identity *authorization.Identity, req dto.GenerateContractRequest) (*dto.ContractDTO, error)
	SignAsSupplier(ctx context.Context, identity *authorization.Identity, id string, req dto.SignContractRequest) (*dto.ContractDTO, error)
	SignAsAdmin(ctx context.Context, identity *authorization.Identity, id string, req dto.SignContractRequest) (*dto.ContractDTO, error)
	Get(ctx context.Context, identity *authorization.Identity, id string) (*dto.ContractDTO, error)
	HTML(ctx context.Context, identity *authorization.Identity, id string) (string, error)
	File(ctx context.Context, identity *authorization.Identity, id string) (*dto.ContractFile, error)
	List(ctx context.Context, identity *authorization.Identity, req dto.ListContractsRequest) (*dto.ListContractsResponse, error)
	Cancel(ctx context.Context, identity *authorization.Identity, id string) (*dto.ContractDTO, error)
}

type signFunc func(ctx context.Context, identity *authorization.Identity, id string, req dto.SignContractRequest) (*dto.ContractDTO, error)

type ContractHandler struct {
	service contractService
	logger  logger.Interface
}

func NewContractHandler(service contractService, logger logger.Interface) *ContractHandler {
	return &ContractHandler{
		service: service,
		logger:  logger,
	}
}

func (h *ContractHandler) Generate(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req dto.GenerateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for generate contract", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.service.Generate(c.Request.Context(), identity, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Contract generated successfully")
}

func (h *ContractHandler) List(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	p := utils.ParsePagination(c)
	result, err := h.service.List(c.Request.Context(), identity, dto.ListContractsRequest{
		SupplierID: c.Query("supplier_id"),
		TemplateID: c.Query("template_id"),
		Status:     c.Query("status"),
		Page:       p.Page,
		PageSize:   p.PageSize,
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *ContractHandler) Get(c *gin.Context) {
	identity, contractID, ok := h.contractParam(c)
	if !ok {
		return
	}

	result, err := h.service.Get(c.Request.Context(), identity, contractID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// HTML returns the rendered contract body for in-browser viewing.
func (h *ContractHandler) HTML(c *gin.Context) {
	identity, contractID, ok := h.contractParam(c)
	if !ok {
		return
	}

	html, err := h.service.HTML(c.Request.Context(), identity, contractID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.HTMLResponse(c, html)
}

func (h *ContractHandler) File(c *gin.Context) {
	identity, contractID, ok := h.contractParam(c)
	if !ok {
		return
	}

	file, err := h.service.File(c.Request.Context(), identity, contractID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	sendFile(c, file.FileName, file.ContentType, file.Data)
}

func (h *ContractHandler) SignSupplier(c *gin.Context) {
	h.sign(c, "supplier", h.service.SignAsSupplier)
}

func (h *ContractHandler) SignAdmin(c *gin.Context) {
	h.sign(c, "admin", h.service.SignAsAdmin)
}

func (h *ContractHandler) sign(c *gin.Context, party string, fn signFunc) {
	identity, contractID, ok := h.contractParam(c)
	if !ok {
		return
	}

	var req dto.SignContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for sign contract", "contract_id", contractID, "party", party, "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := fn(c.Request.Context(), identity, contractID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Contract signed successfully", result)
}

func (h *ContractHandler) Cancel(c *gin.Context) {
	identity, contractID, ok := h.contractParam(c)
	if !ok {
		return
	}

	result, err := h.service.Cancel(c.Request.Context(), identity, contractID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Contract cancelled", result)
}

func (h *ContractHandler) contractParam(c *gin.Context) (*authorization.Identity, string, bool) {
	identity, ok := requireIdentity(c)
	if !ok {
		return nil, "", false
	}

	contractID, err := utils.ParseSIDParam(c, "id", id.PrefixContract, "contract")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return nil, "", false
	}
	return identity, contractID, true
}
