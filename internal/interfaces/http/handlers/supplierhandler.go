package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prism-finance/prism/internal/application/supplier/dto"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/id"
	"github.com/prism-finance/prism/internal/shared/logger"
	"github.com/prism-finance/prism/internal/shared/utils"
)

type supplierService interface {
	Create(ctx context.Context, identity *authorization.Identity, req dto.CreateSupplierRequest) (*dto.SupplierDTO, error)
	Update(ctx context.Context, identity *authorization.Identity, id string, req dto.UpdateSupplierRequest) (*dto.SupplierDTO, error)
	Get(ctx context.Context, identity *authorization.Identity, id string) (*dto.SupplierDTO, error)
	List(ctx context.Context, identity *authorization.Identity, req dto.ListSuppliersRequest) (*dto.ListSuppliersResponse, error)
}

type SupplierHandler struct {
	service supplierService
	logger  logger.Interface
}

func NewSupplierHandler(service supplierService, logger logger.Interface) *SupplierHandler {
	return &SupplierHandler{
		service: service,
		logger:  logger,
	}
}

func (h *SupplierHandler) Create(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create supplier", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.service.Create(c.Request.Context(), identity, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Supplier created successfully")
}

func (h *SupplierHandler) Update(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	supplierID, err := utils.ParseSIDParam(c, "id", id.PrefixSupplier, "supplier")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update supplier", "supplier_id", supplierID, "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.service.Update(c.Request.Context(), identity, supplierID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Supplier updated successfully", result)
}

func (h *SupplierHandler) Get(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	supplierID, err := utils.ParseSIDParam(c, "id", id.PrefixSupplier, "supplier")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Get(c.Request.Context(), identity, supplierID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *SupplierHandler) List(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	p := utils.ParsePagination(c)
	result, err := h.service.List(c.Request.Context(), identity, dto.ListSuppliersRequest{
		CompanyID: c.Query("company_id"),
		Status:    c.Query("status"),
		Search:    c.Query("search"),
		Page:      p.Page,
		PageSize:  p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}
