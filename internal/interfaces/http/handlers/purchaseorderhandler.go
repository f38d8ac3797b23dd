package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prism-finance/prism/internal/application/purchaseorder/dto"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/id"
	"github.com/prism-finance/prism/internal/shared/logger"
	"github.com/prism-finance/prism/internal/shared/utils"
)

type purchaseOrderService interface {
	Create(ctx context.Context, identity *authorization.Identity, req dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderDTO, error)
	Update(ctx context.Context, identity *authorization.Identity, id string, req dto.UpdatePurchaseOrderRequest) (*dto.PurchaseOrderDTO, error)
	Send(ctx context.Context, identity *authorization.Identity, id string) (*dto.PurchaseOrderDTO, error)
	Cancel(ctx context.Context, identity *authorization.Identity, id string) (*dto.PurchaseOrderDTO, error)
	Sign(ctx context.Context, identity *authorization.Identity, id string) (*dto.PurchaseOrderDTO, error)
	Get(ctx context.Context, identity *authorization.Identity, id string) (*dto.PurchaseOrderDTO, error)
	List(ctx context.Context, identity *authorization.Identity, req dto.ListPurchaseOrdersRequest) (*dto.ListPurchaseOrdersResponse, error)
}

type transitionFunc func(ctx context.Context, identity *authorization.Identity, id string) (*dto.PurchaseOrderDTO, error)

type PurchaseOrderHandler struct {
	service purchaseOrderService
	logger  logger.Interface
}

func NewPurchaseOrderHandler(service purchaseOrderService, logger logger.Interface) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{
		service: service,
		logger:  logger,
	}
}

func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req dto.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create purchase order", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.service.Create(c.Request.Context(), identity, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Purchase order created successfully")
}

func (h *PurchaseOrderHandler) List(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	p := utils.ParsePagination(c)
	result, err := h.service.List(c.Request.Context(), identity, dto.ListPurchaseOrdersRequest{
		SupplierID: c.Query("supplier_id"),
		Status:     c.Query("status"),
		Page:       p.Page,
		PageSize:   p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *PurchaseOrderHandler) Get(c *gin.Context) {
	identity, orderID, ok := h.orderParam(c)
	if !ok {
		return
	}

	result, err := h.service.Get(c.Request.Context(), identity, orderID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *PurchaseOrderHandler) Update(c *gin.Context) {
	identity, orderID, ok := h.orderParam(c)
	if !ok {
		return
	}

	var req dto.UpdatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update purchase order", "id", orderID, "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.service.Update(c.Request.Context(), identity, orderID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Purchase order updated", result)
}

func (h *PurchaseOrderHandler) Send(c *gin.Context) {
	h.transition(c, h.service.Send, "Purchase order sent")
}

func (h *PurchaseOrderHandler) Sign(c *gin.Context) {
	h.transition(c, h.service.Sign, "Purchase order signed")
}

func (h *PurchaseOrderHandler) Cancel(c *gin.Context) {
	h.transition(c, h.service.Cancel, "Purchase order cancelled")
}

func (h *PurchaseOrderHandler) transition(c *gin.Context, apply transitionFunc, message string) {
	identity, orderID, ok := h.orderParam(c)
	if !ok {
		return
	}

	result, err := apply(c.Request.Context(), identity, orderID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, message, result)
}

func (h *PurchaseOrderHandler) orderParam(c *gin.Context) (*authorization.Identity, string, bool) {
	identity, ok := requireIdentity(c)
	if !ok {
		return nil, "", false
	}

	orderID, err := utils.ParseSIDParam(c, "id", id.PrefixPurchaseOrder, "purchase order")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return nil, "", false
	}
	return identity, orderID, true
}
