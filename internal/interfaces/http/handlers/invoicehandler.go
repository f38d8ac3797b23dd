package handlers

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prism-finance/prism/internal/application/invoice/dto"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/id"
	"github.com/prism-finance/prism/internal/shared/logger"
	"github.com/prism-finance/prism/internal/shared/utils"
)

const dueDateLayout = "2006-01-02"

type invoiceService interface {
	Upload(ctx context.Context, identity *authorization.Identity, req dto.UploadInvoiceRequest) (*dto.InvoiceDTO, error)
	UpdateStatus(ctx context.Context, identity *authorization.Identity, id string, req dto.UpdateInvoiceStatusRequest) (*dto.InvoiceDTO, error)
	Get(ctx context.Context, identity *authorization.Identity, id string) (*dto.InvoiceDTO, error)
	Download(ctx context.Context, identity *authorization.Identity, id string) (*dto.InvoiceFile, error)
	List(ctx context.Context, identity *authorization.Identity, req dto.ListInvoicesRequest) (*dto.ListInvoicesResponse, error)
	Delete(ctx context.Context, identity *authorization.Identity, id string) error
}

type InvoiceHandler struct {
	service        invoiceService
	maxUploadBytes int64
	logger         logger.Interface
}

func NewInvoiceHandler(service invoiceService, maxUploadBytes int64, logger logger.Interface) *InvoiceHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &InvoiceHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// parseAmountCents reads a decimal amount such as "1200.50" into cents.
func parseAmountCents(raw string) (int64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, errors.NewValidationError("amount must be a decimal number", raw)
	}
	return int64(math.Round(amount * 100)), nil
}

func (h *InvoiceHandler) Upload(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	supplierID := c.PostForm("supplier_id")
	if supplierID == "" {
		supplierID = identity.SupplierID
	}
	if err := id.ValidatePrefix(supplierID, id.PrefixSupplier); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("supplier_id is required"))
		return
	}
	orderID := c.PostForm("purchase_order_id")
	if orderID != "" {
		if err := id.ValidatePrefix(orderID, id.PrefixPurchaseOrder); err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid purchase_order_id", orderID))
			return
		}
	}

	amountCents, err := parseAmountCents(c.PostForm("amount"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	dueDate, err := time.Parse(dueDateLayout, c.PostForm("due_date"))
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("due_date must use the YYYY-MM-DD format"))
		return
	}

	fileName, data, err := readUpload(c, "file", h.maxUploadBytes)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Upload(c.Request.Context(), identity, dto.UploadInvoiceRequest{
		SupplierID:      supplierID,
		PurchaseOrderID: orderID,
		Number:          c.PostForm("number"),
		AmountCents:     amountCents,
		Currency:        c.PostForm("currency"),
		DueDate:         dueDate,
		Notes:           c.PostForm("notes"),
		FileName:        fileName,
		Data:            data,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Invoice uploaded successfully")
}

func (h *InvoiceHandler) List(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	p := utils.ParsePagination(c)
	result, err := h.service.List(c.Request.Context(), identity, dto.ListInvoicesRequest{
		SupplierID:      c.Query("supplier_id"),
		PurchaseOrderID: c.Query("purchase_order_id"),
		Status:          c.Query("status"),
		Page:            p.Page,
		PageSize:        p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	identity, invoiceID, ok := h.invoiceParam(c)
	if !ok {
		return
	}

	result, err := h.service.Get(c.Request.Context(), identity, invoiceID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *InvoiceHandler) Download(c *gin.Context) {
	identity, invoiceID, ok := h.invoiceParam(c)
	if !ok {
		return
	}

	file, err := h.service.Download(c.Request.Context(), identity, invoiceID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	sendFile(c, file.FileName, "", file.Data)
}

func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	identity, invoiceID, ok := h.invoiceParam(c)
	if !ok {
		return
	}

	var req dto.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for invoice status", "invoice_id", invoiceID, "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.service.UpdateStatus(c.Request.Context(), identity, invoiceID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Invoice status updated", result)
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	identity, invoiceID, ok := h.invoiceParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), identity, invoiceID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *InvoiceHandler) invoiceParam(c *gin.Context) (*authorization.Identity, string, bool) {
	identity, ok := requireIdentity(c)
	if !ok {
		return nil, "", false
	}

	invoiceID, err := utils.ParseSIDParam(c, "id", id.PrefixInvoice, "invoice")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return nil, "", false
	}
	return identity, invoiceID, true
}
