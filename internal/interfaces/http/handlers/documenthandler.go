package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prism-finance/prism/internal/application/document/dto"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/id"
	"github.com/prism-finance/prism/internal/shared/logger"
	"github.com/prism-finance/prism/internal/shared/utils"
)

type documentService interface {
	Upload(ctx context.Context, identity *authorization.Identity, supplierID string, req dto.UploadDocumentRequest) (*dto.DocumentDTO, error)
	Review(ctx context.Context, identity *authorization.Identity, supplierID, id string, req dto.ReviewDocumentRequest) (*dto.DocumentDTO, error)
	Get(ctx context.Context, identity *authorization.Identity, supplierID, id string) (*dto.DocumentDTO, error)
	Download(ctx context.Context, identity *authorization.Identity, supplierID, id string) (*dto.DocumentFile, error)
	List(ctx context.Context, identity *authorization.Identity, supplierID string, req dto.ListDocumentsRequest) (*dto.ListDocumentsResponse, error)
	Delete(ctx context.Context, identity *authorization.Identity, supplierID, id string) error
}

// DocumentHandler serves the documents nested under /suppliers/:id.
type DocumentHandler struct {
	service        documentService
	maxUploadBytes int64
	logger         logger.Interface
}

func NewDocumentHandler(service documentService, maxUploadBytes int64, logger logger.Interface) *DocumentHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &DocumentHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

func documentParams(c *gin.Context, withDocument bool) (string, string, error) {
	supplierID, err := utils.ParseSIDParam(c, "id", id.PrefixSupplier, "supplier")
	if err != nil {
		return "", "", err
	}
	if !withDocument {
		return supplierID, "", nil
	}
	documentID, err := utils.ParseSIDParam(c, "document_id", id.PrefixDocument, "document")
	if err != nil {
		return "", "", err
	}
	return supplierID, documentID, nil
}

func (h *DocumentHandler) Upload(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	supplierID, _, err := documentParams(c, false)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	fileName, data, err := readUpload(c, "file", h.maxUploadBytes)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Upload(c.Request.Context(), identity, supplierID, dto.UploadDocumentRequest{
		Name:     c.PostForm("name"),
		Category: c.PostForm("category"),
		FileName: fileName,
		Data:     data,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Document uploaded successfully")
}

func (h *DocumentHandler) List(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	supplierID, _, err := documentParams(c, false)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p := utils.ParsePagination(c)
	result, err := h.service.List(c.Request.Context(), identity, supplierID, dto.ListDocumentsRequest{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *DocumentHandler) Get(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	supplierID, documentID, err := documentParams(c, true)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Get(c.Request.Context(), identity, supplierID, documentID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *DocumentHandler) Download(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	supplierID, documentID, err := documentParams(c, true)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	file, err := h.service.Download(c.Request.Context(), identity, supplierID, documentID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	sendFile(c, file.FileName, "", file.Data)
}

func (h *DocumentHandler) Review(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	supplierID, documentID, err := documentParams(c, true)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.ReviewDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for review document", "document_id", documentID, "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.service.Review(c.Request.Context(), identity, supplierID, documentID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Document status updated", result)
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	supplierID, documentID, err := documentParams(c, true)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), identity, supplierID, documentID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
