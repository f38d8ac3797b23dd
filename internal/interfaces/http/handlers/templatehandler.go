package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/prism-finance/prism/internal/application/template/dto"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/id"
	"github.com/prism-finance/prism/internal/shared/logger"
	"github.com/prism-finance/prism/internal/shared/utils"
)

type templateService interface {
	Upload(ctx context.Context, identity *authorization.Identity, req dto.UploadTemplateRequest) (*dto.TemplateDTO, error)
	Update(ctx context.Context, identity *authorization.Identity, id string, req dto.UpdateTemplateRequest) (*dto.TemplateDTO, error)
	Delete(ctx context.Context, identity *authorization.Identity, id string) error
	Get(ctx context.Context, identity *authorization.Identity, id string) (*dto.TemplateDTO, error)
	Download(ctx context.Context, identity *authorization.Identity, id string) (*dto.TemplateFile, error)
	List(ctx context.Context, identity *authorization.Identity, req dto.ListTemplatesRequest) (*dto.ListTemplatesResponse, error)
}

// TemplateHandler accepts template uploads as multipart forms.
type TemplateHandler struct {
	service        templateService
	maxUploadBytes int64
	logger         logger.Interface
}

func NewTemplateHandler(service templateService, maxUploadBytes int64, logger logger.Interface) *TemplateHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &TemplateHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// parseValidity reads validity_period in days. An empty value yields nil.
func parseValidity(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	days, err := cast.ToIntE(raw)
	if err != nil {
		return nil, errors.NewValidationError("validity_period must be a whole number of days")
	}
	return &days, nil
}

func (h *TemplateHandler) Upload(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	fileName, data, err := readUpload(c, "file", h.maxUploadBytes)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	validity, err := parseValidity(c.PostForm("validity_period"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Upload(c.Request.Context(), identity, dto.UploadTemplateRequest{
		CompanyID:          c.PostForm("company_id"),
		Name:               c.PostForm("name"),
		Description:        c.PostForm("description"),
		ValidityPeriodDays: validity,
		File: dto.UploadedFile{
			FileName: fileName,
			Data:     data,
		},
	})
	if err != nil {
		h.logger.Warnw("template upload failed", "file_name", fileName, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Template uploaded successfully")
}

func (h *TemplateHandler) Update(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	templateID, err := utils.ParseSIDParam(c, "id", id.PrefixTemplate, "template")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateTemplateRequest
	if v, ok := c.GetPostForm("name"); ok {
		req.Name = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		req.Description = &v
	}
	if v, ok := c.GetPostForm("validity_period"); ok {
		validity, err := parseValidity(v)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		req.ValidityPeriodDays = validity
		req.ClearValidity = validity == nil
	}

	if _, err := c.FormFile("file"); err == nil {
		fileName, data, err := readUpload(c, "file", h.maxUploadBytes)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		req.File = &dto.UploadedFile{FileName: fileName, Data: data}
	}

	result, err := h.service.Update(c.Request.Context(), identity, templateID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Template updated successfully", result)
}

func (h *TemplateHandler) Delete(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	templateID, err := utils.ParseSIDParam(c, "id", id.PrefixTemplate, "template")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), identity, templateID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *TemplateHandler) Get(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	templateID, err := utils.ParseSIDParam(c, "id", id.PrefixTemplate, "template")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Get(c.Request.Context(), identity, templateID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *TemplateHandler) Download(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	templateID, err := utils.ParseSIDParam(c, "id", id.PrefixTemplate, "template")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	file, err := h.service.Download(c.Request.Context(), identity, templateID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	sendFile(c, file.FileName, "", file.Data)
}

func (h *TemplateHandler) List(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	p := utils.ParsePagination(c)
	result, err := h.service.List(c.Request.Context(), identity, dto.ListTemplatesRequest{
		CompanyID: c.Query("company_id"),
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
