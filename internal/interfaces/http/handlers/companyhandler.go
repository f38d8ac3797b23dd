package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prism-finance/prism/internal/application/company/dto"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/id"
	"github.com/prism-finance/prism/internal/shared/logger"
	"github.com/prism-finance/prism/internal/shared/utils"
)

type companyService interface {
	Create(ctx context.Context, identity *authorization.Identity, req dto.CreateCompanyRequest) (*dto.CompanyDTO, error)
	Get(ctx context.Context, identity *authorization.Identity, id string) (*dto.CompanyDTO, error)
	List(ctx context.Context, identity *authorization.Identity, page, pageSize int) (*dto.ListCompaniesResponse, error)
}

type CompanyHandler struct {
	service companyService
	logger  logger.Interface
}

func NewCompanyHandler(service companyService, logger logger.Interface) *CompanyHandler {
	return &CompanyHandler{
		service: service,
		logger:  logger,
	}
}

func (h *CompanyHandler) Create(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create company", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.service.Create(c.Request.Context(), identity, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Company created successfully")
}

func (h *CompanyHandler) Get(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	companyID, err := utils.ParseSIDParam(c, "id", id.PrefixCompany, "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Get(c.Request.Context(), identity, companyID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CompanyHandler) List(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	p := utils.ParsePagination(c)
	result, err := h.service.List(c.Request.Context(), identity, p.Page, p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}
