package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/prism-finance/prism/internal/application/user/dto"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/logger"
	"github.com/prism-finance/prism/internal/shared/utils"
)

type userService interface {
	CreateUser(ctx context.Context, identity *authorization.Identity, req dto.CreateUserRequest) (*dto.UserDTO, error)
	ListUsers(ctx context.Context, identity *authorization.Identity, req dto.ListUsersRequest) (*dto.ListUsersResponse, error)
}

type UserHandler struct {
	service userService
	logger  logger.Interface
}

func NewUserHandler(service userService, logger logger.Interface) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

func (h *UserHandler) Create(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.service.CreateUser(c.Request.Context(), identity, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created successfully")
}

// List supports company_id (super admin only), supplier_id and role filters.
func (h *UserHandler) List(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	p := utils.ParsePagination(c)
	result, err := h.service.ListUsers(c.Request.Context(), identity, dto.ListUsersRequest{
		CompanyID:  c.Query("company_id"),
		SupplierID: c.Query("supplier_id"),
		Role:       c.Query("role"),
		Page:       p.Page,
		PageSize:   p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}
