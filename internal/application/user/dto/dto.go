package dto

import (
	"time"

	"github.com/prism-finance/prism/internal/domain/user"
	"github.com/prism-finance/prism/internal/shared/mapper"
)

type UserDTO struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Surname    string    `json:"surname"`
	Role       string    `json:"role"`
	CompanyID  string    `json:"company_id,omitempty"`
	SupplierID string    `json:"supplier_id,omitempty"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresIn   int64    `json:"expires_in"`
	User        *UserDTO `json:"user"`
}

type CreateUserRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8,max=72"`
	Name       string `json:"name" binding:"required,max=100"`
	Surname    string `json:"surname" binding:"required,max=100"`
	Role       string `json:"role" binding:"required,oneof=supplier admin super_admin"`
	CompanyID  string `json:"company_id"`
	SupplierID string `json:"supplier_id"`
}

type ListUsersRequest struct {
	CompanyID  string
	SupplierID string
	Role       string
	Page       int
	PageSize   int
}

type ListUsersResponse struct {
	Items    []*UserDTO `json:"items"`
	Total    int64      `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:         u.ID(),
		Email:      u.Email(),
		Name:       u.Name(),
		Surname:    u.Surname(),
		Role:       u.Role().String(),
		CompanyID:  u.CompanyID(),
		SupplierID: u.SupplierID(),
		IsActive:   u.IsActive(),
		CreatedAt:  u.CreatedAt(),
	}
}

func ToUserDTOList(users []*user.User) []*UserDTO {
	out := mapper.MapSlice(users, ToUserDTO)
	if out == nil {
		return []*UserDTO{}
	}
	return out
}
