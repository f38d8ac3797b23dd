package dto

import (
	"time"

	"github.com/prism-finance/prism/internal/domain/company"
	"github.com/prism-finance/prism/internal/shared/mapper"
)

type CompanyDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SIRET     string    `json:"siret"`
	Address   string    `json:"address"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateCompanyRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	SIRET   string `json:"siret" binding:"required,max=20"`
	Address string `json:"address" binding:"omitempty,max=255"`
}

type ListCompaniesResponse struct {
	Items    []*CompanyDTO `json:"items"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

func ToCompanyDTO(c *company.Company) *CompanyDTO {
	if c == nil {
		return nil
	}
	return &CompanyDTO{
		ID:        c.ID(),
		Name:      c.Name(),
		SIRET:     c.SIRET(),
		Address:   c.Address(),
		IsActive:  c.IsActive(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func ToCompanyDTOList(items []*company.Company) []*CompanyDTO {
	out := mapper.MapSlice(items, ToCompanyDTO)
	if out == nil {
		return []*CompanyDTO{}
	}
	return out
}
