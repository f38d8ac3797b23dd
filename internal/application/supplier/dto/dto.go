package dto

import (
	"time"

	"github.com/prism-finance/prism/internal/domain/supplier"
	"github.com/prism-finance/prism/internal/shared/mapper"
)

type SupplierDTO struct {
	ID                string         `json:"id"`
	CompanyID         string         `json:"company_id"`
	Name              string         `json:"name"`
	SIRET             string         `json:"siret"`
	VATNumber         string         `json:"vat_number"`
	Profession        string         `json:"profession"`
	Address           string         `json:"address"`
	PostalCode        string         `json:"postal_code"`
	City              string         `json:"city"`
	Country           string         `json:"country"`
	IBAN              string         `json:"iban"`
	BIC               string         `json:"bic"`
	Emails            []string       `json:"emails"`
	Phone             string         `json:"phone"`
	Status            string         `json:"status"`
	ContractVariables map[string]any `json:"contract_variables"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

type CreateSupplierRequest struct {
	CompanyID         string         `json:"company_id"`
	Name              string         `json:"name" binding:"required,max=200"`
	SIRET             string         `json:"siret" binding:"required,max=20"`
	VATNumber         string         `json:"vat_number" binding:"omitempty,max=32"`
	Profession        string         `json:"profession" binding:"omitempty,max=100"`
	Address           string         `json:"address" binding:"omitempty,max=255"`
	PostalCode        string         `json:"postal_code" binding:"omitempty,max=16"`
	City              string         `json:"city" binding:"omitempty,max=100"`
	Country           string         `json:"country" binding:"omitempty,max=100"`
	IBAN              string         `json:"iban" binding:"omitempty,max=42"`
	BIC               string         `json:"bic" binding:"omitempty,max=11"`
	Emails            []string       `json:"emails" binding:"omitempty,dive,email"`
	Phone             string         `json:"phone" binding:"omitempty,max=32"`
	ContractVariables map[string]any `json:"contract_variables"`
}

// UpdateSupplierRequest changes only the fields that are set.
type UpdateSupplierRequest struct {
	Name              *string         `json:"name" binding:"omitempty,min=1,max=200"`
	SIRET             *string         `json:"siret" binding:"omitempty,min=1,max=20"`
	VATNumber         *string         `json:"vat_number" binding:"omitempty,max=32"`
	Profession        *string         `json:"profession" binding:"omitempty,max=100"`
	Address           *string         `json:"address" binding:"omitempty,max=255"`
	PostalCode        *string         `json:"postal_code" binding:"omitempty,max=16"`
	City              *string         `json:"city" binding:"omitempty,max=100"`
	Country           *string         `json:"country" binding:"omitempty,max=100"`
	IBAN              *string         `json:"iban" binding:"omitempty,max=42"`
	BIC               *string         `json:"bic" binding:"omitempty,max=11"`
	Emails            *[]string       `json:"emails"`
	Phone             *string         `json:"phone" binding:"omitempty,max=32"`
	Status            *string         `json:"status" binding:"omitempty,oneof=active inactive"`
	ContractVariables *map[string]any `json:"contract_variables"`
}

type ListSuppliersRequest struct {
	CompanyID string
	Status    string
	Search    string
	Page      int
	PageSize  int
}

type ListSuppliersResponse struct {
	Items    []*SupplierDTO `json:"items"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

func ToSupplierDTO(s *supplier.Supplier) *SupplierDTO {
	if s == nil {
		return nil
	}
	return &SupplierDTO{
		ID:                s.ID(),
		CompanyID:         s.CompanyID(),
		Name:              s.Name(),
		SIRET:             s.SIRET(),
		VATNumber:         s.VATNumber(),
		Profession:        s.Profession(),
		Address:           s.Address(),
		PostalCode:        s.PostalCode(),
		City:              s.City(),
		Country:           s.Country(),
		IBAN:              s.IBAN(),
		BIC:               s.BIC(),
		Emails:            s.Emails(),
		Phone:             s.Phone(),
		Status:            string(s.Status()),
		ContractVariables: s.ContractVariables(),
		CreatedAt:         s.CreatedAt(),
		UpdatedAt:         s.UpdatedAt(),
	}
}

func ToSupplierDTOList(items []*supplier.Supplier) []*SupplierDTO {
	out := mapper.MapSlice(items, ToSupplierDTO)
	if out == nil {
		return []*SupplierDTO{}
	}
	return out
}
