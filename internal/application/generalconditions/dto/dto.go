package dto

import (
	"time"

	"github.com/prism-finance/prism/internal/domain/generalconditions"
	"github.com/prism-finance/prism/internal/shared/mapper"
)

type ConditionsDTO struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Version   string    `json:"version"`
	Content   string    `json:"content"`
	IsActive  bool      `json:"is_active"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateConditionsRequest struct {
	CompanyID string `json:"company_id"`
	Version   string `json:"version" binding:"required,max=64"`
	Content   string `json:"content" binding:"required"`
	IsActive  bool   `json:"is_active"`
}

type UpdateConditionsRequest struct {
	Version  *string `json:"version" binding:"omitempty,max=64"`
	Content  *string `json:"content"`
	IsActive *bool   `json:"is_active"`
}

type ListConditionsRequest struct {
	CompanyID  string
	ActiveOnly bool
}

type AcceptanceDTO struct {
	ID           string    `json:"id"`
	ConditionsID string    `json:"conditions_id"`
	SupplierID   string    `json:"supplier_id"`
	AcceptedBy   string    `json:"accepted_by"`
	IPAddress    string    `json:"ip_address,omitempty"`
	AcceptedAt   time.Time `json:"accepted_at"`
}

type AcceptConditionsRequest struct {
	ConditionsID string `json:"conditions_id" binding:"required"`
}

// AcceptanceStatusDTO tells a supplier whether it is up to date with the
// active conditions of its company.
type AcceptanceStatusDTO struct {
	Accepted     bool   `json:"accepted"`
	ConditionsID string `json:"conditions_id,omitempty"`
	Version      string `json:"version,omitempty"`
}

func ToConditionsDTO(g *generalconditions.GeneralConditions) *ConditionsDTO {
	if g == nil {
		return nil
	}
	return &ConditionsDTO{
		ID:        g.ID(),
		CompanyID: g.CompanyID(),
		Version:   g.Version(),
		Content:   g.Content(),
		IsActive:  g.IsActive(),
		CreatedBy: g.CreatedBy(),
		CreatedAt: g.CreatedAt(),
		UpdatedAt: g.UpdatedAt(),
	}
}

func ToConditionsDTOList(items []*generalconditions.GeneralConditions) []*ConditionsDTO {
	out := mapper.MapSlice(items, ToConditionsDTO)
	if out == nil {
		return []*ConditionsDTO{}
	}
	return out
}

func ToAcceptanceDTO(a *generalconditions.Acceptance) *AcceptanceDTO {
	if a == nil {
		return nil
	}
	return &AcceptanceDTO{
		ID:           a.ID(),
		ConditionsID: a.ConditionsID(),
		SupplierID:   a.SupplierID(),
		AcceptedBy:   a.AcceptedBy(),
		IPAddress:    a.IPAddress(),
		AcceptedAt:   a.AcceptedAt(),
	}
}

func ToAcceptanceDTOList(items []*generalconditions.Acceptance) []*AcceptanceDTO {
	out := mapper.MapSlice(items, ToAcceptanceDTO)
	if out == nil {
		return []*AcceptanceDTO{}
	}
	return out
}
