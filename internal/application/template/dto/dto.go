package dto

import (
	"time"

	"github.com/prism-finance/prism/internal/domain/template"
	"github.com/prism-finance/prism/internal/shared/mapper"
)

type TemplateDTO struct {
	ID                 string    `json:"id"`
	CompanyID          string    `json:"company_id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	FileName           string    `json:"file_name"`
	Variables          []string  `json:"variables"`
	ValidityPeriodDays *int      `json:"validity_period_days,omitempty"`
	CreatedBy          string    `json:"created_by"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// UploadedFile is a template document received from the caller.
type UploadedFile struct {
	FileName string
	Data     []byte
}

type UploadTemplateRequest struct {
	CompanyID          string
	Name               string
	Description        string
	ValidityPeriodDays *int
	File               UploadedFile
}

type UpdateTemplateRequest struct {
	Name               *string
	Description        *string
	ValidityPeriodDays *int
	ClearValidity      bool
	File               *UploadedFile
}

type ListTemplatesRequest struct {
	CompanyID string
	Search    string
	Page      int
	PageSize  int
}

type ListTemplatesResponse struct {
	Items    []*TemplateDTO `json:"items"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

type TemplateFile struct {
	FileName string
	Data     []byte
}

func ToTemplateDTO(t *template.Template) *TemplateDTO {
	if t == nil {
		return nil
	}
	return &TemplateDTO{
		ID:                 t.ID(),
		CompanyID:          t.CompanyID(),
		Name:               t.Name(),
		Description:        t.Description(),
		FileName:           t.FileName(),
		Variables:          t.Variables(),
		ValidityPeriodDays: t.ValidityPeriodDays(),
		CreatedBy:          t.CreatedBy(),
		CreatedAt:          t.CreatedAt(),
		UpdatedAt:          t.UpdatedAt(),
	}
}

func ToTemplateDTOList(items []*template.Template) []*TemplateDTO {
	out := mapper.MapSlice(items, ToTemplateDTO)
	if out == nil {
		return []*TemplateDTO{}
	}
	return out
}
