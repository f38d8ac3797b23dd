package dto

import (
	"time"

	"github.com/prism-finance/prism/internal/domain/contract"
	"github.com/prism-finance/prism/internal/shared/mapper"
)

type SignatureDTO struct {
	Name     string    `json:"name"`
	Surname  string    `json:"surname"`
	UserID   string    `json:"user_id"`
	SignedAt time.Time `json:"signed_at"`
}

type ContractDTO struct {
	ID                string         `json:"id"`
	CompanyID         string         `json:"company_id"`
	TemplateID        string         `json:"template_id"`
	SupplierID        string         `json:"supplier_id"`
	Name              string         `json:"name"`
	Variables         map[string]any `json:"variables"`
	Content           string         `json:"content"`
	FilePath          string         `json:"file_path"`
	Status            string         `json:"status"`
	SupplierSignature *SignatureDTO  `json:"supplier_signature,omitempty"`
	AdminSignature    *SignatureDTO  `json:"admin_signature,omitempty"`
	ExpiryDate        *time.Time     `json:"expiry_date,omitempty"`
	CreatedBy         string         `json:"created_by"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

type GenerateContractRequest struct {
	TemplateID string         `json:"template_id" binding:"required"`
	SupplierID string         `json:"supplier_id" binding:"required"`
	Name       string         `json:"name" binding:"omitempty,max=200"`
	Variables  map[string]any `json:"variables"`
}

type SignContractRequest struct {
	SignerName    string `json:"signer_name" binding:"required,max=100"`
	SignerSurname string `json:"signer_surname" binding:"required,max=100"`
}

type ListContractsRequest struct {
	SupplierID string
	TemplateID string
	Status     string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

type ListContractsResponse struct {
	Items    []*ContractDTO `json:"items"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// ContractFile is a stored contract file ready to be streamed.
type ContractFile struct {
	FileName    string
	ContentType string
	Data        []byte
}

func toSignatureDTO(s *contract.Signature) *SignatureDTO {
	if s == nil {
		return nil
	}
	return &SignatureDTO{
		Name:     s.Name,
		Surname:  s.Surname,
		UserID:   s.UserID,
		SignedAt: s.SignedAt,
	}
}

func ToContractDTO(c *contract.Contract) *ContractDTO {
	if c == nil {
		return nil
	}
	return &ContractDTO{
		ID:                c.ID(),
		CompanyID:         c.CompanyID(),
		TemplateID:        c.TemplateID(),
		SupplierID:        c.SupplierID(),
		Name:              c.Name(),
		Variables:         c.Variables(),
		Content:           c.Content(),
		FilePath:          c.FilePath(),
		Status:            c.Status().String(),
		SupplierSignature: toSignatureDTO(c.SupplierSignature()),
		AdminSignature:    toSignatureDTO(c.AdminSignature()),
		ExpiryDate:        c.ExpiryDate(),
		CreatedBy:         c.CreatedBy(),
		CreatedAt:         c.CreatedAt(),
		UpdatedAt:         c.UpdatedAt(),
	}
}

func ToContractDTOList(items []*contract.Contract) []*ContractDTO {
	out := mapper.MapSlice(items, ToContractDTO)
	if out == nil {
		return []*ContractDTO{}
	}
	return out
}
