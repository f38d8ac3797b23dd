package dto

import (
	"time"

	"github.com/prism-finance/prism/internal/domain/document"
	"github.com/prism-finance/prism/internal/shared/mapper"
)

type DocumentDTO struct {
	ID              string     `json:"id"`
	SupplierID      string     `json:"supplier_id"`
	Name            string     `json:"name"`
	Category        string     `json:"category"`
	FileName        string     `json:"file_name"`
	Status          string     `json:"status"`
	ValidationNotes string     `json:"validation_notes,omitempty"`
	ValidatedBy     string     `json:"validated_by,omitempty"`
	ValidatedAt     *time.Time `json:"validated_at,omitempty"`
	UploadedBy      string     `json:"uploaded_by"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type UploadDocumentRequest struct {
	Name     string
	Category string
	FileName string
	Data     []byte
}

type ReviewDocumentRequest struct {
	Status string `json:"status" binding:"required,oneof=pending validated rejected"`
	Notes  string `json:"notes" binding:"omitempty,max=2000"`
}

type ListDocumentsRequest struct {
	Category string
	Status   string
	Page     int
	PageSize int
}

type ListDocumentsResponse struct {
	Items    []*DocumentDTO `json:"items"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

type DocumentFile struct {
	FileName string
	Data     []byte
}

func ToDocumentDTO(d *document.Document) *DocumentDTO {
	if d == nil {
		return nil
	}
	return &DocumentDTO{
		ID:              d.ID(),
		SupplierID:      d.SupplierID(),
		Name:            d.Name(),
		Category:        d.Category(),
		FileName:        d.FileName(),
		Status:          string(d.Status()),
		ValidationNotes: d.ValidationNotes(),
		ValidatedBy:     d.ValidatedBy(),
		ValidatedAt:     d.ValidatedAt(),
		UploadedBy:      d.UploadedBy(),
		CreatedAt:       d.CreatedAt(),
		UpdatedAt:       d.UpdatedAt(),
	}
}

func ToDocumentDTOList(items []*document.Document) []*DocumentDTO {
	out := mapper.MapSlice(items, ToDocumentDTO)
	if out == nil {
		return []*DocumentDTO{}
	}
	return out
}
