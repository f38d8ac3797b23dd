package mappers

import (
	"fmt"

	"github.com/prism-finance/prism/internal/domain/document"
	"github.com/prism-finance/prism/internal/infrastructure/persistence/models"
)

type DocumentMapper interface {
	ToEntity(model *models.DocumentModel) (*document.Document, error)
	ToModel(entity *document.Document) *models.DocumentModel
	ToEntities(models []*models.DocumentModel) ([]*document.Document, error)
}

type DocumentMapperImpl struct{}

func NewDocumentMapper() DocumentMapper {
	return &DocumentMapperImpl{}
}

func (m *DocumentMapperImpl) ToEntity(model *models.DocumentModel) (*document.Document, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := document.ReconstructDocument(document.ReconstructParams{
		ID:              model.ID,
		CompanyID:       model.CompanyID,
		SupplierID:      model.SupplierID,
		Name:            model.Name,
		Category:        model.Category,
		FileName:        model.FileName,
		FilePath:        model.FilePath,
		Status:          document.Status(model.Status),
		ValidationNotes: model.ValidationNotes,
		ValidatedBy:     stringValue(model.ValidatedBy),
		ValidatedAt:     model.ValidatedAt,
		UploadedBy:      model.UploadedBy,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct document entity: %w", err)
	}
	return entity, nil
}

func (m *DocumentMapperImpl) ToModel(entity *document.Document) *models.DocumentModel {
	if entity == nil {
		return nil
	}
	return &models.DocumentModel{
		ID:              entity.ID(),
		CompanyID:       entity.CompanyID(),
		SupplierID:      entity.SupplierID(),
		Name:            entity.Name(),
		Category:        entity.Category(),
		FileName:        entity.FileName(),
		FilePath:        entity.FilePath(),
		Status:          string(entity.Status()),
		ValidationNotes: entity.ValidationNotes(),
		ValidatedBy:     nullableString(entity.ValidatedBy()),
		ValidatedAt:     entity.ValidatedAt(),
		UploadedBy:      entity.UploadedBy(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}
}

func (m *DocumentMapperImpl) ToEntities(list []*models.DocumentModel) ([]*document.Document, error) {
	out := make([]*document.Document, 0, len(list))
	for _, model := range list {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		out = append(out, entity)
	}
	return out, nil
}
