package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/prism-finance/prism/internal/domain/template"
	"github.com/prism-finance/prism/internal/infrastructure/persistence/models"
)

type TemplateMapper interface {
	ToEntity(model *models.TemplateModel) (*template.Template, error)
	ToModel(entity *template.Template) *models.TemplateModel
	ToEntities(models []*models.TemplateModel) ([]*template.Template, error)
}

type TemplateMapperImpl struct{}

func NewTemplateMapper() TemplateMapper {
	return &TemplateMapperImpl{}
}

func (m *TemplateMapperImpl) ToEntity(model *models.TemplateModel) (*template.Template, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := template.ReconstructTemplate(template.ReconstructParams{
		ID:                 model.ID,
		CompanyID:          model.CompanyID,
		Name:               model.Name,
		Description:        model.Description,
		FileName:           model.FileName,
		FilePath:           model.FilePath,
		Variables:          []string(model.Variables),
		ValidityPeriodDays: model.ValidityPeriodDays,
		CreatedBy:          model.CreatedBy,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct template entity: %w", err)
	}
	return entity, nil
}

func (m *TemplateMapperImpl) ToModel(entity *template.Template) *models.TemplateModel {
	if entity == nil {
		return nil
	}
	return &models.TemplateModel{
		ID:                 entity.ID(),
		CompanyID:          entity.CompanyID(),
		Name:               entity.Name(),
		Description:        entity.Description(),
		FileName:           entity.FileName(),
		FilePath:           entity.FilePath(),
		Variables:          datatypes.JSONSlice[string](entity.Variables()),
		ValidityPeriodDays: entity.ValidityPeriodDays(),
		CreatedBy:          entity.CreatedBy(),
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
	}
}

func (m *TemplateMapperImpl) ToEntities(list []*models.TemplateModel) ([]*template.Template, error) {
	out := make([]*template.Template, 0, len(list))
	for _, model := range list {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		out = append(out, entity)
	}
	return out, nil
}
