package mappers

import (
	"fmt"

	"github.com/prism-finance/prism/internal/domain/generalconditions"
	"github.com/prism-finance/prism/internal/infrastructure/persistence/models"
)

type GeneralConditionsMapper interface {
	ToEntity(model *models.GeneralConditionsModel) (*generalconditions.GeneralConditions, error)
	ToModel(entity *generalconditions.GeneralConditions) *models.GeneralConditionsModel
	ToEntities(models []*models.GeneralConditionsModel) ([]*generalconditions.GeneralConditions, error)
	AcceptanceToEntity(model *models.AcceptanceModel) *generalconditions.Acceptance
	AcceptanceToModel(entity *generalconditions.Acceptance) *models.AcceptanceModel
}

type GeneralConditionsMapperImpl struct{}

func NewGeneralConditionsMapper() GeneralConditionsMapper {
	return &GeneralConditionsMapperImpl{}
}

func (m *GeneralConditionsMapperImpl) ToEntity(model *models.GeneralConditionsModel) (*generalconditions.GeneralConditions, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := generalconditions.ReconstructGeneralConditions(generalconditions.ReconstructParams{
		ID:        model.ID,
		CompanyID: model.CompanyID,
		Version:   model.Version,
		Content:   model.Content,
		IsActive:  model.IsActive,
		CreatedBy: model.CreatedBy,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct general conditions entity: %w", err)
	}
	return entity, nil
}

func (m *GeneralConditionsMapperImpl) ToModel(entity *generalconditions.GeneralConditions) *models.GeneralConditionsModel {
	if entity == nil {
		return nil
	}
	return &models.GeneralConditionsModel{
		ID:        entity.ID(),
		CompanyID: entity.CompanyID(),
		Version:   entity.Version(),
		Content:   entity.Content(),
		IsActive:  entity.IsActive(),
		CreatedBy: entity.CreatedBy(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *GeneralConditionsMapperImpl) ToEntities(list []*models.GeneralConditionsModel) ([]*generalconditions.GeneralConditions, error) {
	out := make([]*generalconditions.GeneralConditions, 0, len(list))
	for _, model := range list {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		out = append(out, entity)
	}
	return out, nil
}

func (m *GeneralConditionsMapperImpl) AcceptanceToEntity(model *models.AcceptanceModel) *generalconditions.Acceptance {
	if model == nil {
		return nil
	}
	return generalconditions.ReconstructAcceptance(generalconditions.ReconstructAcceptanceParams{
		ID:           model.ID,
		ConditionsID: model.ConditionsID,
		SupplierID:   model.SupplierID,
		CompanyID:    model.CompanyID,
		AcceptedBy:   model.AcceptedBy,
		IPAddress:    model.IPAddress,
		AcceptedAt:   model.AcceptedAt,
	})
}

func (m *GeneralConditionsMapperImpl) AcceptanceToModel(entity *generalconditions.Acceptance) *models.AcceptanceModel {
	if entity == nil {
		return nil
	}
	return &models.AcceptanceModel{
		ID:           entity.ID(),
		ConditionsID: entity.ConditionsID(),
		SupplierID:   entity.SupplierID(),
		CompanyID:    entity.CompanyID(),
		AcceptedBy:   entity.AcceptedBy(),
		IPAddress:    entity.IPAddress(),
		AcceptedAt:   entity.AcceptedAt(),
	}
}
