package mappers

import (
	"fmt"

	"github.com/prism-finance/prism/internal/domain/company"
	"github.com/prism-finance/prism/internal/infrastructure/persistence/models"
)

type CompanyMapper interface {
	ToEntity(model *models.CompanyModel) (*company.Company, error)
	ToModel(entity *company.Company) *models.CompanyModel
}

type CompanyMapperImpl struct{}

func NewCompanyMapper() CompanyMapper {
	return &CompanyMapperImpl{}
}

func (m *CompanyMapperImpl) ToEntity(model *models.CompanyModel) (*company.Company, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := company.ReconstructCompany(model.ID, model.Name, model.SIRET, model.Address, model.IsActive, model.CreatedAt, model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct company entity: %w", err)
	}
	return entity, nil
}

func (m *CompanyMapperImpl) ToModel(entity *company.Company) *models.CompanyModel {
	if entity == nil {
		return nil
	}
	return &models.CompanyModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		SIRET:     entity.SIRET(),
		Address:   entity.Address(),
		IsActive:  entity.IsActive(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}
