package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/prism-finance/prism/internal/domain/supplier"
	"github.com/prism-finance/prism/internal/infrastructure/persistence/models"
)

type SupplierMapper interface {
	ToEntity(model *models.SupplierModel) (*supplier.Supplier, error)
	ToModel(entity *supplier.Supplier) *models.SupplierModel
	ToEntities(models []*models.SupplierModel) ([]*supplier.Supplier, error)
}

type SupplierMapperImpl struct{}

func NewSupplierMapper() SupplierMapper {
	return &SupplierMapperImpl{}
}

func (m *SupplierMapperImpl) ToEntity(model *models.SupplierModel) (*supplier.Supplier, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := supplier.ReconstructSupplier(supplier.ReconstructParams{
		ID:        model.ID,
		CompanyID: model.CompanyID,
		Details: supplier.Details{
			Name:              model.Name,
			SIRET:             model.SIRET,
			VATNumber:         model.VATNumber,
			Profession:        model.Profession,
			Address:           model.Address,
			PostalCode:        model.PostalCode,
			City:              model.City,
			Country:           model.Country,
			IBAN:              model.IBAN,
			BIC:               model.BIC,
			Emails:            []string(model.Emails),
			Phone:             model.Phone,
			ContractVariables: map[string]any(model.ContractVariables),
		},
		Status:    supplier.Status(model.Status),
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct supplier entity: %w", err)
	}
	return entity, nil
}

func (m *SupplierMapperImpl) ToModel(entity *supplier.Supplier) *models.SupplierModel {
	if entity == nil {
		return nil
	}
	return &models.SupplierModel{
		ID:                entity.ID(),
		CompanyID:         entity.CompanyID(),
		Name:              entity.Name(),
		SIRET:             entity.SIRET(),
		VATNumber:         entity.VATNumber(),
		Profession:        entity.Profession(),
		Address:           entity.Address(),
		PostalCode:        entity.PostalCode(),
		City:              entity.City(),
		Country:           entity.Country(),
		IBAN:              entity.IBAN(),
		BIC:               entity.BIC(),
		Emails:            datatypes.JSONSlice[string](entity.Emails()),
		Phone:             entity.Phone(),
		Status:            string(entity.Status()),
		ContractVariables: datatypes.JSONMap(entity.ContractVariables()),
		CreatedAt:         entity.CreatedAt(),
		UpdatedAt:         entity.UpdatedAt(),
	}
}

func (m *SupplierMapperImpl) ToEntities(list []*models.SupplierModel) ([]*supplier.Supplier, error) {
	out := make([]*supplier.Supplier, 0, len(list))
	for _, model := range list {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		out = append(out, entity)
	}
	return out, nil
}
