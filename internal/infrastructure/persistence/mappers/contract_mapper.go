package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/prism-finance/prism/internal/domain/contract"
	vo "github.com/prism-finance/prism/internal/domain/contract/valueobjects"
	"github.com/prism-finance/prism/internal/infrastructure/persistence/models"
)

type ContractMapper interface {
	ToEntity(model *models.ContractModel) (*contract.Contract, error)
	ToModel(entity *contract.Contract) *models.ContractModel
	ToEntities(models []*models.ContractModel) ([]*contract.Contract, error)
	// TransitionColumns returns the only columns a status transition may write.
	TransitionColumns(entity *contract.Contract) map[string]interface{}
}

type ContractMapperImpl struct{}

func NewContractMapper() ContractMapper {
	return &ContractMapperImpl{}
}

func (m *ContractMapperImpl) ToEntity(model *models.ContractModel) (*contract.Contract, error) {
	if model == nil {
		return nil, nil
	}

	var supplierSig, adminSig *contract.Signature
	if model.SupplierSignedAt != nil {
		supplierSig = &contract.Signature{
			Name:     stringValue(model.SupplierSignerName),
			Surname:  stringValue(model.SupplierSignerSurname),
			UserID:   stringValue(model.SupplierSignerID),
			SignedAt: *model.SupplierSignedAt,
		}
	}
	if model.AdminSignedAt != nil {
		adminSig = &contract.Signature{
			Name:     stringValue(model.AdminSignerName),
			Surname:  stringValue(model.AdminSignerSurname),
			UserID:   stringValue(model.AdminSignerID),
			SignedAt: *model.AdminSignedAt,
		}
	}

	entity, err := contract.ReconstructContract(contract.ReconstructParams{
		ID:                model.ID,
		CompanyID:         model.CompanyID,
		TemplateID:        model.TemplateID,
		SupplierID:        model.SupplierID,
		Name:              model.Name,
		Variables:         map[string]any(model.Variables),
		Content:           model.Content,
		FilePath:          model.FilePath,
		Status:            vo.ContractStatus(model.Status),
		SupplierSignature: supplierSig,
		AdminSignature:    adminSig,
		ExpiryDate:        model.ExpiryDate,
		CreatedBy:         model.CreatedBy,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct contract entity: %w", err)
	}
	return entity, nil
}

func (m *ContractMapperImpl) ToModel(entity *contract.Contract) *models.ContractModel {
	if entity == nil {
		return nil
	}
	model := &models.ContractModel{
		ID:         entity.ID(),
		CompanyID:  entity.CompanyID(),
		TemplateID: entity.TemplateID(),
		SupplierID: entity.SupplierID(),
		Name:       entity.Name(),
		Variables:  datatypes.JSONMap(entity.Variables()),
		Content:    entity.Content(),
		FilePath:   entity.FilePath(),
		Status:     entity.Status().String(),
		ExpiryDate: entity.ExpiryDate(),
		CreatedBy:  entity.CreatedBy(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}
	if sig := entity.SupplierSignature(); sig != nil {
		signedAt := sig.SignedAt
		model.SupplierSignerName = &sig.Name
		model.SupplierSignerSurname = &sig.Surname
		model.SupplierSignerID = nullableString(sig.UserID)
		model.SupplierSignedAt = &signedAt
	}
	if sig := entity.AdminSignature(); sig != nil {
		signedAt := sig.SignedAt
		model.AdminSignerName = &sig.Name
		model.AdminSignerSurname = &sig.Surname
		model.AdminSignerID = nullableString(sig.UserID)
		model.AdminSignedAt = &signedAt
	}
	return model
}

func (m *ContractMapperImpl) ToEntities(list []*models.ContractModel) ([]*contract.Contract, error) {
	out := make([]*contract.Contract, 0, len(list))
	for _, model := range list {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		out = append(out, entity)
	}
	return out, nil
}

func (m *ContractMapperImpl) TransitionColumns(entity *contract.Contract) map[string]interface{} {
	model := m.ToModel(entity)
	return map[string]interface{}{
		"status":                  model.Status,
		"supplier_signer_name":    model.SupplierSignerName,
		"supplier_signer_surname": model.SupplierSignerSurname,
		"supplier_signer_id":      model.SupplierSignerID,
		"supplier_signed_at":      model.SupplierSignedAt,
		"admin_signer_name":       model.AdminSignerName,
		"admin_signer_surname":    model.AdminSignerSurname,
		"admin_signer_id":         model.AdminSignerID,
		"admin_signed_at":         model.AdminSignedAt,
		"updated_at":              model.UpdatedAt,
	}
}
