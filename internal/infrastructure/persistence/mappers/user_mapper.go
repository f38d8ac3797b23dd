package mappers

import (
	"fmt"

	"github.com/prism-finance/prism/internal/domain/user"
	"github.com/prism-finance/prism/internal/infrastructure/persistence/models"
	"github.com/prism-finance/prism/internal/shared/authorization"
)

type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := user.ReconstructUser(user.ReconstructParams{
		ID:           model.ID,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Name:         model.Name,
		Surname:      model.Surname,
		Role:         authorization.UserRole(model.Role),
		CompanyID:    stringValue(model.CompanyID),
		SupplierID:   stringValue(model.SupplierID),
		IsActive:     model.IsActive,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}
	return entity, nil
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}
	return &models.UserModel{
		ID:           entity.ID(),
		Email:        entity.Email(),
		PasswordHash: entity.PasswordHash(),
		Name:         entity.Name(),
		Surname:      entity.Surname(),
		Role:         entity.Role().String(),
		CompanyID:    nullableString(entity.CompanyID()),
		SupplierID:   nullableString(entity.SupplierID()),
		IsActive:     entity.IsActive(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ToEntities(list []*models.UserModel) ([]*user.User, error) {
	out := make([]*user.User, 0, len(list))
	for _, model := range list {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		out = append(out, entity)
	}
	return out, nil
}
