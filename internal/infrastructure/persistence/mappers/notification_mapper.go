package mappers

import (
	"fmt"

	"github.com/prism-finance/prism/internal/domain/notification"
	"github.com/prism-finance/prism/internal/infrastructure/persistence/models"
)

type NotificationMapper interface {
	ToEntity(model *models.NotificationModel) (*notification.Notification, error)
	ToModel(entity *notification.Notification) *models.NotificationModel
	ToEntities(models []*models.NotificationModel) ([]*notification.Notification, error)
	ToModels(entities []*notification.Notification) []*models.NotificationModel
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToEntity(model *models.NotificationModel) (*notification.Notification, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := notification.ReconstructNotification(notification.ReconstructParams{
		ID:         model.ID,
		UserID:     model.UserID,
		CompanyID:  model.CompanyID,
		Type:       notification.Type(model.Type),
		Title:      model.Title,
		Message:    model.Message,
		TargetID:   model.TargetID,
		TargetType: model.TargetType,
		Read:       model.IsRead,
		ReadAt:     model.ReadAt,
		CreatedAt:  model.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct notification entity: %w", err)
	}
	return entity, nil
}

func (m *NotificationMapperImpl) ToModel(entity *notification.Notification) *models.NotificationModel {
	if entity == nil {
		return nil
	}
	return &models.NotificationModel{
		ID:         entity.ID(),
		UserID:     entity.UserID(),
		CompanyID:  entity.CompanyID(),
		Type:       entity.Type().String(),
		Title:      entity.Title(),
		Message:    entity.Message(),
		TargetID:   entity.TargetID(),
		TargetType: entity.TargetType(),
		IsRead:     entity.IsRead(),
		ReadAt:     entity.ReadAt(),
		CreatedAt:  entity.CreatedAt(),
	}
}

func (m *NotificationMapperImpl) ToEntities(list []*models.NotificationModel) ([]*notification.Notification, error) {
	out := make([]*notification.Notification, 0, len(list))
	for _, model := range list {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		out = append(out, entity)
	}
	return out, nil
}

func (m *NotificationMapperImpl) ToModels(entities []*notification.Notification) []*models.NotificationModel {
	out := make([]*models.NotificationModel, 0, len(entities))
	for _, entity := range entities {
		out = append(out, m.ToModel(entity))
	}
	return out
}
