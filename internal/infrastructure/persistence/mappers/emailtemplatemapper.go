package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"holzwerk/internal/domain/notification"
	"holzwerk/internal/infrastructure/persistence/models"
)

type EmailTemplateMapper interface {
	ToEntity(model *models.EmailTemplateModel) (*notification.EmailTemplate, error)
	ToModel(entity *notification.EmailTemplate) (*models.EmailTemplateModel, error)
	ToEntities(models []*models.EmailTemplateModel) ([]*notification.EmailTemplate, error)
}

type EmailTemplateMapperImpl struct{}

func NewEmailTemplateMapper() EmailTemplateMapper {
	return &EmailTemplateMapperImpl{}
}

func (m *EmailTemplateMapperImpl) ToEntity(model *models.EmailTemplateModel) (*notification.EmailTemplate, error) {
	if model == nil {
		return nil, nil
	}

	var variables []string
	if len(model.Variables) > 0 {
		if err := json.Unmarshal(model.Variables, &variables); err != nil {
			return nil, fmt.Errorf("failed to unmarshal variables: %w", err)
		}
	}
	if variables == nil {
		variables = []string{}
	}

	entity, err := notification.ReconstructEmailTemplate(
		model.ID,
		model.Key,
		model.TemplateType,
		model.Name,
		model.Subject,
		model.HTMLBody,
		model.TextBody,
		variables,
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct email template entity: %w", err)
	}

	return entity, nil
}

func (m *EmailTemplateMapperImpl) ToModel(entity *notification.EmailTemplate) (*models.EmailTemplateModel, error) {
	if entity == nil {
		return nil, nil
	}

	var variablesJSON datatypes.JSON
	if variables := entity.Variables(); len(variables) > 0 {
		data, err := json.Marshal(variables)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal variables: %w", err)
		}
		variablesJSON = datatypes.JSON(data)
	}

	model := &models.EmailTemplateModel{
		ID:           entity.ID(),
		Key:          entity.Key(),
		TemplateType: entity.TemplateType(),
		Name:         entity.Name(),
		Subject:      entity.Subject(),
		HTMLBody:     entity.HTMLBody(),
		TextBody:     entity.TextBody(),
		Variables:    variablesJSON,
		Active:       entity.Active(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}

	return model, nil
}

func (m *EmailTemplateMapperImpl) ToEntities(modelList []*models.EmailTemplateModel) ([]*notification.EmailTemplate, error) {
	entities := make([]*notification.EmailTemplate, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}
