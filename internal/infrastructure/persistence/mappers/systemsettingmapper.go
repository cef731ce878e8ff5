package mappers

import (
	"holzwerk/internal/domain/setting"
	"holzwerk/internal/infrastructure/persistence/models"
)

type SystemSettingMapper interface {
	ToEntity(model *models.SystemSettingModel) *setting.SystemSetting
	ToModel(entity *setting.SystemSetting) *models.SystemSettingModel
	ToEntities(models []*models.SystemSettingModel) []*setting.SystemSetting
}

type SystemSettingMapperImpl struct{}

func NewSystemSettingMapper() SystemSettingMapper {
	return &SystemSettingMapperImpl{}
}

func (m *SystemSettingMapperImpl) ToEntity(model *models.SystemSettingModel) *setting.SystemSetting {
	if model == nil {
		return nil
	}

	return setting.ReconstructSystemSetting(
		model.ID,
		model.Category,
		model.Key,
		model.Value,
		setting.ValueType(model.ValueType),
		model.Description,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *SystemSettingMapperImpl) ToModel(entity *setting.SystemSetting) *models.SystemSettingModel {
	if entity == nil {
		return nil
	}

	return &models.SystemSettingModel{
		ID:          entity.ID(),
		Category:    entity.Category(),
		Key:         entity.Key(),
		Value:       entity.Value(),
		ValueType:   string(entity.ValueType()),
		Description: entity.Description(),
		Version:     entity.Version(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *SystemSettingMapperImpl) ToEntities(modelList []*models.SystemSettingModel) []*setting.SystemSetting {
	entities := make([]*setting.SystemSetting, 0, len(modelList))
	for _, model := range modelList {
		if entity := m.ToEntity(model); entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities
}
