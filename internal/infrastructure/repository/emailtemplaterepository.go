package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"holzwerk/internal/domain/notification"
	"holzwerk/internal/infrastructure/persistence/mappers"
	"holzwerk/internal/infrastructure/persistence/models"
	"holzwerk/internal/shared/constants"
	"holzwerk/internal/shared/logger"
)

// legacyTemplateValue is the JSON shape of templates stored as rows in the
// system_settings table (category "email_template"). New templates live in
// the email_templates table; the legacy path stays readable so older data
// keeps working.
type legacyTemplateValue struct {
	Type      string   `json:"type"`
	Name      string   `json:"name"`
	Subject   string   `json:"subject"`
	HTMLBody  string   `json:"html_body"`
	TextBody  string   `json:"text_body"`
	Variables []string `json:"variables"`
	Active    *bool    `json:"active"`
}

type EmailTemplateRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.EmailTemplateMapper
	logger logger.Interface
}

func NewEmailTemplateRepository(db *gorm.DB, logger logger.Interface) notification.TemplateRepository {
	return &EmailTemplateRepositoryImpl{
		db:     db,
		mapper: mappers.NewEmailTemplateMapper(),
		logger: logger,
	}
}

// GetByKey looks up a template by its unique key. The native table wins;
// when it has no row, the legacy settings representation is consulted.
func (r *EmailTemplateRepositoryImpl) GetByKey(ctx context.Context, key string) (*notification.EmailTemplate, error) {
	var model models.EmailTemplateModel

	err := r.db.WithContext(ctx).Where("template_key = ?", key).First(&model).Error
	if err == nil {
		return r.mapper.ToEntity(&model)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get email template by key: %w", err)
	}

	return r.getLegacyByKey(ctx, key)
}

// GetByType looks up a template by its type. Key and type may differ; both
// lookups are supported. When several rows share a type, an active row wins
// over an inactive one.
func (r *EmailTemplateRepositoryImpl) GetByType(ctx context.Context, templateType string) (*notification.EmailTemplate, error) {
	var model models.EmailTemplateModel

	err := r.db.WithContext(ctx).
		Where("template_type = ?", templateType).
		Order("active DESC, created_at DESC").
		First(&model).Error
	if err == nil {
		return r.mapper.ToEntity(&model)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get email template by type: %w", err)
	}

	return r.getLegacyByType(ctx, templateType)
}

func (r *EmailTemplateRepositoryImpl) ListByType(ctx context.Context, templateType string) ([]*notification.EmailTemplate, error) {
	var modelList []*models.EmailTemplateModel

	if err := r.db.WithContext(ctx).Where("template_type = ?", templateType).Order("created_at DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list email templates by type: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *EmailTemplateRepositoryImpl) ListActive(ctx context.Context) ([]*notification.EmailTemplate, error) {
	var modelList []*models.EmailTemplateModel

	if err := r.db.WithContext(ctx).Where("active = ?", true).Order("created_at DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list active email templates: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

// Save creates or updates a template in the native table, keyed by the
// unique template key.
func (r *EmailTemplateRepositoryImpl) Save(ctx context.Context, template *notification.EmailTemplate) error {
	model, err := r.mapper.ToModel(template)
	if err != nil {
		return fmt.Errorf("failed to map email template entity to model: %w", err)
	}

	if model.ID == 0 {
		var existing models.EmailTemplateModel
		err := r.db.WithContext(ctx).Select("id").Where("template_key = ?", model.Key).First(&existing).Error
		if err == nil {
			model.ID = existing.ID
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up existing email template: %w", err)
		}
	}

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to save email template: %w", err)
	}

	if template.ID() == 0 {
		if err := template.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to set email template ID: %w", err)
		}
	}

	return nil
}

func (r *EmailTemplateRepositoryImpl) getLegacyByKey(ctx context.Context, key string) (*notification.EmailTemplate, error) {
	var model models.SystemSettingModel

	err := r.db.WithContext(ctx).
		Where("category = ? AND setting_key = ?", constants.SettingCategoryEmailTemplate, key).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get legacy email template: %w", err)
	}

	return r.parseLegacyRow(&model)
}

func (r *EmailTemplateRepositoryImpl) getLegacyByType(ctx context.Context, templateType string) (*notification.EmailTemplate, error) {
	var modelList []*models.SystemSettingModel

	if err := r.db.WithContext(ctx).
		Where("category = ?", constants.SettingCategoryEmailTemplate).
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list legacy email templates: %w", err)
	}

	for _, model := range modelList {
		entity, err := r.parseLegacyRow(model)
		if err != nil {
			return nil, err
		}
		if entity != nil && entity.TemplateType() == templateType {
			return entity, nil
		}
	}

	return nil, nil
}

// parseLegacyRow converts a settings row into a template entity. A malformed
// value is logged and treated as not found rather than failing the dispatch.
func (r *EmailTemplateRepositoryImpl) parseLegacyRow(model *models.SystemSettingModel) (*notification.EmailTemplate, error) {
	var value legacyTemplateValue
	if err := json.Unmarshal([]byte(model.Value), &value); err != nil {
		r.logger.Warnw("legacy template row is not valid JSON, treating as not found",
			"key", model.Key,
			"error", err,
		)
		return nil, nil
	}

	templateType := value.Type
	if templateType == "" {
		templateType = model.Key
	}

	active := true
	if value.Active != nil {
		active = *value.Active
	}

	entity, err := notification.ReconstructEmailTemplate(
		model.ID,
		model.Key,
		templateType,
		value.Name,
		value.Subject,
		value.HTMLBody,
		value.TextBody,
		value.Variables,
		active,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		r.logger.Warnw("legacy template row is incomplete, treating as not found",
			"key", model.Key,
			"error", err,
		)
		return nil, nil
	}

	return entity, nil
}
