package usecases

import (
	"context"
	"fmt"

	"holzwerk/internal/application/setting/dto"
	"holzwerk/internal/domain/setting"
	"holzwerk/internal/shared/constants"
	"holzwerk/internal/shared/logger"
)

// SettingChangeNotifier defines the interface for notifying setting changes
type SettingChangeNotifier interface {
	NotifyChange(ctx context.Context, category string, changes map[string]any) error
}

// UpdateSMTPConfigUseCase persists SMTP setting overrides and notifies
// subscribers so the mailer rebuilds without a restart.
type UpdateSMTPConfigUseCase struct {
	settingRepo setting.Repository
	notifier    SettingChangeNotifier
	logger      logger.Interface
}

// NewUpdateSMTPConfigUseCase creates a new UpdateSMTPConfigUseCase
func NewUpdateSMTPConfigUseCase(
	settingRepo setting.Repository,
	notifier SettingChangeNotifier,
	logger logger.Interface,
) *UpdateSMTPConfigUseCase {
	return &UpdateSMTPConfigUseCase{
		settingRepo: settingRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Execute applies the non-nil fields of the request as database overrides
func (uc *UpdateSMTPConfigUseCase) Execute(ctx context.Context, request dto.UpdateSMTPConfigRequest) error {
	changes := make(map[string]any)

	fields := []struct {
		key   string
		value any
	}{
		{"smtp_host", deref(request.SMTPHost)},
		{"smtp_port", deref(request.SMTPPort)},
		{"smtp_secure", deref(request.SMTPSecure)},
		{"smtp_user", deref(request.SMTPUser)},
		{"smtp_password", deref(request.SMTPPassword)},
		{"from_address", deref(request.FromAddress)},
		{"from_name", deref(request.FromName)},
		{"admin_address", deref(request.AdminAddress)},
	}

	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if err := uc.updateSingleSetting(ctx, constants.SettingCategoryEmail, f.key, f.value); err != nil {
			uc.logger.Errorw("failed to update smtp setting",
				"key", f.key,
				"error", err,
			)
			return fmt.Errorf("failed to update email.%s: %w", f.key, err)
		}
		changes[f.key] = f.value
	}

	if uc.notifier != nil && len(changes) > 0 {
		if err := uc.notifier.NotifyChange(ctx, constants.SettingCategoryEmail, changes); err != nil {
			uc.logger.Warnw("failed to notify smtp config changes",
				"error", err,
			)
			// Don't fail the update if notification fails
		}
	}

	return nil
}

// updateSingleSetting updates or creates a single setting
func (uc *UpdateSMTPConfigUseCase) updateSingleSetting(
	ctx context.Context,
	category, key string,
	value any,
) error {
	existingSetting, err := uc.settingRepo.GetByKey(ctx, category, key)
	if err != nil && err != setting.ErrSettingNotFound {
		return err
	}

	var s *setting.SystemSetting

	if existingSetting != nil {
		s = existingSetting
	} else {
		s, err = setting.NewSystemSetting(category, key, inferValueType(value), "")
		if err != nil {
			return err
		}
	}

	if err := setValueByType(s, value); err != nil {
		return err
	}

	return uc.settingRepo.Upsert(ctx, s)
}

// inferValueType infers the value type from the Go value
func inferValueType(value any) setting.ValueType {
	switch value.(type) {
	case bool:
		return setting.ValueTypeBool
	case int, int32, int64, float32, float64:
		return setting.ValueTypeInt
	case string:
		return setting.ValueTypeString
	default:
		return setting.ValueTypeJSON
	}
}

// setValueByType sets the value on the setting based on its type
func setValueByType(s *setting.SystemSetting, value any) error {
	switch s.ValueType() {
	case setting.ValueTypeBool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool value for key %s", s.Key())
		}
		return s.SetBoolValue(boolVal)

	case setting.ValueTypeInt:
		var intVal int
		switch v := value.(type) {
		case int:
			intVal = v
		case int32:
			intVal = int(v)
		case int64:
			intVal = int(v)
		case float64:
			intVal = int(v)
		case float32:
			intVal = int(v)
		default:
			return fmt.Errorf("expected int value for key %s", s.Key())
		}
		return s.SetIntValue(intVal)

	case setting.ValueTypeString:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string value for key %s", s.Key())
		}
		return s.SetStringValue(strVal)

	case setting.ValueTypeJSON:
		return s.SetJSONValue(value)

	default:
		return fmt.Errorf("unsupported value type: %s", s.ValueType())
	}
}

// deref lifts a typed pointer into an untyped value, mapping nil to nil
func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
