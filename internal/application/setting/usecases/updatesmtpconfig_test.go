package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holzwerk/internal/application/setting/dto"
	"holzwerk/internal/domain/setting"
	sharedConfig "holzwerk/internal/shared/config"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestUpdateSMTPConfigCreatesSettings(t *testing.T) {
	repo := newFakeSettingRepo()
	provider := newProvider(repo, sharedConfig.EmailConfig{})
	uc := NewUpdateSMTPConfigUseCase(repo, provider, newNopLogger())

	err := uc.Execute(context.Background(), dto.UpdateSMTPConfigRequest{
		SMTPHost:   strPtr("mail.holzwerk.de"),
		SMTPPort:   intPtr(465),
		SMTPSecure: boolPtr(true),
	})
	require.NoError(t, err)

	host, err := repo.GetByKey(context.Background(), "email", "smtp_host")
	require.NoError(t, err)
	assert.Equal(t, "mail.holzwerk.de", host.GetStringValue())
	assert.Equal(t, setting.ValueTypeString, host.ValueType())

	port, err := repo.GetByKey(context.Background(), "email", "smtp_port")
	require.NoError(t, err)
	val, err := port.GetIntValue()
	require.NoError(t, err)
	assert.Equal(t, 465, val)
	assert.Equal(t, setting.ValueTypeInt, port.ValueType())

	secure, err := repo.GetByKey(context.Background(), "email", "smtp_secure")
	require.NoError(t, err)
	b, err := secure.GetBoolValue()
	require.NoError(t, err)
	assert.True(t, b)
}

func TestUpdateSMTPConfigNilFieldsUntouched(t *testing.T) {
	repo := newFakeSettingRepo()
	repo.set(t, "email", "smtp_host", "old.example.com", setting.ValueTypeString)
	provider := newProvider(repo, sharedConfig.EmailConfig{})
	uc := NewUpdateSMTPConfigUseCase(repo, provider, newNopLogger())

	err := uc.Execute(context.Background(), dto.UpdateSMTPConfigRequest{
		SMTPPort: intPtr(587),
	})
	require.NoError(t, err)

	host, err := repo.GetByKey(context.Background(), "email", "smtp_host")
	require.NoError(t, err)
	assert.Equal(t, "old.example.com", host.GetStringValue())
}

func TestUpdateSMTPConfigBumpsVersion(t *testing.T) {
	repo := newFakeSettingRepo()
	repo.set(t, "email", "smtp_host", "old.example.com", setting.ValueTypeString)
	provider := newProvider(repo, sharedConfig.EmailConfig{})
	uc := NewUpdateSMTPConfigUseCase(repo, provider, newNopLogger())

	err := uc.Execute(context.Background(), dto.UpdateSMTPConfigRequest{
		SMTPHost: strPtr("new.example.com"),
	})
	require.NoError(t, err)

	host, err := repo.GetByKey(context.Background(), "email", "smtp_host")
	require.NoError(t, err)
	assert.Equal(t, "new.example.com", host.GetStringValue())
	assert.Equal(t, 2, host.Version())
}

func TestUpdateSMTPConfigNotifiesSubscribers(t *testing.T) {
	repo := newFakeSettingRepo()
	provider := newProvider(repo, sharedConfig.EmailConfig{})
	uc := NewUpdateSMTPConfigUseCase(repo, provider, newNopLogger())

	var notified map[string]any
	provider.Subscribe(subscriberFunc(func(_ context.Context, category string, changes map[string]any) error {
		if category == "email" {
			notified = changes
		}
		return nil
	}))

	err := uc.Execute(context.Background(), dto.UpdateSMTPConfigRequest{
		SMTPHost: strPtr("mail.holzwerk.de"),
		SMTPPort: intPtr(465),
	})
	require.NoError(t, err)

	require.NotNil(t, notified)
	assert.Equal(t, "mail.holzwerk.de", notified["smtp_host"])
	assert.Equal(t, 465, notified["smtp_port"])
}

func TestUpdateSMTPConfigEmptyRequestNoNotification(t *testing.T) {
	repo := newFakeSettingRepo()
	provider := newProvider(repo, sharedConfig.EmailConfig{})
	uc := NewUpdateSMTPConfigUseCase(repo, provider, newNopLogger())

	called := false
	provider.Subscribe(subscriberFunc(func(context.Context, string, map[string]any) error {
		called = true
		return nil
	}))

	err := uc.Execute(context.Background(), dto.UpdateSMTPConfigRequest{})
	require.NoError(t, err)
	assert.False(t, called)
	assert.Empty(t, repo.rows)
}

func TestGetSMTPConfigMasksPassword(t *testing.T) {
	repo := newFakeSettingRepo()
	repo.set(t, "email", "smtp_password", "supersecret", setting.ValueTypeString)
	provider := newProvider(repo, sharedConfig.EmailConfig{})

	resp := NewGetSMTPConfigUseCase(provider, newNopLogger()).Execute(context.Background())

	assert.NotContains(t, resp.SMTPPassword, "persecre")
	assert.Equal(t, "su****et", resp.SMTPPassword)
	assert.Equal(t, "localhost", resp.SMTPHost)
}

func TestMaskSensitiveValue(t *testing.T) {
	assert.Equal(t, "", dto.MaskSensitiveValue(""))
	assert.Equal(t, "****", dto.MaskSensitiveValue("abcd"))
	assert.Equal(t, "se****23", dto.MaskSensitiveValue("secret123"))
}
