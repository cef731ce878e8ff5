package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holzwerk/internal/domain/setting"
	sharedConfig "holzwerk/internal/shared/config"
	"holzwerk/internal/shared/logger"
)

type nopLogger struct{}

func newNopLogger() logger.Interface { return &nopLogger{} }

func (l *nopLogger) Debug(msg string, args ...any)                   {}
func (l *nopLogger) Info(msg string, args ...any)                    {}
func (l *nopLogger) Warn(msg string, args ...any)                    {}
func (l *nopLogger) Error(msg string, args ...any)                   {}
func (l *nopLogger) With(args ...any) logger.Interface               { return l }
func (l *nopLogger) Named(name string) logger.Interface              { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

// fakeSettingRepo is an in-memory setting.Repository.
type fakeSettingRepo struct {
	rows map[string]*setting.SystemSetting
	err  error
}

func newFakeSettingRepo() *fakeSettingRepo {
	return &fakeSettingRepo{rows: make(map[string]*setting.SystemSetting)}
}

func (r *fakeSettingRepo) set(t *testing.T, category, key, value string, valueType setting.ValueType) {
	t.Helper()
	now := time.Now().UTC()
	s := setting.ReconstructSystemSetting(0, category, key, value, valueType, "", 1, now, now)
	r.rows[category+"/"+key] = s
}

func (r *fakeSettingRepo) GetByKey(_ context.Context, category, key string) (*setting.SystemSetting, error) {
	if r.err != nil {
		return nil, r.err
	}
	s, ok := r.rows[category+"/"+key]
	if !ok {
		return nil, setting.ErrSettingNotFound
	}
	return s, nil
}

func (r *fakeSettingRepo) GetByCategory(_ context.Context, category string) ([]*setting.SystemSetting, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*setting.SystemSetting
	for _, s := range r.rows {
		if s.Category() == category {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSettingRepo) Upsert(_ context.Context, s *setting.SystemSetting) error {
	r.rows[s.Category()+"/"+s.Key()] = s
	return nil
}

func (r *fakeSettingRepo) Delete(_ context.Context, category, key string) error {
	delete(r.rows, category+"/"+key)
	return nil
}

func newProvider(repo setting.Repository, emailCfg sharedConfig.EmailConfig) *SettingProvider {
	return NewSettingProvider(repo, SettingProviderConfig{
		EmailConfig: emailCfg,
	}, newNopLogger())
}

func TestGuaranteedSMTPConfigDefaultsWhenEmpty(t *testing.T) {
	provider := newProvider(newFakeSettingRepo(), sharedConfig.EmailConfig{})

	cfg := provider.GetGuaranteedSMTPConfig(context.Background())

	assert.Equal(t, "localhost", cfg.SMTPHost)
	assert.Equal(t, 25, cfg.SMTPPort)
	assert.Equal(t, "noreply@holzwerk.local", cfg.FromAddress)
	assert.Equal(t, "Holzwerk Shop", cfg.FromName)
	assert.Equal(t, cfg.FromAddress, cfg.AdminAddress)
}

func TestGuaranteedSMTPConfigNeverPartial(t *testing.T) {
	repo := newFakeSettingRepo()
	// A partially stored configuration: host only, everything else blank.
	repo.set(t, "email", "smtp_host", "mail.holzwerk.de", setting.ValueTypeString)
	repo.set(t, "email", "smtp_port", "", setting.ValueTypeInt)
	repo.set(t, "email", "from_address", "", setting.ValueTypeString)

	provider := newProvider(repo, sharedConfig.EmailConfig{})
	cfg := provider.GetGuaranteedSMTPConfig(context.Background())

	assert.Equal(t, "mail.holzwerk.de", cfg.SMTPHost)
	assert.NotZero(t, cfg.SMTPPort)
	assert.NotEmpty(t, cfg.FromAddress)
	assert.NotEmpty(t, cfg.FromName)
}

func TestGuaranteedSMTPConfigDatabaseOverridesEnvironment(t *testing.T) {
	repo := newFakeSettingRepo()
	repo.set(t, "email", "smtp_host", "db.example.com", setting.ValueTypeString)
	repo.set(t, "email", "smtp_port", "2525", setting.ValueTypeInt)
	repo.set(t, "email", "smtp_secure", "true", setting.ValueTypeBool)

	envCfg := sharedConfig.EmailConfig{
		SMTPHost:    "env.example.com",
		SMTPPort:    587,
		FromAddress: "env@example.com",
		FromName:    "Env Shop",
	}

	provider := newProvider(repo, envCfg)
	cfg := provider.GetGuaranteedSMTPConfig(context.Background())

	assert.Equal(t, "db.example.com", cfg.SMTPHost)
	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.True(t, cfg.SMTPSecure)
	// Fields without database rows keep the environment values.
	assert.Equal(t, "env@example.com", cfg.FromAddress)
	assert.Equal(t, "Env Shop", cfg.FromName)
}

func TestGuaranteedSMTPConfigSurvivesStoreFailure(t *testing.T) {
	repo := newFakeSettingRepo()
	repo.err = fmt.Errorf("connection refused")

	envCfg := sharedConfig.EmailConfig{SMTPHost: "env.example.com", SMTPPort: 587}
	provider := newProvider(repo, envCfg)

	cfg := provider.GetGuaranteedSMTPConfig(context.Background())

	assert.Equal(t, "env.example.com", cfg.SMTPHost)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.NotEmpty(t, cfg.FromAddress)
}

func TestGetDefaultLowStockThreshold(t *testing.T) {
	repo := newFakeSettingRepo()
	provider := NewSettingProvider(repo, SettingProviderConfig{
		StockConfig: sharedConfig.StockConfig{DefaultLowStockThreshold: 8},
	}, newNopLogger())

	// Environment value applies without a database row.
	assert.Equal(t, 8, provider.GetDefaultLowStockThreshold(context.Background()))

	// Database row wins.
	repo.set(t, "stock", "default_low_stock_threshold", "12", setting.ValueTypeInt)
	assert.Equal(t, 12, provider.GetDefaultLowStockThreshold(context.Background()))
}

func TestGetDefaultLowStockThresholdBuiltInFloor(t *testing.T) {
	provider := NewSettingProvider(newFakeSettingRepo(), SettingProviderConfig{}, newNopLogger())

	threshold := provider.GetDefaultLowStockThreshold(context.Background())
	assert.Greater(t, threshold, 0)
}

func TestNotifyChangeReachesSubscribers(t *testing.T) {
	provider := newProvider(newFakeSettingRepo(), sharedConfig.EmailConfig{})

	var got map[string]any
	sub := subscriberFunc(func(_ context.Context, category string, changes map[string]any) error {
		if category == "email" {
			got = changes
		}
		return nil
	})
	provider.Subscribe(sub)

	err := provider.NotifyChange(context.Background(), "email", map[string]any{"smtp_host": "new.example.com"})
	require.NoError(t, err)
	assert.Equal(t, "new.example.com", got["smtp_host"])
}

type subscriberFunc func(ctx context.Context, category string, changes map[string]any) error

func (f subscriberFunc) OnSettingChange(ctx context.Context, category string, changes map[string]any) error {
	return f(ctx, category, changes)
}
