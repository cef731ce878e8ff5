package usecases

import (
	"context"
	"fmt"
	"sync"

	"holzwerk/internal/domain/setting"
	sharedConfig "holzwerk/internal/shared/config"
	"holzwerk/internal/shared/constants"
	"holzwerk/internal/shared/logger"
)

// SettingChangeSubscriber defines the interface for setting change subscribers
type SettingChangeSubscriber interface {
	OnSettingChange(ctx context.Context, category string, changes map[string]any) error
}

// SettingProviderConfig holds the environment fallback configuration
type SettingProviderConfig struct {
	EmailConfig sharedConfig.EmailConfig
	StockConfig sharedConfig.StockConfig
}

// SettingProvider provides hot-reloadable configuration with database-first,
// env-fallback logic. SMTP settings are additionally backed by hard defaults
// so GetGuaranteedSMTPConfig always returns a complete transport config.
type SettingProvider struct {
	settingRepo setting.Repository
	emailConfig sharedConfig.EmailConfig
	stockConfig sharedConfig.StockConfig
	logger      logger.Interface

	subscribers []SettingChangeSubscriber
	mu          sync.RWMutex
}

// NewSettingProvider creates a new SettingProvider
func NewSettingProvider(
	settingRepo setting.Repository,
	cfg SettingProviderConfig,
	logger logger.Interface,
) *SettingProvider {
	return &SettingProvider{
		settingRepo: settingRepo,
		emailConfig: cfg.EmailConfig,
		stockConfig: cfg.StockConfig,
		logger:      logger,
		subscribers: make([]SettingChangeSubscriber, 0),
	}
}

// Subscribe registers a subscriber for setting changes
func (p *SettingProvider) Subscribe(subscriber SettingChangeSubscriber) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers = append(p.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from the list
func (p *SettingProvider) Unsubscribe(subscriber SettingChangeSubscriber) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, s := range p.subscribers {
		if s == subscriber {
			p.subscribers = append(p.subscribers[:i], p.subscribers[i+1:]...)
			break
		}
	}
}

// NotifyChange notifies all subscribers of configuration changes
func (p *SettingProvider) NotifyChange(ctx context.Context, category string, changes map[string]any) error {
	p.mu.RLock()
	subscribers := make([]SettingChangeSubscriber, len(p.subscribers))
	copy(subscribers, p.subscribers)
	p.mu.RUnlock()

	var errs []error
	for _, subscriber := range subscribers {
		if err := subscriber.OnSettingChange(ctx, category, changes); err != nil {
			p.logger.Errorw("subscriber failed to handle setting change",
				"category", category,
				"subscriber", fmt.Sprintf("%T", subscriber),
				"error", err,
			)
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("failed to notify %d/%d subscribers, first error: %w", len(errs), len(subscribers), errs[0])
	}

	return nil
}

// GetGuaranteedSMTPConfig returns the merged SMTP configuration.
// Priority per field: database > environment > hard default. The result
// always carries a usable host, port, from address and from name, so callers
// never have to handle a half-configured transport.
func (p *SettingProvider) GetGuaranteedSMTPConfig(ctx context.Context) sharedConfig.EmailConfig {
	config := p.emailConfig

	settings, err := p.settingRepo.GetByCategory(ctx, constants.SettingCategoryEmail)
	if err != nil {
		p.logger.Warnw("failed to get email settings from database, using env config",
			"error", err,
		)
	} else {
		for _, s := range settings {
			switch s.Key() {
			case "smtp_host":
				if s.HasValue() {
					config.SMTPHost = s.GetStringValue()
				}
			case "smtp_port":
				if s.HasValue() {
					if port, err := s.GetIntValue(); err == nil && port > 0 {
						config.SMTPPort = port
					}
				}
			case "smtp_secure":
				if s.HasValue() {
					if secure, err := s.GetBoolValue(); err == nil {
						config.SMTPSecure = secure
					}
				}
			case "smtp_user":
				if s.HasValue() {
					config.SMTPUser = s.GetStringValue()
				}
			case "smtp_password":
				if s.HasValue() {
					config.SMTPPassword = s.GetStringValue()
				}
			case "from_address":
				if s.HasValue() {
					config.FromAddress = s.GetStringValue()
				}
			case "from_name":
				if s.HasValue() {
					config.FromName = s.GetStringValue()
				}
			case "admin_address":
				if s.HasValue() {
					config.AdminAddress = s.GetStringValue()
				}
			}
		}
	}

	// Hard defaults close any remaining gaps.
	if config.SMTPHost == "" {
		config.SMTPHost = "localhost"
	}
	if config.SMTPPort <= 0 {
		config.SMTPPort = 25
	}
	if config.FromAddress == "" {
		config.FromAddress = "noreply@holzwerk.local"
	}
	if config.FromName == "" {
		config.FromName = "Holzwerk Shop"
	}
	if config.AdminAddress == "" {
		config.AdminAddress = config.FromAddress
	}

	return config
}

// GetDefaultLowStockThreshold returns the fallback threshold applied to
// products without a per-product one.
// Priority: database > environment > built-in default.
func (p *SettingProvider) GetDefaultLowStockThreshold(ctx context.Context) int {
	threshold := p.GetInt(ctx, constants.SettingCategoryStock, "default_low_stock_threshold", p.stockConfig.DefaultLowStockThreshold)
	if threshold <= 0 {
		threshold = constants.DefaultLowStockThreshold
	}
	return threshold
}

// GetString retrieves a string setting value
// Database values take precedence over default
func (p *SettingProvider) GetString(ctx context.Context, category, key, defaultValue string) string {
	s, err := p.settingRepo.GetByKey(ctx, category, key)
	if err != nil || s == nil || !s.HasValue() {
		return defaultValue
	}
	return s.GetStringValue()
}

// GetInt retrieves an int setting value
// Database values take precedence over default
func (p *SettingProvider) GetInt(ctx context.Context, category, key string, defaultValue int) int {
	s, err := p.settingRepo.GetByKey(ctx, category, key)
	if err != nil || s == nil || !s.HasValue() {
		return defaultValue
	}
	val, err := s.GetIntValue()
	if err != nil {
		return defaultValue
	}
	return val
}

// GetBool retrieves a bool setting value
// Database values take precedence over default
func (p *SettingProvider) GetBool(ctx context.Context, category, key string, defaultValue bool) bool {
	s, err := p.settingRepo.GetByKey(ctx, category, key)
	if err != nil || s == nil || !s.HasValue() {
		return defaultValue
	}
	val, err := s.GetBoolValue()
	if err != nil {
		return defaultValue
	}
	return val
}
