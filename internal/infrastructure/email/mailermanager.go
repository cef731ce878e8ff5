package email

import (
	"context"
	"sync"

	settingUsecases "holzwerk/internal/application/setting/usecases"
	"holzwerk/internal/domain/notification"
	"holzwerk/internal/shared/logger"
)

// MailerManager manages the SMTP mailer with hot-reload support. The setting
// provider always resolves a complete SMTP configuration, so after Initialize
// the manager always holds a usable mailer; a settings change swaps it in
// place without restarting the process.
type MailerManager struct {
	provider *settingUsecases.SettingProvider
	logger   logger.Interface

	mu     sync.RWMutex
	mailer *SMTPMailer
}

// NewMailerManager creates a new MailerManager
func NewMailerManager(
	provider *settingUsecases.SettingProvider,
	logger logger.Interface,
) *MailerManager {
	return &MailerManager{
		provider: provider,
		logger:   logger,
	}
}

// Initialize builds the mailer from the current guaranteed configuration
func (m *MailerManager) Initialize(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.initializeMailerLocked(ctx)
}

func (m *MailerManager) initializeMailerLocked(ctx context.Context) error {
	emailCfg := m.provider.GetGuaranteedSMTPConfig(ctx)

	smtpCfg := SMTPConfig{
		Host:         emailCfg.SMTPHost,
		Port:         emailCfg.SMTPPort,
		Secure:       emailCfg.SMTPSecure,
		Username:     emailCfg.SMTPUser,
		Password:     emailCfg.SMTPPassword,
		FromAddress:  emailCfg.FromAddress,
		FromName:     emailCfg.FromName,
		AdminAddress: emailCfg.AdminAddress,
	}

	m.mailer = NewSMTPMailer(smtpCfg)
	m.logger.Infow("mailer initialized",
		"host", smtpCfg.Host,
		"port", smtpCfg.Port,
		"secure", smtpCfg.Secure,
		"from", smtpCfg.FromAddress,
	)

	return nil
}

// OnSettingChange handles configuration changes
// Implements SettingChangeSubscriber interface
func (m *MailerManager) OnSettingChange(ctx context.Context, category string, changes map[string]any) error {
	if category != "email" {
		return nil
	}

	m.logger.Infow("email configuration changed, rebuilding mailer",
		"category", category,
	)
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initializeMailerLocked(ctx)
}

// Get returns the current mailer
func (m *MailerManager) Get() *SMTPMailer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mailer
}

// Send delivers msg through the current mailer. Implements the dispatcher's
// mailer contract so use cases stay unaware of hot reloads.
func (m *MailerManager) Send(ctx context.Context, msg notification.OutboundEmail) (string, error) {
	mailer := m.Get()
	if mailer == nil {
		return "", ErrMailerNotInitialized
	}
	return mailer.Send(ctx, msg)
}

// SendTest sends a configuration test message through the current mailer
func (m *MailerManager) SendTest(ctx context.Context, to string) error {
	mailer := m.Get()
	if mailer == nil {
		return ErrMailerNotInitialized
	}
	return mailer.SendTest(ctx, to)
}

// AdminAddress returns the configured admin recipient
func (m *MailerManager) AdminAddress() string {
	mailer := m.Get()
	if mailer == nil {
		return ""
	}
	return mailer.Config().AdminAddress
}
