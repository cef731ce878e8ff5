package usecases

import (
	"context"

	"holzwerk/internal/application/setting/dto"
	"holzwerk/internal/shared/logger"
)

// GetSMTPConfigUseCase resolves and masks the effective SMTP configuration
type GetSMTPConfigUseCase struct {
	provider *SettingProvider
	logger   logger.Interface
}

// NewGetSMTPConfigUseCase creates a new GetSMTPConfigUseCase
func NewGetSMTPConfigUseCase(provider *SettingProvider, logger logger.Interface) *GetSMTPConfigUseCase {
	return &GetSMTPConfigUseCase{
		provider: provider,
		logger:   logger,
	}
}

// Execute returns the resolved configuration with credentials masked
func (uc *GetSMTPConfigUseCase) Execute(ctx context.Context) *dto.SMTPConfigResponse {
	cfg := uc.provider.GetGuaranteedSMTPConfig(ctx)

	return &dto.SMTPConfigResponse{
		SMTPHost:     cfg.SMTPHost,
		SMTPPort:     cfg.SMTPPort,
		SMTPSecure:   cfg.SMTPSecure,
		SMTPUser:     cfg.SMTPUser,
		SMTPPassword: dto.MaskSensitiveValue(cfg.SMTPPassword),
		FromAddress:  cfg.FromAddress,
		FromName:     cfg.FromName,
		AdminAddress: cfg.AdminAddress,
	}
}
