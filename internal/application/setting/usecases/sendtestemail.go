package usecases

import (
	"context"

	"holzwerk/internal/application/setting/dto"
	"holzwerk/internal/shared/errors"
	"holzwerk/internal/shared/logger"
)

// TestMailer sends a configuration test message
type TestMailer interface {
	SendTest(ctx context.Context, to string) error
}

// SendTestEmailUseCase delivers a test message through the current mailer so
// operators can verify SMTP settings after changing them.
type SendTestEmailUseCase struct {
	mailer TestMailer
	logger logger.Interface
}

// NewSendTestEmailUseCase creates a new SendTestEmailUseCase
func NewSendTestEmailUseCase(mailer TestMailer, logger logger.Interface) *SendTestEmailUseCase {
	return &SendTestEmailUseCase{
		mailer: mailer,
		logger: logger,
	}
}

// Execute sends the test message to the requested address
func (uc *SendTestEmailUseCase) Execute(ctx context.Context, request dto.TestEmailRequest) error {
	if err := uc.mailer.SendTest(ctx, request.To); err != nil {
		uc.logger.Errorw("test email delivery failed",
			"to", request.To,
			"error", err,
		)
		return errors.NewTransportError("test email delivery failed", err.Error())
	}

	uc.logger.Infow("test email sent", "to", request.To)
	return nil
}
