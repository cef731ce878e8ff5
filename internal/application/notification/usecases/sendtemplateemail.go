package usecases

import (
	"context"
	"fmt"

	"holzwerk/internal/domain/notification"
	"holzwerk/internal/shared/errors"
	"holzwerk/internal/shared/logger"
	"holzwerk/internal/shared/services/markdown"
)

// Mailer is the transport contract the dispatcher delivers through. The
// concrete mailer is hot-reloadable; the dispatcher only sees this surface.
type Mailer interface {
	Send(ctx context.Context, msg notification.OutboundEmail) (messageID string, err error)
	AdminAddress() string
}

// SendTemplateEmailUseCase is the shared dispatch pipeline behind every
// trigger type: validate the event, resolve its template, render, deliver.
// Every failure path is converted into a DispatchResult; nothing escapes
// past Execute.
type SendTemplateEmailUseCase struct {
	templateRepo notification.TemplateRepository
	mailer       Mailer
	markdown     markdown.Service
	logger       logger.Interface
}

// NewSendTemplateEmailUseCase creates a new SendTemplateEmailUseCase
func NewSendTemplateEmailUseCase(
	templateRepo notification.TemplateRepository,
	mailer Mailer,
	markdown markdown.Service,
	logger logger.Interface,
) *SendTemplateEmailUseCase {
	return &SendTemplateEmailUseCase{
		templateRepo: templateRepo,
		mailer:       mailer,
		markdown:     markdown,
		logger:       logger,
	}
}

// Execute runs the full dispatch pipeline for one trigger event
func (uc *SendTemplateEmailUseCase) Execute(ctx context.Context, event notification.TriggerEvent) notification.DispatchResult {
	// Validate
	if !event.Type.IsValid() {
		return notification.Failed(errors.NewValidationError(fmt.Sprintf("unknown trigger type: %s", event.Type)))
	}
	if event.Recipient == "" {
		return notification.Failed(errors.NewValidationError("recipient is required"))
	}
	if len(event.Payload) == 0 {
		return notification.Failed(errors.NewValidationError("payload must not be empty"))
	}

	// Resolve
	tpl, err := uc.resolveTemplate(ctx, event.Type.TemplateType())
	if err != nil {
		uc.logger.Errorw("template lookup failed",
			"trigger_type", event.Type,
			"error", err,
		)
		return notification.Failed(errors.NewInternalError("template lookup failed", err.Error()))
	}
	if tpl == nil || !tpl.Active() {
		return notification.Failed(errors.NewTemplateUnavailableError(
			fmt.Sprintf("no active template for type %s", event.Type.TemplateType()),
		))
	}

	// Render
	rendered := notification.Render(tpl, event.Payload)
	htmlBody := rendered.HTML
	if htmlBody == "" && rendered.Text != "" {
		derived, mdErr := uc.markdown.ToHTMLSanitized(rendered.Text)
		if mdErr != nil {
			uc.logger.Warnw("html derivation from text body failed, sending text only",
				"trigger_type", event.Type,
				"error", mdErr,
			)
		} else {
			htmlBody = derived
		}
	} else if htmlBody != "" {
		htmlBody = uc.markdown.Sanitize(htmlBody)
	}

	// Deliver
	msg := notification.OutboundEmail{
		To:       event.Recipient,
		Subject:  rendered.Subject,
		HTMLBody: htmlBody,
		TextBody: rendered.Text,
	}

	messageID, err := uc.mailer.Send(ctx, msg)
	if err != nil {
		uc.logger.Errorw("notification delivery failed",
			"trigger_type", event.Type,
			"recipient", event.Recipient,
			"error", err,
		)
		return notification.Failed(errors.NewTransportError("delivery failed", err.Error()))
	}

	uc.logger.Infow("notification sent",
		"trigger_type", event.Type,
		"recipient", event.Recipient,
		"message_id", messageID,
	)

	// The admin copy is best-effort: the primary outcome alone decides
	// success.
	if event.CCAdmin {
		uc.sendAdminCopy(ctx, event, msg)
	}

	return notification.Sent(messageID)
}

// resolveTemplate looks up a template by key first, then by type, so both
// identifier styles resolve.
func (uc *SendTemplateEmailUseCase) resolveTemplate(ctx context.Context, identifier string) (*notification.EmailTemplate, error) {
	tpl, err := uc.templateRepo.GetByKey(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if tpl != nil {
		return tpl, nil
	}
	return uc.templateRepo.GetByType(ctx, identifier)
}

func (uc *SendTemplateEmailUseCase) sendAdminCopy(ctx context.Context, event notification.TriggerEvent, msg notification.OutboundEmail) {
	admin := uc.mailer.AdminAddress()
	if admin == "" || admin == event.Recipient {
		return
	}

	copyMsg := msg
	copyMsg.To = admin
	copyMsg.Subject = "[Kopie] " + msg.Subject

	if _, err := uc.mailer.Send(ctx, copyMsg); err != nil {
		uc.logger.Warnw("admin copy delivery failed",
			"trigger_type", event.Type,
			"admin", admin,
			"error", err,
		)
	}
}
