package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holzwerk/internal/domain/notification"
	vo "holzwerk/internal/domain/notification/valueobjects"
	"holzwerk/internal/shared/errors"
	"holzwerk/internal/shared/logger"
	"holzwerk/internal/shared/services/markdown"
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

// fakeMailer records outbound messages and fails on demand.
type fakeMailer struct {
	sent      []notification.OutboundEmail
	admin     string
	failAll   bool
	failAfter int // fail every send after this many successes; 0 disables
}

func (m *fakeMailer) Send(_ context.Context, msg notification.OutboundEmail) (string, error) {
	if m.failAll {
		return "", fmt.Errorf("dial tcp: connection refused")
	}
	if m.failAfter > 0 && len(m.sent) >= m.failAfter {
		return "", fmt.Errorf("dial tcp: connection refused")
	}
	m.sent = append(m.sent, msg)
	return fmt.Sprintf("<msg-%d@test.local>", len(m.sent)), nil
}

func (m *fakeMailer) AdminAddress() string { return m.admin }

// fakeTemplateRepo serves templates by key and by type.
type fakeTemplateRepo struct {
	byKey  map[string]*notification.EmailTemplate
	byType map[string]*notification.EmailTemplate
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{
		byKey:  make(map[string]*notification.EmailTemplate),
		byType: make(map[string]*notification.EmailTemplate),
	}
}

func (r *fakeTemplateRepo) GetByKey(_ context.Context, key string) (*notification.EmailTemplate, error) {
	return r.byKey[key], nil
}

func (r *fakeTemplateRepo) GetByType(_ context.Context, templateType string) (*notification.EmailTemplate, error) {
	return r.byType[templateType], nil
}

func (r *fakeTemplateRepo) ListByType(_ context.Context, templateType string) ([]*notification.EmailTemplate, error) {
	tpl := r.byType[templateType]
	if tpl == nil {
		return nil, nil
	}
	return []*notification.EmailTemplate{tpl}, nil
}

func (r *fakeTemplateRepo) ListActive(_ context.Context) ([]*notification.EmailTemplate, error) {
	var out []*notification.EmailTemplate
	for _, tpl := range r.byKey {
		if tpl.Active() {
			out = append(out, tpl)
		}
	}
	return out, nil
}

func (r *fakeTemplateRepo) Save(_ context.Context, tpl *notification.EmailTemplate) error {
	r.byKey[tpl.Key()] = tpl
	r.byType[tpl.TemplateType()] = tpl
	return nil
}

func mustTemplate(t *testing.T, key, templateType, subject, htmlBody, textBody string, active bool) *notification.EmailTemplate {
	t.Helper()
	now := time.Now().UTC()
	tpl, err := notification.ReconstructEmailTemplate(1, key, templateType, key, subject, htmlBody, textBody, nil, active, now, now)
	require.NoError(t, err)
	return tpl
}

func newDispatcher(repo notification.TemplateRepository, mailer Mailer) *SendTemplateEmailUseCase {
	return NewSendTemplateEmailUseCase(repo, mailer, markdown.NewService(), newNopLogger())
}

func shippingEvent() notification.TriggerEvent {
	return notification.TriggerEvent{
		Type:      vo.TriggerTypeShippingNotification,
		Recipient: "max@example.com",
		Payload: map[string]any{
			"customer_name":   "Max Mustermann",
			"order_number":    "BK-2025-001",
			"tracking_number": "DHL123456789",
		},
	}
}

func TestDispatchSuccess(t *testing.T) {
	repo := newFakeTemplateRepo()
	tpl := mustTemplate(t, "shipping_notification", "shipping_notification",
		"Bestellung {{order_number}} versendet", "",
		"Hallo {{customer_name}}, Bestellung {{order_number}} ist unterwegs.", true)
	require.NoError(t, repo.Save(context.Background(), tpl))

	mailer := &fakeMailer{}
	result := newDispatcher(repo, mailer).Execute(context.Background(), shippingEvent())

	require.True(t, result.Success)
	assert.NotEmpty(t, result.MessageID)
	assert.NoError(t, result.Err)

	require.Len(t, mailer.sent, 1)
	msg := mailer.sent[0]
	assert.Equal(t, "max@example.com", msg.To)
	assert.Equal(t, "Bestellung BK-2025-001 versendet", msg.Subject)
	assert.Equal(t, "Hallo Max Mustermann, Bestellung BK-2025-001 ist unterwegs.", msg.TextBody)
	// The HTML body is derived from the text body when the template has none.
	assert.Contains(t, msg.HTMLBody, "Max Mustermann")
}

func TestDispatchSanitizesHTMLBody(t *testing.T) {
	repo := newFakeTemplateRepo()
	tpl := mustTemplate(t, "shipping_notification", "shipping_notification",
		"Versand", "<p>Hallo {{customer_name}}</p><script>alert(1)</script>", "", true)
	require.NoError(t, repo.Save(context.Background(), tpl))

	mailer := &fakeMailer{}
	result := newDispatcher(repo, mailer).Execute(context.Background(), shippingEvent())

	require.True(t, result.Success)
	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].HTMLBody, "Hallo Max Mustermann")
	assert.NotContains(t, mailer.sent[0].HTMLBody, "<script>")
}

func TestDispatchResolvesByTypeWhenKeyMisses(t *testing.T) {
	repo := newFakeTemplateRepo()
	tpl := mustTemplate(t, "versand_standard", "shipping_notification",
		"Versand", "", "Bestellung {{order_number}} ist unterwegs.", true)
	// Stored under a custom key; the trigger resolves it via the type index.
	repo.byType[tpl.TemplateType()] = tpl

	mailer := &fakeMailer{}
	result := newDispatcher(repo, mailer).Execute(context.Background(), shippingEvent())

	require.True(t, result.Success)
	require.Len(t, mailer.sent, 1)
}

func TestDispatchValidationFailures(t *testing.T) {
	repo := newFakeTemplateRepo()
	mailer := &fakeMailer{}
	uc := newDispatcher(repo, mailer)

	tests := []struct {
		name  string
		event notification.TriggerEvent
	}{
		{
			name: "unknown trigger type",
			event: notification.TriggerEvent{
				Type:      vo.TriggerType("password_reset"),
				Recipient: "max@example.com",
				Payload:   map[string]any{"x": 1},
			},
		},
		{
			name: "missing recipient",
			event: notification.TriggerEvent{
				Type:    vo.TriggerTypeShippingNotification,
				Payload: map[string]any{"x": 1},
			},
		},
		{
			name: "empty payload",
			event: notification.TriggerEvent{
				Type:      vo.TriggerTypeShippingNotification,
				Recipient: "max@example.com",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := uc.Execute(context.Background(), tt.event)
			assert.False(t, result.Success)
			assert.True(t, errors.IsValidationError(result.Err))
		})
	}
	assert.Empty(t, mailer.sent)
}

func TestDispatchMissingTemplate(t *testing.T) {
	mailer := &fakeMailer{}
	result := newDispatcher(newFakeTemplateRepo(), mailer).Execute(context.Background(), shippingEvent())

	assert.False(t, result.Success)
	assert.True(t, errors.IsTemplateUnavailableError(result.Err))
	assert.Empty(t, mailer.sent)
}

func TestDispatchInactiveTemplateSuppressed(t *testing.T) {
	repo := newFakeTemplateRepo()
	tpl := mustTemplate(t, "shipping_notification", "shipping_notification",
		"Versand", "", "Hallo {{customer_name}}", false)
	require.NoError(t, repo.Save(context.Background(), tpl))

	mailer := &fakeMailer{}
	result := newDispatcher(repo, mailer).Execute(context.Background(), shippingEvent())

	assert.False(t, result.Success)
	assert.True(t, errors.IsTemplateUnavailableError(result.Err))
	assert.Empty(t, mailer.sent)
}

func TestDispatchTransportFailure(t *testing.T) {
	repo := newFakeTemplateRepo()
	tpl := mustTemplate(t, "shipping_notification", "shipping_notification",
		"Versand", "", "Hallo {{customer_name}}", true)
	require.NoError(t, repo.Save(context.Background(), tpl))

	mailer := &fakeMailer{failAll: true}
	result := newDispatcher(repo, mailer).Execute(context.Background(), shippingEvent())

	assert.False(t, result.Success)
	assert.True(t, errors.IsTransportError(result.Err))
	assert.Empty(t, result.MessageID)
}

func TestDispatchAdminCopy(t *testing.T) {
	repo := newFakeTemplateRepo()
	tpl := mustTemplate(t, "shipping_notification", "shipping_notification",
		"Bestellung {{order_number}} versendet", "", "Hallo {{customer_name}}", true)
	require.NoError(t, repo.Save(context.Background(), tpl))

	mailer := &fakeMailer{admin: "admin@holzwerk.de"}
	event := shippingEvent()
	event.CCAdmin = true

	result := newDispatcher(repo, mailer).Execute(context.Background(), event)

	require.True(t, result.Success)
	require.Len(t, mailer.sent, 2)
	assert.Equal(t, "max@example.com", mailer.sent[0].To)
	assert.Equal(t, "admin@holzwerk.de", mailer.sent[1].To)
	assert.Equal(t, "[Kopie] Bestellung BK-2025-001 versendet", mailer.sent[1].Subject)
}

func TestDispatchAdminCopyFailureKeepsSuccess(t *testing.T) {
	repo := newFakeTemplateRepo()
	tpl := mustTemplate(t, "shipping_notification", "shipping_notification",
		"Versand", "", "Hallo {{customer_name}}", true)
	require.NoError(t, repo.Save(context.Background(), tpl))

	mailer := &fakeMailer{admin: "admin@holzwerk.de", failAfter: 1}
	event := shippingEvent()
	event.CCAdmin = true

	result := newDispatcher(repo, mailer).Execute(context.Background(), event)

	assert.True(t, result.Success)
	assert.NotEmpty(t, result.MessageID)
	require.Len(t, mailer.sent, 1)
}

func TestDispatchAdminCopySkippedForSelf(t *testing.T) {
	repo := newFakeTemplateRepo()
	tpl := mustTemplate(t, "shipping_notification", "shipping_notification",
		"Versand", "", "Hallo {{customer_name}}", true)
	require.NoError(t, repo.Save(context.Background(), tpl))

	mailer := &fakeMailer{admin: "max@example.com"}
	event := shippingEvent()
	event.CCAdmin = true

	result := newDispatcher(repo, mailer).Execute(context.Background(), event)

	assert.True(t, result.Success)
	require.Len(t, mailer.sent, 1)
}
