package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTemplate(t *testing.T, subject, htmlBody, textBody string) *EmailTemplate {
	t.Helper()
	tpl, err := NewEmailTemplate("shipping_notification", "shipping_notification", "Versand", subject, htmlBody, textBody, nil)
	require.NoError(t, err)
	return tpl
}

func TestRenderShippingNotification(t *testing.T) {
	tpl := newTestTemplate(t,
		"Bestellung {{order_number}}",
		"",
		"Hallo {{customer_name}}, Bestellung {{order_number}} ist unterwegs.",
	)

	result := Render(tpl, map[string]any{
		"customer_name": "Max Mustermann",
		"order_number":  "BK-2025-001",
	})

	assert.Equal(t, "Bestellung BK-2025-001", result.Subject)
	assert.Equal(t, "Hallo Max Mustermann, Bestellung BK-2025-001 ist unterwegs.", result.Text)
}

func TestRenderIsDeterministic(t *testing.T) {
	tpl := newTestTemplate(t, "{{a}} {{b}}", "<p>{{a}}</p>", "{{a}} and {{b}}")
	vars := map[string]any{"a": "one", "b": 2}

	first := Render(tpl, vars)
	second := Render(tpl, vars)

	assert.Equal(t, first, second)
}

func TestRenderMissingVariableStaysVerbatim(t *testing.T) {
	tpl := newTestTemplate(t, "Hi {{unknown}}", "", "Value: {{unknown}}")

	result := Render(tpl, map[string]any{"known": "x"})

	assert.Equal(t, "Hi {{unknown}}", result.Subject)
	assert.Equal(t, "Value: {{unknown}}", result.Text)
}

func TestRenderReplacesEveryOccurrence(t *testing.T) {
	tpl := newTestTemplate(t, "{{name}}", "", "{{name}} {{name}} {{name}}")

	result := Render(tpl, map[string]any{"name": "Anna"})

	assert.Equal(t, "Anna Anna Anna", result.Text)
}

func TestRenderMalformedBracesUntouched(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"single braces", "{name}", "{name}"},
		{"unclosed", "{{name", "{{name"},
		{"unopened", "name}}", "name}}"},
		{"empty placeholder", "{{}}", "{{}}"},
		{"leading digit", "{{1name}}", "{{1name}}"},
		{"inner space", "{{na me}}", "{{na me}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl := newTestTemplate(t, "s", "", tt.body)
			result := Render(tpl, map[string]any{"name": "x", "1name": "y", "na me": "z"})
			assert.Equal(t, tt.want, result.Text)
		})
	}
}

func TestRenderStringifiesValues(t *testing.T) {
	tpl := newTestTemplate(t, "s", "", "{{count}} {{price}} {{flag}} {{nothing}}")

	result := Render(tpl, map[string]any{
		"count":   float64(42),
		"price":   19.99,
		"flag":    true,
		"nothing": nil,
	})

	assert.Equal(t, "42 19.99 true ", result.Text)
}

func TestRenderEmptyVariables(t *testing.T) {
	tpl := newTestTemplate(t, "Hi {{name}}", "", "Body {{name}}")

	result := Render(tpl, nil)

	assert.Equal(t, "Hi {{name}}", result.Subject)
	assert.Equal(t, "Body {{name}}", result.Text)
}
