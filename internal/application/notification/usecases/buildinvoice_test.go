package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holzwerk/internal/shared/errors"
	"holzwerk/internal/shared/services/markdown"
)

func newInvoiceFixture(t *testing.T) (*BuildInvoiceUseCase, *fakeTemplateRepo) {
	t.Helper()
	repo := newFakeTemplateRepo()
	tpl := mustTemplate(t, "invoice", "invoice",
		"Rechnung {{order_number}}", "",
		"# Rechnung {{order_number}}\n\nKunde: {{customer_name}}\nBetrag: {{total}} EUR", true)
	require.NoError(t, repo.Save(context.Background(), tpl))

	uc := NewBuildInvoiceUseCase(repo, markdown.NewService(), newNopLogger())
	return uc, repo
}

func TestBuildInvoice(t *testing.T) {
	uc, _ := newInvoiceFixture(t)

	resp, err := uc.Execute(context.Background(), "BK-2025-001", map[string]any{
		"customer_name": "Max Mustermann",
		"total":         149.90,
	})
	require.NoError(t, err)

	assert.Equal(t, "BK-2025-001", resp.OrderNumber)
	assert.False(t, resp.Cached)
	assert.Contains(t, resp.HTML, "Rechnung BK-2025-001")
	assert.Contains(t, resp.HTML, "Max Mustermann")
	assert.Contains(t, resp.HTML, "149.9")
}

func TestBuildInvoiceServedFromCache(t *testing.T) {
	uc, repo := newInvoiceFixture(t)

	first, err := uc.Execute(context.Background(), "BK-2025-001", map[string]any{"customer_name": "Max"})
	require.NoError(t, err)
	require.False(t, first.Cached)

	// Even a changed template does not affect the cached document.
	tpl := mustTemplate(t, "invoice", "invoice", "Rechnung NEU", "", "geaendert", true)
	require.NoError(t, repo.Save(context.Background(), tpl))

	second, err := uc.Execute(context.Background(), "BK-2025-001", map[string]any{"customer_name": "Max"})
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.HTML, second.HTML)
}

func TestBuildInvoiceClearCacheRegenerates(t *testing.T) {
	uc, repo := newInvoiceFixture(t)

	first, err := uc.Execute(context.Background(), "BK-2025-001", map[string]any{"customer_name": "Max"})
	require.NoError(t, err)

	tpl := mustTemplate(t, "invoice", "invoice", "Rechnung {{order_number}}", "", "Neue Fassung fuer {{customer_name}}", true)
	require.NoError(t, repo.Save(context.Background(), tpl))

	uc.ClearCache()

	second, err := uc.Execute(context.Background(), "BK-2025-001", map[string]any{"customer_name": "Max"})
	require.NoError(t, err)
	assert.False(t, second.Cached)
	assert.NotEqual(t, first.HTML, second.HTML)
	assert.Contains(t, second.HTML, "Neue Fassung")
}

func TestBuildInvoicePerOrderIsolation(t *testing.T) {
	uc, _ := newInvoiceFixture(t)

	a, err := uc.Execute(context.Background(), "BK-2025-001", map[string]any{"customer_name": "Max"})
	require.NoError(t, err)
	b, err := uc.Execute(context.Background(), "BK-2025-002", map[string]any{"customer_name": "Erika"})
	require.NoError(t, err)

	assert.False(t, b.Cached)
	assert.NotEqual(t, a.HTML, b.HTML)
}

func TestBuildInvoiceValidation(t *testing.T) {
	uc, _ := newInvoiceFixture(t)

	_, err := uc.Execute(context.Background(), "", map[string]any{"customer_name": "Max"})
	assert.True(t, errors.IsValidationError(err))
}

func TestBuildInvoiceWithoutTemplate(t *testing.T) {
	uc := NewBuildInvoiceUseCase(newFakeTemplateRepo(), markdown.NewService(), newNopLogger())

	_, err := uc.Execute(context.Background(), "BK-2025-001", map[string]any{"customer_name": "Max"})
	assert.True(t, errors.IsTemplateUnavailableError(err))
}

func TestBuildInvoiceInactiveTemplate(t *testing.T) {
	repo := newFakeTemplateRepo()
	tpl := mustTemplate(t, "invoice", "invoice", "Rechnung", "", "body", false)
	require.NoError(t, repo.Save(context.Background(), tpl))
	uc := NewBuildInvoiceUseCase(repo, markdown.NewService(), newNopLogger())

	_, err := uc.Execute(context.Background(), "BK-2025-001", map[string]any{"customer_name": "Max"})
	assert.True(t, errors.IsTemplateUnavailableError(err))
}
