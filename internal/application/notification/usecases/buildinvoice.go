package usecases

import (
	"context"
	"fmt"

	"holzwerk/internal/application/notification/dto"
	"holzwerk/internal/domain/notification"
	"holzwerk/internal/infrastructure/cache"
	"holzwerk/internal/shared/errors"
	"holzwerk/internal/shared/logger"
	"holzwerk/internal/shared/services/markdown"
)

// invoiceTemplateKey is the template the invoice document is generated from
const invoiceTemplateKey = "invoice"

// BuildInvoiceUseCase generates an invoice document for an order from the
// invoice template and memoizes it per order number. Regenerating the same
// invoice is served from the cache until ClearCache evicts it.
type BuildInvoiceUseCase struct {
	templateRepo notification.TemplateRepository
	documents    *cache.KeyedCache[string]
	markdown     markdown.Service
	logger       logger.Interface
}

// NewBuildInvoiceUseCase creates a new BuildInvoiceUseCase
func NewBuildInvoiceUseCase(
	templateRepo notification.TemplateRepository,
	markdown markdown.Service,
	logger logger.Interface,
) *BuildInvoiceUseCase {
	return &BuildInvoiceUseCase{
		templateRepo: templateRepo,
		documents:    cache.NewKeyedCache[string](),
		markdown:     markdown,
		logger:       logger,
	}
}

// Execute builds (or serves from cache) the invoice document for orderNumber
func (uc *BuildInvoiceUseCase) Execute(ctx context.Context, orderNumber string, data map[string]any) (*dto.InvoicePreviewResponse, error) {
	if orderNumber == "" {
		return nil, errors.NewValidationError("order number is required")
	}

	if doc, hit := uc.documents.Get(orderNumber); hit && doc != nil {
		return &dto.InvoicePreviewResponse{
			OrderNumber: orderNumber,
			HTML:        *doc,
			Cached:      true,
		}, nil
	}

	gen := uc.documents.Generation()

	tpl, err := uc.templateRepo.GetByKey(ctx, invoiceTemplateKey)
	if err != nil {
		return nil, errors.NewInternalError("invoice template lookup failed", err.Error())
	}
	if tpl == nil || !tpl.Active() {
		return nil, errors.NewTemplateUnavailableError(fmt.Sprintf("no active template %s", invoiceTemplateKey))
	}

	vars := make(map[string]any, len(data)+1)
	for k, v := range data {
		vars[k] = v
	}
	vars["order_number"] = orderNumber

	rendered := notification.Render(tpl, vars)
	html := rendered.HTML
	if html == "" {
		derived, mdErr := uc.markdown.ToHTMLSanitized(rendered.Text)
		if mdErr != nil {
			return nil, errors.NewInternalError("invoice generation failed", mdErr.Error())
		}
		html = derived
	} else {
		html = uc.markdown.Sanitize(html)
	}

	uc.documents.PutIfCurrent(gen, orderNumber, &html)
	uc.logger.Infow("invoice document generated", "order_number", orderNumber)

	return &dto.InvoicePreviewResponse{
		OrderNumber: orderNumber,
		HTML:        html,
	}, nil
}

// ClearCache evicts every generated invoice document. Idempotent and
// side-effect-free beyond eviction.
func (uc *BuildInvoiceUseCase) ClearCache() {
	uc.documents.ClearAll()
	uc.logger.Infow("invoice cache cleared")
}
