package cache

import (
	"context"

	"holzwerk/internal/domain/notification"
	"holzwerk/internal/shared/logger"
)

const (
	templateKeyPrefix  = "key:"
	templateTypePrefix = "type:"
)

// CachingTemplateRepository decorates a TemplateRepository with an in-process
// cache. Single-record lookups are memoized, negative results included; list
// operations pass through to the store. Save invalidates the affected keys so
// administrative updates become visible on the next lookup, and ClearAll
// evicts everything at once.
type CachingTemplateRepository struct {
	store  notification.TemplateRepository
	cache  *KeyedCache[notification.EmailTemplate]
	logger logger.Interface
}

// NewCachingTemplateRepository creates a caching decorator over store
func NewCachingTemplateRepository(store notification.TemplateRepository, logger logger.Interface) *CachingTemplateRepository {
	return &CachingTemplateRepository{
		store:  store,
		cache:  NewKeyedCache[notification.EmailTemplate](),
		logger: logger,
	}
}

// GetByKey retrieves a template by its unique key, cache-first
func (r *CachingTemplateRepository) GetByKey(ctx context.Context, key string) (*notification.EmailTemplate, error) {
	return r.lookup(ctx, templateKeyPrefix+key, func() (*notification.EmailTemplate, error) {
		return r.store.GetByKey(ctx, key)
	})
}

// GetByType retrieves a template by its type, cache-first
func (r *CachingTemplateRepository) GetByType(ctx context.Context, templateType string) (*notification.EmailTemplate, error) {
	return r.lookup(ctx, templateTypePrefix+templateType, func() (*notification.EmailTemplate, error) {
		return r.store.GetByType(ctx, templateType)
	})
}

// ListByType passes through to the store
func (r *CachingTemplateRepository) ListByType(ctx context.Context, templateType string) ([]*notification.EmailTemplate, error) {
	return r.store.ListByType(ctx, templateType)
}

// ListActive passes through to the store
func (r *CachingTemplateRepository) ListActive(ctx context.Context) ([]*notification.EmailTemplate, error) {
	return r.store.ListActive(ctx)
}

// Save persists the template and invalidates its cache entries
func (r *CachingTemplateRepository) Save(ctx context.Context, template *notification.EmailTemplate) error {
	if err := r.store.Save(ctx, template); err != nil {
		return err
	}
	r.cache.Invalidate(templateKeyPrefix + template.Key())
	r.cache.Invalidate(templateTypePrefix + template.TemplateType())
	return nil
}

// ClearAll evicts every cached template. The next lookup repopulates from
// the store.
func (r *CachingTemplateRepository) ClearAll() {
	r.cache.ClearAll()
	r.logger.Infow("template cache cleared")
}

// Len returns the number of cached entries, negatives included
func (r *CachingTemplateRepository) Len() int {
	return r.cache.Len()
}

func (r *CachingTemplateRepository) lookup(ctx context.Context, cacheKey string, fetch func() (*notification.EmailTemplate, error)) (*notification.EmailTemplate, error) {
	if tpl, hit := r.cache.Get(cacheKey); hit {
		return tpl, nil
	}

	gen := r.cache.Generation()
	tpl, err := fetch()
	if err != nil {
		return nil, err
	}

	if tpl == nil {
		r.cache.PutNegativeIfCurrent(gen, cacheKey)
		return nil, nil
	}

	r.cache.PutIfCurrent(gen, cacheKey, tpl)
	return tpl, nil
}
