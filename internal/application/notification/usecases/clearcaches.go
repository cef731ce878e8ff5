package usecases

import "holzwerk/internal/shared/logger"

// CacheClearer evicts every entry from a cache
type CacheClearer interface {
	ClearAll()
}

// ClearTemplateCacheUseCase evicts the template cache so the next lookup
// reflects the store's current state. Always succeeds.
type ClearTemplateCacheUseCase struct {
	cache  CacheClearer
	logger logger.Interface
}

// NewClearTemplateCacheUseCase creates a new ClearTemplateCacheUseCase
func NewClearTemplateCacheUseCase(cache CacheClearer, logger logger.Interface) *ClearTemplateCacheUseCase {
	return &ClearTemplateCacheUseCase{
		cache:  cache,
		logger: logger,
	}
}

// Execute evicts all cached templates
func (uc *ClearTemplateCacheUseCase) Execute() {
	uc.cache.ClearAll()
}
