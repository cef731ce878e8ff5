package product

import "context"

// Repository is the read contract against the storefront's product data.
// Implementations return (nil, nil) when no product matches.
type Repository interface {
	GetByID(ctx context.Context, id uint) (*Product, error)

	// ListActiveBelowThreshold returns active products whose stock is at or
	// below their configured threshold, applying defaultThreshold to products
	// without one. Used by the stock sweep.
	ListActiveBelowThreshold(ctx context.Context, defaultThreshold int) ([]*Product, error)
}
