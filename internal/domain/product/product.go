package product

import (
	"fmt"
	"time"
)

// Product is the minimal projection of the catalog this core needs: stock
// level and the configured low-stock threshold. The catalog itself is owned
// by the storefront; this core only reads it.
type Product struct {
	id            uint
	sku           string
	name          string
	stockQuantity int
	// lowStockThreshold of 0 means "not configured"; the stock monitor then
	// applies the system default.
	lowStockThreshold int
	active            bool
	updatedAt         time.Time
}

func ReconstructProduct(
	id uint,
	sku string,
	name string,
	stockQuantity int,
	lowStockThreshold int,
	active bool,
	updatedAt time.Time,
) (*Product, error) {
	if id == 0 {
		return nil, fmt.Errorf("product ID cannot be zero")
	}
	if sku == "" {
		return nil, fmt.Errorf("sku is required")
	}

	return &Product{
		id:                id,
		sku:               sku,
		name:              name,
		stockQuantity:     stockQuantity,
		lowStockThreshold: lowStockThreshold,
		active:            active,
		updatedAt:         updatedAt,
	}, nil
}

func (p *Product) ID() uint               { return p.id }
func (p *Product) SKU() string            { return p.sku }
func (p *Product) Name() string           { return p.name }
func (p *Product) StockQuantity() int     { return p.stockQuantity }
func (p *Product) LowStockThreshold() int { return p.lowStockThreshold }
func (p *Product) Active() bool           { return p.active }
func (p *Product) UpdatedAt() time.Time   { return p.updatedAt }

// EffectiveThreshold returns the configured threshold, or fallback when the
// product has none.
func (p *Product) EffectiveThreshold(fallback int) int {
	if p.lowStockThreshold > 0 {
		return p.lowStockThreshold
	}
	return fallback
}

// IsLowStock reports whether the stock level is at or below the effective
// threshold.
func (p *Product) IsLowStock(fallbackThreshold int) bool {
	return p.stockQuantity <= p.EffectiveThreshold(fallbackThreshold)
}
