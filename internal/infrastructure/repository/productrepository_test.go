package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"holzwerk/internal/infrastructure/persistence/models"
)

func seedProduct(t *testing.T, db *gorm.DB, sku string, stock, threshold int, active bool) uint {
	t.Helper()
	model := &models.ProductModel{
		SKU:               sku,
		Name:              "Brennholz " + sku,
		StockQuantity:     stock,
		LowStockThreshold: threshold,
		Active:            active,
	}
	require.NoError(t, db.Create(model).Error)
	return model.ID
}

func TestProductRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	id := seedProduct(t, db, "BH-25", 12, 5, true)

	t.Run("existing product", func(t *testing.T) {
		p, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "BH-25", p.SKU())
		assert.Equal(t, 12, p.StockQuantity())
		assert.Equal(t, 5, p.LowStockThreshold())
	})

	t.Run("missing product returns nil without error", func(t *testing.T) {
		p, err := repo.GetByID(ctx, 9999)
		assert.NoError(t, err)
		assert.Nil(t, p)
	})
}

func TestProductRepository_ListActiveBelowThreshold(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seedProduct(t, db, "BH-25", 3, 10, true)  // below own threshold
	seedProduct(t, db, "BH-33", 15, 10, true) // above own threshold
	seedProduct(t, db, "BH-50", 4, 0, true)   // below default threshold
	seedProduct(t, db, "BH-80", 6, 0, true)   // above default threshold
	seedProduct(t, db, "BH-99", 1, 10, false) // inactive

	products, err := repo.ListActiveBelowThreshold(ctx, 5)
	require.NoError(t, err)
	require.Len(t, products, 2)

	// Ordered by stock quantity, lowest first.
	assert.Equal(t, "BH-25", products[0].SKU())
	assert.Equal(t, "BH-50", products[1].SKU())
}

func TestProductRepository_ListActiveBelowThresholdBoundary(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	// Stock exactly at the threshold counts as low.
	seedProduct(t, db, "BH-25", 10, 10, true)
	seedProduct(t, db, "BH-50", 5, 0, true)

	products, err := repo.ListActiveBelowThreshold(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}
