package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"holzwerk/internal/domain/product"
	"holzwerk/internal/infrastructure/persistence/mappers"
	"holzwerk/internal/infrastructure/persistence/models"
)

type ProductRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ProductMapper
}

func NewProductRepository(db *gorm.DB) product.Repository {
	return &ProductRepositoryImpl{
		db:     db,
		mapper: mappers.NewProductMapper(),
	}
}

func (r *ProductRepositoryImpl) GetByID(ctx context.Context, id uint) (*product.Product, error) {
	var model models.ProductModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ProductRepositoryImpl) ListActiveBelowThreshold(ctx context.Context, defaultThreshold int) ([]*product.Product, error) {
	var modelList []*models.ProductModel

	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Where("(low_stock_threshold > 0 AND stock_quantity <= low_stock_threshold) OR (low_stock_threshold = 0 AND stock_quantity <= ?)", defaultThreshold).
		Order("stock_quantity ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}
