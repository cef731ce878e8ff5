package mappers

import (
	"fmt"

	"holzwerk/internal/domain/product"
	"holzwerk/internal/infrastructure/persistence/models"
)

type ProductMapper interface {
	ToEntity(model *models.ProductModel) (*product.Product, error)
	ToEntities(models []*models.ProductModel) ([]*product.Product, error)
}

type ProductMapperImpl struct{}

func NewProductMapper() ProductMapper {
	return &ProductMapperImpl{}
}

func (m *ProductMapperImpl) ToEntity(model *models.ProductModel) (*product.Product, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := product.ReconstructProduct(
		model.ID,
		model.SKU,
		model.Name,
		model.StockQuantity,
		model.LowStockThreshold,
		model.Active,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct product entity: %w", err)
	}

	return entity, nil
}

func (m *ProductMapperImpl) ToEntities(modelList []*models.ProductModel) ([]*product.Product, error) {
	entities := make([]*product.Product, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}
