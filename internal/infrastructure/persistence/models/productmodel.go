package models

import (
	"time"

	"holzwerk/internal/shared/constants"
)

type ProductModel struct {
	ID                uint   `gorm:"primaryKey"`
	SKU               string `gorm:"size:64;not null;uniqueIndex"`
	Name              string `gorm:"size:255;not null"`
	StockQuantity     int    `gorm:"not null;default:0"`
	LowStockThreshold int    `gorm:"not null;default:0"`
	Active            bool   `gorm:"default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (ProductModel) TableName() string {
	return constants.TableProducts
}
