package models

import (
	"time"

	"holzwerk/internal/shared/constants"
)

type SystemSettingModel struct {
	ID          uint   `gorm:"primaryKey"`
	Category    string `gorm:"size:50;not null;uniqueIndex:idx_category_key"`
	Key         string `gorm:"column:setting_key;size:100;not null;uniqueIndex:idx_category_key"`
	Value       string `gorm:"type:text"`
	ValueType   string `gorm:"size:20;not null;default:string"`
	Description string `gorm:"size:255"`
	Version     int    `gorm:"default:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (SystemSettingModel) TableName() string {
	return constants.TableSystemSettings
}
