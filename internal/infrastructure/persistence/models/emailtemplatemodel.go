package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"holzwerk/internal/shared/constants"
)

type EmailTemplateModel struct {
	ID           uint           `gorm:"primaryKey"`
	Key          string         `gorm:"column:template_key;size:100;not null;uniqueIndex"`
	TemplateType string         `gorm:"size:50;not null;index"`
	Name         string         `gorm:"size:100"`
	Subject      string         `gorm:"size:255;not null"`
	HTMLBody     string         `gorm:"column:html_body;type:longtext"`
	TextBody     string         `gorm:"type:longtext"`
	Variables    datatypes.JSON `gorm:"type:json"`
	Active       bool           `gorm:"default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (EmailTemplateModel) TableName() string {
	return constants.TableEmailTemplates
}
