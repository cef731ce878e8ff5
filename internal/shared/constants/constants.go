// Package constants defines shared constant values used across the application.
package constants

// Database table names
const (
	TableEmailTemplates = "email_templates"
	TableSystemSettings = "system_settings"
	TableProducts       = "products"
)

// Setting categories in the system_settings table
const (
	SettingCategoryEmail = "email"
	// SettingCategoryEmailTemplate is the legacy storage path for templates:
	// one row per template, value holds the template JSON.
	SettingCategoryEmailTemplate = "email_template"
	SettingCategoryStock         = "stock"
)

// Default low-stock threshold applied when a product has none configured
const DefaultLowStockThreshold = 5
