package routes

import (
	"github.com/gin-gonic/gin"

	"holzwerk/internal/interfaces/http/handlers"
)

type SettingRouteConfig struct {
	SettingHandler *handlers.SettingHandler
}

func SetupSettingRoutes(api *gin.RouterGroup, config *SettingRouteConfig) {
	settings := api.Group("/settings")
	{
		settings.GET("/smtp", config.SettingHandler.GetSMTPConfig)
		settings.PUT("/smtp", config.SettingHandler.UpdateSMTPConfig)
		settings.POST("/smtp/test", config.SettingHandler.SendTestEmail)
	}
}
