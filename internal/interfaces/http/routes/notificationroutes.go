package routes

import (
	"github.com/gin-gonic/gin"

	"holzwerk/internal/interfaces/http/handlers"
)

type NotificationRouteConfig struct {
	NotificationHandler *handlers.NotificationHandler
	InvoiceHandler      *handlers.InvoiceHandler
}

func SetupNotificationRoutes(api *gin.RouterGroup, config *NotificationRouteConfig) {
	templates := api.Group("/templates")
	{
		templates.GET("", config.NotificationHandler.ListTemplates)
		templates.GET("/:key", config.NotificationHandler.GetTemplate)
	}

	notifications := api.Group("/notifications")
	{
		notifications.POST("/send", config.NotificationHandler.SendNotification)

		loyalty := notifications.Group("/loyalty")
		{
			loyalty.POST("/points-earned", config.NotificationHandler.LoyaltyPointsEarned)
			loyalty.POST("/points-redeemed", config.NotificationHandler.LoyaltyPointsRedeemed)
			loyalty.POST("/tier-upgrade", config.NotificationHandler.LoyaltyTierUpgrade)
			loyalty.POST("/points-expiring", config.NotificationHandler.LoyaltyPointsExpiring)
		}
	}

	cacheGroup := api.Group("/cache")
	{
		cacheGroup.POST("/templates/clear", config.NotificationHandler.ClearTemplateCache)
		cacheGroup.POST("/invoices/clear", config.InvoiceHandler.ClearInvoiceCache)
	}

	invoices := api.Group("/invoices")
	{
		invoices.POST("/:order_number/preview", config.InvoiceHandler.PreviewInvoice)
	}
}
