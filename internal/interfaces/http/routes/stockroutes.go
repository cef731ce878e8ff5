package routes

import (
	"github.com/gin-gonic/gin"

	"holzwerk/internal/interfaces/http/handlers"
)

type StockRouteConfig struct {
	StockHandler *handlers.StockHandler
}

func SetupStockRoutes(api *gin.RouterGroup, config *StockRouteConfig) {
	stock := api.Group("/stock")
	{
		// Specific path before the parameterized one to avoid route conflicts
		stock.POST("/sweep", config.StockHandler.SweepLowStock)
		stock.POST("/check/:product_id", config.StockHandler.CheckLowStock)
	}
}
