package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	notificationUsecases "holzwerk/internal/application/notification/usecases"
	settingUsecases "holzwerk/internal/application/setting/usecases"
	"holzwerk/internal/infrastructure/cache"
	"holzwerk/internal/infrastructure/config"
	"holzwerk/internal/infrastructure/email"
	"holzwerk/internal/infrastructure/repository"
	"holzwerk/internal/interfaces/http/handlers"
	"holzwerk/internal/interfaces/http/middleware"
	"holzwerk/internal/interfaces/http/routes"
	"holzwerk/internal/shared/logger"
	"holzwerk/internal/shared/services/markdown"
)

// Router wires the notification core behind its HTTP surface
type Router struct {
	engine              *gin.Engine
	cfg                 *config.Config
	notificationHandler *handlers.NotificationHandler
	stockHandler        *handlers.StockHandler
	settingHandler      *handlers.SettingHandler
	invoiceHandler      *handlers.InvoiceHandler
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(ctx context.Context, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	templateStore := repository.NewEmailTemplateRepository(db, log)
	templateRepo := cache.NewCachingTemplateRepository(templateStore, log)
	settingRepo := repository.NewSystemSettingRepository(db, log)
	productRepo := repository.NewProductRepository(db)

	provider := settingUsecases.NewSettingProvider(settingRepo, settingUsecases.SettingProviderConfig{
		EmailConfig: cfg.Email,
		StockConfig: cfg.Stock,
	}, log)

	mailerManager := email.NewMailerManager(provider, log)
	if err := mailerManager.Initialize(ctx); err != nil {
		return nil, err
	}
	provider.Subscribe(mailerManager)

	markdownService := markdown.NewService()
	alertState := cache.NewStockAlertStateManager(redisClient)

	dispatcher := notificationUsecases.NewSendTemplateEmailUseCase(templateRepo, mailerManager, markdownService, log)
	loyaltyTriggers := notificationUsecases.NewLoyaltyTriggerUseCase(dispatcher, log)
	getTemplate := notificationUsecases.NewGetTemplateUseCase(templateRepo, log)
	clearTemplateCache := notificationUsecases.NewClearTemplateCacheUseCase(templateRepo, log)
	checkLowStock := notificationUsecases.NewCheckLowStockUseCase(productRepo, alertState, dispatcher, provider, log)
	sweepLowStock := notificationUsecases.NewSweepLowStockUseCase(productRepo, checkLowStock, provider, log)
	buildInvoice := notificationUsecases.NewBuildInvoiceUseCase(templateRepo, markdownService, log)

	getSMTPConfig := settingUsecases.NewGetSMTPConfigUseCase(provider, log)
	updateSMTPConfig := settingUsecases.NewUpdateSMTPConfigUseCase(settingRepo, provider, log)
	sendTestEmail := settingUsecases.NewSendTestEmailUseCase(mailerManager, log)

	return &Router{
		engine: engine,
		cfg:    cfg,
		notificationHandler: handlers.NewNotificationHandler(
			dispatcher, loyaltyTriggers, getTemplate, clearTemplateCache, log,
		),
		stockHandler:   handlers.NewStockHandler(checkLowStock, sweepLowStock, log),
		settingHandler: handlers.NewSettingHandler(getSMTPConfig, updateSMTPConfig, sendTestEmail, log),
		invoiceHandler: handlers.NewInvoiceHandler(buildInvoice, log),
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(log logger.Interface) {
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")

	routes.SetupNotificationRoutes(api, &routes.NotificationRouteConfig{
		NotificationHandler: r.notificationHandler,
		InvoiceHandler:      r.invoiceHandler,
	})
	routes.SetupStockRoutes(api, &routes.StockRouteConfig{
		StockHandler: r.stockHandler,
	})
	routes.SetupSettingRoutes(api, &routes.SettingRouteConfig{
		SettingHandler: r.settingHandler,
	})
}

// GetEngine returns the underlying gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
