package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "github.com/voicewaiter/backend/docs"
	orderingapp "github.com/voicewaiter/backend/internal/application/ordering"
	voiceapp "github.com/voicewaiter/backend/internal/application/voice"
	"github.com/voicewaiter/backend/internal/infrastructure/config"
	"github.com/voicewaiter/backend/internal/infrastructure/logger"
	"github.com/voicewaiter/backend/internal/infrastructure/square"
	"github.com/voicewaiter/backend/internal/infrastructure/telemetry"
	"github.com/voicewaiter/backend/internal/interfaces/http/handler"
	"github.com/voicewaiter/backend/internal/interfaces/http/middleware"
	"github.com/voicewaiter/backend/internal/interfaces/http/router"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// app holds the wired HTTP surface.
type app struct {
	engine *gin.Engine
}

// squareConfig maps the loaded settings onto the Square client configuration.
func squareConfig(cfg config.SquareConfig) *square.Config {
	return &square.Config{
		AccessToken:    cfg.AccessToken,
		LocationID:     cfg.LocationID,
		Environment:    square.Environment(cfg.Environment),
		BaseURL:        cfg.BaseURL,
		APIVersion:     cfg.APIVersion,
		TimeoutSeconds: int(cfg.Timeout.Seconds()),
	}
}

// newApp wires the Square adapter, application services and HTTP engine.
func newApp(cfg *config.Config, log *zap.Logger, meter metric.Meter) (*app, error) {
	voiceMetrics, err := telemetry.NewVoiceMetrics(meter)
	if err != nil {
		return nil, err
	}

	squareClient, err := square.NewClient(squareConfig(cfg.Square),
		square.WithLogger(log),
		square.WithObserver(voiceMetrics),
	)
	if err != nil {
		return nil, err
	}

	menuService := orderingapp.NewMenuService(squareClient)
	orderService := orderingapp.NewOrderService(squareClient, orderingapp.WithOrderMetrics(voiceMetrics))
	webhookService := voiceapp.NewWebhookService(orderService, voiceMetrics)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware order:
	// 1. RequestID - generate/propagate request ID
	// 2. Tracing - server span, then request ID attribute and error marking
	// 3. Logger and Recovery - request-scoped logger, panics become 500s
	// 4. HTTPMetrics - request count and latency
	// 5. Profiling - route and method labels on CPU samples
	// 6. BodyLimit and Secure headers
	engine.Use(middleware.RequestID())
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		Enabled:     cfg.Telemetry.Enabled,
		ServiceName: cfg.Telemetry.ServiceName,
	}))
	engine.Use(middleware.RequestIDAttribute())
	engine.Use(middleware.SpanErrorMarker())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.HTTPMetrics(meter, log))
	if cfg.Telemetry.ProfilingEnabled {
		engine.Use(middleware.Profiling(middleware.DefaultProfilingConfig()))
	}
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	engine.Use(middleware.Secure())

	systemHandler := handler.NewSystemHandler()
	menuHandler := handler.NewMenuHandler(menuService)
	orderHandler := handler.NewOrderHandler(orderService)
	webhookHandler := handler.NewWebhookHandler(webhookService)

	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:    cfg.Swagger.Enabled,
			AllowedIPs: cfg.Swagger.AllowedIPs,
		}),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	r := router.NewRouter(engine)

	systemRoutes := router.NewDomainGroup("system", "")
	systemRoutes.GET("/", systemHandler.Health)

	menuRoutes := router.NewDomainGroup("menu", "/menu")
	menuRoutes.GET("", menuHandler.GetMenu)

	orderRoutes := router.NewDomainGroup("orders", "")
	orderRoutes.POST("/order", orderHandler.CreateOrder)
	orderRoutes.GET("/orders/recent", orderHandler.RecentOrders)

	webhookRoutes := router.NewDomainGroup("vapi", "/vapi-webhook")
	webhookRoutes.Use(middleware.VapiSecret(cfg.Vapi.WebhookSecret))
	webhookRoutes.POST("", webhookHandler.Handle)

	r.Register(systemRoutes).
		Register(menuRoutes).
		Register(orderRoutes).
		Register(webhookRoutes)
	r.Setup()

	return &app{engine: engine}, nil
}
