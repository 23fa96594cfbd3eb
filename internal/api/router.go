package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/coderhive/forecast-api/internal/api/handler"
	"github.com/coderhive/forecast-api/internal/api/middleware"
	"github.com/coderhive/forecast-api/internal/core/domain"
	"github.com/coderhive/forecast-api/internal/core/service"
	"github.com/coderhive/forecast-api/internal/infrastructure/config"
	mongodb "github.com/coderhive/forecast-api/internal/infrastructure/db/mongo"
	redisdb "github.com/coderhive/forecast-api/internal/infrastructure/db/redis"
	"github.com/coderhive/forecast-api/internal/infrastructure/http/handlers"
	"github.com/coderhive/forecast-api/internal/infrastructure/quote"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("coderhive"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	manufacturerRepo := mongodb.NewManufacturerRepository(db)
	sessionCache := redisdb.NewSessionCache(rdb, log)

	identityService := service.NewIdentityService(userRepo, cfg.JWTSecret)
	dashboardService := service.NewDashboardService(userRepo, manufacturerRepo, log)
	quoteClient := quote.NewClient(cfg.QuoteServiceURL, log)

	authHandler := handler.NewAuthHandler(identityService, sessionCache, sessionCache, log)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	quoteHandler := handler.NewQuoteHandler(quoteClient)

	authRequired := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout, authRequired)

	// --- Session / dashboards (all behind the bearer guard) ---
	e.GET("/api/me", dashboardHandler.Me, authRequired)
	e.GET("/api/dashboard/reseller", dashboardHandler.Reseller,
		authRequired, middleware.RBAC(domain.RoleReseller))
	e.GET("/api/dashboard/manufacturer", dashboardHandler.Manufacturer,
		authRequired, middleware.RBAC(domain.RoleManufacturer))

	// --- Quotes (reseller feature) ---
	e.POST("/api/quotes", quoteHandler.Prepare,
		authRequired, middleware.RBAC(domain.RoleReseller))

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/api/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/api/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability / docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
