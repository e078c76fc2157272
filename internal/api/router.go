package api

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/minicrm/crm-system/internal/api/handler"
	"github.com/minicrm/crm-system/internal/api/middleware"
	"github.com/minicrm/crm-system/internal/core/service"
	"github.com/minicrm/crm-system/internal/infrastructure/config"
	"github.com/minicrm/crm-system/internal/infrastructure/db/postgres"
	redisdb "github.com/minicrm/crm-system/internal/infrastructure/db/redis"
	"github.com/minicrm/crm-system/web"
)

// NewRouter builds and returns the Echo instance with all routes
// registered. rdb may be nil, in which case rate limiting is skipped and
// the readiness probe reports redis as disabled.
func NewRouter(pool *pgxpool.Pool, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("crm"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{cfg.ClientOrigin},
		AllowHeaders: []string{echo.HeaderContentType, middleware.HeaderUserID},
	}))
	e.Use(middleware.Identity())

	if rdb != nil && cfg.RateLimit.Enabled {
		limiter := redisdb.NewWindowLimiter(rdb, cfg.RateLimit.RPM, time.Minute)
		e.Use(middleware.RateLimit(limiter, log))
	}

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)

	userService := service.NewUserService(userRepo, contactRepo, log)
	accountService := service.NewAccountService(accountRepo, log)
	contactService := service.NewContactService(userRepo, contactRepo, log)

	userHandler := handler.NewUserHandler(userService)
	accountHandler := handler.NewAccountHandler(accountService)
	contactHandler := handler.NewContactHandler(contactService)

	// --- Health probes and metrics ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- API routes ---
	e.GET("/me", userHandler.Me)
	e.POST("/upgrade", userHandler.Upgrade)

	e.GET("/accounts", accountHandler.List)
	e.POST("/accounts", accountHandler.Create)

	e.GET("/contacts", contactHandler.List)
	e.POST("/contacts", contactHandler.Create)
	e.PUT("/contacts/:id", contactHandler.Update)
	e.DELETE("/contacts/:id", contactHandler.Delete)

	// --- Embedded single-page client ---
	web.Register(e)

	return e
}
