package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/usedphones/phoneshop-api/docs"
	"github.com/usedphones/phoneshop-api/internal/api/handler"
	"github.com/usedphones/phoneshop-api/internal/api/middleware"
	"github.com/usedphones/phoneshop-api/internal/core/ports"
	"github.com/usedphones/phoneshop-api/internal/core/service"
	mongostore "github.com/usedphones/phoneshop-api/internal/infrastructure/db/mongo"
	redisstore "github.com/usedphones/phoneshop-api/internal/infrastructure/db/redis"
	"github.com/usedphones/phoneshop-api/internal/infrastructure/queue"
	"github.com/usedphones/phoneshop-api/internal/infrastructure/session"
	"github.com/usedphones/phoneshop-api/internal/pkg/config"
	"github.com/usedphones/phoneshop-api/internal/pkg/password"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Background components (audit workers, memory-store janitor) run until ctx
// is cancelled.
func NewRouter(ctx context.Context, db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("phoneshop"))

	// --- Session store ---
	var sessions ports.SessionStore
	if cfg.Session.Backend == "memory" {
		mem := session.NewMemoryStore(cfg.Session.TTL)
		mem.StartJanitor(ctx)
		sessions = mem
	} else {
		sessions = redisstore.NewSessionStore(rdb, cfg.Session.TTL)
	}

	// --- Audit trail ---
	auditRepo := mongostore.NewAuditRepository(db)
	dispatcher := queue.NewAuditDispatcher(cfg.Audit.Workers, auditRepo, log)
	dispatcher.Start(ctx)

	// --- Services and handlers ---
	userRepo := mongostore.NewUserRepository(db)
	hasher := password.NewHasher(cfg.HashScheme)
	authService := service.NewAuthService(userRepo, sessions, hasher, dispatcher)
	authHandler := handler.NewAuthHandler(authService, cfg.Session.TTL)

	phoneRepo := mongostore.NewPhoneRepository(db)
	phoneService := service.NewPhoneService(phoneRepo)
	phoneHandler := handler.NewPhoneHandler(phoneService)

	// --- Access gate ---
	e.Use(middleware.SessionGate(sessions, middleware.DefaultPolicy()))

	// --- Auth routes (gate bypasses the authentication check here) ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout)

	// --- Protected routes ---
	e.GET("/api/me", authHandler.Me)
	e.GET("/api/phones", phoneHandler.ListPhones)
	e.POST("/api/phones", phoneHandler.CreatePhone)
	e.PATCH("/api/phones/:id", phoneHandler.UpdatePhone)
	e.DELETE("/api/phones/:id", phoneHandler.DeletePhone)

	// --- Health probes, metrics, docs (outside the protected prefix) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
