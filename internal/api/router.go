package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/lawconnect/case-management/docs"
	"github.com/lawconnect/case-management/internal/api/handler"
	"github.com/lawconnect/case-management/internal/api/middleware"
	"github.com/lawconnect/case-management/internal/core/domain"
	"github.com/lawconnect/case-management/internal/core/service"
	mongodb "github.com/lawconnect/case-management/internal/infrastructure/db/mongo"
	redisdb "github.com/lawconnect/case-management/internal/infrastructure/db/redis"
	"github.com/lawconnect/case-management/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The notifier is the dispatcher feeding the asynchronous notification
// pipeline; entity services enqueue into it on mutations.
func NewRouter(db *mongo.Database, rdb *redis.Client, notifier service.Notifier, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"*"},
	}))
	e.Use(echoprometheus.NewMiddleware("lawconnect"))

	// --- Dependencies ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	throttle := redisdb.NewLoginThrottle(rdb)
	authService := service.NewAuthService(mongodb.NewAuthRepository(db), tokens, throttle, log)

	authHandler := handler.NewAuthHandler(authService)
	clientHandler := handler.NewClientHandler(service.NewClientService(mongodb.NewClientRepository(db), log))
	caseHandler := handler.NewCaseHandler(service.NewCaseRecordService(mongodb.NewCaseRepository(db), notifier, log))
	appointmentHandler := handler.NewAppointmentHandler(service.NewAppointmentService(mongodb.NewAppointmentRepository(db), notifier, log))
	lawyerHandler := handler.NewLawyerHandler(mongodb.NewLawyerRepository(db))
	notificationHandler := handler.NewNotificationHandler(mongodb.NewNotificationRepository(db))

	// --- Auth routes (always public) ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Health probes, metrics, API docs (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(db, rdb).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- /api routes ---
	// In enforced mode every route below requires a valid token, and guard()
	// applies the role × endpoint policy. Permissive mode reproduces the
	// legacy wide-open /api behaviour; the guard calls still document the
	// intended policy.
	api := e.Group("/api")
	if cfg.AuthMode == config.AuthModeEnforced {
		api.Use(middleware.Auth(cfg.JWTSecret))
	}

	guard := func(roles ...string) echo.MiddlewareFunc {
		if cfg.AuthMode != config.AuthModeEnforced {
			return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
		}
		return middleware.RBAC(roles...)
	}
	anyRole := []string{domain.RoleAdmin, domain.RoleLawyer, domain.RoleClient}

	api.POST("/clients", clientHandler.Create, guard(domain.RoleAdmin))
	api.GET("/clients", clientHandler.List, guard(domain.RoleAdmin, domain.RoleLawyer))
	api.GET("/clients/:id", clientHandler.Get, guard(domain.RoleAdmin, domain.RoleLawyer))
	api.PUT("/clients/:id", clientHandler.Update, guard(domain.RoleAdmin))
	api.DELETE("/clients/:id", clientHandler.Delete, guard(domain.RoleAdmin))

	api.POST("/cases", caseHandler.Create, guard(domain.RoleAdmin, domain.RoleLawyer))
	api.GET("/cases", caseHandler.List, guard(anyRole...))
	api.GET("/cases/:id", caseHandler.Get, guard(anyRole...))
	api.PUT("/cases/:id", caseHandler.Update, guard(domain.RoleAdmin, domain.RoleLawyer))
	api.DELETE("/cases/:id", caseHandler.Delete, guard(domain.RoleAdmin))

	api.POST("/appointments", appointmentHandler.Create, guard(anyRole...))
	api.GET("/appointments", appointmentHandler.List, guard(anyRole...))
	api.GET("/appointments/:id", appointmentHandler.Get, guard(anyRole...))
	api.PUT("/appointments/:id", appointmentHandler.Update, guard(anyRole...))
	api.DELETE("/appointments/:id", appointmentHandler.Delete, guard(anyRole...))

	api.GET("/lawyers", lawyerHandler.List, guard(anyRole...))

	api.GET("/notifications", notificationHandler.List, guard(anyRole...))
	api.PUT("/notifications/:id/read", notificationHandler.MarkRead, guard(anyRole...))

	return e
}
