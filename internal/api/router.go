// Package api wires the HTTP surface: router, handlers, authorization
// gates, and the central error handler.
package api

import (
	"database/sql"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/joblyhq/jobs-api/internal/api/handler"
	"github.com/joblyhq/jobs-api/internal/api/middleware"
	"github.com/joblyhq/jobs-api/internal/core/service"
	"github.com/joblyhq/jobs-api/internal/core/token"
	"github.com/joblyhq/jobs-api/internal/infrastructure/db/postgres"
)

// Options carries the router's external dependencies.
type Options struct {
	DB        *sql.DB
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("jobly"))

	// --- Dependencies ---
	codec := token.NewCodec(opts.JWTSecret, opts.TokenTTL)

	companyRepo := postgres.NewCompanyRepository(opts.DB)
	jobRepo := postgres.NewJobRepository(opts.DB)
	userRepo := postgres.NewUserRepository(opts.DB)

	companyService := service.NewCompanyService(companyRepo)
	jobService := service.NewJobService(jobRepo, companyRepo)
	userService := service.NewUserService(userRepo)

	companyHandler := handler.NewCompanyHandler(companyService)
	jobHandler := handler.NewJobHandler(jobService)
	userHandler := handler.NewUserHandler(userService, codec)
	authHandler := handler.NewAuthHandler(userService, codec)
	healthHandler := handler.NewHealthHandler(opts.DB)

	authenticated := middleware.Authenticated(codec)
	adminOnly := middleware.AdminOnly(codec)
	sameUser := middleware.SameUser(codec)

	// --- Auth ---
	e.POST("/login", authHandler.Login)

	// --- Companies ---
	e.GET("/companies", companyHandler.List, authenticated)
	e.POST("/companies", companyHandler.Create, adminOnly)
	e.GET("/companies/:handle", companyHandler.Get, authenticated)
	e.PATCH("/companies/:handle", companyHandler.Update, adminOnly)
	e.DELETE("/companies/:handle", companyHandler.Delete, adminOnly)

	// --- Jobs (no gate) ---
	e.GET("/jobs", jobHandler.List)
	e.POST("/jobs", jobHandler.Create)
	e.GET("/jobs/:id", jobHandler.Get)
	e.PATCH("/jobs/:id", jobHandler.Update)
	e.DELETE("/jobs/:id", jobHandler.Delete)

	// --- Users ---
	e.GET("/users", userHandler.List, authenticated)
	e.POST("/users", userHandler.Register)
	e.GET("/users/:username", userHandler.Get, authenticated)
	e.PATCH("/users/:username", userHandler.Update, sameUser)
	e.DELETE("/users/:username", userHandler.Delete, sameUser)

	// --- Probes and metrics ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
