package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/consultbridge/marketplace-api/docs"
	"github.com/consultbridge/marketplace-api/internal/api/handler"
	"github.com/consultbridge/marketplace-api/internal/api/middleware"
	"github.com/consultbridge/marketplace-api/internal/core/ports"
)

// Dependencies carries everything the router needs. All services are ports
// interfaces so tests can wire stubs.
type Dependencies struct {
	Consultants ports.ConsultantService
	Projects    ports.ProjectService
	Inquiries   ports.InquiryService
	Admin       ports.AdminService
	Seeder      ports.SeedService
	KV          ports.KV
	JWTSecret   string
	Logger      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	consultantHandler := handler.NewConsultantHandler(deps.Consultants)
	projectHandler := handler.NewProjectHandler(deps.Projects)
	inquiryHandler := handler.NewInquiryHandler(deps.Inquiries)
	adminHandler := handler.NewAdminHandler(deps.Admin, deps.Seeder)
	healthHandler := handler.NewHealthHandler(deps.KV, deps.Seeder)

	// --- Public directory ---
	v1 := e.Group("/v1")
	v1.GET("/consultants", consultantHandler.Search)
	v1.POST("/consultants", consultantHandler.Register)
	v1.GET("/consultants/:id", consultantHandler.Get)
	v1.GET("/projects", projectHandler.Search)
	v1.POST("/projects", projectHandler.Register)
	v1.GET("/projects/:id", projectHandler.Get)
	v1.POST("/inquiries", inquiryHandler.Create)

	// --- Moderation surface ---
	v1.POST("/admin/login", adminHandler.Login)

	admin := v1.Group("/admin", middleware.AdminAuth(deps.JWTSecret))
	admin.GET("/inquiries", inquiryHandler.List)
	admin.DELETE("/inquiries/:id", inquiryHandler.Delete)
	admin.PUT("/consultants/:id", consultantHandler.Update)
	admin.DELETE("/consultants/:id", consultantHandler.Delete)
	admin.PUT("/projects/:id", projectHandler.Update)
	admin.DELETE("/projects/:id", projectHandler.Delete)
	admin.GET("/stats", adminHandler.Stats)
	admin.POST("/seed", adminHandler.Seed)

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Live)
	e.GET("/health/ready", healthHandler.Ready)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
