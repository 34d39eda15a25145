package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/joho/godotenv"

	"github.com/grihom/grihom-api/internal/config"
	"github.com/grihom/grihom-api/internal/database"
	"github.com/grihom/grihom-api/internal/handlers"
	"github.com/grihom/grihom-api/internal/middleware"
	"github.com/grihom/grihom-api/internal/services"
	"github.com/grihom/grihom-api/internal/types"

	_ "github.com/grihom/grihom-api/docs/api" // Swagger docs
)

// @title GriHom API
// @version 1.0.0
// @description Data service for the GriHom home-improvement value estimation app
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/grihom/grihom-api

// @license.name MIT

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load .env when present; real environment wins.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Skipping .env: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// The record store is constructed once and handed to the handlers by
	// reference; there is no ambient singleton.
	store := services.NewStore(db, cfg.MockLatency)
	if err := store.EnsureBootstrapAdmin(cfg); err != nil {
		log.Fatalf("Failed to seed bootstrap admin: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("grihom")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health probe
	app.Get("/health", func(c *fiber.Ctx) error {
		result := services.HealthCheck(cfg, db)
		status := fiber.StatusOK
		if result.Status != "healthy" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(result)
	})

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Create handlers
	authHandler := &handlers.AuthHandler{Store: store}
	catalogHandler := &handlers.CatalogHandler{Store: store}
	valuationHandler := &handlers.ValuationHandler{Store: store}
	reportsHandler := &handlers.ReportsHandler{Store: store}
	adminHandler := &handlers.AdminHandler{Store: store}
	prefsHandler := &handlers.PrefsHandler{Store: store}

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/register", authHandler.Register)
	auth.Post("/logout", middleware.AuthUser(store), authHandler.Logout)

	// Public catalog, valuation and report routes
	api.Get("/improvements", catalogHandler.ListImprovements)
	api.Post("/valuation", valuationHandler.Evaluate)
	api.Post("/reports", reportsHandler.CreateReport)
	api.Get("/reports", reportsHandler.ListReports)
	api.Delete("/reports/:id", reportsHandler.DeleteReport)

	// User preference routes (all require authentication)
	user := api.Group("/user", middleware.AuthUser(store))
	user.Get("/preferences", prefsHandler.GetPreferences)
	user.Put("/preferences", prefsHandler.SetPreferences)
	user.Get("/theme", prefsHandler.GetTheme)
	user.Put("/theme", prefsHandler.SetTheme)
	user.Get("/plan", prefsHandler.GetPlan)
	user.Post("/plan", prefsHandler.AddToPlan)
	user.Put("/plan", prefsHandler.SetPlan)
	user.Delete("/plan/:id", prefsHandler.RemoveFromPlan)
	user.Get("/favorites", prefsHandler.GetFavorites)
	user.Post("/favorites", prefsHandler.AddFavorite)
	user.Put("/favorites", prefsHandler.SetFavorites)
	user.Delete("/favorites/:id", prefsHandler.RemoveFavorite)

	// Admin routes
	admin := api.Group("/admin", middleware.AuthAdmin(store))
	admin.Get("/stats", adminHandler.Stats)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Put("/users/:id/role", adminHandler.UpdateUserRole)
	admin.Put("/users/:id/status", adminHandler.UpdateUserStatus)
	admin.Delete("/users/:id", adminHandler.DeleteUser)
	admin.Get("/improvements", adminHandler.ListAdminImprovements)
	admin.Post("/improvements", adminHandler.CreateImprovement)
	admin.Put("/improvements/:id", adminHandler.UpdateImprovement)
	admin.Delete("/improvements/:id", adminHandler.DeleteImprovement)
	admin.Get("/history", adminHandler.ListHistory)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	// Check if it's a Fiber error
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	// Check for middleware authorization errors
	var customErr *types.CustomError
	if errors.As(err, &customErr) {
		code = customErr.Code
		message = customErr.Message
		errorType = customErr.Type
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
