package main

import (
	"strconv"
	"time"

	"github.com/rockviolet/WanderLanka/internal/handler"
	"github.com/rockviolet/WanderLanka/internal/middleware"
	"github.com/rockviolet/WanderLanka/internal/model"
	"github.com/rockviolet/WanderLanka/internal/planner"
	"github.com/rockviolet/WanderLanka/pkg/config"
	"github.com/rockviolet/WanderLanka/pkg/database"
	"github.com/rockviolet/WanderLanka/pkg/jwtutil"
	"github.com/rockviolet/WanderLanka/pkg/logger"
	"github.com/rockviolet/WanderLanka/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	logger.InitLogger(cfg)
	log := logger.GetLogger()
	log.Info("Starting WanderLanka service...", zap.String("environment", cfg.Server.Env))

	// Initialize JWT utilities
	jwtutil.Initialize(&cfg.JWT)
	log.Info("JWT utilities initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(cfg)
	log.Info("Prometheus metrics initialized")

	// Initialize the completion-service client and plan generator
	completionClient := planner.NewClient(&cfg.OpenAI)
	handler.CompletionClient = completionClient
	handler.PlanGenerator = planner.NewGenerator(completionClient)
	handler.UploadSettings = &cfg.Upload
	log.Info("Plan generator initialized", zap.String("model", cfg.OpenAI.Model))

	// Initialize database and run migrations
	if _, err := database.InitDB(&cfg.DB); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	if err := database.MigrateModels(
		&model.Client{},
		&model.TourGuide{},
		&model.Destination{},
		&model.TourPlan{},
		&model.Review{},
		&model.TourGuideReview{},
	); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Database connection established and migrations completed",
		zap.String("db_host", cfg.DB.Host),
		zap.String("db_name", cfg.DB.DBName))

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)

	// Request logging middleware
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// Process request
			err := next(c)

			// Calculate duration
			duration := time.Since(start).Seconds()
			status := c.Response().Status

			// Log request details
			log := logger.FromContext(c)
			log.Info("HTTP Request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", status),
				zap.Float64("duration_s", duration),
				zap.String("ip", c.RealIP()),
			)

			prometheus.HttpRequestsTotal.WithLabelValues(
				c.Request().Method,
				c.Request().URL.Path,
				strconv.Itoa(status),
			).Inc()

			prometheus.HttpRequestDuration.WithLabelValues(
				c.Request().Method,
				c.Request().URL.Path,
				strconv.Itoa(status),
			).Observe(duration)

			return err
		}
	})

	// Routes
	// Public routes that don't require authentication
	e.GET("/", handler.Hello)
	e.GET("/health", handler.Hello)

	// Prometheus metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Public auth endpoints
	e.POST("/api/register", handler.Register)
	e.POST("/api/login", handler.Login)
	e.POST("/api/guide-login", handler.GuideLogin)

	// Serve uploaded images
	e.Static(cfg.Upload.PublicPath, cfg.Upload.Dir)

	// API routes that require authentication
	api := e.Group("/api")
	api.Use(middleware.AuthMiddleware)

	// Client endpoints
	api.GET("/clients", handler.ListClients)
	api.GET("/clients/:id", handler.GetClient)
	api.PUT("/clients/:id", handler.UpdateClient)
	api.DELETE("/clients/:id", handler.DeleteClient)

	// Tour guide endpoints
	api.POST("/tour-guides", handler.CreateTourGuide)
	api.GET("/tour-guides", handler.ListTourGuides)
	api.GET("/tour-guides/suggest", handler.SuggestTourGuides)
	api.GET("/tour-guides/:id", handler.GetTourGuide)
	api.PUT("/tour-guides/:id", handler.UpdateTourGuide)
	api.DELETE("/tour-guides/:id", handler.DeleteTourGuide)

	// Destination endpoints
	api.POST("/destinations", handler.CreateDestination)
	api.GET("/destinations", handler.ListDestinations)
	api.GET("/destinations/suggest", handler.SuggestDestinations)
	api.GET("/destinations/:id", handler.GetDestination)
	api.PUT("/destinations/:id", handler.UpdateDestination)
	api.DELETE("/destinations/:id", handler.DeleteDestination)

	// Tour plan endpoints
	api.POST("/tour-plans", handler.CreateTourPlan)
	api.GET("/tour-plans", handler.ListTourPlans)
	api.POST("/tour-plans/generate", handler.GenerateTourPlan)
	api.GET("/tour-plans/:id", handler.GetTourPlan)
	api.PUT("/tour-plans/:id", handler.UpdateTourPlan)
	api.DELETE("/tour-plans/:id", handler.DeleteTourPlan)

	// Review endpoints
	api.POST("/reviews", handler.CreateReview)
	api.GET("/reviews", handler.ListReviews)
	api.PUT("/reviews/:id", handler.UpdateReview)
	api.DELETE("/reviews/:id", handler.DeleteReview)

	// Tour guide review endpoints
	api.POST("/tour-guide-reviews", handler.CreateTourGuideReview)
	api.GET("/tour-guide-reviews", handler.ListTourGuideReviews)
	api.DELETE("/tour-guide-reviews/:id", handler.DeleteTourGuideReview)

	// Travel assistant chat
	api.POST("/chat", handler.Chat)

	// Image upload
	api.POST("/uploads", handler.UploadImage)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
