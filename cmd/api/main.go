package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	_ "github.com/joho/godotenv/autoload"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sjperalta/rental-desk/docs" // Swagger docs
	"github.com/sjperalta/rental-desk/internal/config"
	"github.com/sjperalta/rental-desk/internal/database"
	"github.com/sjperalta/rental-desk/internal/handlers"
	"github.com/sjperalta/rental-desk/internal/jobs"
	"github.com/sjperalta/rental-desk/internal/metrics"
	"github.com/sjperalta/rental-desk/internal/middleware"
	"github.com/sjperalta/rental-desk/internal/rentalapi"
	"github.com/sjperalta/rental-desk/internal/repository"
	"github.com/sjperalta/rental-desk/internal/services"
	"github.com/sjperalta/rental-desk/internal/session"
	"github.com/sjperalta/rental-desk/internal/storage"
	"github.com/sjperalta/rental-desk/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title Rental Desk API
// @version 1.0
// @description Contract desk backend for the vehicle rental system: draft sessions, surcharges, pricing and contract submission

// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Setup(cfg.Environment, cfg.LogLevel)

	// Initialize Sentry (GlitchTip) when DSN is configured
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to database")

	// Initialize storage
	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	logger.Info("Initialized local storage", "path", cfg.StoragePath)

	// Rental backend client
	api, err := rentalapi.New(cfg.RentalAPIBaseURL,
		rentalapi.WithToken(cfg.RentalAPIToken),
		rentalapi.WithTimeout(cfg.APITimeout),
	)
	if err != nil {
		logger.Error("Invalid rental backend URL", "url", cfg.RentalAPIBaseURL, "error", err)
		os.Exit(1)
	}
	logger.Info("Using rental backend", "url", api.BaseURL(), "timeout", cfg.APITimeout)

	// Draft sessions draw surcharge ids from a snowflake node
	node, err := snowflake.NewNode(1)
	if err != nil {
		logger.Error("Failed to create id generator", "error", err)
		os.Exit(1)
	}
	sessions := session.NewStore(node, cfg.DefaultPaymentMethod)
	if cfg.MetricsEnabled {
		if err := metrics.RegisterOpenSessions(sessions.Len); err != nil {
			logger.Warn("Failed to register session gauge", "error", err)
		}
	}

	// Initialize background worker
	worker := jobs.NewWorker(cfg.WorkerCount)
	logger.Info("Started background worker", "goroutines", cfg.WorkerCount)

	// Initialize services
	svcs, err := services.NewServices(repository.NewRepositories(db), api, sessions, worker, store, cfg)
	if err != nil {
		logger.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	// Schedule recurring jobs
	scheduleJobs(worker, svcs, cfg)

	// Setup router
	router := setupRouter(handlers.NewHandlers(svcs), cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.APITimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	// Let queued payments and archives finish, cancelling them after the grace period
	worker.ShutdownWithin(jobs.DefaultShutdownGrace)
	logger.Info("Background worker stopped")

	// Flush Sentry events before exit
	if cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
}

func setupRouter(h *handlers.Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger("/api/v1/health", "/metrics"))
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	// Redirect root to swagger
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	h.Register(router.Group("/api/v1"), cfg.JWTSecret)

	return router
}

func scheduleJobs(worker *jobs.Worker, svcs *services.Services, cfg *config.Config) {
	// Drop drafts nobody touched for SESSION_TTL
	interval := cfg.SessionTTL / 4
	if interval > 15*time.Minute {
		interval = 15 * time.Minute
	}
	if interval < time.Minute {
		interval = time.Minute
	}
	worker.ScheduleEvery(interval, func(ctx context.Context) error {
		logger.Debug("[Job] Sweeping idle contract drafts...")
		svcs.Session.SweepExpired(ctx, cfg.SessionTTL)
		return nil
	})

	logger.Info("Scheduled recurring jobs", "session_sweep", interval)
}
