package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthtrack/config"
	deliveryHttp "healthtrack/internal/delivery/http"
	"healthtrack/internal/delivery/http/handler"
	"healthtrack/internal/delivery/http/middleware"
	"healthtrack/internal/delivery/http/view"
	"healthtrack/internal/infrastructure/cache"
	"healthtrack/internal/infrastructure/database"
	"healthtrack/internal/repository"
	"healthtrack/internal/service"
	"healthtrack/internal/usecase"
	"healthtrack/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	SetupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Infof("Database connected successfully (driver=%s)", cfg.DB.Driver)

	if cfg.DB.AutoMigrate {
		if err := database.EnsureSchema(db); err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to ensure schema: %w", err)
		}
		logrus.Info("Database schema ensured")
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	if redisClient != nil {
		logrus.Info("Redis connected successfully")
	} else {
		logrus.Info("Redis not configured, directory cache disabled")
	}

	// Initialize all layers
	httpHandler, err := NewHandler(cfg, db, redisClient, logrus.StandardLogger())
	if err != nil {
		app.Close()
		return nil, err
	}

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           httpHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return app, nil
}

// SetupLogger configures the logrus logger
func SetupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// NewHandler wires repositories, use cases and handlers into the routed
// HTTP handler. redisClient may be nil.
func NewHandler(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log *logrus.Logger) (http.Handler, error) {
	// Initialize validator
	customValidator := validator.NewValidator(cfg.Clinic.Specialties)

	// Initialize views
	renderer, err := view.NewRenderer(log)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	// Initialize repositories
	doctorRepo := repository.NewDoctorRepository()
	patientRepo := repository.NewPatientRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	historyRepo := repository.NewClinicalHistoryRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	directoryCache := service.NewDirectoryCache(redisClient, cfg.Redis.TTL, log)

	// Initialize usecases
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, directoryCache, auditService, cfg.Clinic.Specialties)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, directoryCache, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, doctorRepo, directoryCache, auditService)
	historyUsecase := usecase.NewClinicalHistoryUsecase(db, log, historyRepo, patientRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	homeHandler := handler.NewHomeHandler(renderer)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator, renderer)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator, renderer)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator, renderer, log)
	historyHandler := handler.NewClinicalHistoryHandler(historyUsecase, renderer)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	requestLogger := middleware.NewRequestLogger(log)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		log,
		homeHandler,
		doctorHandler,
		patientHandler,
		appointmentHandler,
		historyHandler,
		auditLogHandler,
		requestLogger,
		corsMiddleware,
	)
	return router.Setup(), nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		if err := database.Close(app.DB); err != nil {
			logrus.Warnf("Failed to close database: %v", err)
		}
	}

	if app.RedisClient != nil {
		if err := app.RedisClient.Close(); err != nil {
			logrus.Warnf("Failed to close Redis: %v", err)
		}
	}
}
