package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	portssvc "github.com/ledgerlogic/ledgerlogic/internal/core/ports/services"
	"github.com/ledgerlogic/ledgerlogic/internal/core/services"
	"github.com/ledgerlogic/ledgerlogic/internal/handlers"
	"github.com/ledgerlogic/ledgerlogic/internal/middleware"
	"github.com/ledgerlogic/ledgerlogic/internal/platform/mail"
	"github.com/ledgerlogic/ledgerlogic/internal/platform/scheduler"
	"github.com/ledgerlogic/ledgerlogic/internal/repositories/database/pgsql"
	"github.com/ledgerlogic/ledgerlogic/pkg/config"
	"github.com/ledgerlogic/ledgerlogic/pkg/database"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Ledger Logic API
// @version 1.0
// @description Accounting dashboard backend: chart of accounts, journal approval workflow and financial statements.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	registerCustomValidations(logger)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Wire repositories and services
	repos := pgsql.NewRepositoryProvider(dbPool)

	var mailer portssvc.Mailer
	if cfg.SMTPHost != "" {
		mailer = mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	}

	container := &portssvc.ServiceContainer{
		Account:   services.NewAccountService(repos.AccountRepo),
		Journal:   services.NewJournalService(repos.JournalRepo, repos.AccountRepo),
		Reporting: services.NewReportingService(repos.ReportingRepo, mailer),
		User:      services.NewUserService(repos.UserRepo),
		Token:     services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTExpiryDuration),
	}

	handlers.RegisterRoutes(r, cfg, container)

	// Periodic suspension-expiry sweep
	sched := scheduler.New(container.User, logger)
	if err := sched.Start(cfg.SuspensionSweepSpec); err != nil {
		logger.Error("Failed to start scheduler", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer sched.Stop()

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := r.Run(":" + cfg.Port); err != nil {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")
}

// runMigrations applies all pending migrations from the migrations directory
// over a temporary database/sql connection.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// registerCustomValidations installs the binding validations used by the DTOs.
func registerCustomValidations(logger *slog.Logger) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		logger.Warn("Validator engine unavailable; custom validations not registered")
		return
	}

	// accountnumber: four-digit chart number, e.g. "1110". Signs and
	// non-digit characters are rejected.
	_ = v.RegisterValidation("accountnumber", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) != 4 {
			return false
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})

	// normalside: Debit or Credit
	_ = v.RegisterValidation("normalside", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "Debit" || s == "Credit"
	})
}
