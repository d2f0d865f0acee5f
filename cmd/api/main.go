package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/branchdesk/customer-intake/internal/application/service"
	"github.com/branchdesk/customer-intake/internal/config"
	"github.com/branchdesk/customer-intake/internal/infrastructure/database"
	"github.com/branchdesk/customer-intake/internal/infrastructure/repository"
	"github.com/branchdesk/customer-intake/internal/presentation/http/handler"
	"github.com/branchdesk/customer-intake/internal/presentation/http/middleware"
	"github.com/branchdesk/customer-intake/internal/presentation/http/routes"
	"github.com/branchdesk/customer-intake/internal/presentation/http/templates"
	"github.com/branchdesk/customer-intake/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	defer log.Sync()

	// Set Gin mode based on environment
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Open(&cfg.Database, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := database.AutoMigrate(db, log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	tmpl, err := templates.Load()
	if err != nil {
		log.Fatal("failed to parse templates", zap.Error(err))
	}

	customerRepo := repository.NewCustomerRepository(db)
	customerService := service.NewCustomerService(customerRepo)

	if total, err := customerService.CountCustomers(context.Background()); err == nil {
		log.Info("customer records loaded", zap.Int64("count", total))
	}

	handlers := &routes.Handlers{
		Customer: handler.NewCustomerHandler(customerService, log),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router := routes.Setup(handlers, &routes.Deps{
		Ctx:          ctx,
		Cfg:          cfg,
		Log:          log,
		Templates:    tmpl,
		SessionStore: middleware.NewCookieStore(cfg.Session.Secret, cfg.App.IsProduction()),
	})

	log.Info("starting server",
		zap.String("service", cfg.App.Name),
		zap.String("port", cfg.App.Port),
		zap.String("env", cfg.App.Env),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	stop()
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
}
