package routes

import (
	"context"
	"html/template"
	"time"

	"github.com/branchdesk/customer-intake/internal/config"
	"github.com/branchdesk/customer-intake/internal/presentation/http/dto/response"
	"github.com/branchdesk/customer-intake/internal/presentation/http/handler"
	"github.com/branchdesk/customer-intake/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Customer *handler.CustomerHandler
}

// Deps holds shared dependencies needed by the routes.
// Ctx bounds background work started by the routes, such as the rate limiter sweep.
type Deps struct {
	Ctx          context.Context
	Cfg          *config.Config
	Log          *zap.Logger
	Templates    *template.Template
	SessionStore sessions.Store
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()
	router.SetHTMLTemplate(deps.Templates)

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))
	router.Use(middleware.SessionMiddleware(deps.SessionStore, deps.Cfg.Session.Name))

	router.NoRoute(response.NotFound)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	registerCustomerRoutes(router, h, deps)

	return router
}

func registerCustomerRoutes(router *gin.Engine, h *Handlers, deps *Deps) {
	ctx := deps.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	limiter := middleware.NewClientRateLimiter(ctx, submitLimits(&deps.Cfg.RateLimit))

	router.GET("/", h.Customer.Form)
	router.POST("/submit", limiter.Middleware(), h.Customer.Submit)
	router.GET("/view", h.Customer.View)
	router.GET("/export", h.Customer.Export)
	router.GET("/export.xlsx", h.Customer.ExportXLSX)
}

func submitLimits(cfg *config.RateLimitConfig) middleware.RateLimiterConfig {
	limits := middleware.DefaultRateLimiterConfig()
	if cfg.Requests > 0 && cfg.Duration > 0 {
		limits.RequestsPerSecond = float64(cfg.Requests) / float64(cfg.Duration)
		limits.BurstSize = cfg.Requests
	}
	limits.CleanupInterval = 5 * time.Minute
	return limits
}
