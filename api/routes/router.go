// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"ticketlog/internal/analytics"
	"ticketlog/internal/images"
	"ticketlog/internal/likes"
	"ticketlog/internal/prompts"
	"ticketlog/internal/shared/config"
	"ticketlog/internal/shared/database"
	"ticketlog/internal/shared/middleware"
	"ticketlog/internal/tickets"
	"ticketlog/internal/users"
	"ticketlog/pkg/cache"

	"github.com/gin-gonic/gin"
	openai "github.com/sashabaranov/go-openai"
)

// Router holds all route dependencies
type Router struct {
	config       *config.Config
	db           *database.DB
	cacheService cache.Service

	ticketService tickets.Service // injected into likes for ownership lookups
	likePublisher likes.NotificationPublisher
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB) *Router {
	r := &Router{
		config: cfg,
		db:     db,
	}
	if db.Redis != nil {
		r.cacheService = cache.NewService(db.Redis)
	}
	return r
}

// SetLikePublisher injects the notification pipeline for like events.
// Must be called before SetupRoutes to take effect.
func (r *Router) SetLikePublisher(publisher likes.NotificationPublisher) {
	r.likePublisher = publisher
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	api.Use(middleware.APIKeyAuthWithConfig(r.config))
	{
		// Ticket routes first: likes and analytics depend on the ticket service
		r.setupTicketRoutes(api)
		r.setupLikeRoutes(api)
		r.setupAnalyticsRoutes(api)
		r.setupPromptRoutes(api)
		r.setupImageRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "ticketlog-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "ticketlog-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}

// setupTicketRoutes configures ticket journaling routes
func (r *Router) setupTicketRoutes(rg *gin.RouterGroup) {
	ticketRepo := tickets.NewRepository(r.db.GetPostgreSQL())
	userRepo := users.NewRepository(r.db.GetPostgreSQL())
	likeRepo := likes.NewRepository(r.db.GetPostgreSQL())

	ticketService := tickets.NewService(ticketRepo, userRepo, likeRepo)
	if r.cacheService != nil {
		ticketService.SetCacheService(r.cacheService)
	}

	// Keep the service around for the like routes
	r.ticketService = ticketService

	ticketController := tickets.NewController(ticketService)
	tickets.SetupTicketRoutes(rg, ticketController)
}

// setupLikeRoutes configures like toggle and count routes
func (r *Router) setupLikeRoutes(rg *gin.RouterGroup) {
	likeRepo := likes.NewRepository(r.db.GetPostgreSQL())

	likeService := likes.NewService(likeRepo, r.ticketService)
	if r.cacheService != nil {
		likeService.SetCacheService(r.cacheService)
	}
	if r.likePublisher != nil {
		likeService.SetNotificationPublisher(r.likePublisher)
	}

	likeController := likes.NewController(likeService)
	likes.SetupLikeRoutes(rg, likeController)
}

// setupAnalyticsRoutes configures the statistics and year-in-review routes
func (r *Router) setupAnalyticsRoutes(rg *gin.RouterGroup) {
	analyticsRepo := analytics.NewRepository(r.db.GetPostgreSQL())
	analyticsService := analytics.NewService(analyticsRepo)
	analyticsController := analytics.NewController(analyticsService)

	analytics.SetupAnalyticsRoutes(rg, analyticsController)
}

// setupPromptRoutes configures the image prompt generation routes
func (r *Router) setupPromptRoutes(rg *gin.RouterGroup) {
	promptRepo := prompts.NewRepository(r.db.GetPostgreSQL())

	var analyzer prompts.ReviewAnalyzer
	if r.config.OpenAI.APIKey != "" {
		analyzer = prompts.NewOpenAIAnalyzer(openai.NewClient(r.config.OpenAI.APIKey))
	}

	promptService := prompts.NewService(promptRepo, analyzer)
	if r.cacheService != nil {
		promptService.SetCacheService(r.cacheService)
	}
	promptController := prompts.NewController(promptService)

	prompts.SetupPromptRoutes(rg, promptController)
}

// setupImageRoutes configures poster image generation routes
func (r *Router) setupImageRoutes(rg *gin.RouterGroup) {
	promptRepo := prompts.NewRepository(r.db.GetPostgreSQL())

	var analyzer prompts.ReviewAnalyzer
	var client *openai.Client
	if r.config.OpenAI.APIKey != "" {
		client = openai.NewClient(r.config.OpenAI.APIKey)
		analyzer = prompts.NewOpenAIAnalyzer(client)
	}

	promptService := prompts.NewService(promptRepo, analyzer)
	if r.cacheService != nil {
		promptService.SetCacheService(r.cacheService)
	}
	imageService := images.NewService(client, promptService, r.config.OpenAI)
	imageController := images.NewController(imageService)

	images.SetupImageRoutes(rg, imageController)
}
