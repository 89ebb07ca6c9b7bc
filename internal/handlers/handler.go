package handlers

import (
	"portfolio_admin/internal/logger"
	"portfolio_admin/internal/service"
	"portfolio_admin/internal/upload"

	_ "portfolio_admin/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	uploads  *upload.Uploader
	log      *logger.Logger
	cfg      RouterConfig
}

// RouterConfig holds HTTP-only settings.
type RouterConfig struct {
	// UploadDir is served read-only under /uploads. Empty disables it.
	UploadDir string
	// CORSOrigins restricts cross-origin callers. Empty allows any origin.
	CORSOrigins []string
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, uploads *upload.Uploader, log *logger.Logger, cfg RouterConfig) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{services: services, uploads: uploads, log: log, cfg: cfg}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger, cors.New(h.corsConfig()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", h.root)
	router.GET("/health", h.root)

	if h.cfg.UploadDir != "" {
		router.Static("/uploads", h.cfg.UploadDir)
	}

	api := router.Group("/api")
	h.registerPublicRoutes(api)
	h.registerAdminRoutes(api)

	return router
}

func (h *Handler) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	if len(h.cfg.CORSOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = h.cfg.CORSOrigins
	}
	return cfg
}

func (h *Handler) registerPublicRoutes(api *gin.RouterGroup) {
	api.POST("/login", h.login)
	api.GET("/projects", h.listProjects)
	api.POST("/contact", h.submitContact)
}

func (h *Handler) registerAdminRoutes(api *gin.RouterGroup) {
	projects := api.Group("/projects", h.requireAuth(false), h.limitBody(maxProjectBodyBytes))
	{
		projects.POST("", h.createProject)
		projects.PUT("/:id", h.updateProject)
		projects.DELETE("/:id", h.deleteProject)
	}

	// Browsers cannot set headers on websocket upgrades, so the stream
	// also accepts ?token=.
	api.GET("/contact/stream", h.requireAuth(true), h.inboxStream)

	contact := api.Group("/contact", h.requireAuth(false))
	{
		contact.GET("", h.listMessages)
		contact.PUT("/:id", h.updateMessageStatus)
		contact.POST("/:id/respond", h.respondToMessage)
	}
}
