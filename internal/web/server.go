// Package web serves the public Biogleam marketing site. Every data
// section on a page is fetched through the API client; the admin
// back-office lives in the CLI, so the site itself never authenticates.
package web

import (
	"context"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/biogleam/biogleam/internal/api"
	"github.com/biogleam/biogleam/internal/auth"
	"github.com/biogleam/biogleam/internal/config"
)

// Server represents the HTTP server behind the marketing site.
type Server struct {
	router  *gin.Engine
	api     *api.Client
	config  *config.Config
	content *Content
	logger  zerolog.Logger
	version string
}

// New creates a new site server.
func New(cfg *config.Config, zlog zerolog.Logger, version string) (*Server, error) {
	content, err := LoadContent()
	if err != nil {
		return nil, err
	}

	// The public site only ever issues unauthenticated requests, so it
	// gets a memory token store that stays empty.
	apiClient := api.New(cfg.API.BaseURL, &auth.MemoryStore{}, api.WithLogger(zlog))

	server := &Server{
		api:     apiClient,
		config:  cfg,
		content: content,
		logger:  zlog,
		version: version,
	}

	server.setupRouter()

	return server, nil
}

// setupRouter configures the Gin router with routes and middleware
func (s *Server) setupRouter() {
	gin.SetMode(gin.ReleaseMode)

	s.router = gin.New()

	s.router.Use(gin.Recovery())
	s.router.Use(s.loggingMiddleware())

	s.router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"https://biogleam.com", "http://localhost:5173"},
		AllowMethods:  []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Length", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	s.router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	staticFiles, _ := fs.Sub(staticFS, "static")
	s.router.StaticFS("/static", http.FS(staticFiles))

	s.router.GET("/health", s.healthCheck)

	s.router.GET("/", s.home)
	s.router.GET("/about", s.about)
	s.router.GET("/services", s.services)
	s.router.GET("/projects", s.projects)
	s.router.GET("/projects/:slug", s.projectDetail)
	s.router.GET("/blog", s.blog)
	s.router.GET("/blog/:slug", s.blogPost)
	s.router.GET("/pricing", s.pricing)
	s.router.GET("/contact", s.contactForm)
	s.router.POST("/contact", s.contactSubmit)
}

// loggingMiddleware creates a custom logging middleware using zerolog
func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("HTTP request")
	}
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "online",
		"timestamp": time.Now().UTC(),
		"service":   "biogleam-web",
	})
}

// Start starts the HTTP server and blocks until shutdown.
func (s *Server) Start() error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	srv := &http.Server{
		Addr:              s.config.Server.Addr,
		Handler:           s.router,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		s.logger.Info().Str("addr", s.config.Server.Addr).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error().Err(err).Msg("HTTP server error")
		}
	}()

	<-sigChan
	s.logger.Info().Msg("Received shutdown signal, shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error().Err(err).Msg("Error shutting down HTTP server")
		return err
	}

	s.logger.Info().Msg("Server shutdown complete")
	return nil
}
