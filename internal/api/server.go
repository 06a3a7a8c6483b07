package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"minitube/internal/middleware"
	"minitube/internal/models"
)

// VideoLister is the read slice of the video store the server depends on.
type VideoLister interface {
	List(ctx context.Context) ([]models.Video, error)
}

// Server represents the API server
type Server struct {
	router *gin.Engine
	videos VideoLister
}

// NewServer creates a new API server. allowedOrigins is the set of origins
// the presentation layer may be served from.
func NewServer(videos VideoLister, allowedOrigins []string) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.ErrorHandlingMiddleware())
	router.SetTrustedProxies(nil)

	// cors.New rejects an empty origin list, so a server with no
	// configured origins simply runs without the middleware.
	if len(allowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  allowedOrigins,
			AllowMethods:  []string{"GET", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
			MaxAge:        12 * time.Hour,
		}))
	}

	server := &Server{
		router: router,
		videos: videos,
	}

	server.setupRoutes()

	return server
}

// setupRoutes configures all the routes for the server
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.health)

	api := s.router.Group("/api")
	{
		api.GET("/videos", s.listVideos)
	}
}

// Router exposes the underlying handler for an http.Server.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
