package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"minitube/internal/middleware"
	"minitube/internal/models"
)

// listVideos handles requests to list every stored video. The response is
// always a JSON array, never null, so the client's empty check stays simple.
func (s *Server) listVideos(c *gin.Context) {
	videos, err := s.videos.List(c.Request.Context())
	if err != nil {
		log.Printf("[%s] Error listing videos: %v", middleware.RequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "internal server error",
		})
		return
	}

	if videos == nil {
		videos = []models.Video{}
	}

	c.JSON(http.StatusOK, videos)
}
