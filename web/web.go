package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"minitube/internal/middleware"
)

//go:embed static
var assets embed.FS

// Handler serves the static frontend bundle. apiBaseURL is handed to the
// page at runtime through /config.js so the bundle itself stays static.
func Handler(apiBaseURL string) (http.Handler, error) {
	static, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to open static assets: %w", err)
	}

	index, err := fs.ReadFile(static, "index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to read index.html: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.SetTrustedProxies(nil)

	router.StaticFS("/static", http.FS(static))

	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})

	router.GET("/config.js", func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Data(http.StatusOK, "application/javascript",
			[]byte(fmt.Sprintf("window.MINITUBE_API_BASE = %q;\n", apiBaseURL)))
	})

	return router, nil
}
