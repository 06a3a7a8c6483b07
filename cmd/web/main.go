package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"minitube/internal/config"
	"minitube/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	handler, err := web.Handler(cfg.APIBaseURL)
	if err != nil {
		log.Fatalf("Failed to build frontend handler: %v", err)
	}

	log.Printf("Web server listening on port %s (API at %s)", cfg.WebPort, cfg.APIBaseURL)
	if err := http.ListenAndServe(":"+cfg.WebPort, handler); err != nil {
		log.Fatalf("Failed to start web server: %v", err)
	}
}
