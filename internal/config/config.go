package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	ErrInvalidMongoURI = errors.New("MONGO_URI must be a mongodb:// or mongodb+srv:// URL")
)

// Config holds the application configuration
type Config struct {
	ServerPort  string
	WebPort     string
	MongoURI    string
	MongoDB     string
	CORSOrigins []string
	APIBaseURL  string
}

// Load loads the configuration from environment variables. Every key has a
// working local default so the processes start with no .env at all.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort: getenv("SERVER_PORT", "8080"),
		WebPort:    getenv("WEB_PORT", "3000"),
		MongoURI:   getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:    getenv("MONGO_DB", "minitube"),
		APIBaseURL: getenv("API_BASE_URL", "http://localhost:8080"),
	}

	if !strings.HasPrefix(cfg.MongoURI, "mongodb://") && !strings.HasPrefix(cfg.MongoURI, "mongodb+srv://") {
		return nil, fmt.Errorf("%w, got %q", ErrInvalidMongoURI, cfg.MongoURI)
	}

	origins := getenv("CORS_ORIGINS", "http://localhost:3000")
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
