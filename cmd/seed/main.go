package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"minitube/internal/config"
	"minitube/internal/database"
	"minitube/internal/seed"
	"minitube/internal/store"
)

func main() {
	file := flag.String("file", "seed/videos.json", "path to the seed fixture file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	videos, err := seed.Load(*file)
	if err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	ctx := context.Background()
	db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}
	defer database.Disconnect(ctx, db)

	videoStore := store.NewVideos(db)
	inserted, err := seed.Run(ctx, videoStore, videos)
	if err != nil {
		log.Fatalf("Seeding stopped after %d records: %v", inserted, err)
	}

	total, err := videoStore.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count videos: %v", err)
	}

	log.Printf("Seeded %d videos (%d total in collection)", inserted, total)
}
