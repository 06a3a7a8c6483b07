package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"minitube/internal/models"
)

const videosCollection = "videos"

// Videos wraps the video collection and owns every query against it.
type Videos struct {
	coll *mongo.Collection
}

// NewVideos returns a store over the videos collection of db.
func NewVideos(db *mongo.Database) *Videos {
	return &Videos{coll: db.Collection(videosCollection)}
}

// List returns every video record in the store's natural return order.
// Ordering is deliberately left to the store; callers must not rely on it.
func (s *Videos) List(ctx context.Context) ([]models.Video, error) {
	cursor, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to query videos: %w", err)
	}

	videos := []models.Video{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, fmt.Errorf("failed to decode videos: %w", err)
	}
	return videos, nil
}

// Insert stores a new video record and writes the assigned ID back into v.
func (s *Videos) Insert(ctx context.Context, v *models.Video) error {
	now := time.Now().UTC()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = now
	}
	v.UpdatedAt = now

	result, err := s.coll.InsertOne(ctx, v)
	if err != nil {
		return fmt.Errorf("failed to insert video %q: %w", v.Title, err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted ID type %T", result.InsertedID)
	}
	v.ID = id
	return nil
}

// Count reports the number of video records currently stored.
func (s *Videos) Count(ctx context.Context) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count videos: %w", err)
	}
	return n, nil
}
