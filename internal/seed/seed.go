package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"minitube/internal/models"
)

// Fixture is one video record as written in the seed file.
type Fixture struct {
	Title       string `json:"title"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description,omitempty"`
}

// Inserter is the write slice of the video store the seeder depends on.
type Inserter interface {
	Insert(ctx context.Context, v *models.Video) error
}

// Load reads a JSON array of fixtures from path and converts them to video
// records. Title and thumbnail are required on every record.
func Load(path string) ([]models.Video, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var fixtures []Fixture
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	videos := make([]models.Video, 0, len(fixtures))
	for i, f := range fixtures {
		if f.Title == "" {
			return nil, fmt.Errorf("seed record %d: title is required", i)
		}
		if f.Thumbnail == "" {
			return nil, fmt.Errorf("seed record %d (%s): thumbnail is required", i, f.Title)
		}
		videos = append(videos, models.Video{
			Title:       f.Title,
			Thumbnail:   f.Thumbnail,
			Description: f.Description,
		})
	}

	return videos, nil
}

// Run inserts the given videos one by one and returns how many made it in.
// It stops at the first failure.
func Run(ctx context.Context, store Inserter, videos []models.Video) (int, error) {
	for i := range videos {
		if err := store.Insert(ctx, &videos[i]); err != nil {
			return i, fmt.Errorf("failed to seed video %q: %w", videos[i].Title, err)
		}
	}
	return len(videos), nil
}
