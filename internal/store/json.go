package store

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hyperjump/kansou/internal/models"
)

//go:embed reviews.json
var bundledCorpus []byte

// JSONSource loads the corpus from a JSON file of the shape
// {"reviews": [{"text": ..., "movie": ..., "actors": [...]}]}.
// With an empty path it falls back to the bundled corpus.
type JSONSource struct {
	Path string
}

// NewJSONSource returns a source reading from path, or from the bundled
// corpus when path is empty.
func NewJSONSource(path string) *JSONSource {
	return &JSONSource{Path: path}
}

// LoadReviews decodes the corpus and assigns positional IDs. Errors wrap
// ErrResourceLoad (file missing/unreadable) or ErrDecode (bad content).
func (s *JSONSource) LoadReviews(_ context.Context) ([]models.Review, error) {
	data := bundledCorpus
	if s.Path != "" {
		var err error
		data, err = os.ReadFile(s.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrResourceLoad, s.Path, err)
		}
	}
	return decodeCorpus(data)
}

func decodeCorpus(data []byte) ([]models.Review, error) {
	var file corpusFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	reviews := make([]models.Review, 0, len(file.Reviews))
	for i, rec := range file.Reviews {
		if rec.Text == "" || rec.Movie == "" {
			return nil, fmt.Errorf("%w: review %d missing required text or movie", ErrDecode, i)
		}
		reviews = append(reviews, models.Review{
			ID:     i,
			Text:   rec.Text,
			Movie:  rec.Movie,
			Actors: rec.Actors,
		})
	}
	return reviews, nil
}
