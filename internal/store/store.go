// Package store loads the raw review corpus from a bundled resource, a JSON
// file, or a SQLite database.
package store

import (
	"context"
	"errors"

	"github.com/hyperjump/kansou/internal/models"
)

// ErrResourceLoad marks a corpus resource that is missing or unreadable.
var ErrResourceLoad = errors.New("corpus resource unavailable")

// ErrDecode marks corpus content that does not match the expected schema.
var ErrDecode = errors.New("corpus content malformed")

// Source loads the ordered review corpus. Implementations assign positional
// IDs (0-based load order); the order is preserved end-to-end and determines
// index insertion order.
type Source interface {
	LoadReviews(ctx context.Context) ([]models.Review, error)
}

// corpusFile is the decoded corpus schema: an object with a "reviews" field.
type corpusFile struct {
	Reviews []reviewRecord `json:"reviews"`
}

type reviewRecord struct {
	Text   string   `json:"text"`
	Movie  string   `json:"movie"`
	Actors []string `json:"actors"`
}
