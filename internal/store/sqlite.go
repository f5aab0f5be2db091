package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hyperjump/kansou/internal/models"
)

// SQLiteSource loads the corpus from a SQLite database with a `reviews`
// table (text, movie, actors); actors is a JSON array column and may be
// NULL. Rowid order defines corpus order.
type SQLiteSource struct {
	Path string
}

// NewSQLiteSource returns a source reading from the database at path.
func NewSQLiteSource(path string) *SQLiteSource {
	return &SQLiteSource{Path: path}
}

// LoadReviews reads all reviews in rowid order and assigns positional IDs.
// Errors wrap ErrResourceLoad (database unavailable) or ErrDecode (bad rows).
func (s *SQLiteSource) LoadReviews(ctx context.Context) ([]models.Review, error) {
	db, err := sql.Open("sqlite3", s.Path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrResourceLoad, s.Path, err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrResourceLoad, s.Path, err)
	}

	rows, err := db.QueryContext(ctx, `SELECT text, movie, actors FROM reviews ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("%w: query reviews: %v", ErrResourceLoad, err)
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var text, movie string
		var actorsJSON sql.NullString
		if err := rows.Scan(&text, &movie, &actorsJSON); err != nil {
			return nil, fmt.Errorf("%w: scan review: %v", ErrDecode, err)
		}
		if text == "" || movie == "" {
			return nil, fmt.Errorf("%w: review %d missing required text or movie", ErrDecode, len(reviews))
		}
		var actors []string
		if actorsJSON.Valid && actorsJSON.String != "" {
			if err := json.Unmarshal([]byte(actorsJSON.String), &actors); err != nil {
				return nil, fmt.Errorf("%w: review %d actors: %v", ErrDecode, len(reviews), err)
			}
		}
		reviews = append(reviews, models.Review{
			ID:     len(reviews),
			Text:   text,
			Movie:  movie,
			Actors: actors,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read reviews: %v", ErrResourceLoad, err)
	}
	return reviews, nil
}
