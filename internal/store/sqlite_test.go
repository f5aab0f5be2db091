package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func createTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reviews.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()
	if _, err := db.Exec(`CREATE TABLE reviews (text TEXT NOT NULL, movie TEXT NOT NULL, actors TEXT)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	rows := []struct {
		text, movie string
		actors      interface{}
	}{
		{"Great film, loved it", "Nope", nil},
		{"Me gustó mucho", "Roma", `["Yalitza Aparicio"]`},
	}
	for _, r := range rows {
		if _, err := db.Exec(`INSERT INTO reviews (text, movie, actors) VALUES (?, ?, ?)`, r.text, r.movie, r.actors); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	return path
}

func TestSQLiteSource_LoadReviews(t *testing.T) {
	path := createTestDB(t)
	reviews, err := NewSQLiteSource(path).LoadReviews(context.Background())
	if err != nil {
		t.Fatalf("LoadReviews: %v", err)
	}
	if len(reviews) != 2 {
		t.Fatalf("len(reviews) = %d, want 2", len(reviews))
	}
	if reviews[0].ID != 0 || reviews[1].ID != 1 {
		t.Errorf("IDs = %d, %d; must be positional", reviews[0].ID, reviews[1].ID)
	}
	if reviews[0].Movie != "Nope" || reviews[1].Movie != "Roma" {
		t.Errorf("rowid order not preserved: %q, %q", reviews[0].Movie, reviews[1].Movie)
	}
	if reviews[0].Actors != nil {
		t.Errorf("NULL actors should decode to nil, got %v", reviews[0].Actors)
	}
	if len(reviews[1].Actors) != 1 || reviews[1].Actors[0] != "Yalitza Aparicio" {
		t.Errorf("actors = %v, want [Yalitza Aparicio]", reviews[1].Actors)
	}
}

func TestSQLiteSource_MissingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.db")
	_, err := NewSQLiteSource(path).LoadReviews(context.Background())
	if !errors.Is(err, ErrResourceLoad) {
		t.Errorf("err = %v, want ErrResourceLoad", err)
	}
}

func TestSQLiteSource_BadActorsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reviews.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE reviews (text TEXT NOT NULL, movie TEXT NOT NULL, actors TEXT)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO reviews (text, movie, actors) VALUES ('x', 'y', 'not json')`); err != nil {
		t.Fatalf("insert: %v", err)
	}
	_ = db.Close()

	_, err = NewSQLiteSource(path).LoadReviews(context.Background())
	if !errors.Is(err, ErrDecode) {
		t.Errorf("err = %v, want ErrDecode", err)
	}
}
