package e2e

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

type corpusFile struct {
	Reviews []corpusRecord `json:"reviews"`
}

type corpusRecord struct {
	Text   string   `json:"text"`
	Movie  string   `json:"movie"`
	Actors []string `json:"actors,omitempty"`
}

// WriteJSONCorpus writes the corpus as a JSON corpus file at path, in the
// schema the JSON source reads.
func WriteJSONCorpus(path string, c *Corpus) error {
	file := corpusFile{Reviews: make([]corpusRecord, len(c.Reviews))}
	for i, r := range c.Reviews {
		file.Reviews[i] = corpusRecord{Text: r.Text, Movie: r.Movie, Actors: r.Actors}
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// WriteSQLiteCorpus writes the corpus as a SQLite database at path, in the
// schema the SQLite source reads: a reviews table with text, movie, and a
// nullable JSON actors column. Insertion order defines corpus order.
func WriteSQLiteCorpus(path string, c *Corpus) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE reviews (text TEXT NOT NULL, movie TEXT NOT NULL, actors TEXT)`); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	for i, r := range c.Reviews {
		var actors interface{}
		if len(r.Actors) > 0 {
			encoded, err := json.Marshal(r.Actors)
			if err != nil {
				return fmt.Errorf("encode actors for review %d: %w", i, err)
			}
			actors = string(encoded)
		}
		if _, err := db.Exec(`INSERT INTO reviews (text, movie, actors) VALUES (?, ?, ?)`, r.Text, r.Movie, actors); err != nil {
			return fmt.Errorf("insert review %d: %w", i, err)
		}
	}
	return nil
}
