package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hyperjump/kansou/internal/manager"
	"github.com/hyperjump/kansou/internal/models"
	"github.com/hyperjump/kansou/internal/nlp"
)

func sampleReviews() []*models.EnrichedReview {
	lang := nlp.English
	sentiment := nlp.Positive
	return []*models.EnrichedReview{
		models.Merge(
			models.Review{ID: 0, Movie: "Nope", Text: "Great film, I loved it", Actors: []string{"Daniel Kaluuya"}},
			models.Enrichment{Language: &lang, Sentiment: &sentiment},
		),
		models.Merge(
			models.Review{ID: 1, Movie: "Roma", Text: "Una maravilla"},
			models.Enrichment{},
		),
	}
}

func TestWriteReviews_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReviews(&buf, sampleReviews(), OutputJSON); err != nil {
		t.Fatalf("WriteReviews(json): %v", err)
	}
	var decoded []map[string]interface{}
	if err := json.NewDecoder(&buf).Decode(&decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("decoded %d reviews, want 2", len(decoded))
	}
	if decoded[0]["movie"] != "Nope" || decoded[0]["language"] != "en" {
		t.Errorf("first review = %v", decoded[0])
	}
	// Abstained enrichment fields are omitted entirely.
	if _, ok := decoded[1]["sentiment"]; ok {
		t.Errorf("second review should omit sentiment: %v", decoded[1])
	}
}

func TestWriteReviews_text(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReviews(&buf, sampleReviews(), OutputText); err != nil {
		t.Fatalf("WriteReviews(text): %v", err)
	}
	out := buf.String()
	for _, sub := range []string{"[0]", "Nope", "en", "pos", "[1]", "Roma", "?", "-"} {
		if !strings.Contains(out, sub) {
			t.Errorf("text output missing %q:\n%s", sub, out)
		}
	}
}

func TestWriteSearchResult_textWithSuggestion(t *testing.T) {
	var buf bytes.Buffer
	result := &manager.SearchResult{Suggestion: "film"}
	if err := WriteSearchResult(&buf, result, OutputText); err != nil {
		t.Fatalf("WriteSearchResult(text): %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "No results.") || !strings.Contains(out, `Did you mean "film"?`) {
		t.Errorf("unexpected empty-result output:\n%s", out)
	}
}

func TestWriteSearchResult_textWithHits(t *testing.T) {
	var buf bytes.Buffer
	result := &manager.SearchResult{Reviews: sampleReviews()}
	if err := WriteSearchResult(&buf, result, OutputText); err != nil {
		t.Fatalf("WriteSearchResult(text): %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Found 2 results") || !strings.Contains(out, "Nope") {
		t.Errorf("unexpected hit output:\n%s", out)
	}
}

func TestWriteStats(t *testing.T) {
	stats := &manager.Stats{
		Reviews: 6, Movies: 3, Actors: 4, Tokens: 40,
		Languages: []nlp.Language{nlp.English, nlp.Spanish},
	}

	var text bytes.Buffer
	if err := WriteStats(&text, stats, OutputText); err != nil {
		t.Fatalf("WriteStats(text): %v", err)
	}
	for _, sub := range []string{"reviews:    6", "movies:     3", "languages:  en, es"} {
		if !strings.Contains(text.String(), sub) {
			t.Errorf("text output missing %q:\n%s", sub, text.String())
		}
	}

	var js bytes.Buffer
	if err := WriteStats(&js, stats, OutputJSON); err != nil {
		t.Fatalf("WriteStats(json): %v", err)
	}
	var decoded map[string]interface{}
	if err := json.NewDecoder(&js).Decode(&decoded); err != nil {
		t.Fatalf("stats JSON decode: %v", err)
	}
	if decoded["reviews"] != float64(6) {
		t.Errorf("decoded stats = %v", decoded)
	}
}

func TestWriteReviews_unknownFormatTreatedAsText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReviews(&buf, sampleReviews(), OutputFormat("unknown")); err != nil {
		t.Fatalf("WriteReviews(unknown): %v", err)
	}
	if !strings.Contains(buf.String(), "Nope") {
		t.Errorf("unknown format should fall back to text; got %q", buf.String())
	}
}
