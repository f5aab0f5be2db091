package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hyperjump/kansou/internal/config"
	"github.com/hyperjump/kansou/internal/enrich"
	"github.com/hyperjump/kansou/internal/manager"
	"github.com/hyperjump/kansou/internal/models"
	"github.com/hyperjump/kansou/internal/nlp"
)

type staticSource struct{ reviews []models.Review }

func (s staticSource) LoadReviews(context.Context) ([]models.Review, error) {
	return s.reviews, nil
}

type mapDetector struct{ byText map[string]nlp.Language }

func (d mapDetector) Detect(text string) (nlp.Language, bool) {
	lang, ok := d.byText[text]
	return lang, ok
}

type noopExtractor struct{}

func (noopExtractor) PersonNames(string) []string { return nil }

type wholeSegmenter struct{}

func (wholeSegmenter) Sentences(text string) []string { return []string{text} }

type fieldsTokenizer struct{}

func (fieldsTokenizer) Tokens(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	source := staticSource{reviews: []models.Review{
		{ID: 0, Movie: "Nope", Text: "great film", Actors: []string{"Daniel Kaluuya"}},
		{ID: 1, Movie: "Roma", Text: "una maravilla"},
	}}
	tokenizer := fieldsTokenizer{}
	pipeline := enrich.NewPipeline(
		mapDetector{byText: map[string]nlp.Language{
			"great film":    nlp.English,
			"una maravilla": nlp.Spanish,
		}},
		noopExtractor{},
		wholeSegmenter{},
		tokenizer,
		nil,
		nil,
		nlp.Spanish, nlp.English,
	)
	mgr := manager.NewManager(source, pipeline, tokenizer, nil)
	s := NewServer(mgr, &config.ServerConfig{Host: "localhost", Port: 0}, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/api/v1/reviews", s.handleReviews)
	r.Get("/api/v1/search", s.handleSearch)
	r.Get("/api/v1/movies/{movie}/reviews", s.handleMovieReviews)
	r.Get("/api/v1/actors/{actor}/reviews", s.handleActorReviews)
	r.Get("/api/v1/languages/{lang}/reviews", s.handleLanguageReviews)
	r.Get("/api/v1/status", s.handleStatus)
	r.Get("/health", s.handleHealth)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

type reviewListResponse struct {
	Reviews []struct {
		ID    int    `json:"id"`
		Movie string `json:"movie"`
	} `json:"reviews"`
	Total      int    `json:"total"`
	Suggestion string `json:"suggestion"`
}

func getJSON(t *testing.T, url string, out interface{}) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestHandleReviews(t *testing.T) {
	srv := newTestServer(t)
	var resp reviewListResponse
	if code := getJSON(t, srv.URL+"/api/v1/reviews", &resp); code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if len(resp.Reviews) != 2 || resp.Reviews[0].ID != 0 || resp.Reviews[1].ID != 1 {
		t.Errorf("reviews = %+v, want both reviews in corpus order", resp.Reviews)
	}
}

func TestHandleSearch(t *testing.T) {
	srv := newTestServer(t)

	var resp reviewListResponse
	if code := getJSON(t, srv.URL+"/api/v1/search?q=film", &resp); code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if resp.Total != 1 || len(resp.Reviews) != 1 || resp.Reviews[0].Movie != "Nope" {
		t.Errorf("search response = %+v, want one Nope review", resp)
	}

	if code := getJSON(t, srv.URL+"/api/v1/search", nil); code != http.StatusBadRequest {
		t.Errorf("missing q: status = %d, want 400", code)
	}
}

func TestHandleSearch_Suggestion(t *testing.T) {
	srv := newTestServer(t)
	var resp reviewListResponse
	if code := getJSON(t, srv.URL+"/api/v1/search?q=flim", &resp); code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if resp.Total != 0 {
		t.Fatalf("total = %d, want 0", resp.Total)
	}
	if resp.Suggestion != "film" {
		t.Errorf("suggestion = %q, want \"film\"", resp.Suggestion)
	}
}

func TestHandleMovieReviews(t *testing.T) {
	srv := newTestServer(t)
	var resp reviewListResponse
	if code := getJSON(t, srv.URL+"/api/v1/movies/Nope/reviews", &resp); code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if resp.Total != 1 || resp.Reviews[0].ID != 0 {
		t.Errorf("movie reviews = %+v, want review 0", resp)
	}
}

func TestHandleActorReviews_EscapedName(t *testing.T) {
	srv := newTestServer(t)
	var resp reviewListResponse
	if code := getJSON(t, srv.URL+"/api/v1/actors/Daniel%20Kaluuya/reviews", &resp); code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if resp.Total != 1 || resp.Reviews[0].ID != 0 {
		t.Errorf("actor reviews = %+v, want review 0", resp)
	}
}

func TestHandleLanguageReviews(t *testing.T) {
	srv := newTestServer(t)
	var resp reviewListResponse
	if code := getJSON(t, srv.URL+"/api/v1/languages/es/reviews", &resp); code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if resp.Total != 1 || resp.Reviews[0].Movie != "Roma" {
		t.Errorf("language reviews = %+v, want the Roma review", resp)
	}
}

func TestHandleStatus(t *testing.T) {
	srv := newTestServer(t)
	var stats struct {
		Reviews int `json:"reviews"`
		Movies  int `json:"movies"`
	}
	if code := getJSON(t, srv.URL+"/api/v1/status", &stats); code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if stats.Reviews != 2 || stats.Movies != 2 {
		t.Errorf("stats = %+v, want 2 reviews across 2 movies", stats)
	}
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)
	var body map[string]string
	if code := getJSON(t, srv.URL+"/health", &body); code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if body["status"] != "ok" {
		t.Errorf("health = %v, want status ok", body)
	}
}
