// Package manager coordinates corpus loading, enrichment, and index building,
// and exposes the read-only view consumers use.
package manager

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/hyperjump/kansou/internal/enrich"
	"github.com/hyperjump/kansou/internal/index"
	"github.com/hyperjump/kansou/internal/models"
	"github.com/hyperjump/kansou/internal/nlp"
	"github.com/hyperjump/kansou/internal/store"
)

// Manager owns the enriched corpus and its derived indices. It is constructed
// explicitly and passed by reference to consumers; there is no package-level
// instance. Initialization runs once, triggered lazily by the first accessor:
// the corpus is loaded, then each review in corpus order is enriched and
// immediately indexed before the next one, so no review is ever partially
// indexed. Concurrent first accesses block on the same init and never
// duplicate work. After init, all exposed state is immutable.
type Manager struct {
	source    store.Source
	pipeline  *enrich.Pipeline
	tokenizer nlp.Tokenizer
	logger    *zap.Logger

	once    sync.Once
	initErr error
	corpus  []*models.EnrichedReview
	idx     *index.Builder
}

// NewManager creates a manager. The tokenizer must be the same one the
// pipeline indexes with, so search queries normalize identically.
func NewManager(source store.Source, pipeline *enrich.Pipeline, tokenizer nlp.Tokenizer, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		source:    source,
		pipeline:  pipeline,
		tokenizer: tokenizer,
		logger:    logger,
	}
}

// ensureInit runs the one-time load/enrich/index pass. The first error is
// latched and returned to every later caller.
func (m *Manager) ensureInit(ctx context.Context) error {
	m.once.Do(func() {
		reviews, err := m.source.LoadReviews(ctx)
		if err != nil {
			m.initErr = err
			return
		}
		m.idx = index.NewBuilder()
		m.corpus = make([]*models.EnrichedReview, 0, len(reviews))
		for _, review := range reviews {
			enriched := m.pipeline.Enrich(ctx, review)
			m.idx.Add(enriched)
			m.corpus = append(m.corpus, enriched)
		}
		m.logger.Info("corpus enriched and indexed",
			zap.Int("reviews", len(m.corpus)),
			zap.Int("movies", len(m.idx.Movies())),
			zap.Int("tokens", m.idx.TokenCount()),
		)
	})
	return m.initErr
}

// Reviews returns the enriched corpus in load order.
func (m *Manager) Reviews(ctx context.Context) ([]*models.EnrichedReview, error) {
	if err := m.ensureInit(ctx); err != nil {
		return nil, err
	}
	return m.corpus, nil
}

// Movie returns the reviews for the given movie, in corpus order.
func (m *Manager) Movie(ctx context.Context, name string) ([]*models.EnrichedReview, error) {
	if err := m.ensureInit(ctx); err != nil {
		return nil, err
	}
	return m.resolve(m.idx.Movie(name)), nil
}

// Actor returns the reviews mentioning the given actor, duplicate
// registrations preserved.
func (m *Manager) Actor(ctx context.Context, name string) ([]*models.EnrichedReview, error) {
	if err := m.ensureInit(ctx); err != nil {
		return nil, err
	}
	return m.resolve(m.idx.Actor(name)), nil
}

// ByLanguage returns the reviews whose detected language is lang.
func (m *Manager) ByLanguage(ctx context.Context, lang nlp.Language) ([]*models.EnrichedReview, error) {
	if err := m.ensureInit(ctx); err != nil {
		return nil, err
	}
	return m.resolve(m.idx.Language(lang)), nil
}

// SearchResult is the outcome of a token search: the matching reviews plus,
// on zero hits, a nearest-token suggestion when one exists.
type SearchResult struct {
	Reviews    []*models.EnrichedReview
	Suggestion string
}

// suggestMaxDistance bounds how far a "did you mean" token may be.
const suggestMaxDistance = 2

// Search normalizes the query with the indexing tokenizer and returns the
// reviews containing every resulting token (membership only, no ranking).
func (m *Manager) Search(ctx context.Context, query string) (*SearchResult, error) {
	if err := m.ensureInit(ctx); err != nil {
		return nil, err
	}
	tokens := m.tokenizer.Tokens(query)
	if len(tokens) == 0 {
		return &SearchResult{}, nil
	}
	ids := m.idx.Search(tokens[0])
	for _, token := range tokens[1:] {
		ids = intersect(ids, m.idx.Search(token))
		if len(ids) == 0 {
			break
		}
	}
	res := &SearchResult{Reviews: m.resolve(ids)}
	if len(ids) == 0 {
		if s, ok := m.idx.Suggest(tokens[0], suggestMaxDistance); ok {
			res.Suggestion = s
		}
	}
	return res, nil
}

// Stats summarizes the built state.
type Stats struct {
	Reviews   int            `json:"reviews"`
	Movies    int            `json:"movies"`
	Actors    int            `json:"actors"`
	Tokens    int            `json:"tokens"`
	Languages []nlp.Language `json:"languages"`
}

// Stats returns corpus and index counts.
func (m *Manager) Stats(ctx context.Context) (*Stats, error) {
	if err := m.ensureInit(ctx); err != nil {
		return nil, err
	}
	return &Stats{
		Reviews:   len(m.corpus),
		Movies:    len(m.idx.Movies()),
		Actors:    len(m.idx.Actors()),
		Tokens:    m.idx.TokenCount(),
		Languages: m.idx.Languages(),
	}, nil
}

func (m *Manager) resolve(ids []int) []*models.EnrichedReview {
	out := make([]*models.EnrichedReview, 0, len(ids))
	for _, id := range ids {
		if id >= 0 && id < len(m.corpus) {
			out = append(out, m.corpus[id])
		}
	}
	return out
}

// intersect keeps the elements of a that also occur in b, preserving a's
// order. Both inputs are ascending ID lists.
func intersect(a, b []int) []int {
	set := make(map[int]bool, len(b))
	for _, id := range b {
		set[id] = true
	}
	var out []int
	for _, id := range a {
		if set[id] {
			out = append(out, id)
		}
	}
	return out
}
