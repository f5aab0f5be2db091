// Package index builds and serves the derived lookup structures over the
// enriched corpus: by movie, by actor, by language, and the inverted token
// index for search.
package index

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hyperjump/kansou/internal/models"
	"github.com/hyperjump/kansou/internal/nlp"
)

// Builder registers enriched reviews into the four derived indices. Values
// are positional review IDs: byMovie/byActor/byLanguage keep append-order
// sequences (duplicates preserved), the search index keeps a set per token.
// There is no removal path; the indices are built once at startup.
type Builder struct {
	byMovie    map[string][]int
	byActor    map[string][]int
	byLanguage map[nlp.Language][]int
	search     map[string]*roaring.Bitmap
}

// NewBuilder returns an empty index set.
func NewBuilder() *Builder {
	return &Builder{
		byMovie:    make(map[string][]int),
		byActor:    make(map[string][]int),
		byLanguage: make(map[nlp.Language][]int),
		search:     make(map[string]*roaring.Bitmap),
	}
}

// Add registers one enriched review. Call exactly once per review, after
// enrichment, so the indices reflect its final state:
//   - byMovie gets the review exactly once;
//   - byActor gets one entry per actor occurrence (a duplicated name in the
//     actor list registers the review twice under that key);
//   - byLanguage gets the review iff its language was detected;
//   - the search index unions the review into each token's posting set, so
//     repeated tokens in one review register it only once per token.
func (b *Builder) Add(review *models.EnrichedReview) {
	b.byMovie[review.Movie] = append(b.byMovie[review.Movie], review.ID)
	for _, actor := range review.Actors {
		b.byActor[actor] = append(b.byActor[actor], review.ID)
	}
	if review.Language != nil {
		b.byLanguage[*review.Language] = append(b.byLanguage[*review.Language], review.ID)
	}
	for _, token := range review.Tokens() {
		bm := b.search[token]
		if bm == nil {
			bm = roaring.New()
			b.search[token] = bm
		}
		bm.Add(uint32(review.ID))
	}
}

// Movie returns the IDs of reviews for the given movie, in corpus order.
func (b *Builder) Movie(name string) []int { return b.byMovie[name] }

// Actor returns the IDs of reviews mentioning the given actor, in insertion
// order, with duplicate registrations preserved.
func (b *Builder) Actor(name string) []int { return b.byActor[name] }

// Language returns the IDs of reviews detected as lang, in corpus order.
func (b *Builder) Language(lang nlp.Language) []int { return b.byLanguage[lang] }

// Search returns the IDs of reviews containing the (already normalized)
// token. Bitmap iteration is ascending, which equals corpus order.
func (b *Builder) Search(token string) []int {
	bm := b.search[token]
	if bm == nil {
		return nil
	}
	out := make([]int, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// Movies returns all indexed movie names, sorted.
func (b *Builder) Movies() []string { return sortedKeys(b.byMovie) }

// Actors returns all indexed actor names, sorted.
func (b *Builder) Actors() []string { return sortedKeys(b.byActor) }

// Languages returns all detected languages, sorted.
func (b *Builder) Languages() []nlp.Language {
	out := make([]nlp.Language, 0, len(b.byLanguage))
	for lang := range b.byLanguage {
		out = append(out, lang)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// TokenCount returns the number of distinct tokens in the search index.
func (b *Builder) TokenCount() int { return len(b.search) }

func sortedKeys(m map[string][]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
