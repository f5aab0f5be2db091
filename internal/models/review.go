// Package models defines core data structures for reviews and their enrichment.
package models

import "github.com/hyperjump/kansou/internal/nlp"

// Review is one raw review record as loaded from the corpus. It is immutable
// after load; enrichment results live in a separate Enrichment accumulator.
type Review struct {
	// ID is the review's position in the corpus (0-based). It is the stable
	// identifier used for index membership, so two reviews with identical
	// text never collide.
	ID     int      `json:"id"`
	Text   string   `json:"text"`
	Movie  string   `json:"movie"`
	Actors []string `json:"actors,omitempty"`
}

// Enrichment accumulates the optional outputs of the enrichment stages for a
// single review. Unset pointer fields mean the stage abstained.
type Enrichment struct {
	Language       *nlp.Language
	Sentiment      *nlp.Sentiment
	TranslatedText *string
	// Actors is the full post-extraction list: source-provided names first,
	// then extracted names in extraction order. Not deduplicated.
	Actors []string
	// Tokens are the normalized search tokens of the review text.
	Tokens []string
}

// EnrichedReview is the immutable merge of a Review and its Enrichment,
// produced once at the end of the pipeline.
type EnrichedReview struct {
	ID             int            `json:"id"`
	Text           string         `json:"text"`
	Movie          string         `json:"movie"`
	Actors         []string       `json:"actors,omitempty"`
	Language       *nlp.Language  `json:"language,omitempty"`
	Sentiment      *nlp.Sentiment `json:"sentiment,omitempty"`
	TranslatedText *string        `json:"translated_text,omitempty"`

	tokens []string
}

// Merge combines a review and its enrichment accumulator into the final
// enriched record.
func Merge(r Review, e Enrichment) *EnrichedReview {
	actors := e.Actors
	if actors == nil {
		actors = r.Actors
	}
	return &EnrichedReview{
		ID:             r.ID,
		Text:           r.Text,
		Movie:          r.Movie,
		Actors:         actors,
		Language:       e.Language,
		Sentiment:      e.Sentiment,
		TranslatedText: e.TranslatedText,
		tokens:         e.Tokens,
	}
}

// Tokens returns the normalized search tokens recorded during enrichment.
func (r *EnrichedReview) Tokens() []string { return r.tokens }
