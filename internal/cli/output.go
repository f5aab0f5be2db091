// Package cli provides CLI output utilities for Kansou.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hyperjump/kansou/internal/manager"
	"github.com/hyperjump/kansou/internal/models"
	"github.com/hyperjump/kansou/internal/nlp"
	"github.com/hyperjump/kansou/pkg/utils"
)

// OutputFormat is the format for command output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

const textPreviewLen = 70

// WriteReviews writes enriched reviews to w in the given format.
// Use OutputJSON for parseable output consumable by other apps.
func WriteReviews(w io.Writer, reviews []*models.EnrichedReview, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reviews)
	default:
		for _, r := range reviews {
			writeOneReview(w, r)
		}
		return nil
	}
}

func writeOneReview(w io.Writer, r *models.EnrichedReview) {
	lang := "?"
	if r.Language != nil {
		lang = string(*r.Language)
	}
	sentiment := "-"
	if r.Sentiment != nil {
		if *r.Sentiment == nlp.Negative {
			sentiment = "neg"
		} else {
			sentiment = "pos"
		}
	}
	fmt.Fprintf(w, "[%d] %-12s %-3s %-4s %s\n", r.ID, r.Movie, lang, sentiment, utils.Truncate(r.Text, textPreviewLen))
	if r.TranslatedText != nil {
		fmt.Fprintf(w, "    ↳ %s\n", utils.Truncate(strings.TrimSpace(*r.TranslatedText), textPreviewLen))
	}
}

// WriteSearchResult writes a search result to w in the given format. In text
// mode an empty result prints a "did you mean" hint when one is available.
func WriteSearchResult(w io.Writer, result *manager.SearchResult, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	default:
		if len(result.Reviews) == 0 {
			fmt.Fprintln(w, "No results.")
			if result.Suggestion != "" {
				fmt.Fprintf(w, "Did you mean %q?\n", result.Suggestion)
			}
			return nil
		}
		fmt.Fprintf(w, "Found %d results\n\n", len(result.Reviews))
		for _, r := range result.Reviews {
			writeOneReview(w, r)
		}
		return nil
	}
}

// WriteStats writes corpus and index counts to w in the given format.
func WriteStats(w io.Writer, stats *manager.Stats, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	default:
		fmt.Fprintf(w, "reviews:    %d\n", stats.Reviews)
		fmt.Fprintf(w, "movies:     %d\n", stats.Movies)
		fmt.Fprintf(w, "actors:     %d\n", stats.Actors)
		fmt.Fprintf(w, "tokens:     %d\n", stats.Tokens)
		langs := make([]string, len(stats.Languages))
		for i, l := range stats.Languages {
			langs[i] = string(l)
		}
		fmt.Fprintf(w, "languages:  %s\n", strings.Join(langs, ", "))
		return nil
	}
}
