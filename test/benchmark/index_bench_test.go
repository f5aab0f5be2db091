package benchmark

import (
	"fmt"
	"testing"

	"github.com/hyperjump/kansou/internal/index"
	"github.com/hyperjump/kansou/internal/models"
	"github.com/hyperjump/kansou/internal/nlp"
)

// buildIndex registers n synthetic reviews, each with a handful of shared and
// unique tokens, mirroring the token distribution of a review corpus.
func buildIndex(n int) *index.Builder {
	b := index.NewBuilder()
	lang := nlp.English
	for i := 0; i < n; i++ {
		tokens := []string{
			"film", "scene",
			fmt.Sprintf("movie%d", i%50),
			fmt.Sprintf("token%d", i),
		}
		review := models.Merge(
			models.Review{ID: i, Movie: fmt.Sprintf("Movie %d", i%50), Text: "x"},
			models.Enrichment{Language: &lang, Tokens: tokens},
		)
		b.Add(review)
	}
	return b
}

func BenchmarkIndexAdd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		buildIndex(1000)
	}
}

func BenchmarkIndexSearch_CommonToken(b *testing.B) {
	idx := buildIndex(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = idx.Search("film")
	}
}

func BenchmarkIndexSearch_RareToken(b *testing.B) {
	idx := buildIndex(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = idx.Search("token512")
	}
}

func BenchmarkIndexSuggest(b *testing.B) {
	idx := buildIndex(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = idx.Suggest("flim", 2)
	}
}

func BenchmarkTokenizer(b *testing.B) {
	tokenizer := nlp.NewSnowballTokenizer(nlp.English)
	text := "A brilliant, gripping masterpiece with stunning cinematography and a remarkable central performance that rewards repeated viewings."
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tokenizer.Tokens(text)
	}
}
