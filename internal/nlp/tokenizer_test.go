package nlp

import (
	"reflect"
	"testing"
)

func TestSnowballTokenizer_NormalizesAndStems(t *testing.T) {
	tok := NewSnowballTokenizer(English)

	tokens := tok.Tokens("Great film, loved it")
	// "it" is a stopword; "loved" stems to "love".
	want := []string{"great", "film", "love"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Tokens = %v, want %v", tokens, want)
	}
}

func TestSnowballTokenizer_EmptyText(t *testing.T) {
	tok := NewSnowballTokenizer(English)
	if got := tok.Tokens(""); len(got) != 0 {
		t.Errorf("Tokens(\"\") = %v, want none", got)
	}
}

func TestSnowballTokenizer_QueryMatchesIndexNormalization(t *testing.T) {
	// A query term must normalize to the same token as the indexed text,
	// otherwise search membership breaks.
	tok := NewSnowballTokenizer(English)
	indexed := tok.Tokens("The acting was wonderful")
	query := tok.Tokens("wonderful acting")
	set := make(map[string]bool, len(indexed))
	for _, tk := range indexed {
		set[tk] = true
	}
	for _, tk := range query {
		if !set[tk] {
			t.Errorf("query token %q not produced by indexing the same words (indexed: %v)", tk, indexed)
		}
	}
}

func TestSnowballTokenizer_UnsupportedLanguageFallsBack(t *testing.T) {
	tok := NewSnowballTokenizer(Language("zz"))
	tokens := tok.Tokens("Simply WONDERFUL")
	for _, tk := range tokens {
		if tk != "simply" && tk != "wonderful" {
			t.Errorf("unexpected token %q; fallback should only lowercase", tk)
		}
	}
	if len(tokens) == 0 {
		t.Fatal("expected tokens from fallback tokenizer")
	}
}
