package nlp

import (
	"strings"

	"github.com/bbalet/stopwords"
	"github.com/kljensen/snowball"
)

// SnowballTokenizer normalizes text into search tokens: stopword removal,
// lowercasing, and snowball stemming. Tokens that fail to stem are kept in
// their lowercased form so no content word is silently dropped.
type SnowballTokenizer struct {
	isoCode  string
	stemLang string
}

// stemLanguages maps ISO 639-1 codes to the snowball language names that both
// the stopword list and the stemmer understand.
var stemLanguages = map[Language]string{
	English: "english",
	Spanish: "spanish",
}

// NewSnowballTokenizer returns a tokenizer for the given language. Languages
// without a snowball stemmer fall back to stopword removal and lowercasing.
func NewSnowballTokenizer(lang Language) *SnowballTokenizer {
	return &SnowballTokenizer{
		isoCode:  string(lang),
		stemLang: stemLanguages[lang],
	}
}

// Tokens returns the normalized tokens of text, in text order.
func (t *SnowballTokenizer) Tokens(text string) []string {
	if text == "" {
		return nil
	}
	cleaned := stopwords.CleanString(text, t.isoCode, false)
	parts := strings.Fields(strings.ToLower(cleaned))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		token := strings.TrimSpace(p)
		if token == "" {
			continue
		}
		if t.stemLang != "" {
			if stemmed, err := snowball.Stem(token, t.stemLang, true); err == nil && stemmed != "" {
				out = append(out, stemmed)
				continue
			}
		}
		out = append(out, token)
	}
	return out
}
