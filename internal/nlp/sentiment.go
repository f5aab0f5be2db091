package nlp

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode"
)

//go:embed lexicon.json
var embeddedLexicon []byte

// LabelPositive is the categorical label for positive polarity.
const LabelPositive = "pos"

// lexiconFile is the on-disk / embedded lexicon shape: word lists per
// ISO 639-1 language code.
type lexiconFile struct {
	Languages map[string]lexiconWords `json:"languages"`
}

type lexiconWords struct {
	Positive []string `json:"positive"`
	Negative []string `json:"negative"`
}

// LexiconModel is a word-count sentiment classifier configured for exactly
// one language. It compares the number of positive and negative lexicon hits
// in the text and abstains on a tie or when no lexicon word occurs at all.
type LexiconModel struct {
	language Language
	positive map[string]bool
	negative map[string]bool
}

// NewLexiconModel builds a model for lang from the embedded lexicon.
// Returns an error when the embedded lexicon has no entry for lang.
func NewLexiconModel(lang Language) (*LexiconModel, error) {
	return newLexiconModel(lang, embeddedLexicon)
}

// NewLexiconModelFromFile builds a model for lang from a lexicon JSON file,
// overriding the embedded word lists.
func NewLexiconModelFromFile(lang Language, path string) (*LexiconModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	return newLexiconModel(lang, data)
}

func newLexiconModel(lang Language, data []byte) (*LexiconModel, error) {
	var file lexiconFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}
	words, ok := file.Languages[string(lang)]
	if !ok {
		return nil, fmt.Errorf("lexicon has no word lists for language %q", lang)
	}
	m := &LexiconModel{
		language: lang,
		positive: make(map[string]bool, len(words.Positive)),
		negative: make(map[string]bool, len(words.Negative)),
	}
	for _, w := range words.Positive {
		m.positive[strings.ToLower(w)] = true
	}
	for _, w := range words.Negative {
		m.negative[strings.ToLower(w)] = true
	}
	return m, nil
}

// Language returns the single language this model is configured for.
func (m *LexiconModel) Language() Language { return m.language }

// Classify returns "pos" or "neg", or abstains (ok=false) on a tie or when
// the text contains no lexicon word.
func (m *LexiconModel) Classify(text string) (string, bool) {
	var pos, neg int
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	for _, w := range words {
		if m.positive[w] {
			pos++
		}
		if m.negative[w] {
			neg++
		}
	}
	switch {
	case pos > neg:
		return LabelPositive, true
	case neg > pos:
		return LabelNegative, true
	default:
		return "", false
	}
}
