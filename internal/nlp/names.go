package nlp

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CapitalizedNameExtractor extracts person names with a capitalization
// heuristic: a run of two or more consecutive capitalized words is treated as
// one name ("Daniel Kaluuya"). Lone capitalized words are discarded, which
// filters ordinary sentence-initial capitalization without a part-of-speech
// tagger.
type CapitalizedNameExtractor struct{}

// NewCapitalizedNameExtractor returns the heuristic extractor.
func NewCapitalizedNameExtractor() *CapitalizedNameExtractor {
	return &CapitalizedNameExtractor{}
}

// PersonNames returns candidate names in text order, not deduplicated.
func (e *CapitalizedNameExtractor) PersonNames(text string) []string {
	var names []string
	var run []string
	flush := func() {
		// Require at least a first and last name.
		if len(run) >= 2 {
			names = append(names, strings.Join(run, " "))
		}
		run = nil
	}
	for _, w := range strings.Fields(text) {
		trimmed := strings.TrimFunc(w, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if trimmed == "" || !isCapitalizedWord(trimmed) {
			flush()
			continue
		}
		run = append(run, trimmed)
		// Punctuation after the word ends the run even if the next word is
		// capitalized ("...with Keke Palmer. Jordan Peele directs").
		if strings.IndexFunc(w, isTerminal) >= 0 {
			flush()
		}
	}
	flush()
	return names
}

func isCapitalizedWord(w string) bool {
	first, size := utf8.DecodeRuneInString(w)
	if !unicode.IsUpper(first) {
		return false
	}
	for _, r := range w[size:] {
		if unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
