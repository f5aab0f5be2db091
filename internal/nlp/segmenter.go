package nlp

import "strings"

// RuneSegmenter splits text into sentences on terminal punctuation. It is a
// deliberately simple rule-based segmenter: review texts are short and
// informal, so a statistical segmenter buys little here.
type RuneSegmenter struct{}

// NewRuneSegmenter returns a rule-based sentence segmenter.
func NewRuneSegmenter() *RuneSegmenter { return &RuneSegmenter{} }

func isTerminal(r rune) bool {
	switch r {
	case '.', '!', '?', '…', '。', '！', '？':
		return true
	}
	return false
}

// Sentences returns the whitespace-trimmed sentence spans of text, in order.
// Runs of terminal punctuation ("!?", "...") end a single sentence. Text with
// no terminal punctuation is one sentence.
func (s *RuneSegmenter) Sentences(text string) []string {
	var out []string
	var cur strings.Builder
	prevTerminal := false
	for _, r := range text {
		if isTerminal(r) {
			cur.WriteRune(r)
			prevTerminal = true
			continue
		}
		if prevTerminal {
			if span := strings.TrimSpace(cur.String()); span != "" {
				out = append(out, span)
			}
			cur.Reset()
			prevTerminal = false
		}
		cur.WriteRune(r)
	}
	if span := strings.TrimSpace(cur.String()); span != "" {
		out = append(out, span)
	}
	return out
}
