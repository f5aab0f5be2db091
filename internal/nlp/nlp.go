// Package nlp defines the language-processing capabilities the enrichment
// pipeline consumes, plus the concrete implementations used in production.
// Every capability may abstain; abstention is reported through an ok bool,
// never through an error or a placeholder value.
package nlp

import "context"

// Language is a lowercase ISO 639-1 code ("en", "es").
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
)

// Sentiment is a binary polarity label.
type Sentiment int8

const (
	Negative Sentiment = 0
	Positive Sentiment = 1
)

// LabelNegative is the categorical label a SentimentModel returns for
// negative polarity. Any other non-abstaining label maps to Positive.
const LabelNegative = "neg"

// LanguageDetector guesses the language of a text. ok is false when the
// detector is not confident enough to commit to a guess.
type LanguageDetector interface {
	Detect(text string) (Language, bool)
}

// PersonNameExtractor extracts person names mentioned in a text, in text
// order. The result may contain duplicates; callers that need dedup do it
// themselves.
type PersonNameExtractor interface {
	PersonNames(text string) []string
}

// SentenceSegmenter splits a text into sentence spans.
type SentenceSegmenter interface {
	Sentences(text string) []string
}

// Tokenizer produces normalized search tokens for a text. Normalization
// (lowercasing, stopword and punctuation handling, stemming) is the
// implementation's contract; callers must normalize queries with the same
// tokenizer they indexed with.
type Tokenizer interface {
	Tokens(text string) []string
}

// SentimentModel classifies text polarity. A model is configured for exactly
// one language and abstains (ok=false) when it cannot commit to a label.
type SentimentModel interface {
	Language() Language
	Classify(text string) (label string, ok bool)
}

// Translator translates a single sentence. ok is false when translation
// fails or produces nothing; callers drop such sentences silently.
type Translator interface {
	Translate(ctx context.Context, sentence string, source, target Language) (string, bool)
}
