// Package enrich runs the per-review enrichment pipeline: language detection,
// person-name extraction, search tokenization, sentiment classification, and
// translation.
package enrich

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/hyperjump/kansou/internal/models"
	"github.com/hyperjump/kansou/internal/nlp"
)

// Pipeline applies the enrichment stages to one review at a time. Every stage
// is a function of (review, accumulator) -> accumulator; a stage that cannot
// produce a result leaves its field unset and the pipeline never returns an
// error.
type Pipeline struct {
	detector   nlp.LanguageDetector
	extractor  nlp.PersonNameExtractor
	segmenter  nlp.SentenceSegmenter
	tokenizer  nlp.Tokenizer
	model      nlp.SentimentModel
	translator nlp.Translator

	sourceLanguage nlp.Language
	targetLanguage nlp.Language

	logger *zap.Logger // optional; when set, logs debug events
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a logger for per-stage debug output.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// NewPipeline creates a pipeline with the given collaborators. model and
// translator may be nil; the corresponding stages then always abstain.
func NewPipeline(
	detector nlp.LanguageDetector,
	extractor nlp.PersonNameExtractor,
	segmenter nlp.SentenceSegmenter,
	tokenizer nlp.Tokenizer,
	model nlp.SentimentModel,
	translator nlp.Translator,
	sourceLanguage, targetLanguage nlp.Language,
	opts ...Option,
) *Pipeline {
	p := &Pipeline{
		detector:       detector,
		extractor:      extractor,
		segmenter:      segmenter,
		tokenizer:      tokenizer,
		model:          model,
		translator:     translator,
		sourceLanguage: sourceLanguage,
		targetLanguage: targetLanguage,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Enrich runs all stages for one review and returns the merged enriched
// record. Stage order matters: language gates sentiment and translation, and
// name extraction must precede indexing of the actor list.
func (p *Pipeline) Enrich(ctx context.Context, review models.Review) *models.EnrichedReview {
	var acc models.Enrichment
	acc = p.detectLanguage(review, acc)
	acc = p.extractNames(review, acc)
	acc = p.tokenize(review, acc)
	acc = p.classifySentiment(review, acc)
	acc = p.translate(ctx, review, acc)
	return models.Merge(review, acc)
}

func (p *Pipeline) detectLanguage(review models.Review, acc models.Enrichment) models.Enrichment {
	if p.detector == nil {
		return acc
	}
	lang, ok := p.detector.Detect(review.Text)
	if !ok {
		if p.logger != nil {
			p.logger.Debug("language undetermined", zap.Int("review", review.ID))
		}
		return acc
	}
	acc.Language = &lang
	return acc
}

// extractNames appends extracted names to the source-provided actor list.
// No dedup: a name supplied in the source data and extracted again appears
// twice, and later registers the review twice under that actor key.
func (p *Pipeline) extractNames(review models.Review, acc models.Enrichment) models.Enrichment {
	actors := append([]string(nil), review.Actors...)
	if p.extractor != nil {
		actors = append(actors, p.extractor.PersonNames(review.Text)...)
	}
	acc.Actors = actors
	return acc
}

func (p *Pipeline) tokenize(review models.Review, acc models.Enrichment) models.Enrichment {
	if p.tokenizer == nil {
		return acc
	}
	acc.Tokens = p.tokenizer.Tokens(review.Text)
	return acc
}

// classifySentiment is a strict feature gate: the model runs only when the
// detected language equals the model's configured language. The label "neg"
// maps to Negative; any other non-abstaining label maps to Positive.
func (p *Pipeline) classifySentiment(review models.Review, acc models.Enrichment) models.Enrichment {
	if p.model == nil || acc.Language == nil || *acc.Language != p.model.Language() {
		return acc
	}
	label, ok := p.model.Classify(review.Text)
	if !ok {
		return acc
	}
	sentiment := nlp.Positive
	if label == nlp.LabelNegative {
		sentiment = nlp.Negative
	}
	acc.Sentiment = &sentiment
	if p.logger != nil {
		p.logger.Debug("sentiment classified", zap.Int("review", review.ID), zap.String("label", label))
	}
	return acc
}

// translate runs only for reviews detected as the source language. Sentences
// are translated independently; each successful non-empty translation is
// appended followed by a single space, so a partially failed translation
// still yields the successful sentences (and the result keeps its trailing
// separator). When every sentence fails, the field stays unset.
func (p *Pipeline) translate(ctx context.Context, review models.Review, acc models.Enrichment) models.Enrichment {
	if p.translator == nil || p.segmenter == nil {
		return acc
	}
	if acc.Language == nil || *acc.Language != p.sourceLanguage {
		return acc
	}
	var b strings.Builder
	for _, sentence := range p.segmenter.Sentences(review.Text) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		translated, ok := p.translator.Translate(ctx, sentence, p.sourceLanguage, p.targetLanguage)
		if !ok || translated == "" {
			if p.logger != nil {
				p.logger.Debug("sentence translation dropped", zap.Int("review", review.ID))
			}
			continue
		}
		b.WriteString(translated)
		b.WriteString(" ")
	}
	if b.Len() == 0 {
		return acc
	}
	text := b.String()
	acc.TranslatedText = &text
	return acc
}
