package nlp

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// LinguaDetector detects languages with the lingua-go statistical models,
// restricted to a fixed candidate set. Restricting the candidates keeps model
// memory down and makes detection of short review texts far more reliable.
type LinguaDetector struct {
	detector lingua.LanguageDetector
	byLingua map[lingua.Language]Language
}

// minRelativeDistance makes lingua abstain when the top two candidate
// languages score too close together, instead of guessing.
const minRelativeDistance = 0.25

// NewLinguaDetector builds a detector for the given candidate languages.
// Unknown codes are ignored; with fewer than two valid candidates lingua
// cannot discriminate, so the detector abstains on everything.
func NewLinguaDetector(candidates []Language) *LinguaDetector {
	byLingua := make(map[lingua.Language]Language, len(candidates))
	var langs []lingua.Language
	for _, c := range candidates {
		if ll, ok := linguaLanguage(c); ok {
			byLingua[ll] = c
			langs = append(langs, ll)
		}
	}
	d := &LinguaDetector{byLingua: byLingua}
	if len(langs) >= 2 {
		d.detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(langs...).
			WithMinimumRelativeDistance(minRelativeDistance).
			Build()
	}
	return d
}

// Detect returns the detected language, or ok=false when lingua abstains.
func (d *LinguaDetector) Detect(text string) (Language, bool) {
	if d.detector == nil || strings.TrimSpace(text) == "" {
		return "", false
	}
	ll, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	lang, known := d.byLingua[ll]
	return lang, known
}

// linguaLanguage maps an ISO 639-1 code to the matching lingua language.
func linguaLanguage(code Language) (lingua.Language, bool) {
	want := strings.ToLower(string(code))
	for _, ll := range lingua.AllLanguages() {
		if strings.ToLower(ll.IsoCode639_1().String()) == want {
			return ll, true
		}
	}
	return lingua.Unknown, false
}
