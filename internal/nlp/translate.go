package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// HTTPTranslator calls a LibreTranslate-compatible endpoint. Any transport,
// status, or decode failure makes the translator abstain; the pipeline drops
// the affected sentence silently.
type HTTPTranslator struct {
	BaseURL string
	APIKey  string

	HTTPClient *http.Client
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error"`
}

// NewHTTPTranslator returns a translator for the given endpoint base URL
// (e.g. "http://localhost:5000").
func NewHTTPTranslator(baseURL, apiKey string) *HTTPTranslator {
	return &HTTPTranslator{BaseURL: baseURL, APIKey: apiKey}
}

// Translate translates one sentence. ok is false on any failure or when the
// endpoint returns an empty translation.
func (t *HTTPTranslator) Translate(ctx context.Context, sentence string, source, target Language) (string, bool) {
	if t.BaseURL == "" || sentence == "" {
		return "", false
	}
	reqBody, err := json.Marshal(translateRequest{
		Q:      sentence,
		Source: string(source),
		Target: string(target),
		APIKey: t.APIKey,
	})
	if err != nil {
		return "", false
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.BaseURL+"/translate", bytes.NewReader(reqBody))
	if err != nil {
		return "", false
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := t.httpClient().Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", false
	}
	var payload translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", false
	}
	if payload.Error != "" || payload.TranslatedText == "" {
		return "", false
	}
	return payload.TranslatedText, true
}

func (t *HTTPTranslator) httpClient() *http.Client {
	if t.HTTPClient != nil {
		return t.HTTPClient
	}
	return &http.Client{Timeout: 15 * time.Second}
}

// StaticTranslator translates from a fixed sentence table. It backs tests and
// serves as the no-endpoint fallback so the pipeline shape stays the same
// whether or not a translation service is configured.
type StaticTranslator struct {
	source  Language
	target  Language
	entries map[string]string
}

// NewStaticTranslator returns a table-backed translator for one language pair.
// A nil table yields a translator that always abstains.
func NewStaticTranslator(source, target Language, entries map[string]string) *StaticTranslator {
	normalized := make(map[string]string, len(entries))
	for k, v := range entries {
		normalized[strings.TrimSpace(strings.ToLower(k))] = v
	}
	return &StaticTranslator{source: source, target: target, entries: normalized}
}

// Translate looks the sentence up in the table; abstains on a miss or a
// language-pair mismatch.
func (t *StaticTranslator) Translate(_ context.Context, sentence string, source, target Language) (string, bool) {
	if source != t.source || target != t.target {
		return "", false
	}
	out, ok := t.entries[strings.TrimSpace(strings.ToLower(sentence))]
	if !ok || out == "" {
		return "", false
	}
	return out, true
}
