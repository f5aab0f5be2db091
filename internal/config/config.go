// Package config provides configuration loading and structs for the Kansou server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hyperjump/kansou/internal/nlp"
)

// Config holds all configuration for the application.
type Config struct {
	Debug  bool         `yaml:"debug"`
	Server ServerConfig `yaml:"server"`
	Corpus CorpusConfig `yaml:"corpus"`
	NLP    NLPConfig    `yaml:"nlp"`
	Watch  WatchConfig  `yaml:"watch"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// CorpusConfig selects the corpus source. Driver is "json" or "sqlite";
// with driver "json" and an empty path, the bundled corpus is used.
type CorpusConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

// NLPConfig holds collaborator settings.
type NLPConfig struct {
	// Languages is the detector's candidate set (ISO 639-1 codes).
	Languages []nlp.Language `yaml:"languages"`
	// SentimentLanguage is the single language the sentiment model scores.
	SentimentLanguage nlp.Language `yaml:"sentiment_language"`
	// LexiconPath optionally overrides the embedded sentiment lexicon.
	LexiconPath string `yaml:"lexicon_path"`
	// SourceLanguage and TargetLanguage configure the translation pair.
	SourceLanguage nlp.Language `yaml:"source_language"`
	TargetLanguage nlp.Language `yaml:"target_language"`
	// TranslatorURL is a LibreTranslate-compatible endpoint; empty disables
	// remote translation.
	TranslatorURL string `yaml:"translator_url"`
	TranslatorKey string `yaml:"translator_key"`
}

// WatchConfig holds corpus file watch settings.
type WatchConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load reads and parses the config file at path, expands paths, and applies
// defaults. Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Corpus.Path = expandPath(cfg.Corpus.Path, configDir)
	cfg.NLP.LexiconPath = expandPath(cfg.NLP.LexiconPath, configDir)

	return &cfg, nil
}

// expandPath converts a path to absolute. Paths starting with "./" are
// relative to configDir; other relative paths are relative to the home
// directory. Empty paths pass through unchanged.
func expandPath(path string, configDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
