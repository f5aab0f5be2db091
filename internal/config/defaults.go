package config

import "github.com/hyperjump/kansou/internal/nlp"

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Corpus.Driver == "" {
		cfg.Corpus.Driver = "json"
	}
	if len(cfg.NLP.Languages) == 0 {
		cfg.NLP.Languages = []nlp.Language{nlp.English, nlp.Spanish}
	}
	if cfg.NLP.SentimentLanguage == "" {
		cfg.NLP.SentimentLanguage = nlp.English
	}
	if cfg.NLP.SourceLanguage == "" {
		cfg.NLP.SourceLanguage = nlp.Spanish
	}
	if cfg.NLP.TargetLanguage == "" {
		cfg.NLP.TargetLanguage = nlp.English
	}
}
