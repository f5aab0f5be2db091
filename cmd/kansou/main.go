// Package main is the Kansou CLI entry point.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/kansou/internal/cli"
	"github.com/hyperjump/kansou/internal/config"
	"github.com/hyperjump/kansou/internal/enrich"
	"github.com/hyperjump/kansou/internal/manager"
	"github.com/hyperjump/kansou/internal/models"
	"github.com/hyperjump/kansou/internal/nlp"
	"github.com/hyperjump/kansou/internal/server"
	"github.com/hyperjump/kansou/internal/store"
	"github.com/hyperjump/kansou/internal/watcher"
	"github.com/hyperjump/kansou/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/kansou/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists
// it is used. When neither exists, built-in defaults apply (bundled corpus).
func loadConfig(path string) (*config.Config, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				return config.Load(fallback)
			}
		}
		if _, statErr := os.Stat(path); statErr != nil {
			cfg := &config.Config{}
			config.ApplyDefaults(cfg)
			return cfg, nil
		}
	}
	return config.Load(path)
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "search":
		runSearch()
	case "reviews":
		runReviews()
	case "status":
		runStatus()
	case "version", "--version", "-v":
		fmt.Printf("kansou version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (enrichment stages, corpus changes, etc.)")
	_ = fs.Parse(os.Args[2:])

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	mgr, err := buildManager(cfg, logger, debugMode)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}

	// First access triggers the one-time enrich-and-index pass; doing it here
	// surfaces corpus load failures before the server accepts requests.
	if _, err := mgr.Stats(context.Background()); err != nil {
		logger.Fatal("Corpus initialization failed", zap.Error(err))
	}

	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if cfg.Watch.Enabled && cfg.Corpus.Path != "" {
		watchOpts := []watcher.Option{}
		if debugMode {
			watchOpts = append(watchOpts, watcher.WithLogger(logger))
		}
		watchSvc := watcher.NewWatcher(cfg.Corpus.Path, func(path string) {
			// No incremental re-indexing: the corpus is fixed after load.
			logger.Warn("corpus changed on disk; restart to re-index", zap.String("path", path))
		}, watchOpts...)
		if err := watchSvc.Start(watchCtx); err != nil {
			logger.Warn("corpus watcher failed to start", zap.Error(err))
		}
	}

	srv := server.NewServer(mgr, &cfg.Server, logger)
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watchCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func runSearch() {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: kansou search [flags] <query>")
		os.Exit(1)
	}
	query := strings.TrimSpace(strings.Join(fs.Args(), " "))

	mgr, logger := mustBuildManager(*configPath)
	defer logger.Sync()

	result, err := mgr.Search(context.Background(), query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteSearchResult(os.Stdout, result, parseFormat(*outputFormat)); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runReviews() {
	fs := flag.NewFlagSet("reviews", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	movie := fs.String("movie", "", "filter by movie")
	actor := fs.String("actor", "", "filter by actor")
	lang := fs.String("lang", "", "filter by detected language (ISO 639-1)")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	mgr, logger := mustBuildManager(*configPath)
	defer logger.Sync()

	ctx := context.Background()
	var (
		list []*models.EnrichedReview
		err  error
	)
	switch {
	case *movie != "":
		list, err = mgr.Movie(ctx, *movie)
	case *actor != "":
		list, err = mgr.Actor(ctx, *actor)
	case *lang != "":
		list, err = mgr.ByLanguage(ctx, nlp.Language(*lang))
	default:
		list, err = mgr.Reviews(ctx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Listing reviews failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteReviews(os.Stdout, list, parseFormat(*outputFormat)); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	mgr, logger := mustBuildManager(*configPath)
	defer logger.Sync()

	stats, err := mgr.Stats(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Status failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteStats(os.Stdout, stats, parseFormat(*outputFormat)); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

// parseFormat maps the --output flag to an output format; unknown values
// exit with an error.
func parseFormat(s string) cli.OutputFormat {
	switch s {
	case "json":
		return cli.OutputJSON
	case "text":
		return cli.OutputText
	default:
		fmt.Fprintf(os.Stderr, "Unknown output format %q; use text or json\n", s)
		os.Exit(1)
		return cli.OutputText
	}
}

// mustBuildManager loads config, builds the manager, and exits on failure.
func mustBuildManager(configPath string) (*manager.Manager, *zap.Logger) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	mgr, err := buildManager(cfg, logger, cfg.Debug)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	return mgr, logger
}

// buildManager wires the corpus source and NLP collaborators into a manager.
func buildManager(cfg *config.Config, logger *zap.Logger, debug bool) (*manager.Manager, error) {
	var source store.Source
	switch cfg.Corpus.Driver {
	case "json", "":
		source = store.NewJSONSource(cfg.Corpus.Path)
	case "sqlite":
		source = store.NewSQLiteSource(cfg.Corpus.Path)
	default:
		return nil, fmt.Errorf("unknown corpus driver %q", cfg.Corpus.Driver)
	}

	detector := nlp.NewLinguaDetector(cfg.NLP.Languages)
	extractor := nlp.NewCapitalizedNameExtractor()
	segmenter := nlp.NewRuneSegmenter()
	tokenizer := nlp.NewSnowballTokenizer(cfg.NLP.TargetLanguage)

	var model nlp.SentimentModel
	if cfg.NLP.LexiconPath != "" {
		m, err := nlp.NewLexiconModelFromFile(cfg.NLP.SentimentLanguage, cfg.NLP.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load sentiment lexicon: %w", err)
		}
		model = m
	} else {
		m, err := nlp.NewLexiconModel(cfg.NLP.SentimentLanguage)
		if err != nil {
			// No lexicon for the configured language: sentiment stays unset
			// for every review rather than failing startup.
			logger.Warn("sentiment model unavailable",
				zap.String("language", string(cfg.NLP.SentimentLanguage)), zap.Error(err))
		} else {
			model = m
		}
	}

	var translator nlp.Translator
	if cfg.NLP.TranslatorURL != "" {
		translator = nlp.NewHTTPTranslator(cfg.NLP.TranslatorURL, cfg.NLP.TranslatorKey)
	} else {
		// No endpoint configured: the pipeline shape is unchanged, the
		// translation stage just abstains on every sentence.
		translator = nlp.NewStaticTranslator(cfg.NLP.SourceLanguage, cfg.NLP.TargetLanguage, nil)
	}

	pipeOpts := []enrich.Option{}
	if debug {
		pipeOpts = append(pipeOpts, enrich.WithLogger(logger))
	}
	pipeline := enrich.NewPipeline(
		detector, extractor, segmenter, tokenizer, model, translator,
		cfg.NLP.SourceLanguage, cfg.NLP.TargetLanguage,
		pipeOpts...,
	)

	return manager.NewManager(source, pipeline, tokenizer, logger), nil
}

func printUsage() {
	fmt.Println(`kansou - Movie review enrichment and search engine

Usage:
  kansou server [flags]            Start the HTTP server
  kansou search [flags] <query>    Search reviews by token membership
  kansou reviews [flags]           List enriched reviews (filter by movie/actor/lang)
  kansou status [flags]            Show corpus and index counts
  kansou version                   Show version
  kansou help                      Show this help

Server Flags:
  --config string    Config file path (default: /usr/local/etc/kansou/config.yaml)
  --debug            Enable debug logging (enrichment stages, corpus changes, etc.)

Search Flags:
  --config string    Config file path
  --output string    Output format: text or json (default: text)

Reviews Flags:
  --config string    Config file path
  --movie string     Filter by movie
  --actor string     Filter by actor
  --lang string      Filter by detected language (ISO 639-1)
  --output string    Output format: text or json (default: text)

Examples:
  kansou server
  kansou search great film
  kansou reviews --movie Nope
  kansou reviews --actor "Daniel Kaluuya"
  kansou reviews --lang es
  kansou status --output json`)
}
