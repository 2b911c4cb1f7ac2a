package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tui "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"leadscore/internal/cache"
	"leadscore/internal/keywords"
	"leadscore/internal/scoring"
	"leadscore/internal/state"
	"leadscore/internal/ui"
)

type Config struct {
	// remote service
	APIBaseURL string
	Timeout    time.Duration

	// local files
	CachePath string
	LogPath   string

	// render
	TopKeywords int
	AltScreen   bool
}

var config = Config{
	APIBaseURL: "http://localhost:8000",
	Timeout:    10 * time.Second,

	TopKeywords: 8,
	AltScreen:   true,
}

func main() {
	// A .env next to the binary may provide the LEADSCORE_* variables.
	_ = godotenv.Load()
	if v := os.Getenv("LEADSCORE_API_URL"); v != "" {
		config.APIBaseURL = v
	}
	if v := os.Getenv("LEADSCORE_CACHE"); v != "" {
		config.CachePath = v
	}
	if v := os.Getenv("LEADSCORE_LOG"); v != "" {
		config.LogPath = v
	}

	flag.StringVar(&config.APIBaseURL, "api", config.APIBaseURL, "Scoring service base URL")
	flag.DurationVar(&config.Timeout, "timeout", config.Timeout, "Per-request timeout for scoring service calls")
	flag.StringVar(&config.CachePath, "cache", config.CachePath, "Snapshot cache file (default: user cache dir)")
	flag.StringVar(&config.LogPath, "log", config.LogPath, "Log file (default: next to the cache file)")
	flag.IntVar(&config.TopKeywords, "keywords", config.TopKeywords, "How many intent signals to show")
	flag.BoolVar(&config.AltScreen, "alt-screen", config.AltScreen, "Use the terminal alternate screen buffer")
	flag.Parse()

	if err := validateAndNormalizeConfig(); err != nil {
		log.Fatal(err)
	}

	if !term.IsTerminal(os.Stdout.Fd()) {
		log.Fatal("stdout is not a terminal; the dashboard needs an interactive terminal")
	}

	logger, err := newLogger(config.LogPath)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("api", config.APIBaseURL),
		zap.String("cache", config.CachePath))

	client := scoring.NewClient(config.APIBaseURL, config.Timeout)
	store := cache.Open(config.CachePath, logger)
	coordinator := state.New(store, logger)
	board := keywords.NewBoard(config.TopKeywords)

	m := ui.New(client, coordinator, board, logger, config.Timeout)
	opts := []tui.ProgramOption{tui.WithInputTTY()}
	if config.AltScreen {
		opts = append(opts, tui.WithAltScreen())
	}
	if _, err := tui.NewProgram(m, opts...).Run(); err != nil {
		logger.Error("program failed", zap.Error(err))
		log.Fatal(err)
	}
}

func validateAndNormalizeConfig() error {
	if config.APIBaseURL == "" {
		return fmt.Errorf("-api must not be empty")
	}
	if config.Timeout <= 0 {
		return fmt.Errorf("-timeout must be > 0")
	}
	if config.TopKeywords < 1 {
		return fmt.Errorf("-keywords must be >= 1")
	}
	if config.CachePath == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			dir = "."
		}
		config.CachePath = filepath.Join(dir, "leadscore", "cache.json")
	}
	if config.LogPath == "" {
		config.LogPath = filepath.Join(filepath.Dir(config.CachePath), "leadscore.log")
	}
	return nil
}

// newLogger writes structured logs to a file; stdout belongs to the TUI.
func newLogger(path string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
