// Command humanity plays the game in the terminal.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/tatianab/humanity/internal/config"
	"github.com/tatianab/humanity/internal/content"
	"github.com/tatianab/humanity/internal/engine"
	"github.com/tatianab/humanity/internal/observability"
	"github.com/tatianab/humanity/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (default: ./humanity.yaml if present)")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("humanity needs an interactive terminal; use the simulate command for unattended play")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	store, err := loadContent(cfg.Game)
	if err != nil {
		logger.Fatal("loading content", zap.Error(err))
	}

	display := tui.NewDisplay()
	eng, err := engine.New(store, display, engine.NewSource(cfg.Game.Seed), logger)
	if err != nil {
		logger.Fatal("creating engine", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("session started", zap.Uint64("seed", cfg.Game.Seed))
	if err := tui.Run(ctx, eng, display, logger); err != nil {
		logger.Error("session failed", zap.Error(err))
		log.Fatalf("Error running TUI: %v", err)
	}
	logger.Info("session finished")
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.LoadConfig()
}

func loadContent(cfg config.GameConfig) (*content.Store, error) {
	if cfg.ContentPath != "" {
		return content.LoadFile(cfg.ContentPath)
	}
	return content.Load()
}
