package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/viper"

	"github.com/Veraticus/moodring/internal/config"
	"github.com/Veraticus/moodring/internal/engine"
	"github.com/Veraticus/moodring/internal/lexicon"
	"github.com/Veraticus/moodring/internal/storage"
)

// loadConfig resolves settings from flags, environment and config file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// initStorage opens the database and brings its schema up to date.
func initStorage(ctx context.Context, cfg *config.Config) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// loadLexicon returns the configured word list or the embedded one.
func loadLexicon(cfg *config.Config) (*lexicon.Lexicon, error) {
	if cfg.LexiconPath == "" {
		return lexicon.Default(), nil
	}

	lex, err := lexicon.LoadFile(cfg.LexiconPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon: %w", err)
	}
	slog.Debug("Loaded lexicon", "path", cfg.LexiconPath, "words", lex.Len())
	return lex, nil
}

// newAnalyzer builds the classification engine for cfg. A non-nil clock
// replaces the wall clock.
func newAnalyzer(cfg *config.Config, clock clockwork.Clock, opts ...engine.Option) (*engine.Analyzer, error) {
	lex, err := loadLexicon(cfg)
	if err != nil {
		return nil, err
	}

	opts = append([]engine.Option{engine.WithLocation(cfg.Location)}, opts...)
	if clock != nil {
		opts = append(opts, engine.WithClock(clock))
	}
	return engine.NewAnalyzer(lex, opts...), nil
}
