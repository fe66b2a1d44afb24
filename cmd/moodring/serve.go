package main

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/moodring/internal/api"
	"github.com/Veraticus/moodring/internal/config"
	"github.com/Veraticus/moodring/internal/engine"
	"github.com/Veraticus/moodring/internal/metrics"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve the analysis API:

  POST   /api/analyze       classify {"text": "..."} and store the result
  GET    /api/history       stored results, newest first (?limit=N)
  GET    /api/history/:id   one stored result
  DELETE /api/history/:id   delete a stored result
  GET    /health            liveness
  GET    /metrics           Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("addr", ":5000", "listen address")
	cmd.Flags().Float64("rate-limit", 10, "requests per second per client (0 disables)")
	cmd.Flags().Int("burst", 20, "requests a client may burst above the rate")
	_ = viper.BindPFlag(config.KeyServerAddr, cmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag(config.KeyServerRateLimit, cmd.Flags().Lookup("rate-limit"))
	_ = viper.BindPFlag(config.KeyServerBurst, cmd.Flags().Lookup("burst"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := initStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	registry := metrics.NewRegistry()
	analyzer, err := newAnalyzer(cfg, nil, engine.WithMetrics(metrics.NewEngineMetrics(registry)))
	if err != nil {
		return err
	}

	deps := api.Dependencies{
		Classifier:  analyzer,
		Storage:     store,
		Registry:    registry,
		HTTPMetrics: metrics.NewHTTPMetrics(registry),
	}
	if cfg.RateLimit > 0 {
		deps.RateLimiter = api.NewRateLimiter(cfg.RateLimit, cfg.Burst, clockwork.NewRealClock())
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	slog.Info("Serving analysis API",
		"addr", cfg.ServerAddr,
		"database", cfg.DatabasePath,
		"rate_limit", cfg.RateLimit,
		"timezone", cfg.Location.String())

	if err := api.NewServer(cfg.ServerAddr, api.NewRouter(deps)).Run(ctx); err != nil {
		return fmt.Errorf("api server: %w", err)
	}
	return nil
}
