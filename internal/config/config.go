package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/Veraticus/moodring/internal/common"
)

// Viper keys.
const (
	KeyDatabasePath    = "database.path"
	KeyLexiconPath     = "lexicon.path"
	KeyEngineTimezone  = "engine.timezone"
	KeyServerAddr      = "server.addr"
	KeyServerRateLimit = "server.rate_limit"
	KeyServerBurst     = "server.burst"
	KeyLoggingLevel    = "logging.level"
	KeyLoggingFormat   = "logging.format"
)

// Config holds the resolved application settings.
type Config struct {
	Location     *time.Location
	DatabasePath string
	LexiconPath  string // empty selects the embedded word list
	ServerAddr   string
	LogLevel     string
	LogFormat    string
	RateLimit    float64 // requests per second per client; 0 disables limiting
	Burst        int
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDatabasePath, "~/.local/share/moodring/moodring.db")
	v.SetDefault(KeyLexiconPath, "")
	v.SetDefault(KeyEngineTimezone, "Local")
	v.SetDefault(KeyServerAddr, ":5000")
	v.SetDefault(KeyServerRateLimit, 10.0)
	v.SetDefault(KeyServerBurst, 20)
	v.SetDefault(KeyLoggingLevel, "info")
	v.SetDefault(KeyLoggingFormat, "console")
}

// Load resolves and validates settings from v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabasePath: ExpandPath(v.GetString(KeyDatabasePath)),
		LexiconPath:  ExpandPath(v.GetString(KeyLexiconPath)),
		ServerAddr:   v.GetString(KeyServerAddr),
		RateLimit:    v.GetFloat64(KeyServerRateLimit),
		Burst:        v.GetInt(KeyServerBurst),
		LogLevel:     v.GetString(KeyLoggingLevel),
		LogFormat:    v.GetString(KeyLoggingFormat),
	}

	if cfg.DatabasePath == "" {
		return nil, fmt.Errorf("%w: %s is required", common.ErrInvalidConfig, KeyDatabasePath)
	}
	if cfg.DatabasePath != ":memory:" {
		cfg.DatabasePath = filepath.Clean(cfg.DatabasePath)
	}

	loc, err := time.LoadLocation(v.GetString(KeyEngineTimezone))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrInvalidConfig, KeyEngineTimezone, err)
	}
	cfg.Location = loc

	if cfg.RateLimit < 0 {
		return nil, fmt.Errorf("%w: %s cannot be negative", common.ErrInvalidConfig, KeyServerRateLimit)
	}
	if cfg.RateLimit > 0 && cfg.Burst < 1 {
		return nil, fmt.Errorf("%w: %s must be at least 1", common.ErrInvalidConfig, KeyServerBurst)
	}

	return cfg, nil
}
