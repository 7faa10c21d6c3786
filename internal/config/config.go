// Package config resolves runtime settings from defaults, HOLIDAYS_*
// environment variables, and command-line flags, in increasing priority.
// No configuration file is read.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pfrederiksen/mmrda-holidays/internal/logger"
	"github.com/pfrederiksen/mmrda-holidays/internal/scraper"
)

// EnvPrefix is the prefix for environment overrides, e.g. HOLIDAYS_TIMEOUT=30s
const EnvPrefix = "HOLIDAYS"

// Setting keys, also used as flag names
const (
	KeySourceURL        = "source-url"
	KeyUserAgent        = "user-agent"
	KeyTimeout          = "timeout"
	KeyMinFetchInterval = "min-fetch-interval"
	KeyLogLevel         = "log-level"
	KeyLogFile          = "log-file"
	KeyHTTPAddr         = "http-addr"
)

// Config represents application configuration
type Config struct {
	SourceURL        string        `mapstructure:"source-url"`
	UserAgent        string        `mapstructure:"user-agent"`
	Timeout          time.Duration `mapstructure:"timeout"`
	MinFetchInterval time.Duration `mapstructure:"min-fetch-interval"`
	LogLevel         string        `mapstructure:"log-level"`
	LogFile          string        `mapstructure:"log-file"`
	HTTPAddr         string        `mapstructure:"http-addr"`
}

// New returns a viper instance with defaults and environment lookup set up
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeySourceURL, scraper.SourceURL)
	v.SetDefault(KeyUserAgent, scraper.UserAgent)
	v.SetDefault(KeyTimeout, scraper.Timeout)
	v.SetDefault(KeyMinFetchInterval, scraper.MinFetchInterval)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyHTTPAddr, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// BindFlags binds every flag in fs that names a setting
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, key := range []string{
		KeySourceURL, KeyUserAgent, KeyTimeout, KeyMinFetchInterval,
		KeyLogLevel, KeyLogFile, KeyHTTPAddr,
	} {
		f := fs.Lookup(key)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %s: %w", key, err)
		}
	}
	return nil
}

// Load decodes and validates the settings held by v
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	u, err := url.Parse(c.SourceURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL, got %q", KeySourceURL, c.SourceURL)
	}
	if strings.TrimSpace(c.UserAgent) == "" {
		return fmt.Errorf("%s is required", KeyUserAgent)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%s must be positive", KeyTimeout)
	}
	if c.MinFetchInterval < 0 {
		return fmt.Errorf("%s must not be negative", KeyMinFetchInterval)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%s: %w", KeyLogLevel, err)
	}
	return nil
}

// Level returns the parsed log level. Validate has already checked it.
func (c *Config) Level() logger.Level {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return logger.LevelInfo
	}
	return level
}

// NewLogger builds the logger described by the configuration
func (c *Config) NewLogger() *logger.Logger {
	if c.LogFile != "" {
		return logger.NewFile(c.Level(), c.LogFile)
	}
	return logger.New(c.Level(), os.Stderr)
}

// ScraperOptions returns the scraper options for the configured source
func (c *Config) ScraperOptions() []scraper.Option {
	return []scraper.Option{
		scraper.WithURL(c.SourceURL),
		scraper.WithUserAgent(c.UserAgent),
		scraper.WithTimeout(c.Timeout),
		scraper.WithMinInterval(c.MinFetchInterval),
	}
}
