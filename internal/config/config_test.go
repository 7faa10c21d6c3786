package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"github.com/pfrederiksen/mmrda-holidays/internal/logger"
	"github.com/pfrederiksen/mmrda-holidays/internal/scraper"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.SourceURL != scraper.SourceURL {
		t.Errorf("SourceURL = %q, want %q", cfg.SourceURL, scraper.SourceURL)
	}
	if cfg.UserAgent != "HolidayMCP/1.0" {
		t.Errorf("UserAgent = %q, want HolidayMCP/1.0", cfg.UserAgent)
	}
	if cfg.Timeout != 20*time.Second {
		t.Errorf("Timeout = %v, want 20s", cfg.Timeout)
	}
	if cfg.MinFetchInterval != scraper.MinFetchInterval {
		t.Errorf("MinFetchInterval = %v, want %v", cfg.MinFetchInterval, scraper.MinFetchInterval)
	}
	if cfg.Level() != logger.LevelInfo {
		t.Errorf("Level() = %v, want INFO", cfg.Level())
	}
	if cfg.LogFile != "" || cfg.HTTPAddr != "" {
		t.Errorf("LogFile = %q, HTTPAddr = %q, want empty", cfg.LogFile, cfg.HTTPAddr)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("HOLIDAYS_SOURCE_URL", "https://example.com/holidays")
	t.Setenv("HOLIDAYS_TIMEOUT", "45s")
	t.Setenv("HOLIDAYS_MIN_FETCH_INTERVAL", "0s")
	t.Setenv("HOLIDAYS_LOG_LEVEL", "debug")
	t.Setenv("HOLIDAYS_HTTP_ADDR", "127.0.0.1:8080")

	cfg, err := Load(New())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.SourceURL != "https://example.com/holidays" {
		t.Errorf("SourceURL = %q", cfg.SourceURL)
	}
	if cfg.Timeout != 45*time.Second {
		t.Errorf("Timeout = %v, want 45s", cfg.Timeout)
	}
	if cfg.MinFetchInterval != 0 {
		t.Errorf("MinFetchInterval = %v, want 0", cfg.MinFetchInterval)
	}
	if cfg.Level() != logger.LevelDebug {
		t.Errorf("Level() = %v, want DEBUG", cfg.Level())
	}
	if cfg.HTTPAddr != "127.0.0.1:8080" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
}

func TestBindFlags(t *testing.T) {
	t.Setenv("HOLIDAYS_TIMEOUT", "45s")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Duration(KeyTimeout, scraper.Timeout, "")
	fs.String(KeyUserAgent, scraper.UserAgent, "")
	fs.Bool("unrelated", false, "")

	if err := fs.Parse([]string{"--timeout=5s"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	v := New()
	if err := BindFlags(v, fs); err != nil {
		t.Fatalf("BindFlags() error = %v", err)
	}

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// An explicitly set flag beats the environment
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if cfg.UserAgent != scraper.UserAgent {
		t.Errorf("UserAgent = %q, want %q", cfg.UserAgent, scraper.UserAgent)
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			SourceURL:        scraper.SourceURL,
			UserAgent:        scraper.UserAgent,
			Timeout:          scraper.Timeout,
			MinFetchInterval: scraper.MinFetchInterval,
			LogLevel:         "info",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"relative url", func(c *Config) { c.SourceURL = "/public-holidays" }, KeySourceURL},
		{"ftp url", func(c *Config) { c.SourceURL = "ftp://example.com/x" }, KeySourceURL},
		{"empty user agent", func(c *Config) { c.UserAgent = " " }, KeyUserAgent},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, KeyTimeout},
		{"negative interval", func(c *Config) { c.MinFetchInterval = -time.Second }, KeyMinFetchInterval},
		{"zero interval", func(c *Config) { c.MinFetchInterval = 0 }, ""},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, KeyLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestScraperOptions(t *testing.T) {
	cfg := &Config{
		SourceURL: "https://example.com/holidays",
		UserAgent: "test-agent",
		Timeout:   3 * time.Second,
	}

	s := scraper.New(cfg.ScraperOptions()...)
	if s.URL() != "https://example.com/holidays" {
		t.Errorf("URL() = %q", s.URL())
	}
}
