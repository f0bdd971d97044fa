package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig(t *testing.T) {
	initConfigRequest := func(env map[string]string, want Config, wantErr string) func(t *testing.T) {
		return func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}

			got, err := InitConfig(filepath.Join(t.TempDir(), "missing.env"))
			if wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), wantErr)
				return
			}

			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("InitConfig() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	defaults := Config{
		LogLevel: "info",
		HTTP: HTTP{
			Port:               8080,
			Timeout:            75 * time.Second,
			CORSAllowedOrigins: []string{"*"},
		},
		Scraper: Scraper{
			Timeout: 60 * time.Second,
		},
		Mock: Mock{Latency: 2 * time.Second},
	}

	t.Run("defaults", initConfigRequest(nil, defaults, ""))

	withScraper := defaults
	withScraper.Scraper = Scraper{
		SearchAPIURL: "https://scraper.example.com",
		Timeout:      30 * time.Second,
		RateLimitRPS: 5,
	}
	withScraper.Redis = Redis{Addr: "localhost:6379", DB: 1}
	t.Run("scraper_from_env", initConfigRequest(map[string]string{
		"SCRAPER_API_URL":        " https://scraper.example.com ",
		"SCRAPER_API_TIMEOUT":    "30s",
		"SCRAPER_API_RATE_LIMIT": "5",
		"REDIS_ADDR":             "localhost:6379",
		"REDIS_DB":               "1",
	}, withScraper, ""))

	withOrigins := defaults
	withOrigins.HTTP.CORSAllowedOrigins = []string{"https://a.example.com", "https://b.example.com"}
	t.Run("cors_origins_list", initConfigRequest(map[string]string{
		"CORS_ALLOWED_ORIGINS": "https://a.example.com,https://b.example.com",
	}, withOrigins, ""))

	t.Run("invalid_scraper_url", initConfigRequest(map[string]string{
		"SCRAPER_API_URL": "not a url",
	}, Config{}, "SCRAPER_API_URL must be a valid URL"))

	t.Run("invalid_port", initConfigRequest(map[string]string{
		"HTTP_PORT": "70000",
	}, Config{}, "HTTP_PORT must be"))
}

func TestInitConfig_FromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	err := os.WriteFile(file, []byte("SCRAPER_API_URL=http://localhost:9000\nMOCK_LATENCY=0s\n"), 0o600)
	require.NoError(t, err)

	cfg, err := InitConfig(file)
	require.NoError(t, err)

	assert.True(t, cfg.Scraper.Enabled())
	assert.Equal(t, "http://localhost:9000", cfg.Scraper.SearchAPIURL)
	assert.Equal(t, time.Duration(0), cfg.Mock.Latency)
}

func TestLogLeveler_Level(t *testing.T) {
	assert.Equal(t, "DEBUG", LogLeveler("debug").Level().String())
	assert.Equal(t, "WARN", LogLeveler("warn").Level().String())
	assert.Equal(t, "INFO", LogLeveler("").Level().String())
}
