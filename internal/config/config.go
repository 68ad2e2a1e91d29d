package config

import (
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the process configuration. It is built once at startup and passed
// explicitly to the components that need it.
type Config struct {
	Port        string
	CORSOrigins []string
	LogLevel    string
	GitHub      *GitHubConfig
	Batch       *BatchConfig
}

// fileConfig mirrors the keys accepted from the YAML file and the environment
type fileConfig struct {
	Port                 string `koanf:"port"`
	CORSOrigins          string `koanf:"cors_origins"`
	LogLevel             string `koanf:"log_level"`
	GitHubToken          string `koanf:"github_token"`
	GitHubAPIURL         string `koanf:"github_api_url"`
	GitHubTimeoutSeconds int    `koanf:"github_timeout_seconds"`
	GitHubMaxRetries     int    `koanf:"github_max_retries"`
	Workers              int    `koanf:"workers"`
}

// envKeys maps recognised environment variables to config keys
var envKeys = map[string]string{
	"PORT":                   "port",
	"CORS_ORIGINS":           "cors_origins",
	"LOG_LEVEL":              "log_level",
	"GITHUB_TOKEN":           "github_token",
	"GITHUB_API_URL":         "github_api_url",
	"GITHUB_TIMEOUT_SECONDS": "github_timeout_seconds",
	"GITHUB_MAX_RETRIES":     "github_max_retries",
	"SIGNALS_WORKERS":        "workers",
}

// Load builds a Config by layering defaults, an optional YAML file named by
// SIGNALS_CONFIG, and environment variables (highest precedence).
func Load() (*Config, error) {
	gh := DefaultGitHubConfig()
	batch := DefaultBatchConfig()

	raw := fileConfig{
		Port:                 "8080",
		CORSOrigins:          "*",
		LogLevel:             "info",
		GitHubAPIURL:         gh.APIBaseURL,
		GitHubTimeoutSeconds: int(gh.Timeout / time.Second),
		GitHubMaxRetries:     gh.RateLimit.MaxRetries,
		Workers:              batch.Workers,
	}

	k := koanf.New(".")

	if path := os.Getenv("SIGNALS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	envProvider := env.Provider("", ".", func(s string) string {
		return envKeys[s]
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	if err := k.UnmarshalWithConf("", &raw, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	gh.Token = raw.GitHubToken
	gh.APIBaseURL = raw.GitHubAPIURL
	if raw.GitHubTimeoutSeconds > 0 {
		gh.Timeout = time.Duration(raw.GitHubTimeoutSeconds) * time.Second
	}
	if raw.GitHubMaxRetries >= 0 {
		gh.RateLimit.MaxRetries = raw.GitHubMaxRetries
	}
	if raw.Workers > 0 {
		batch.Workers = raw.Workers
	}

	return &Config{
		Port:        raw.Port,
		CORSOrigins: splitList(raw.CORSOrigins),
		LogLevel:    raw.LogLevel,
		GitHub:      gh,
		Batch:       batch,
	}, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
