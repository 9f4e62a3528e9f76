// Package config handles loading and parsing application configuration.
// It supports two sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// The parsed values are returned as a *Config pointer so the struct is
// shared by reference rather than copied everywhere.
package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
//
// env-required:"true" means the app refuses to start if that value is
// missing — better to crash at boot than to silently use a wrong default.
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-required:"true"`

	// Storage, HTTPServer and RateLimit are embedded (not pointers) so
	// their fields are reachable directly: cfg.Storage.Type,
	// cfg.HTTPServer.Addr, cfg.RateLimit.Requests.
	Storage    `yaml:"storage"`
	HTTPServer `yaml:"http_server"`
	RateLimit  `yaml:"rate_limit"`
}

// Storage selects the backend and, for file-backed backends, where the
// data lives. Nested under storage: in the YAML file.
type Storage struct {
	// Type is the backend name: "memory" (default) or "sqlite".
	Type string `yaml:"type" env:"STORAGE_TYPE" env-default:"memory"`

	// Path is the filesystem path to the SQLite .db file.
	// Only consulted when Type is "sqlite".
	Path string `yaml:"path" env:"STORAGE_PATH"`
}

// HTTPServer holds settings specific to the HTTP server.
// Nested under http_server: in the YAML file.
type HTTPServer struct {
	// Addr is the TCP address the server listens on, e.g. "localhost:8082".
	Addr string `yaml:"address" env:"HTTP_SERVER_ADDR" env-required:"true"`
}

// RateLimit configures admission control on the list endpoint:
// each client IP may make Requests requests per Window.
// Nested under rate_limit: in the YAML file.
type RateLimit struct {
	Enabled  bool          `yaml:"enabled" env:"RATE_LIMIT_ENABLED" env-default:"false"`
	Requests int           `yaml:"requests" env:"RATE_LIMIT_REQUESTS" env-default:"5"`
	Window   time.Duration `yaml:"window" env:"RATE_LIMIT_WINDOW" env-default:"1m"`
}

// Load reads, validates, and returns the config at the given path.
// Split out from MustLoad so tests can exercise loading (including the
// failure paths) without the process exiting underneath them.
func Load(path string) (*Config, error) {
	// Verify the file exists before trying to read it — a clear message
	// beats a cryptic "open: no such file" from deeper in the stack.
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	// cleanenv.ReadConfig reads the YAML file and populates the struct.
	// It also reads any env:"..." tagged fields from the environment,
	// and validates env-required:"true" constraints.
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	return &cfg, nil
}

// MustLoad resolves the config path, then loads it.
//
// The name "MustLoad" follows a Go convention: functions prefixed with
// "Must" are allowed to panic/fatal on failure. Callers do not need to
// check a returned error — if this function returns, the config is valid.
func MustLoad() *Config {
	var configPath string

	// ── Source 1: environment variable ───────────────────────────────
	// Useful in Docker / Kubernetes where env vars are the standard way
	// to pass config to a container.
	configPath = os.Getenv("CONFIG_PATH")

	// ── Source 2: command-line flag ───────────────────────────────────
	// Useful when running locally:
	//   go run ./cmd/students-api --config=config/local.yaml
	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	if configPath == "" {
		log.Fatal("config path is not set: use --config flag or CONFIG_PATH env var")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %s", err.Error())
	}

	return cfg
}
