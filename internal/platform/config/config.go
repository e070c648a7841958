package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix         = "WORKSPHERE_"
	DefaultAPIBaseURL = "http://127.0.0.1:8000/api/auth"
	DefaultIssuer     = "https://accounts.google.com"
)

type Config struct {
	HomeDir string `koanf:"-"`
	DataDir string `koanf:"-"`
	DBPath  string `koanf:"-"`
	LogPath string `koanf:"-"`

	APIBaseURL         string        `koanf:"api_base_url"`
	HTTPTimeout        time.Duration `koanf:"http_timeout"`
	GoogleClientID     string        `koanf:"google_client_id"`
	GoogleClientSecret string        `koanf:"google_client_secret"`
	GoogleIssuer       string        `koanf:"google_issuer"`
	LogLevel           string        `koanf:"log_level"`
	ApplyDelay         time.Duration `koanf:"apply_delay"`
}

// Defaults mirrors the values the web client hardcoded. A zero HTTPTimeout
// means requests are only bounded by the caller's context.
func Defaults(homeDir string) Config {
	dataDir := filepath.Join(homeDir, ".worksphere")
	return Config{
		HomeDir:      homeDir,
		DataDir:      dataDir,
		DBPath:       filepath.Join(dataDir, "worksphere.db"),
		LogPath:      filepath.Join(dataDir, "worksphere.log"),
		APIBaseURL:   DefaultAPIBaseURL,
		GoogleIssuer: DefaultIssuer,
		LogLevel:     "info",
		ApplyDelay:   1500 * time.Millisecond,
	}
}

// Load layers defaults, an optional YAML file and WORKSPHERE_* env vars
// (low -> high). A .env file in the working directory is loaded first.
// The YAML file is WORKSPHERE_CONFIG when set, else <home>/.worksphere/config.yaml if present.
func Load(homeDir string) (Config, error) {
	if homeDir == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		homeDir = dir
	}
	_ = godotenv.Load()

	base := Defaults(homeDir)
	k := koanf.New(".")

	path := os.Getenv(envPrefix + "CONFIG")
	if path == "" {
		candidate := filepath.Join(base.DataDir, "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("load env config: %w", err)
	}

	cfg := base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return errors.New("api_base_url must not be empty")
	}
	if c.HTTPTimeout < 0 {
		return errors.New("http_timeout must be non-negative")
	}
	if c.ApplyDelay < 0 {
		return errors.New("apply_delay must be non-negative")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

// WithAPIBaseURL applies a --api flag override.
func (c Config) WithAPIBaseURL(url string) Config {
	if url = strings.TrimSpace(url); url != "" {
		c.APIBaseURL = strings.TrimRight(url, "/")
	}
	return c
}
