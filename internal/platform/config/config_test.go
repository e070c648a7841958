package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadUsesDefaultsWithoutFileOrEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("WORKSPHERE_CONFIG", "")

	cfg, err := Load(home)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBaseURL != DefaultAPIBaseURL {
		t.Fatalf("expected default api url, got %q", cfg.APIBaseURL)
	}
	if cfg.DBPath != filepath.Join(home, ".worksphere", "worksphere.db") {
		t.Fatalf("unexpected db path %q", cfg.DBPath)
	}
	if cfg.ApplyDelay != 1500*time.Millisecond {
		t.Fatalf("expected default apply delay, got %s", cfg.ApplyDelay)
	}
}

func TestLoadLayersFileThenEnv(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".worksphere")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	yaml := "api_base_url: http://file.example/api/auth\nlog_level: debug\nhttp_timeout: 10s\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("WORKSPHERE_CONFIG", "")
	t.Setenv("WORKSPHERE_API_BASE_URL", "http://env.example/api/auth")

	cfg, err := Load(home)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBaseURL != "http://env.example/api/auth" {
		t.Fatalf("env must win over file, got %q", cfg.APIBaseURL)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected file log level, got %q", cfg.LogLevel)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %s", cfg.HTTPTimeout)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()
	cfg := Defaults(t.TempDir())
	cfg.LogLevel = "loud"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected unknown log level to fail")
	}
	cfg = Defaults(t.TempDir())
	cfg.APIBaseURL = " "
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected empty api url to fail")
	}
}

func TestWithAPIBaseURLTrimsTrailingSlash(t *testing.T) {
	t.Parallel()
	cfg := Defaults(t.TempDir()).WithAPIBaseURL("http://localhost:9000/api/auth/")
	if cfg.APIBaseURL != "http://localhost:9000/api/auth" {
		t.Fatalf("unexpected url %q", cfg.APIBaseURL)
	}
	if Defaults("x").WithAPIBaseURL("").APIBaseURL != DefaultAPIBaseURL {
		t.Fatalf("empty override must keep the default")
	}
}
