package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Server.Port != 4270 {
		t.Errorf("expected default server port 4270, got %d", cfg.Server.Port)
	}
	if cfg.MCP.Port != "4271" {
		t.Errorf("expected default MCP port 4271, got %s", cfg.MCP.Port)
	}
	if cfg.Canvas.DefaultPerPage != 100 {
		t.Errorf("expected default per_page 100, got %d", cfg.Canvas.DefaultPerPage)
	}
	if cfg.Canvas.GetTimeout() != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.Canvas.GetTimeout())
	}
}

func TestGetTimeoutFallback(t *testing.T) {
	c := CanvasConfig{Timeout: "not a duration"}
	if c.GetTimeout() != 30*time.Second {
		t.Errorf("expected fallback 30s, got %v", c.GetTimeout())
	}

	c.Timeout = "90s"
	if c.GetTimeout() != 90*time.Second {
		t.Errorf("expected 90s, got %v", c.GetTimeout())
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "canvas.toml")
	content := `
environment = "test"

[server]
host = "127.0.0.1"
port = 9090

[canvas]
api_url = "https://canvas.test.edu"
api_token = "file-token"
timeout = "45s"

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Environment != "test" {
		t.Errorf("environment = %q", cfg.Environment)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 9090 {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Canvas.APIURL != "https://canvas.test.edu" {
		t.Errorf("api_url = %q", cfg.Canvas.APIURL)
	}
	if cfg.Canvas.GetTimeout() != 45*time.Second {
		t.Errorf("timeout = %v", cfg.Canvas.GetTimeout())
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q", cfg.Logging.Level)
	}
	// Defaults survive partial files.
	if cfg.Canvas.DefaultPerPage != 100 {
		t.Errorf("default per_page lost: %d", cfg.Canvas.DefaultPerPage)
	}
}

func TestLoadConfigSkipsMissingFiles(t *testing.T) {
	cfg, err := LoadConfig("/no/such/file.toml")
	if err != nil {
		t.Fatalf("missing file should be skipped, got %v", err)
	}
	if cfg.Server.Port != 4270 {
		t.Errorf("expected defaults, got port %d", cfg.Server.Port)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("CANVAS_API_URL", "https://canvas.env.edu")
	t.Setenv("CANVAS_API_TOKEN", "env-token")
	t.Setenv("CANVAS_PORT", "8088")
	t.Setenv("CANVAS_DEFAULT_PER_PAGE", "50")
	t.Setenv("CANVAS_ENABLE_DEBUG", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Canvas.APIURL != "https://canvas.env.edu" {
		t.Errorf("api_url = %q", cfg.Canvas.APIURL)
	}
	if cfg.Canvas.APIToken != "env-token" {
		t.Errorf("api_token = %q", cfg.Canvas.APIToken)
	}
	if cfg.Server.Port != 8088 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if cfg.Canvas.DefaultPerPage != 50 {
		t.Errorf("per_page = %d", cfg.Canvas.DefaultPerPage)
	}
	if !cfg.Canvas.EnableDebug {
		t.Error("expected debug enabled")
	}
}

func TestLoadConfigIgnoresBadEnvNumbers(t *testing.T) {
	t.Setenv("CANVAS_PORT", "not-a-port")
	t.Setenv("CANVAS_DEFAULT_PER_PAGE", "-5")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 4270 {
		t.Errorf("bad port override should be ignored, got %d", cfg.Server.Port)
	}
	if cfg.Canvas.DefaultPerPage != 100 {
		t.Errorf("negative per_page override should be ignored, got %d", cfg.Canvas.DefaultPerPage)
	}
}
