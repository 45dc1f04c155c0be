// Package common provides shared configuration and logging for the Canvas gateway.
package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for the Canvas gateway binaries.
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	MCP         MCPConfig     `toml:"mcp"`
	Canvas      CanvasConfig  `toml:"canvas"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig holds HTTP API server configuration.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// MCPConfig holds MCP server settings.
type MCPConfig struct {
	Name string `toml:"name"`
	Port string `toml:"port"`
}

// CanvasConfig holds Canvas API client configuration.
// APIURL and APIToken are only used by canvas-mcp, which binds one upstream
// per process; the HTTP API receives credentials per request instead.
type CanvasConfig struct {
	APIURL         string `toml:"api_url"`
	APIToken       string `toml:"api_token"`
	DefaultPerPage int    `toml:"default_per_page"`
	MaxPerPage     int    `toml:"max_per_page"`
	Timeout        string `toml:"timeout"`
	EnableDebug    bool   `toml:"enable_debug"`
}

// GetTimeout parses and returns the request timeout duration.
func (c *CanvasConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string   `toml:"level"`
	Format     string   `toml:"format"`
	Outputs    []string `toml:"outputs"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// NewDefaultConfig returns a Config with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "prod",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 4270,
		},
		MCP: MCPConfig{
			Name: "Canvas-MCP",
			Port: "4271",
		},
		Canvas: CanvasConfig{
			DefaultPerPage: 100,
			MaxPerPage:     100,
			Timeout:        "30s",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			Outputs:    []string{"console", "file"},
			FilePath:   "./logs/canvas.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Later files override earlier ones; missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("CANVAS_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("CANVAS_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("CANVAS_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if port := os.Getenv("CANVAS_MCP_PORT"); port != "" {
		config.MCP.Port = port
	}

	if url := os.Getenv("CANVAS_API_URL"); url != "" {
		config.Canvas.APIURL = url
	}

	if token := os.Getenv("CANVAS_API_TOKEN"); token != "" {
		config.Canvas.APIToken = token
	}

	if pp := os.Getenv("CANVAS_DEFAULT_PER_PAGE"); pp != "" {
		if n, err := strconv.Atoi(pp); err == nil && n > 0 {
			config.Canvas.DefaultPerPage = n
		}
	}

	if t := os.Getenv("CANVAS_REQUEST_TIMEOUT"); t != "" {
		if _, err := time.ParseDuration(t); err == nil {
			config.Canvas.Timeout = t
		}
	}

	if dbg := os.Getenv("CANVAS_ENABLE_DEBUG"); dbg != "" {
		config.Canvas.EnableDebug = dbg == "true" || dbg == "1"
	}

	if level := os.Getenv("CANVAS_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}
