package common

import (
	"testing"
)

func TestNewSilentLogger(t *testing.T) {
	logger := NewSilentLogger()
	if logger == nil {
		t.Fatal("expected logger")
	}
	// Must not panic or write anywhere.
	logger.Info().Str("key", "value").Msg("silent")
	logger.Error().Msg("also silent")
}

func TestNewLoggerFromConfigConsoleOnly(t *testing.T) {
	logger := NewLoggerFromConfig(LoggingConfig{Level: "warn", Outputs: []string{"console"}})
	if logger == nil {
		t.Fatal("expected logger")
	}
}

func TestWithCorrelationId(t *testing.T) {
	logger := NewSilentLogger()
	child := logger.WithCorrelationId("abc-123")
	if child == nil {
		t.Fatal("expected derived logger")
	}
	child.Debug().Msg("correlated")
}
