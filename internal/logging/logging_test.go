package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guess/internal/config"
)

func TestSetupJSON(t *testing.T) {
	var buf bytes.Buffer
	Setup(config.Config{LogLevel: "debug", LogFormat: "json"}, &buf)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	log.Debug().Str("game", "abc").Msg("game started")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["message"] != "game started" || entry["game"] != "abc" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if entry["level"] != "debug" {
		t.Fatalf("expected debug level, got %v", entry["level"])
	}
}

func TestSetupFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	Setup(config.Config{LogLevel: "warn", LogFormat: "json"}, &buf)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	log.Debug().Msg("hidden")
	log.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}
}

func TestSetupInvalidLevelFallsBack(t *testing.T) {
	var buf bytes.Buffer
	Setup(config.Config{LogLevel: "loud", LogFormat: "json"}, &buf)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Fatalf("expected warn level, got %v", zerolog.GlobalLevel())
	}
	if !strings.Contains(buf.String(), "invalid log level") {
		t.Fatalf("expected fallback warning, got %q", buf.String())
	}
}

func TestSetupConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	Setup(config.Config{LogLevel: "info", LogFormat: "console"}, &buf)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	log.Info().Msg("hello")
	if strings.HasPrefix(buf.String(), "{") {
		t.Fatalf("expected console output, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "hello") {
		t.Fatalf("expected message in %q", buf.String())
	}
}

func TestPrettyAutoForNonFile(t *testing.T) {
	if pretty("auto", &bytes.Buffer{}) {
		t.Fatal("expected json for non-terminal writer")
	}
}
