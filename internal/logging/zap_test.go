package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/raysh454/compliscan/internal/logging"
)

func TestZapLogger_JSONIncludesFields(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.Format = "json"

	l := logging.NewZapLoggerTo(cfg, zapcore.AddSync(&buf))
	l.Info("submitted", logging.F("url", "https://example.com"))
	_ = l.Sync()

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["msg"] != "submitted" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["url"] != "https://example.com" {
		t.Errorf("url field = %v", entry["url"])
	}
	if entry["logger"] != "compliscan" {
		t.Errorf("logger name = %v", entry["logger"])
	}
}

func TestZapLogger_LevelFiltering(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.Format = "json"
	cfg.Level = "warn"

	l := logging.NewZapLoggerTo(cfg, zapcore.AddSync(&buf))
	l.Info("hidden")
	l.Warn("shown")
	_ = l.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn line missing: %s", out)
	}
}

func TestZapLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.Format = "json"
	cfg.Level = "chatty"

	l := logging.NewZapLoggerTo(cfg, zapcore.AddSync(&buf))
	l.Debug("debug")
	l.Info("info")
	_ = l.Sync()

	if strings.Contains(buf.String(), `"debug"`) {
		t.Errorf("debug should be filtered: %s", buf.String())
	}
	if !strings.Contains(buf.String(), `"info"`) {
		t.Errorf("info missing: %s", buf.String())
	}
}

func TestZapLogger_WithComponentNamesChild(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zap.DebugLevel)
	l := logging.WrapZap(zap.New(core))

	child := l.With(logging.F("component", "webui"), logging.F("session", "abc"))
	child.Error("boom", logging.Err(errors.New("bad")))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.LoggerName != "webui" {
		t.Errorf("logger name = %q", e.LoggerName)
	}
	ctx := e.ContextMap()
	if ctx["session"] != "abc" || ctx["error"] != "bad" {
		t.Errorf("context = %v", ctx)
	}
	if _, ok := ctx["component"]; ok {
		t.Error("component should become the logger name, not a field")
	}
}

func TestZapLogger_FileSink(t *testing.T) {
	t.Parallel()
	var console bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "compliscan.log")

	l := logging.NewZapLoggerTo(cfg, zapcore.AddSync(&console))
	l.Info("to both sinks")
	if err := l.Sync(); err != nil {
		t.Logf("sync: %v", err)
	}
	if !strings.Contains(console.String(), "to both sinks") {
		t.Errorf("console sink missing entry: %q", console.String())
	}
}

func TestNopLogger(t *testing.T) {
	t.Parallel()
	l := logging.NewNopLogger()
	l.Info("ignored")
	if l.With(logging.F("k", "v")) == nil {
		t.Fatal("With returned nil")
	}
}
