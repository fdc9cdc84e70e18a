package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func newJSONLogger(buf *bytes.Buffer, level string) *Logger {
	return NewWithWriter(&Config{Level: level, Format: "json"}, buf, "test")
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("expected a log line")
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(line), &m); err != nil {
		t.Fatalf("invalid json log line %q: %v", line, err)
	}
	return m
}

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newJSONLogger(&buf, "invalid-level")
	l.Debug("hidden")
	l.Info("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("invalid level should fall back to info")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("expected info message to be written")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := newJSONLogger(&buf, "warn")
	l.Info("info")
	if buf.Len() != 0 {
		t.Errorf("expected info to be filtered, got %q", buf.String())
	}
	l.Warn("warn")
	if decodeLine(t, &buf)["message"] != "warn" {
		t.Error("expected warn message")
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	l := NewFromEnv("env-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if got := l.logger.GetLevel().String(); got != "debug" {
		t.Errorf("expected debug level from env, got %q", got)
	}
}

func TestNewFromEnvInvalidBool(t *testing.T) {
	t.Setenv("LOG_NO_COLOR", "not-a-bool")
	l := NewFromEnv("env-svc")
	if got := l.logger.GetLevel().String(); got != "info" {
		t.Errorf("expected defaults on parse failure, got %q", got)
	}
}

func TestWithComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := newJSONLogger(&buf, "info").WithComponent("config").WithFields(Fields("path", "app.json"))
	l.Info("read")

	m := decodeLine(t, &buf)
	if m[FieldComponent] != "config" {
		t.Errorf("expected component field, got %v", m[FieldComponent])
	}
	if m["path"] != "app.json" {
		t.Errorf("expected path field, got %v", m["path"])
	}
	if l.service != "test" {
		t.Errorf("service should be preserved, got %q", l.service)
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	newJSONLogger(&buf, "info").WithError(errors.New("boom")).Error("failed")
	if decodeLine(t, &buf)[FieldError] != "boom" {
		t.Error("expected error field")
	}
}

func TestWithContextAddsSpanIDs(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	var buf bytes.Buffer
	newJSONLogger(&buf, "info").WithContext(ctx).Info("traced")

	m := decodeLine(t, &buf)
	if m[FieldTraceID] != span.SpanContext().TraceID().String() {
		t.Errorf("expected trace id, got %v", m[FieldTraceID])
	}
	if m[FieldSpanID] != span.SpanContext().SpanID().String() {
		t.Errorf("expected span id, got %v", m[FieldSpanID])
	}
}

func TestWithContextWithoutSpan(t *testing.T) {
	l := NewDefault("test")
	if l.WithContext(context.Background()) != l {
		t.Error("expected the same logger when no span is present")
	}
}

func TestGetGlobalLogger(t *testing.T) {
	l := GetGlobalLogger()
	if l == nil {
		t.Fatal("expected a default global logger")
	}
	if GetGlobalLogger() != l {
		t.Error("expected the same global logger on every call")
	}
}

func TestRegistry(t *testing.T) {
	var buf bytes.Buffer
	l := newJSONLogger(&buf, "info")
	Register("registry-test", l)
	defer Unregister("registry-test")

	if Get("registry-test") != l {
		t.Error("expected registered logger")
	}
	Unregister("registry-test")
	if Get("registry-test") == l {
		t.Error("expected fallback logger after unregister")
	}
}

func TestNop(t *testing.T) {
	Nop().Info("discarded")
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected level 'info', got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format 'console', got %q", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected output 'stdout', got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected Timestamp to be true")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", Format: "json"}, false},
		{"valid console", Config{Level: "debug", Format: "console"}, false},
		{"invalid level", Config{Level: "bad", Format: "json"}, true},
		{"invalid format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestFields(t *testing.T) {
	m := Fields("a", 1, "b")
	if len(m) != 1 || m["a"] != 1 {
		t.Errorf("expected trailing key to be ignored, got %v", m)
	}
	if ErrorFields("load", errors.New("x"))[FieldError] != "x" {
		t.Error("expected error field")
	}
	if _, ok := DurationFields("load", 0)[FieldDuration]; !ok {
		t.Error("expected duration field")
	}
}
