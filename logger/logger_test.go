package logger

import (
	"errors"
	"os"
	"testing"
)

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-component")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.Component() != "test-component" {
		t.Errorf("expected component 'test-component', got %q", l.Component())
	}
}

func TestNew(t *testing.T) {
	cfg := &Config{Level: "debug", Format: "json", Output: "stdout"}
	l := New(cfg, "hashing")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	l.Debug("digest computed", Fields(FieldAlgorithm, "SHA-256"))
}

func TestNewInvalidLevelFallsBack(t *testing.T) {
	cfg := &Config{Level: "not-a-level", Format: "json", Output: "stdout"}
	if l := New(cfg, "test"); l == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
}

func TestNewFromEnv(t *testing.T) {
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	defer os.Unsetenv("LOG_LEVEL")
	defer os.Unsetenv("LOG_FORMAT")

	if l := NewFromEnv("env-component"); l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestEnvConfigTimestamp(t *testing.T) {
	if cfg := envConfig(); !cfg.Timestamp {
		t.Error("timestamps should default on when LOG_TIMESTAMP is unset")
	}

	os.Setenv("LOG_TIMESTAMP", "false")
	defer os.Unsetenv("LOG_TIMESTAMP")
	if cfg := envConfig(); cfg.Timestamp {
		t.Error("LOG_TIMESTAMP=false should disable timestamps")
	}
}

func TestWithComponent(t *testing.T) {
	l := NewDefault("parent").WithComponent("child")
	if l.Component() != "child" {
		t.Errorf("expected component 'child', got %q", l.Component())
	}
}

func TestWithFieldsAndError(t *testing.T) {
	l := NewDefault("test")
	l2 := l.WithFields(map[string]any{FieldOperation: "hash"})
	if l2 == nil {
		t.Fatal("expected non-nil logger")
	}
	l3 := l.WithError(errors.New("boom"))
	if l3 == nil {
		t.Fatal("expected non-nil logger")
	}
	l3.Error("operation failed")
}

func TestFields(t *testing.T) {
	m := Fields("a", 1, "b", "two")
	if m["a"] != 1 || m["b"] != "two" {
		t.Errorf("unexpected fields map: %v", m)
	}
	if len(Fields("dangling")) != 0 {
		t.Error("odd key without value should be ignored")
	}
}

func TestRegistry(t *testing.T) {
	l := NewDefault("registered")
	Register("registered", l)
	if got := Get("registered"); got != l {
		t.Error("expected registered logger back")
	}
	if got := Get("unregistered"); got == nil {
		t.Fatal("expected fallback logger for unregistered name")
	} else if got.Component() != "unregistered" {
		t.Errorf("fallback logger should carry requested component, got %q", got.Component())
	}
}

func TestGlobal(t *testing.T) {
	if Global() == nil {
		t.Fatal("expected non-nil global logger")
	}
	custom := NewDefault("custom-global")
	SetGlobal(custom)
	if Global() != custom {
		t.Error("expected custom global logger")
	}
}

func TestConfigValidate(t *testing.T) {
	good := Config{Level: "info", Format: "json", Output: "stdout"}
	if err := good.Validate(); err != nil {
		t.Errorf("valid config should pass: %v", err)
	}
	badLevel := Config{Level: "loud", Format: "json"}
	if err := badLevel.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}
	badFormat := Config{Level: "info", Format: "xml"}
	if err := badFormat.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Level != "info" || cfg.Format != "console" || cfg.Output != "stdout" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if !cfg.Timestamp {
		t.Error("timestamps should default on")
	}
}
