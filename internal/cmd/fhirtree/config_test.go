package main

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("expected default log format text, got %s", cfg.LogFormat)
	}
	if cfg.Indent != 2 {
		t.Errorf("expected default indent 2, got %d", cfg.Indent)
	}
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("FHIRTREE_LOG_LEVEL", "debug")
	t.Setenv("FHIRTREE_LOG_FORMAT", "json")
	t.Setenv("FHIRTREE_INDENT", "4")

	cfg, err := LoadConfig(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("expected log format json, got %s", cfg.LogFormat)
	}
	if cfg.Indent != 4 {
		t.Errorf("expected indent 4, got %d", cfg.Indent)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "log level", key: "FHIRTREE_LOG_LEVEL", value: "verbose"},
		{name: "log format", key: "FHIRTREE_LOG_FORMAT", value: "xml"},
		{name: "indent too small", key: "FHIRTREE_INDENT", value: "0"},
		{name: "indent too large", key: "FHIRTREE_INDENT", value: "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			if _, err := LoadConfig(nil); err == nil {
				t.Errorf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestConfig_Logger(t *testing.T) {
	tests := []struct {
		cfg       Config
		wantDebug bool
		wantJSON  bool
	}{
		{cfg: Config{LogLevel: "debug", LogFormat: "text"}, wantDebug: true},
		{cfg: Config{LogLevel: "info", LogFormat: "json"}, wantJSON: true},
		{cfg: Config{LogLevel: "warn", LogFormat: "text"}},
	}

	for _, tt := range tests {
		t.Run(tt.cfg.LogLevel+"/"+tt.cfg.LogFormat, func(t *testing.T) {
			var buf bytes.Buffer
			l := tt.cfg.Logger(&buf)

			l.Debug("debug record")
			if got := strings.Contains(buf.String(), "debug record"); got != tt.wantDebug {
				t.Errorf("debug record written = %v, want %v", got, tt.wantDebug)
			}

			buf.Reset()
			l.Warn("warn record")
			if got := strings.HasPrefix(buf.String(), "{"); got != tt.wantJSON {
				t.Errorf("JSON output = %v, want %v: %s", got, tt.wantJSON, buf.String())
			}
			if !l.Enabled(context.Background(), slog.LevelWarn) {
				t.Errorf("warn level is disabled")
			}
		})
	}
}
