package platform

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "", want: slog.LevelInfo},
		{input: "info", want: slog.LevelInfo},
		{input: "debug", want: slog.LevelDebug},
		{input: "warn", want: slog.LevelWarn},
		{input: "warning", want: slog.LevelWarn},
		{input: "ERROR", want: slog.LevelError},
		{input: "bad", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLogLevel(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("expected error for %q", tt.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("expected %v, got %v for %q", tt.want, got, tt.input)
		}
	}
}

func TestParseLogFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    LogFormat
		wantErr bool
	}{
		{input: "", want: LogFormatText},
		{input: "text", want: LogFormatText},
		{input: "json", want: LogFormatJSON},
		{input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLogFormat(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("expected error for %q", tt.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("expected %v, got %v for %q", tt.want, got, tt.input)
		}
	}
}

func TestConfigureLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := ConfigureLogger(LogOptions{Level: "debug", Format: "json"}, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Debug("hello", "key", "value")
	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Fatalf("expected json log line, got %q", buf.String())
	}
}

func TestConfigureLoggerRejectsBadOptions(t *testing.T) {
	if _, err := ConfigureLogger(LogOptions{Level: "bad"}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected level error")
	}
	if _, err := ConfigureLogger(LogOptions{Format: "xml"}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected format error")
	}
}
