/*
Copyright © 2025 The jarcraft authors
*/
package logger

import (
	"bytes"
	"encoding/json"
	"log"
	"strings"
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{Level(999), "UNKNOWN"}, // Invalid level
	}

	for _, test := range tests {
		if result := test.level.String(); result != test.expected {
			t.Errorf("Level.String() = %v, expected %v", result, test.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", DebugLevel},
		{"INFO", InfoLevel},
		{"warn", WarnLevel},
		{"error", ErrorLevel},
		{"nonsense", InfoLevel},
		{"", InfoLevel},
	}

	for _, test := range tests {
		if result := ParseLevel(test.input); result != test.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", test.input, result, test.expected)
		}
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{
		config: Config{Level: WarnLevel},
		logger: log.New(&buf, "", 0),
	}

	l.Log(InfoLevel, "suppressed")
	l.Log(WarnLevel, "visible")

	output := buf.String()
	if strings.Contains(output, "suppressed") {
		t.Error("message below the configured level must not be written")
	}
	if !strings.Contains(output, "visible") {
		t.Errorf("expected warning in output, got %q", output)
	}
}

func TestLoggerPrettyFormatting(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{
		config: Config{Level: DebugLevel},
		logger: log.New(&buf, "", 0),
	}

	l.Log(InfoLevel, "validated options", String("output", "app"), Int("errors", 0))

	output := buf.String()
	if !strings.Contains(output, "[INFO]") {
		t.Errorf("expected level marker, got %q", output)
	}
	if !strings.Contains(output, "validated options") {
		t.Errorf("expected message, got %q", output)
	}
	if !strings.Contains(output, "output=app") {
		t.Errorf("expected fields, got %q", output)
	}
}

func TestLoggerJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{
		config: Config{Level: DebugLevel, JSON: true},
		logger: log.New(&buf, "", 0),
	}

	l.Log(ErrorLevel, "bad input", Bool("fatal", false))

	var entry LogEntry
	if err := json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry.Level != "ERROR" || entry.Message != "bad input" {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if v, ok := entry.Fields["fatal"]; !ok || v != false {
		t.Errorf("expected fatal field, got %v", entry.Fields)
	}
}

func TestLoggerInitialization(t *testing.T) {
	Initialize(Config{Level: InfoLevel})
	if defaultLogger == nil {
		t.Fatal("Initialize() did not set defaultLogger")
	}

	var buf bytes.Buffer
	SetOutput(&buf)
	Info("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("default logger did not write, got %q", buf.String())
	}
}
