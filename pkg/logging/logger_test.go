package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dd0wney/cluso-navgraph/pkg/geom"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("Level.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"DEBUG", DebugLevel},
		{"debug", DebugLevel},
		{"info", InfoLevel},
		{"WARNING", WarnLevel},
		{"warn", WarnLevel},
		{"error", ErrorLevel},
		{"invalid", InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNavigationFields(t *testing.T) {
	if f := NodeID(7); f.Key != "node_id" || f.Value != 7 {
		t.Errorf("NodeID() = %+v", f)
	}
	if f := LinkID(3); f.Key != "link_id" || f.Value != 3 {
		t.Errorf("LinkID() = %+v", f)
	}
	if f := Hull("human"); f.Key != "hull" || f.Value != "human" {
		t.Errorf("Hull() = %+v", f)
	}
	if f := Point("point", geom.V(1, 2, 3)); f.Value != [3]float64{1, 2, 3} {
		t.Errorf("Point() = %+v", f)
	}
	if f := Duration("life", 5*time.Second); f.Value != "5s" {
		t.Errorf("Duration() = %+v", f)
	}
	if f := Error(errors.New("boom")); f.Key != "error" || f.Value != "boom" {
		t.Errorf("Error() = %+v", f)
	}
	if f := Error(nil); f.Value != nil {
		t.Errorf("Error(nil) = %+v", f)
	}
}

func TestJSONLogger_BasicLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, DebugLevel)

	logger.Warn("node capacity exhausted", NodeID(12), Count(4096))

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to unmarshal log entry: %v", err)
	}

	if entry.Level != "WARN" {
		t.Errorf("Level = %v, want WARN", entry.Level)
	}
	if entry.Message != "node capacity exhausted" {
		t.Errorf("Message = %v", entry.Message)
	}
	if entry.Fields["node_id"] != float64(12) {
		t.Errorf("Fields[node_id] = %v, want 12", entry.Fields["node_id"])
	}
	if entry.Time == "" {
		t.Error("Time field is empty")
	}
}

func TestJSONLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, WarnLevel)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 log entries, got %d", len(lines))
	}

	for i, want := range []string{"WARN", "ERROR"} {
		var entry LogEntry
		if err := json.Unmarshal([]byte(lines[i]), &entry); err != nil {
			t.Fatalf("Failed to unmarshal entry %d: %v", i, err)
		}
		if entry.Level != want {
			t.Errorf("entry %d level = %v, want %v", i, entry.Level, want)
		}
	}
}

func TestJSONLogger_WithSharesLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	child := logger.With(Component("navgraph"), Network("abc"))
	logger.SetLevel(ErrorLevel)

	child.Info("dropped")
	if buf.Len() != 0 {
		t.Fatal("child logger should follow parent level")
	}

	child.Error("kept", Operation("create_link"))

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if entry.Fields["component"] != "navgraph" || entry.Fields["network"] != "abc" {
		t.Errorf("preset fields missing: %v", entry.Fields)
	}
	if entry.Fields["operation"] != "create_link" {
		t.Errorf("operation field = %v", entry.Fields["operation"])
	}
}

func TestJSONLogger_NoFieldsOmitted(t *testing.T) {
	var buf bytes.Buffer
	NewJSONLogger(&buf, InfoLevel).Info("plain")

	if strings.Contains(buf.String(), "fields") {
		t.Errorf("expected fields to be omitted, got %s", buf.String())
	}
}

func TestTextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, InfoLevel, FormatText)

	logger.With(Hull("large")).Info("cache flushed", Count(32))

	line := buf.String()
	if !strings.Contains(line, " INFO cache flushed") {
		t.Errorf("unexpected line %q", line)
	}
	// keys are sorted
	if !strings.Contains(line, "count=32 hull=large") {
		t.Errorf("unexpected field order in %q", line)
	}
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Error("ignored")
	if l.With(Count(1)) == nil {
		t.Error("With returned nil")
	}
}

func TestDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	SetDefaultLogger(NewJSONLogger(&buf, DebugLevel))
	defer SetDefaultLogger(nil)

	DefaultLogger().Debug("hello")
	if buf.Len() == 0 {
		t.Error("expected default logger output")
	}
}

func TestTimedOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	op := StartTimer(logger, "rebuild zones", Operation("rebuild_zones"))
	elapsed := op.End(Count(3))
	if elapsed < 0 {
		t.Errorf("elapsed = %v", elapsed)
	}

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if _, ok := entry.Fields["latency"]; !ok {
		t.Error("latency field missing")
	}
	if entry.Fields["count"] != float64(3) {
		t.Errorf("count = %v", entry.Fields["count"])
	}
}
