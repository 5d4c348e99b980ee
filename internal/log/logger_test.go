package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLoggerLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected logrus.Level
	}{
		{"DEBUG", logrus.DebugLevel},
		{"warn", logrus.WarnLevel},
		{"", logrus.InfoLevel},
		{"loud", logrus.InfoLevel},
	}
	for _, tt := range tests {
		if got := NewLogger(tt.level, "TEXT", false).Level; got != tt.expected {
			t.Errorf("level %q: expected %v, got %v", tt.level, tt.expected, got)
		}
	}
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "INFO", "json", true)
	log.WithField("rows", 3).Info("loaded")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q", buf.String())
	}
	if entry["msg"] != "loaded" || entry["rows"] != float64(3) {
		t.Errorf("unexpected entry: %v", entry)
	}
	if _, ok := entry["time"]; ok {
		t.Error("expected timestamp to be disabled")
	}
}

func TestNewLoggerText(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "WARN", "TEXT", true)
	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("expected info entry to be filtered")
	}
	if !strings.Contains(out, "msg=shown") {
		t.Errorf("expected warn entry, got %q", out)
	}
}
