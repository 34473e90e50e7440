package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestSetLevel(t *testing.T) {
	defer log.SetLevel(log.GetLevel())
	if l := SetLevel("debug"); l != log.DebugLevel {
		t.Fatalf("level = %v", l)
	}
	if l := SetLevel("chatty"); l != log.WarnLevel {
		t.Fatalf("unknown level should select warn, got %v", l)
	}
}

func TestNewWithWriter(t *testing.T) {
	defer log.SetLevel(log.GetLevel())
	SetLevel("info")
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "pyphen")
	logger.Info("compiled", "patterns", 14)
	logger.Debug("hidden")
	out := buf.String()
	if !strings.Contains(out, "pyphen") || !strings.Contains(out, "patterns=14") {
		t.Fatalf("unexpected log output %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug message should be filtered: %q", out)
	}
}
