package cmdutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	cases := []struct {
		level string
		quiet bool
		want  log.Level
	}{
		{"", false, log.InfoLevel},
		{"debug", false, log.DebugLevel},
		{"WARN", false, log.WarnLevel},
		{"debug", true, log.ErrorLevel},
	}
	for _, c := range cases {
		lg, err := NewLogger(&bytes.Buffer{}, c.level, c.quiet)
		if err != nil {
			t.Fatalf("%q: %v", c.level, err)
		}
		if lg.GetLevel() != c.want {
			t.Errorf("level %q quiet=%v: got %v want %v", c.level, c.quiet, lg.GetLevel(), c.want)
		}
	}
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	if _, err := NewLogger(&bytes.Buffer{}, "chatty", false); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewLoggerPrefix(t *testing.T) {
	var buf bytes.Buffer
	lg, _ := NewLogger(&buf, "info", false)
	lg.Info("hello", "k", "v")
	if !strings.Contains(buf.String(), "chromsplit") || !strings.Contains(buf.String(), "hello") {
		t.Fatalf("unexpected log line: %q", buf.String())
	}
}
