package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetLevel(t *testing.T) {
	old := GetLevel()
	defer SetLevel(old)

	SetLevel(DEBUG)
	if GetLevel() != DEBUG {
		t.Errorf("GetLevel() = %v, want DEBUG", GetLevel())
	}
}

func TestFileLogging_WritesJSONLines(t *testing.T) {
	old := GetLevel()
	defer SetLevel(old)
	SetLevel(INFO)

	path := filepath.Join(t.TempDir(), "run.log")
	if err := EnableFileLogging(path); err != nil {
		t.Fatalf("EnableFileLogging: %v", err)
	}
	defer DisableFileLogging()

	InfoCF("test", "hello from the sink", map[string]any{"k": "v"})
	DisableFileLogging()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, `"message":"hello from the sink"`) {
		t.Errorf("log file missing message, got %q", line)
	}
	if !strings.Contains(line, `"component":"test"`) {
		t.Errorf("log file missing component, got %q", line)
	}
}

func TestFileLogging_BadPath(t *testing.T) {
	if err := EnableFileLogging(filepath.Join(t.TempDir(), "no", "such", "dir", "x.log")); err == nil {
		DisableFileLogging()
		t.Error("expected error for unwritable log path")
	}
}

func TestLevelFiltering(t *testing.T) {
	old := GetLevel()
	defer SetLevel(old)
	SetLevel(ERROR)

	path := filepath.Join(t.TempDir(), "run.log")
	if err := EnableFileLogging(path); err != nil {
		t.Fatalf("EnableFileLogging: %v", err)
	}
	defer DisableFileLogging()

	Info("should be filtered")
	Warn("should be filtered")
	ErrorC("test", "should land")
	DisableFileLogging()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if strings.Contains(string(data), "filtered") {
		t.Errorf("below-level entries leaked into the file: %q", data)
	}
	if !strings.Contains(string(data), "should land") {
		t.Errorf("ERROR entry missing from the file: %q", data)
	}
}
