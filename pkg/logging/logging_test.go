package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"ERROR", LevelError},
		{"warn", LevelWarn},
		{"Warning", LevelWarn},
		{"INFO", LevelInfo},
		{"debug", LevelDebug},
		{"", LevelInfo},
		{"bogus", LevelInfo},
	}
	for _, tc := range tests {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLevelStrings(t *testing.T) {
	if LevelError.String() != "ERROR" || LevelDebug.String() != "DEBUG" {
		t.Error("unexpected level string rendering")
	}
	if LogLevel(42).String() != "UNKNOWN" {
		t.Error("out-of-range level should render UNKNOWN")
	}
}

func TestFormatKeyValues(t *testing.T) {
	tests := []struct {
		name string
		kv   []interface{}
		want string
	}{
		{"none", nil, ""},
		{"pair", []interface{}{"path", `C:\Games`}, ` path=C:\Games`},
		{"two pairs", []interface{}{"target", "Skyrim", "n", 3}, " target=Skyrim n=3"},
		{"odd trailing key", []interface{}{"orphan"}, " orphan="},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatKeyValues(tc.kv...); got != tc.want {
				t.Errorf("formatKeyValues(%v) = %q, want %q", tc.kv, got, tc.want)
			}
		})
	}
}

func TestLoggerWritesAndFilters(t *testing.T) {
	dir := t.TempDir()
	l, err := newLogger(Options{Dir: dir, Level: LevelInfo})
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}

	l.logMessage(LevelInfo, "copy complete", "target", "Skyrim")
	l.logMessage(LevelDebug, "suppressed detail")
	if l.logFile != nil {
		l.logFile.Close()
	}

	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected exactly one log file, got %d (err %v)", len(entries), err)
	}
	if !strings.HasPrefix(entries[0].Name(), "setup-") {
		t.Errorf("log file name %q missing setup- prefix", entries[0].Name())
	}

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "copy complete") || !strings.Contains(out, "target=Skyrim") {
		t.Errorf("log output missing info line: %q", out)
	}
	if strings.Contains(out, "suppressed detail") {
		t.Errorf("debug line should be filtered at INFO level: %q", out)
	}
}

func TestLoggerWithoutDirIsSilent(t *testing.T) {
	l, err := newLogger(Options{Level: LevelDebug})
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	// Must not panic with no file sink attached.
	l.logMessage(LevelError, "registry write failed", "key", `SOFTWARE\Wrye Bash`)
}
