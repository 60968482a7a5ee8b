package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDataDirUsesXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)
	if got := DataDir("lapwatch"); got != filepath.Join(base, "lapwatch") {
		t.Fatalf("unexpected data dir: %s", got)
	}
}

func TestDataDirFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", home)
	want := filepath.Join(home, ".local", "share", "lapwatch")
	if got := DataDir("lapwatch"); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestReportsDirUsesDocuments(t *testing.T) {
	docs := t.TempDir()
	t.Setenv("XDG_DOCUMENTS_DIR", docs)
	if got := ReportsDir("lapwatch"); got != filepath.Join(docs, "LAPWATCH") {
		t.Fatalf("unexpected reports dir: %s", got)
	}
}

func TestParseUserDir(t *testing.T) {
	data := "# comment\nXDG_DESKTOP_DIR=\"$HOME/Desktop\"\nXDG_DOCUMENTS_DIR=\"$HOME/Docs\"\n"
	if got := parseUserDir(data, "XDG_DOCUMENTS_DIR"); got != "$HOME/Docs" {
		t.Fatalf("unexpected parse result: %q", got)
	}
	if got := parseUserDir(data, "XDG_MUSIC_DIR"); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}

func TestEnsureDataDirCreatesDirectory(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)
	dir, err := EnsureDataDir("lapwatch")
	if err != nil {
		t.Fatalf("EnsureDataDir failed: %v", err)
	}
	if dir != filepath.Join(base, "lapwatch") {
		t.Fatalf("unexpected dir: %s", dir)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("expected directory to exist: %v", err)
	}
}
