package payload

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTree lays down files relative to root; keys use forward slashes.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestCopyTreeCreatesNestedTree(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "game")
	writeTree(t, src, map[string]string{
		"Mopy/Wrye Bash.exe":            "launcher",
		"Mopy/bash/l10n/de.po":          "strings",
		"Mopy/Docs/Wrye Bash Intro.txt": "docs",
	})

	if err := CopyTree(src, dst); err != nil {
		t.Fatalf("CopyTree: %v", err)
	}

	if got := readFile(t, filepath.Join(dst, "Mopy", "Wrye Bash.exe")); got != "launcher" {
		t.Errorf("launcher content = %q", got)
	}
	if got := readFile(t, filepath.Join(dst, "Mopy", "bash", "l10n", "de.po")); got != "strings" {
		t.Errorf("nested file content = %q", got)
	}
}

func TestCopyTreeMergeOverwrites(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeTree(t, src, map[string]string{"Mopy/bash.ini": "new"})
	writeTree(t, dst, map[string]string{
		"Mopy/bash.ini": "old",
		"Data/keep.esp": "untouched",
	})

	if err := CopyTree(src, dst); err != nil {
		t.Fatalf("CopyTree: %v", err)
	}

	if got := readFile(t, filepath.Join(dst, "Mopy", "bash.ini")); got != "new" {
		t.Errorf("existing file not overwritten, content = %q", got)
	}
	if got := readFile(t, filepath.Join(dst, "Data", "keep.esp")); got != "untouched" {
		t.Errorf("unrelated destination file was disturbed, content = %q", got)
	}
}

func TestCopyTreeIdempotent(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeTree(t, src, map[string]string{
		"Mopy/Wrye Bash.exe": "launcher",
		"Mopy/bash.ini":      "settings",
	})

	if err := CopyTree(src, dst); err != nil {
		t.Fatalf("first CopyTree: %v", err)
	}
	if err := CopyTree(src, dst); err != nil {
		t.Fatalf("second CopyTree: %v", err)
	}

	if got := readFile(t, filepath.Join(dst, "Mopy", "bash.ini")); got != "settings" {
		t.Errorf("content diverged after rerun: %q", got)
	}
}

func TestCopyTreeMissingSource(t *testing.T) {
	err := CopyTree(filepath.Join(t.TempDir(), "absent"), t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing payload source")
	}
}

func TestCopyTreeSourceIsFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "notadir")
	if err := os.WriteFile(src, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := CopyTree(src, t.TempDir()); err == nil {
		t.Fatal("expected error when payload source is a plain file")
	}
}

func TestCopyTreeErrorNamesPath(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src, map[string]string{"Mopy/bash.ini": "x"})

	// Destination "Mopy" already exists as a file, so the directory
	// create fails and the error must name the colliding path.
	dst := t.TempDir()
	if err := os.WriteFile(filepath.Join(dst, "Mopy"), []byte("collision"), 0644); err != nil {
		t.Fatal(err)
	}

	err := CopyTree(src, dst)
	if err == nil {
		t.Fatal("expected error for directory/file collision")
	}
}
