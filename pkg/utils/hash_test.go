package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSHA256(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("abc"), 0644); err != nil {
		t.Fatal(err)
	}

	// Known digest of "abc".
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	got, err := FileSHA256(path)
	if err != nil {
		t.Fatalf("FileSHA256: %v", err)
	}
	if got != want {
		t.Errorf("FileSHA256 = %s, want %s", got, want)
	}

	if !Verify(path, want) {
		t.Error("Verify rejected a matching hash")
	}
	if !Verify(path, "BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD") {
		t.Error("Verify should be case-insensitive")
	}
	if Verify(path, "deadbeef") {
		t.Error("Verify accepted a mismatched hash")
	}
}

func TestFileSHA256Missing(t *testing.T) {
	if _, err := FileSHA256(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("expected error for missing file")
	}
	if Verify(filepath.Join(t.TempDir(), "absent"), "00") {
		t.Error("Verify must fail for missing file")
	}
}
