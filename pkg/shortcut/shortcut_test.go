package shortcut

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("lnk"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestEnsureFolderIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Start Menu", "Programs", "Wrye Bash")
	if err := EnsureFolder(dir); err != nil {
		t.Fatalf("EnsureFolder: %v", err)
	}
	if err := EnsureFolder(dir); err != nil {
		t.Fatalf("EnsureFolder rerun: %v", err)
	}
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		t.Fatalf("folder missing after EnsureFolder: %v", err)
	}
}

func TestRemoveLegacy(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Wrye Bash Debug Log.lnk"))
	touch(t, filepath.Join(dir, "Wrye Bash - Oblivion Debug Log.lnk"))
	touch(t, filepath.Join(dir, "Wrye Bash - Skyrim.lnk"))
	touch(t, filepath.Join(dir, "Uninstall.lnk"))

	if got := RemoveLegacy(dir); got != 2 {
		t.Errorf("RemoveLegacy removed %d files, want 2", got)
	}

	for _, gone := range []string{"Wrye Bash Debug Log.lnk", "Wrye Bash - Oblivion Debug Log.lnk"} {
		if _, err := os.Stat(filepath.Join(dir, gone)); !os.IsNotExist(err) {
			t.Errorf("legacy shortcut %s still present", gone)
		}
	}
	for _, kept := range []string{"Wrye Bash - Skyrim.lnk", "Uninstall.lnk"} {
		if _, err := os.Stat(filepath.Join(dir, kept)); err != nil {
			t.Errorf("non-legacy shortcut %s was removed", kept)
		}
	}
}

func TestRemoveLegacyEmptyFolder(t *testing.T) {
	if got := RemoveLegacy(t.TempDir()); got != 0 {
		t.Errorf("RemoveLegacy on empty folder removed %d", got)
	}
}
