// pkg/shortcut/shortcut.go - Start Menu folder management and cleanup.

package shortcut

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wrye-bash/bashsetup/pkg/logging"
)

// legacyPattern matches shortcut files left behind by the old debug-log
// launcher entries. The feature is gone; the cleanup stays so upgrades
// from old installs don't keep dead shortcuts around.
const legacyPattern = "*Debug Log*.lnk"

// EnsureFolder creates the Start Menu folder if absent. Existing folders
// are left alone.
func EnsureFolder(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating Start Menu folder %s: %w", dir, err)
	}
	return nil
}

// RemoveLegacy deletes legacy debug-log shortcut files from the Start
// Menu folder and returns how many were removed. Removal failures are
// logged and skipped; a stale shortcut is not worth failing the run over.
func RemoveLegacy(dir string) int {
	matches, err := filepath.Glob(filepath.Join(dir, legacyPattern))
	if err != nil {
		// Only reachable with a malformed pattern; the constant above is not one.
		logging.Warn("Legacy shortcut scan failed", "dir", dir, "error", err)
		return 0
	}

	removed := 0
	for _, path := range matches {
		if err := os.Remove(path); err != nil {
			logging.Warn("Failed to remove legacy shortcut", "file", path, "error", err)
			continue
		}
		logging.Info("Removed legacy shortcut", "file", path)
		removed++
	}
	return removed
}
