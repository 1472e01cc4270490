// pkg/blocking/blocking.go - refuses to overwrite a launcher that is currently running.

package blocking

import (
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/wrye-bash/bashsetup/pkg/logging"
	"github.com/wrye-bash/bashsetup/pkg/target"
)

// LauncherSubdir is where the launcher executable lives inside each game
// directory.
const LauncherSubdir = "Mopy"

// processInfo is the slice of process state the matcher needs. Scanning
// fills it from gopsutil; tests construct it directly.
type processInfo struct {
	name string
	exe  string
}

// IsAppRunning checks if a specific application is currently running.
// Queries that look like absolute paths are matched against the process
// executable path; bare names are matched against the process name, with
// or without the .exe suffix.
func IsAppRunning(appName string) bool {
	logging.Debug("Checking if application is running", "app", appName)

	processes, err := process.Processes()
	if err != nil {
		logging.Error("Failed to get process list", "error", err)
		return false
	}

	for _, proc := range processes {
		name, err := proc.Name()
		if err != nil {
			continue
		}
		// Exe lookups fail for privileged processes; the name is still
		// usable for bare-name queries.
		exe, _ := proc.Exe()

		if matches(processInfo{name: name, exe: exe}, appName) {
			logging.Debug("Found running app", "app", appName, "process", name)
			return true
		}
	}

	logging.Debug("Application not found running", "app", appName)
	return false
}

// looksLikePath reports whether the query names a filesystem location
// rather than a bare process name.
func looksLikePath(q string) bool {
	return strings.HasPrefix(q, "/") || strings.Contains(q, `\`) || filepath.IsAbs(q)
}

// matches implements the query semantics described on IsAppRunning.
func matches(p processInfo, query string) bool {
	clean := strings.ToLower(query)
	procName := strings.ToLower(p.name)

	if looksLikePath(query) {
		return p.exe != "" && strings.EqualFold(p.exe, query)
	}
	if strings.HasSuffix(clean, ".exe") {
		return procName == clean
	}
	return procName == clean || procName == clean+".exe"
}

// RunningLaunchers returns the labels of selected targets whose installed
// launcher is currently running. Copying the payload over a live install
// corrupts it, so the driver aborts when this is non-empty.
func RunningLaunchers(targets []target.Target, appName string) []string {
	selected := target.Selected(targets)
	if len(selected) == 0 {
		return nil
	}

	var running []string
	for _, t := range selected {
		launcher := filepath.Join(t.Path, LauncherSubdir, appName+".exe")
		if IsAppRunning(launcher) {
			logging.Warn("Launcher is running", "target", t.Label, "launcher", launcher)
			running = append(running, t.Label)
		}
	}
	return running
}
