//go:build windows

// pkg/detect/detect_windows.go - registry probe for vendor install paths.

package detect

import (
	"os"
	"strings"

	"golang.org/x/sys/windows/registry"

	"github.com/wrye-bash/bashsetup/pkg/logging"
	"github.com/wrye-bash/bashsetup/pkg/target"
)

// Detect probes each target's vendor registry location and returns the
// installations whose recorded path exists on disk. Targets without a
// registry presence (the Extra slots) are skipped. Most users own only a
// few of the supported games, so probe failures are expected and logged
// at debug level only.
func Detect(targets []target.Target) []Detection {
	var found []Detection
	for _, t := range targets {
		if t.RegistrySubkey == "" {
			continue
		}

		path, err := readInstallPath(t.RegistrySubkey, t.RegistryValue)
		if err != nil {
			logging.Debug("No registry entry for game", "target", t.Name, "error", err)
			continue
		}
		if st, err := os.Stat(path); err != nil || !st.IsDir() {
			logging.Debug("Registry path does not exist on disk", "target", t.Name, "path", path)
			continue
		}

		logging.Info("Detected game installation", "target", t.Name, "path", path)
		found = append(found, Detection{Name: t.Name, Label: t.Label, Path: path})
	}
	return found
}

func readInstallPath(subkey, valueName string) (string, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, subkey, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer key.Close()

	val, _, err := key.GetStringValue(valueName)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(val), nil
}
