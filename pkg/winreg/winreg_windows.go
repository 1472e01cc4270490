//go:build windows

// pkg/winreg/winreg_windows.go - HKLM writes for install registration.

package winreg

import (
	"fmt"

	"golang.org/x/sys/windows/registry"

	"github.com/wrye-bash/bashsetup/pkg/logging"
)

// Registry writes registration values under HKLM. All writes require an
// elevated process; failures are returned to the caller and are fatal to
// the run.
type Registry struct{}

// New returns the HKLM-backed registrar.
func New() *Registry {
	return &Registry{}
}

// WriteInstallerPath records where the setup executable ran from.
func (r *Registry) WriteInstallerPath(exePath string) error {
	key, _, err := registry.CreateKey(registry.LOCAL_MACHINE, AppKeyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("creating registry key %s: %w", AppKeyPath, err)
	}
	defer key.Close()

	if err := key.SetStringValue(InstallerPathValue, exePath); err != nil {
		return fmt.Errorf("writing %s: %w", InstallerPathValue, err)
	}
	logging.Debug("Wrote installer path", "key", AppKeyPath, "value", exePath)
	return nil
}

// WriteUninstallEntry writes the uninstall subtree Windows reads for the
// "Apps & features" listing.
func (r *Registry) WriteUninstallEntry(e UninstallEntry) error {
	key, _, err := registry.CreateKey(registry.LOCAL_MACHINE, UninstallKeyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("creating registry key %s: %w", UninstallKeyPath, err)
	}
	defer key.Close()

	strValues := map[string]string{
		"DisplayName":     e.DisplayName,
		"DisplayVersion":  e.DisplayVersion,
		"UninstallString": e.UninstallString,
		"URLInfoAbout":    e.URLInfoAbout,
		"HelpLink":        e.HelpLink,
		"Publisher":       e.Publisher,
	}
	for name, val := range strValues {
		if err := key.SetStringValue(name, val); err != nil {
			return fmt.Errorf("writing uninstall value %s: %w", name, err)
		}
	}
	for _, name := range []string{"NoModify", "NoRepair"} {
		if err := key.SetDWordValue(name, 1); err != nil {
			return fmt.Errorf("writing uninstall value %s: %w", name, err)
		}
	}

	logging.Debug("Wrote uninstall entry", "key", UninstallKeyPath, "display_name", e.DisplayName)
	return nil
}

// InstalledVersion reads the DisplayVersion a previous run registered.
func (r *Registry) InstalledVersion() (string, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, UninstallKeyPath, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("opening registry key %s: %w", UninstallKeyPath, err)
	}
	defer key.Close()

	val, _, err := key.GetStringValue("DisplayVersion")
	if err != nil {
		return "", fmt.Errorf("reading DisplayVersion: %w", err)
	}
	return val, nil
}
