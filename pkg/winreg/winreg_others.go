//go:build !windows

// pkg/winreg/winreg_others.go - stub registrar for non-Windows builds.

package winreg

import "errors"

var errWindowsOnly = errors.New("registry registration is only available on Windows")

type Registry struct{}

func New() *Registry {
	return &Registry{}
}

func (r *Registry) WriteInstallerPath(exePath string) error {
	return errWindowsOnly
}

func (r *Registry) WriteUninstallEntry(e UninstallEntry) error {
	return errWindowsOnly
}

func (r *Registry) InstalledVersion() (string, error) {
	return "", errWindowsOnly
}
