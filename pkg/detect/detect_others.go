//go:build !windows

// pkg/detect/detect_others.go - detection stub for non-Windows builds.

package detect

import "github.com/wrye-bash/bashsetup/pkg/target"

// Detect has nothing to probe without the Windows registry.
func Detect(targets []target.Target) []Detection {
	return nil
}
