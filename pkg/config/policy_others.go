//go:build !windows

// pkg/config/policy_others.go - policy fallback stub for non-Windows builds.

package config

import "errors"

// LoadConfigFromPolicy is Windows-only; registry policy has no equivalent
// elsewhere, so the answer file is the only configuration source.
func LoadConfigFromPolicy() (*Configuration, error) {
	return nil, errors.New("registry policy settings are only available on Windows")
}
