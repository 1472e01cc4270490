//go:build windows

// pkg/config/policy_windows.go - registry policy fallback for the answer file.

package config

import (
	"fmt"
	"log"
	"strconv"

	"golang.org/x/sys/windows/registry"
)

// LoadConfigFromPolicy loads configuration from registry policy settings.
// This serves as a fallback when the answer file doesn't exist. Per-target
// state is staged as "<Name>Checked" and "<Name>Path" values under the
// policy key.
func LoadConfigFromPolicy() (*Configuration, error) {
	config := GetDefaultConfig()

	key, err := registry.OpenKey(registry.LOCAL_MACHINE, PolicyRegistryPath, registry.READ)
	if err != nil {
		return nil, fmt.Errorf("failed to open policy registry key %s: %w", PolicyRegistryPath, err)
	}
	defer key.Close()

	loadStringFromRegistry(key, "ResourceRoot", &config.ResourceRoot)
	loadStringFromRegistry(key, "CommonAppDir", &config.CommonAppDir)
	loadStringFromRegistry(key, "StartMenuDir", &config.StartMenuDir)
	loadStringFromRegistry(key, "LogLevel", &config.LogLevel)

	loadBoolFromRegistry(key, "Verbose", &config.Verbose)
	loadBoolFromRegistry(key, "CheckOnly", &config.CheckOnly)

	for i := range config.Targets {
		name := config.Targets[i].Name
		loadBoolFromRegistry(key, name+"Checked", &config.Targets[i].Checked)
		loadStringFromRegistry(key, name+"Path", &config.Targets[i].Path)
	}

	log.Printf("Loaded policy configuration from registry path: %s", PolicyRegistryPath)
	return config, nil
}

// loadStringFromRegistry loads a string value from registry if it exists.
func loadStringFromRegistry(key registry.Key, valueName string, target *string) {
	if val, _, err := key.GetStringValue(valueName); err == nil && val != "" {
		*target = val
		log.Printf("Policy: Loaded %s = %s", valueName, val)
	}
}

// loadBoolFromRegistry loads a boolean value from registry if it exists.
// Accepts various formats: "true"/"false", "1"/"0", DWORD 1/0
func loadBoolFromRegistry(key registry.Key, valueName string, target *bool) {
	if val, _, err := key.GetStringValue(valueName); err == nil {
		if parsed, parseErr := strconv.ParseBool(val); parseErr == nil {
			*target = parsed
			log.Printf("Policy: Loaded %s = %t", valueName, parsed)
			return
		}
	}

	if val, _, err := key.GetIntegerValue(valueName); err == nil {
		*target = val != 0
		log.Printf("Policy: Loaded %s = %t", valueName, val != 0)
	}
}
