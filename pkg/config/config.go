// pkg/config/config.go - configuration settings for the Wrye Bash setup tools.

package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/wrye-bash/bashsetup/pkg/target"
)

// AppName is the product name used for registry keys, the Start Menu
// folder and shortcut titles.
const AppName = "Wrye Bash"

const ConfigPath = `C:\ProgramData\Wrye Bash\Setup.yaml`

// Policy registry path used when no answer file exists. The front-end (or
// an enterprise deployment) may stage the same settings there.
const PolicyRegistryPath = `SOFTWARE\Wrye Bash\Setup`

// Configuration holds the configurable options for a setup run in YAML form.
type Configuration struct {
	ResourceRoot string `yaml:"ResourceRoot"` // bundled payload tree copied into each game
	CommonAppDir string `yaml:"CommonAppDir"` // all-users data root, e.g. C:\ProgramData
	StartMenuDir string `yaml:"StartMenuDir"` // all-users Start Menu programs folder
	LogLevel     string `yaml:"LogLevel"`
	Verbose      bool   `yaml:"Verbose"`
	CheckOnly    bool   `yaml:"CheckOnly"`

	// Targets carries the user's checkbox state and chosen path per game.
	// Entries are matched to the built-in table by name; unknown names are
	// ignored with a warning.
	Targets []target.Target `yaml:"Targets"`
}

// AppDir returns the application's directory under the common data root,
// where the uninstaller and logs live.
func (c *Configuration) AppDir() string {
	return filepath.Join(c.CommonAppDir, AppName)
}

// LogDir returns the run-log directory under AppDir.
func (c *Configuration) LogDir() string {
	return filepath.Join(c.AppDir(), "logs")
}

// StartMenuFolder returns the application's Start Menu folder.
func (c *Configuration) StartMenuFolder() string {
	return filepath.Join(c.StartMenuDir, AppName)
}

// LoadConfig loads the configuration from the YAML answer file.
// If the file doesn't exist, it falls back to registry policy settings.
func LoadConfig() (*Configuration, error) {
	return LoadConfigFile(ConfigPath)
}

// LoadConfigFile is LoadConfig with an explicit answer-file path.
func LoadConfigFile(path string) (*Configuration, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Printf("Answer file does not exist: %s", path)
		log.Printf("Attempting to load configuration from registry policy settings...")

		config, polErr := LoadConfigFromPolicy()
		if polErr == nil {
			log.Printf("Successfully loaded configuration from registry policy settings")
			return config, nil
		}

		log.Printf("Failed to load from policy registry: %v", polErr)
		return nil, fmt.Errorf("answer file does not exist and policy fallback failed: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Failed to read answer file: %v", err)
		return nil, err
	}

	config := GetDefaultConfig()
	var onDisk Configuration
	if err := yaml.Unmarshal(data, &onDisk); err != nil {
		log.Printf("Failed to parse answer file: %v", err)
		return nil, err
	}
	applyOverrides(config, &onDisk)

	return config, nil
}

// SaveConfig saves the current configuration to the YAML answer file.
func SaveConfig(config *Configuration) error {
	return SaveConfigFile(config, ConfigPath)
}

// SaveConfigFile is SaveConfig with an explicit answer-file path.
func SaveConfigFile(config *Configuration, path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		log.Printf("Failed to serialize configuration: %v", err)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.Printf("Failed to create configuration directory: %v", err)
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Printf("Failed to write answer file: %v", err)
		return err
	}

	return nil
}

// GetDefaultConfig provides default configuration values.
func GetDefaultConfig() *Configuration {
	programData := os.Getenv("ProgramData")
	if programData == "" {
		programData = `C:\ProgramData`
	}

	// The payload ships next to the setup executable.
	resourceRoot := "payload"
	if exe, err := os.Executable(); err == nil {
		resourceRoot = filepath.Join(filepath.Dir(exe), "payload")
	}

	return &Configuration{
		ResourceRoot: resourceRoot,
		CommonAppDir: programData,
		StartMenuDir: filepath.Join(programData, `Microsoft\Windows\Start Menu\Programs`),
		LogLevel:     "INFO",
		Verbose:      false,
		CheckOnly:    false,
		Targets:      target.Defaults(),
	}
}

// applyOverrides copies non-zero scalar settings and per-target state from
// src over dst. Target entries are matched by name so a sparse answer file
// (only the games the user touched) stays valid.
func applyOverrides(dst, src *Configuration) {
	if src.ResourceRoot != "" {
		dst.ResourceRoot = src.ResourceRoot
	}
	if src.CommonAppDir != "" {
		dst.CommonAppDir = src.CommonAppDir
	}
	if src.StartMenuDir != "" {
		dst.StartMenuDir = src.StartMenuDir
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.Verbose {
		dst.Verbose = true
	}
	if src.CheckOnly {
		dst.CheckOnly = true
	}

	for _, t := range src.Targets {
		i := target.ByName(dst.Targets, t.Name)
		if i == -1 {
			log.Printf("Ignoring unknown target in answer file: %q", t.Name)
			continue
		}
		dst.Targets[i].Checked = t.Checked
		dst.Targets[i].Path = t.Path
		if t.Label != "" {
			// The Extra slots may be relabeled by the user.
			dst.Targets[i].Label = t.Label
		}
	}
}
