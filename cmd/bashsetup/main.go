// cmd/bashsetup/main.go

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/wrye-bash/bashsetup/pkg/blocking"
	"github.com/wrye-bash/bashsetup/pkg/config"
	"github.com/wrye-bash/bashsetup/pkg/installer"
	"github.com/wrye-bash/bashsetup/pkg/logging"
	"github.com/wrye-bash/bashsetup/pkg/report"
	"github.com/wrye-bash/bashsetup/pkg/shortcut"
	"github.com/wrye-bash/bashsetup/pkg/version"
	"github.com/wrye-bash/bashsetup/pkg/winreg"
)

func main() {
	initConsole()

	// Define command-line flags.
	configPath := pflag.String("config", config.ConfigPath, "Path to the YAML answer file.")
	showConfig := pflag.Bool("show-config", false, "Display the effective configuration and exit.")
	checkOnly := pflag.Bool("checkonly", false, "Log what would be installed without writing anything.")
	versionFlag := pflag.Bool("version", false, "Print the version and exit.")

	// Count the number of -v flags.
	var verbosity int
	pflag.CountVarP(&verbosity, "verbose", "v", "Increase verbosity (e.g. -v, -vv, -vvv)")
	pflag.Parse()

	if *versionFlag {
		version.Print()
		os.Exit(0)
	}

	cfg, err := config.LoadConfigFile(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *checkOnly {
		cfg.CheckOnly = true
	}

	// Dynamically override LogLevel based on the number of -v flags.
	switch verbosity {
	case 0:
		// Keep the configured level.
	case 1:
		cfg.LogLevel = "INFO"
	default:
		cfg.LogLevel = "DEBUG"
	}

	if err := logging.Init(logging.Options{
		Dir:           cfg.LogDir(),
		Level:         logging.ParseLevel(cfg.LogLevel),
		EnableConsole: true,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.CloseLogger()

	if *showConfig {
		if cfgYaml, err := yaml.Marshal(cfg); err == nil {
			fmt.Printf("Current configuration:\n%s", string(cfgYaml))
		}
		os.Exit(0)
	}

	// A launcher running out of a selected game directory would be
	// overwritten mid-flight; refuse up front.
	if running := blocking.RunningLaunchers(cfg.Targets, config.AppName); len(running) > 0 {
		logging.Error("Close the running applications and rerun setup",
			"running", strings.Join(running, ", "))
		os.Exit(1)
	}

	rep := report.New(version.Version().Version)
	driver := installer.New(cfg, winreg.New(), shortcut.NewWriter(), rep)

	runErr := driver.InstallAll()
	if runErr != nil {
		logging.Error("Install failed", "error", runErr)
	} else if err := driver.CreateShortcuts(); err != nil {
		// Folder creation is the only fatal part of the shortcut pass.
		logging.Error("Shortcut pass failed", "error", err)
		runErr = err
	}

	rep.Finalize(runErr == nil)
	if !cfg.CheckOnly {
		if err := rep.Write(cfg.LogDir()); err != nil {
			logging.Warn("Failed to write run report", "error", err)
		}
	}

	if runErr != nil {
		os.Exit(1)
	}
	logging.Info("Setup completed", "app", config.AppName)
}
