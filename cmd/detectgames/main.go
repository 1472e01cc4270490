// cmd/detectgames/main.go - prints detected game install paths for the front-end.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/wrye-bash/bashsetup/pkg/detect"
	"github.com/wrye-bash/bashsetup/pkg/logging"
	"github.com/wrye-bash/bashsetup/pkg/target"
	"github.com/wrye-bash/bashsetup/pkg/version"
)

func main() {
	versionFlag := pflag.Bool("version", false, "Print the version and exit.")
	var verbosity int
	pflag.CountVarP(&verbosity, "verbose", "v", "Increase verbosity")
	pflag.Parse()

	if *versionFlag {
		version.Print()
		os.Exit(0)
	}

	level := logging.LevelError
	if verbosity > 0 {
		level = logging.LevelDebug
	}
	if err := logging.Init(logging.Options{Level: level, EnableConsole: verbosity > 0}); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.CloseLogger()

	found := detect.Detect(target.Defaults())
	out, err := yaml.Marshal(found)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to serialize detections: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
