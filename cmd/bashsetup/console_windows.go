//go:build windows

package main

import (
	"os"

	"golang.org/x/sys/windows"

	"github.com/wrye-bash/bashsetup/pkg/utils"
)

// initConsole re-parses the raw command line so paths with spaces survive,
// then enables ANSI colors in the console.
func initConsole() {
	utils.PatchWindowsArgs()

	for _, stream := range []*os.File{os.Stdout, os.Stderr} {
		handle := windows.Handle(stream.Fd())
		var mode uint32
		if err := windows.GetConsoleMode(handle, &mode); err == nil {
			mode |= windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
			_ = windows.SetConsoleMode(handle, mode)
		}
	}
}
