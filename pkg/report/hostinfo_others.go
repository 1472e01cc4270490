//go:build !windows

// pkg/report/hostinfo_others.go - host details without WMI.

package report

import (
	"os"
	"runtime"
)

func gatherHostInfo() HostInfo {
	info := HostInfo{OSCaption: runtime.GOOS}
	if hostname, err := os.Hostname(); err == nil {
		info.Hostname = hostname
	}
	return info
}
