//go:build windows

// pkg/report/hostinfo_windows.go - host details over WMI.

package report

import (
	"os"

	"github.com/yusufpapurcu/wmi"

	"github.com/wrye-bash/bashsetup/pkg/logging"
)

// Win32_OperatingSystem mirrors the WMI class fields we read; the type
// name doubles as the WMI class name in the generated query.
type Win32_OperatingSystem struct {
	Caption     string
	Version     string
	BuildNumber string
}

func gatherHostInfo() HostInfo {
	info := HostInfo{}
	if hostname, err := os.Hostname(); err == nil {
		info.Hostname = hostname
	}

	var oses []Win32_OperatingSystem
	q := wmi.CreateQuery(&oses, "")
	if err := wmi.Query(q, &oses); err != nil {
		logging.Debug("WMI OS query failed", "error", err)
		return info
	}
	if len(oses) > 0 {
		info.OSCaption = oses[0].Caption
		info.OSVersion = oses[0].Version
		info.OSBuild = oses[0].BuildNumber
	}
	return info
}
