// pkg/winreg/winreg.go - registry bookkeeping for install and uninstall metadata.

package winreg

import "github.com/wrye-bash/bashsetup/pkg/config"

// Registry key paths written during registration. The uninstall subtree is
// the standard location Windows "Apps & features" reads.
const (
	AppKeyPath       = `SOFTWARE\` + config.AppName
	UninstallKeyPath = `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall\` + config.AppName

	InstallerPathValue = "Installer Path"
)

// UninstallEntry holds the values written under the uninstall subtree.
// NoModify and NoRepair are always written as DWORD 1.
type UninstallEntry struct {
	DisplayName     string
	DisplayVersion  string
	UninstallString string
	URLInfoAbout    string
	HelpLink        string
	Publisher       string
}
