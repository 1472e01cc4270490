// pkg/installer/installer.go - the install driver: payload copy, registration, shortcuts.

package installer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	goversion "github.com/hashicorp/go-version"

	"github.com/wrye-bash/bashsetup/pkg/config"
	"github.com/wrye-bash/bashsetup/pkg/logging"
	"github.com/wrye-bash/bashsetup/pkg/payload"
	"github.com/wrye-bash/bashsetup/pkg/report"
	"github.com/wrye-bash/bashsetup/pkg/shortcut"
	"github.com/wrye-bash/bashsetup/pkg/target"
	"github.com/wrye-bash/bashsetup/pkg/version"
	"github.com/wrye-bash/bashsetup/pkg/winreg"
)

// Published metadata written into the uninstall registry entry.
const (
	Publisher    = "Wrye Bash development team"
	URLInfoAbout = "https://www.nexusmods.com/oblivion/mods/22368"
	HelpLink     = "https://www.afkmods.com/index.php?/topic/4966-wrye-bash-all-games/"

	// LauncherSubdir is where the launcher lands inside each game
	// directory; shortcuts point at <path>\Mopy\Wrye Bash.exe.
	LauncherSubdir = "Mopy"

	UninstallerName = "uninstall.exe"
)

// Registrar is the registry side of registration. The Windows
// implementation lives in pkg/winreg; tests substitute fakes.
type Registrar interface {
	WriteInstallerPath(exePath string) error
	WriteUninstallEntry(e winreg.UninstallEntry) error
	InstalledVersion() (string, error)
}

// ShortcutWriter creates one shell shortcut. The Windows implementation
// lives in pkg/shortcut.
type ShortcutWriter interface {
	Create(linkPath, targetPath, workDir, description string) error
}

// Driver runs the two install passes: file copy plus registration, then
// Start Menu shortcuts. It is single-use; construct one per run.
type Driver struct {
	cfg *config.Configuration
	reg Registrar
	lnk ShortcutWriter
	rep *report.RunReport

	// selfExe is swappable so tests can control the uninstaller source.
	selfExe func() (string, error)
}

// New constructs a driver. rep may be nil when no run report is wanted.
func New(cfg *config.Configuration, reg Registrar, lnk ShortcutWriter, rep *report.RunReport) *Driver {
	return &Driver{
		cfg:     cfg,
		reg:     reg,
		lnk:     lnk,
		rep:     rep,
		selfExe: os.Executable,
	}
}

// UninstallerPath returns where the uninstaller artifact is written.
func (d *Driver) UninstallerPath() string {
	return filepath.Join(d.cfg.AppDir(), UninstallerName)
}

// launcherPath returns the launcher executable inside a game directory.
func launcherPath(gameDir string) string {
	return filepath.Join(gameDir, LauncherSubdir, config.AppName+".exe")
}

// InstallAll copies the payload into every selected target in enumeration
// order, then registers the install. Registration happens regardless of
// how many targets were selected; a zero-selection run still registers
// and still produces the uninstaller. Copy and registration failures are
// fatal and abort the run.
func (d *Driver) InstallAll() error {
	d.logUpgradeState()

	for _, t := range d.cfg.Targets {
		if !t.Selected() {
			logging.Debug("Skipping target", "target", t.Name, "checked", t.Checked)
			d.rep.AddTarget(report.TargetResult{Name: t.Name, Label: t.Label, Status: report.StatusSkipped})
			continue
		}

		if d.cfg.CheckOnly {
			logging.Info("CheckOnly: would copy payload", "target", t.Label, "path", t.Path)
			d.rep.AddTarget(report.TargetResult{Name: t.Name, Label: t.Label, Path: t.Path, Status: report.StatusPlanned})
			continue
		}

		logging.Info("Copying payload", "target", t.Label, "path", t.Path)
		start := time.Now()
		if err := payload.CopyTree(d.cfg.ResourceRoot, t.Path); err != nil {
			wrapped := fmt.Errorf("installing %s into %s: %w", t.Label, t.Path, err)
			logging.Error("Payload copy failed", "target", t.Label, "path", t.Path, "error", err)
			d.rep.AddTarget(report.TargetResult{
				Name: t.Name, Label: t.Label, Path: t.Path,
				Status: report.StatusFailed, Error: wrapped.Error(),
				Duration: time.Since(start),
			})
			return wrapped
		}
		d.rep.AddTarget(report.TargetResult{
			Name: t.Name, Label: t.Label, Path: t.Path,
			Status: report.StatusInstalled, Duration: time.Since(start),
		})
	}

	if d.cfg.CheckOnly {
		logging.Info("CheckOnly: would register install and write uninstaller")
		return nil
	}

	if err := d.register(); err != nil {
		return err
	}
	return d.writeUninstaller()
}

// register writes the installer path and the uninstall entry.
func (d *Driver) register() error {
	exe, err := d.selfExe()
	if err != nil {
		return fmt.Errorf("locating setup executable: %w", err)
	}

	if err := d.reg.WriteInstallerPath(exe); err != nil {
		return fmt.Errorf("registering installer path: %w", err)
	}

	entry := winreg.UninstallEntry{
		DisplayName:     config.AppName,
		DisplayVersion:  version.Version().Version,
		UninstallString: d.UninstallerPath(),
		URLInfoAbout:    URLInfoAbout,
		HelpLink:        HelpLink,
		Publisher:       Publisher,
	}
	if err := d.reg.WriteUninstallEntry(entry); err != nil {
		return fmt.Errorf("registering uninstall entry: %w", err)
	}

	logging.Info("Registered install", "display_name", entry.DisplayName, "version", entry.DisplayVersion)
	return nil
}

// writeUninstaller creates the common app directory and drops a copy of
// the running setup executable into it as the uninstaller artifact.
func (d *Driver) writeUninstaller() error {
	appDir := d.cfg.AppDir()
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("creating application directory %s: %w", appDir, err)
	}

	src, err := d.selfExe()
	if err != nil {
		return fmt.Errorf("locating setup executable: %w", err)
	}

	dst := d.UninstallerPath()
	if err := copyExecutable(src, dst); err != nil {
		return fmt.Errorf("writing uninstaller %s: %w", dst, err)
	}
	logging.Info("Wrote uninstaller", "path", dst)
	return nil
}

func copyExecutable(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0755)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// CreateShortcuts runs the second pass: the Start Menu folder, the
// uninstall shortcut, legacy cleanup, and one shortcut per selected
// target. Individual shortcut failures are logged and skipped, since a
// missing shortcut never breaks the installed application. A missing
// Start Menu folder means nothing below can work, so that error is
// returned.
func (d *Driver) CreateShortcuts() error {
	if d.cfg.CheckOnly {
		logging.Info("CheckOnly: would create Start Menu shortcuts")
		return nil
	}

	folder := d.cfg.StartMenuFolder()
	if err := shortcut.EnsureFolder(folder); err != nil {
		return err
	}

	uninstallLnk := filepath.Join(folder, "Uninstall.lnk")
	if err := d.lnk.Create(uninstallLnk, d.UninstallerPath(), d.cfg.AppDir(), "Uninstall "+config.AppName); err != nil {
		logging.Warn("Failed to create uninstall shortcut", "link", uninstallLnk, "error", err)
	}

	shortcut.RemoveLegacy(folder)

	for _, t := range target.Selected(d.cfg.Targets) {
		linkPath := filepath.Join(folder, fmt.Sprintf("%s - %s.lnk", config.AppName, t.Label))
		exe := launcherPath(t.Path)
		workDir := filepath.Join(t.Path, LauncherSubdir)

		if err := d.lnk.Create(linkPath, exe, workDir, config.AppName+" for "+t.Label); err != nil {
			logging.Warn("Failed to create shortcut", "target", t.Label, "link", linkPath, "error", err)
			continue
		}
		logging.Info("Created shortcut", "target", t.Label, "link", linkPath)
	}
	return nil
}

// logUpgradeState compares any previously registered version with the
// current one. Purely informational; comparison problems never abort.
func (d *Driver) logUpgradeState() {
	prev, err := d.reg.InstalledVersion()
	if err != nil {
		logging.Debug("No previous install registered", "error", err)
		return
	}

	prevV, errPrev := goversion.NewVersion(version.Normalize(prev))
	curV, errCur := goversion.NewVersion(version.Normalize(version.Version().Version))
	if errPrev != nil || errCur != nil {
		logging.Debug("Version comparison unavailable", "previous", prev)
		return
	}

	switch {
	case curV.GreaterThan(prevV):
		logging.Info("Upgrading existing install", "from", prev, "to", version.Version().Version)
	case curV.LessThan(prevV):
		logging.Warn("Installing older version over existing install", "from", prev, "to", version.Version().Version)
	default:
		logging.Info("Reinstalling same version", "version", prev)
	}
}
