//go:build windows

// pkg/shortcut/shortcut_windows.go - .lnk creation through the WScript.Shell COM object.

package shortcut

import (
	"errors"
	"fmt"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// S_FALSE from CoInitializeEx means COM was already initialized on this
// thread, which is fine.
const sFalse = uintptr(1)

// Writer creates Windows .lnk files via COM.
type Writer struct{}

// NewWriter returns the COM-backed shortcut writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Create writes a shortcut at linkPath pointing at targetPath. Existing
// shortcuts at linkPath are replaced, which keeps reruns idempotent.
func (w *Writer) Create(linkPath, targetPath, workDir, description string) error {
	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		var oleErr *ole.OleError
		if !(errors.As(err, &oleErr) && oleErr.Code() == sFalse) {
			return fmt.Errorf("initializing COM: %w", err)
		}
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("WScript.Shell")
	if err != nil {
		return fmt.Errorf("creating WScript.Shell: %w", err)
	}
	defer unknown.Release()

	wshell, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return fmt.Errorf("querying IDispatch: %w", err)
	}
	defer wshell.Release()

	result, err := oleutil.CallMethod(wshell, "CreateShortcut", linkPath)
	if err != nil {
		return fmt.Errorf("CreateShortcut %s: %w", linkPath, err)
	}
	link := result.ToIDispatch()
	defer link.Release()

	if _, err := oleutil.PutProperty(link, "TargetPath", targetPath); err != nil {
		return fmt.Errorf("setting TargetPath: %w", err)
	}
	if workDir != "" {
		if _, err := oleutil.PutProperty(link, "WorkingDirectory", workDir); err != nil {
			return fmt.Errorf("setting WorkingDirectory: %w", err)
		}
	}
	if description != "" {
		if _, err := oleutil.PutProperty(link, "Description", description); err != nil {
			return fmt.Errorf("setting Description: %w", err)
		}
	}
	if _, err := oleutil.CallMethod(link, "Save"); err != nil {
		return fmt.Errorf("saving shortcut %s: %w", linkPath, err)
	}
	return nil
}
