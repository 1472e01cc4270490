//go:build !windows

// pkg/shortcut/shortcut_others.go - stub shortcut writer for non-Windows builds.

package shortcut

import "errors"

type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) Create(linkPath, targetPath, workDir, description string) error {
	return errors.New("shell shortcuts are only available on Windows")
}
