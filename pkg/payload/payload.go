// pkg/payload/payload.go - copies the bundled resource tree into game directories.

package payload

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/wrye-bash/bashsetup/pkg/logging"
	"github.com/wrye-bash/bashsetup/pkg/utils"
)

// CopyTree recursively copies the contents of src into dst with merge
// semantics: directories are created as needed and existing destination
// files are overwritten. Each copied file is verified by SHA-256 against
// its source. Any failure is returned wrapped with the offending path and
// aborts the walk; callers treat it as fatal.
func CopyTree(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("payload source %s: %w", src, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("payload source %s is not a directory", src)
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walking payload at %s: %w", path, err)
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("resolving %s against payload root: %w", path, err)
		}
		if rel == "." {
			return os.MkdirAll(dst, 0755)
		}
		targetPath := filepath.Join(dst, rel)

		if d.IsDir() {
			if err := os.MkdirAll(targetPath, 0755); err != nil {
				return fmt.Errorf("creating directory %s: %w", targetPath, err)
			}
			return nil
		}

		if err := copyFile(path, targetPath, d); err != nil {
			return err
		}
		logging.Debug("Copied payload file", "file", rel)
		return nil
	})
}

// copyFile copies one regular file, preserving the source mode, then
// verifies the destination digest against the source.
func copyFile(src, dst string, d fs.DirEntry) error {
	info, err := d.Info()
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening payload file %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}

	srcSum, err := utils.FileSHA256(src)
	if err != nil {
		return fmt.Errorf("hashing %s: %w", src, err)
	}
	if !utils.Verify(dst, srcSum) {
		return fmt.Errorf("verification failed for %s: digest does not match source", dst)
	}
	return nil
}
