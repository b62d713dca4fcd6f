// Package staging maps object keys onto the local staging directory where
// files wait for upload, and cleans staged copies up afterwards.
package staging

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDir is the staging-directory convention used when none is configured.
const DefaultDir = "temp/media"

// Path returns the staging location for an object key. Keys use forward
// slashes regardless of platform.
func Path(root, key string) string {
	return filepath.Join(root, filepath.FromSlash(key))
}

// Stat verifies the staged file for key exists and is a regular file,
// returning its size.
func Stat(root, key string) (int64, error) {
	info, err := os.Stat(Path(root, key))
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, fmt.Errorf("staged path %q is a directory", Path(root, key))
	}
	return info.Size(), nil
}

// Remove deletes the staged file for key. When the file's parent directory is
// left empty it is removed as well, but never the staging root itself.
// Cleanup is at-least-once: a parent that still has entries is left alone.
func Remove(root, key string) error {
	full := Path(root, key)
	if err := os.Remove(full); err != nil {
		return err
	}

	parent := filepath.Dir(full)
	rootClean := filepath.Clean(root)
	if parent == rootClean || parent == "." || parent == string(filepath.Separator) {
		return nil
	}

	entries, err := os.ReadDir(parent)
	if err != nil || len(entries) > 0 {
		return nil
	}

	// Best effort: the upload already succeeded, a leftover empty directory
	// is not worth failing over.
	_ = os.Remove(parent)
	return nil
}
