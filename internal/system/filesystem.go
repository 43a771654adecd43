package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileSystem handles build output directory operations
type FileSystem struct{}

// NewFileSystem creates a new FileSystem instance
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// criticalPaths are system directories below the top level that are never
// removed
var criticalPaths = []string{
	"/usr/bin",
	"/usr/lib",
	"/usr/local",
	"/usr/share",
	"/var/home",
	"/var/lib",
	"/var/log",
}

// DirectoryExists checks if a directory exists
func (fs *FileSystem) DirectoryExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if directory exists %s: %w", path, err)
}

// RemoveDirectory removes a directory and all its contents. A missing
// directory is not an error.
func (fs *FileSystem) RemoveDirectory(path string) error {
	if err := checkRemovable(path); err != nil {
		return err
	}

	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to remove directory %s: %w", path, err)
	}
	return nil
}

// checkRemovable refuses empty paths, the working and home directories, and
// anything at the top of the file system
func checkRemovable(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("refusing to remove empty path")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	if cwd, err := os.Getwd(); err == nil && abs == cwd {
		return fmt.Errorf("refusing to remove current working directory: %s", abs)
	}

	if home, err := os.UserHomeDir(); err == nil && abs == filepath.Clean(home) {
		return fmt.Errorf("refusing to remove home directory: %s", abs)
	}

	for _, critical := range criticalPaths {
		if abs == critical {
			return fmt.Errorf("refusing to remove critical system path: %s", abs)
		}
	}

	if filepath.Dir(abs) == filepath.VolumeName(abs)+string(filepath.Separator) {
		return fmt.Errorf("refusing to remove top-level directory: %s", abs)
	}

	return nil
}
