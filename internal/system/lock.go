package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is the lock file created next to the build directory
const LockFileName = ".admonition-check.lock"

// ErrLocked is returned when another run holds the lock
var ErrLocked = errors.New("another admonition-check run is using this build directory")

// RunLock is an advisory cross-process lock guarding clean and build of one
// output directory
type RunLock struct {
	flock *flock.Flock
	path  string
}

// NewRunLock creates a lock for buildDir. The lock file lives in the parent
// directory so removing buildDir does not remove it.
func NewRunLock(buildDir string) *RunLock {
	path := filepath.Join(filepath.Dir(filepath.Clean(buildDir)), LockFileName)
	return &RunLock{
		flock: flock.New(path),
		path:  path,
	}
}

// Path returns the lock file path
func (l *RunLock) Path() string {
	return l.path
}

// TryLock acquires the lock without blocking. It returns ErrLocked if another
// process holds it.
func (l *RunLock) TryLock() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("failed to create lock directory: %w", err)
	}

	acquired, err := l.flock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to try lock on %s: %w", l.path, err)
	}
	if !acquired {
		return fmt.Errorf("%w (lock file: %s)", ErrLocked, l.path)
	}
	return nil
}

// Unlock releases the lock. The lock file is left in place.
func (l *RunLock) Unlock() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}
