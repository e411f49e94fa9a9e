//go:build !windows

package fs

import (
	"os"
	"path/filepath"
	"syscall"
)

// FileLock acquires a file lock and returns an unlock function.
// This implementation uses syscall.Flock which is available on Unix systems.
func (f *realFS) FileLock(filename string) (func(), error) {
	lockPath := filename + ".lock"

	// Ensure parent directory exists before creating lock file
	lockDir := filepath.Dir(lockPath)
	if err := os.MkdirAll(lockDir, 0755); err != nil {
		return nil, err
	}

	lockFile, err := os.Create(lockPath)
	if err != nil {
		return nil, err
	}

	// Acquire file lock (non-blocking)
	if err := syscall.Flock(int(lockFile.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		_ = lockFile.Close()
		_ = os.Remove(lockPath)
		return nil, err
	}

	unlock := func() {
		_ = syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)
		_ = lockFile.Close()
		_ = os.Remove(lockPath)
	}

	return unlock, nil
}
