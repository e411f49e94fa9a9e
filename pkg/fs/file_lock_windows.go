//go:build windows

package fs

import (
	"os"
	"path/filepath"
)

// FileLock acquires a file lock and returns an unlock function.
// On Windows the exclusive create of the lock file is the lock itself.
func (f *realFS) FileLock(filename string) (func(), error) {
	lockPath := filename + ".lock"

	lockDir := filepath.Dir(lockPath)
	if err := os.MkdirAll(lockDir, 0755); err != nil {
		return nil, err
	}

	lockFile, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}

	unlock := func() {
		_ = lockFile.Close()
		_ = os.Remove(lockPath)
	}

	return unlock, nil
}
