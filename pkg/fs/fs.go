// Package fs provides the file system operations used by configuration and
// state persistence.
package fs

import "os"

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=fs.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides file system operations.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)
	// IsDir checks if the given path is a directory.
	IsDir(path string) (bool, error)
	// MkdirAll creates a directory and all necessary parents.
	MkdirAll(path string, perm os.FileMode) error
	// ReadFile reads the entire file at the given path.
	ReadFile(path string) ([]byte, error)
	// WriteFileAtomic writes data to a file atomically using a temporary
	// file and rename.
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
	// CreateFileIfNotExists creates a file with initial content if it
	// doesn't exist.
	CreateFileIfNotExists(filename string, initialContent []byte, perm os.FileMode) error
	// RemoveAll removes a path and any children it contains.
	RemoveAll(path string) error
	// ExpandPath expands ~ to the user's home directory.
	ExpandPath(path string) (string, error)
	// GetHomeDir returns the current user's home directory.
	GetHomeDir() (string, error)
	// FileLock acquires a file lock and returns an unlock function.
	FileLock(filename string) (func(), error)
}

type realFS struct{}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}
