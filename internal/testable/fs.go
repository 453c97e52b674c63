// Package testable provides interfaces for abstracting OS-level operations,
// enabling mock injection in tests without modifying production behavior.
package testable

import (
	"os"
	"path/filepath"
)

// FileSystem abstracts the file system operations the CLI performs on
// declaration files.
type FileSystem interface {
	// Abs returns an absolute representation of path.
	Abs(path string) (string, error)

	// Stat returns a FileInfo describing the named file.
	Stat(name string) (os.FileInfo, error)

	// WriteFile writes data to the named file, creating it if necessary.
	WriteFile(name string, data []byte, perm os.FileMode) error

	// MkdirAll creates a directory named path, along with any necessary parents.
	MkdirAll(path string, perm os.FileMode) error
}

// OsFileSystem is the production implementation of FileSystem that delegates
// to the standard library os and filepath packages.
type OsFileSystem struct{}

// Abs wraps filepath.Abs.
func (OsFileSystem) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

// Stat wraps os.Stat.
func (OsFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// WriteFile wraps os.WriteFile.
func (OsFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm) //nolint:gosec // caller controls path and perms
}

// MkdirAll wraps os.MkdirAll.
func (OsFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// DefaultFS is the production FileSystem.
var DefaultFS FileSystem = OsFileSystem{}
