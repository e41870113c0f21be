package loader

import (
	"io/fs"
	"os"
)

// FileSystem is an abstraction over file reads, so tests can supply an
// in-memory filesystem instead of touching disk.
type FileSystem interface {
	fs.FS
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS filesystem.
type OSFS struct{}

func (OSFS) Open(name string) (fs.File, error)    { return os.Open(name) }
func (OSFS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// DefaultFS returns the default (real) filesystem.
func DefaultFS() FileSystem {
	return OSFS{}
}
