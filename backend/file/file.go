// Package file provides backend.Storage implementations backed by a
// local *os.File or any fs.File that also supports ReaderAt and Seek.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-ext2/ext2fs/backend"
)

type rawBackend struct {
	storage fs.File
}

// interface guard
var _ backend.Storage = rawBackend{}

// New wraps an already-open fs.File as a backend.Storage. The caller
// retains ownership of closing it through the returned Storage.
func New(f fs.File) backend.Storage {
	return rawBackend{storage: f}
}

// OpenFromPath opens a read-only backend.Storage over a path to a device
// or image file. The file must already exist.
func OpenFromPath(pathName string) (backend.Storage, error) {
	if pathName == "" {
		return nil, errors.New("must pass device or file name")
	}
	if _, err := os.Stat(pathName); os.IsNotExist(err) {
		return nil, fmt.Errorf("provided device/file %s does not exist", pathName)
	}

	f, err := os.OpenFile(pathName, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("could not open device %s: %w", pathName, err)
	}

	return rawBackend{storage: f}, nil
}

func (f rawBackend) Stat() (fs.FileInfo, error) {
	return f.storage.Stat()
}

func (f rawBackend) Read(b []byte) (int, error) {
	return f.storage.Read(b)
}

func (f rawBackend) Close() error {
	return f.storage.Close()
}

func (f rawBackend) ReadAt(p []byte, off int64) (int, error) {
	if readerAt, ok := f.storage.(interface {
		ReadAt([]byte, int64) (int, error)
	}); ok {
		return readerAt.ReadAt(p, off)
	}
	return -1, backend.ErrNotSuitable
}

func (f rawBackend) Seek(offset int64, whence int) (int64, error) {
	if seeker, ok := f.storage.(interface {
		Seek(int64, int) (int64, error)
	}); ok {
		return seeker.Seek(offset, whence)
	}
	return -1, backend.ErrNotSuitable
}
