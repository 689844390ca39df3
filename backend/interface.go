// Package backend decouples ext2.Mount from how image bytes were obtained:
// an *os.File opened read-only, an embedded byte slice wrapped in a
// fs.File, or a sub-range of a larger disk image via Sub.
package backend

import (
	"errors"
	"io"
	"io/fs"
)

// ErrNotSuitable is returned when the underlying fs.File does not also
// implement the method being called (e.g. it has no ReaderAt).
var ErrNotSuitable = errors.New("backing file is not suitable")

// Storage is a read-only, randomly addressable source of image bytes.
type Storage interface {
	fs.File
	io.ReaderAt
	io.Seeker
	io.Closer
}
