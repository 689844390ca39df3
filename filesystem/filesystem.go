// Package filesystem provides the shared, read-only contract implemented
// by filesystem readers in this module (currently just
// github.com/go-ext2/ext2fs/filesystem/ext2).
package filesystem

import (
	"io/fs"
)

// Type identifies which on-disk format a FileSystem implements.
type Type int

const (
	// TypeExt2 is an ext2 compatible filesystem.
	TypeExt2 Type = iota
)

// FileSystem is a reference to a single, read-only filesystem mounted from
// an image.
type FileSystem interface {
	fs.FS
	fs.ReadDirFS
	fs.ReadFileFS
	fs.StatFS

	// Type returns the type of filesystem.
	Type() Type
	// Label returns the volume label, or "" if none.
	Label() string
}
