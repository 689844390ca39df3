// Package testhelper provides stand-ins for backend.Storage so filesystem
// tests can drive ext2 images held entirely in memory, without touching a
// real file on disk.
package testhelper

import (
	"io"
	"io/fs"
	"time"
)

// FileImpl backs backend.Storage with an in-memory byte slice, implementing
// fs.File, io.ReaderAt and io.Seeker directly against it. Unlike the
// on-disk backend it has no handle to close.
type FileImpl struct {
	Bytes  []byte
	offset int64
}

func (f *FileImpl) Stat() (fs.FileInfo, error) {
	return bytesFileInfo{size: int64(len(f.Bytes))}, nil
}

func (f *FileImpl) Read(b []byte) (int, error) {
	n, err := f.ReadAt(b, f.offset)
	f.offset += int64(n)
	return n, err
}

func (f *FileImpl) Close() error {
	return nil
}

// ReadAt reads from the backing slice at offset, per io.ReaderAt semantics.
func (f *FileImpl) ReadAt(b []byte, offset int64) (int, error) {
	if offset < 0 || offset >= int64(len(f.Bytes)) {
		return 0, fs.ErrInvalid
	}
	n := copy(b, f.Bytes[offset:])
	if n < len(b) {
		return n, io.EOF
	}
	return n, nil
}

// Seek repositions the next Read, per io.Seeker semantics.
func (f *FileImpl) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case 0:
		abs = offset
	case 1:
		abs = f.offset + offset
	case 2:
		abs = int64(len(f.Bytes)) + offset
	}
	f.offset = abs
	return abs, nil
}

type bytesFileInfo struct {
	size int64
}

func (b bytesFileInfo) Name() string       { return "" }
func (b bytesFileInfo) Size() int64        { return b.size }
func (b bytesFileInfo) Mode() fs.FileMode  { return 0 }
func (b bytesFileInfo) ModTime() time.Time { return time.Time{} }
func (b bytesFileInfo) IsDir() bool        { return false }
func (b bytesFileInfo) Sys() any           { return nil }
