package backend

import (
	"io"
	"io/fs"
	"time"
)

// SubStorage is a Storage restricted to a contiguous sub-range of a larger
// underlying Storage, used to mount an ext2 image that lives inside one
// partition of a bigger disk image rather than occupying the whole backend.
type SubStorage struct {
	underlying Storage
	offset     int64
	size       int64
}

// Sub returns a Storage over u[offset : offset+size].
func Sub(u Storage, offset, size int64) Storage {
	return SubStorage{underlying: u, offset: offset, size: size}
}

func (s SubStorage) Stat() (fs.FileInfo, error) {
	return subFileInfo{size: s.size}, nil
}

func (s SubStorage) Read(b []byte) (int, error) {
	return s.underlying.ReadAt(b, s.offset)
}

func (s SubStorage) Close() error {
	return s.underlying.Close()
}

func (s SubStorage) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= s.size {
		return 0, io.EOF
	}
	if max := s.size - off; int64(len(p)) > max {
		p = p[:max]
	}
	return s.underlying.ReadAt(p, s.offset+off)
}

func (s SubStorage) Seek(offset int64, whence int) (int64, error) {
	var (
		pos int64
		err error
	)

	switch whence {
	case io.SeekStart:
		pos, err = s.underlying.Seek(offset+s.offset, io.SeekStart)
	case io.SeekCurrent:
		pos, err = s.underlying.Seek(offset, io.SeekCurrent)
	case io.SeekEnd:
		pos, err = s.underlying.Seek(s.offset+s.size+offset, io.SeekStart)
	default:
		return -1, ErrNotSuitable
	}
	if err != nil {
		return -1, err
	}

	return pos - s.offset, nil
}

// subFileInfo reports only the Size a SubStorage was constructed with; the
// rest of fs.FileInfo is meaningless for a byte range within a bigger file.
type subFileInfo struct {
	size int64
}

func (i subFileInfo) Name() string       { return "" }
func (i subFileInfo) Size() int64        { return i.size }
func (i subFileInfo) Mode() fs.FileMode  { return 0 }
func (i subFileInfo) ModTime() time.Time { return time.Time{} }
func (i subFileInfo) IsDir() bool        { return false }
func (i subFileInfo) Sys() any           { return nil }
