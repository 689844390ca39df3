package ext2

import (
	"bytes"
	"io"
	"io/fs"
)

// File is a read-only handle on a regular file's content, materialized via
// ReadFile. Holes in the block pointer tree read back as zero bytes, the
// conventional interpretation of a sparse ext2 file.
type File struct {
	name   string
	info   fs.FileInfo
	reader *bytes.Reader
}

// openFile materializes the full contents of inodeNumber (which must be a
// regular file) into memory and returns a File positioned at offset 0.
func (img *Image) openFile(name string, inodeNumber uint32) (*File, error) {
	in, err := img.GetInode(inodeNumber)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = img.ReadFile(in, func(data []byte) error {
		if data == nil {
			_, werr := buf.Write(make([]byte, img.blockSize))
			return werr
		}
		_, werr := buf.Write(data)
		return werr
	})
	if err != nil {
		return nil, err
	}

	content := buf.Bytes()
	if uint64(len(content)) > in.Size() {
		content = content[:in.Size()]
	}

	return &File{
		name:   name,
		info:   fileInfoFromInode(name, inodeNumber, in),
		reader: bytes.NewReader(content),
	}, nil
}

func (f *File) Read(b []byte) (int, error) { return f.reader.Read(b) }

func (f *File) Seek(offset int64, whence int) (int64, error) { return f.reader.Seek(offset, whence) }

func (f *File) Stat() (fs.FileInfo, error) { return f.info, nil }

func (f *File) Close() error { return nil }

// interface guards
var (
	_ fs.File   = (*File)(nil)
	_ io.Seeker = (*File)(nil)
)
