package ext2

import (
	"fmt"
	"io"
	"io/fs"
	"sort"

	"github.com/go-ext2/ext2fs/filesystem"
)

// RootInode is the fixed inode number of the root directory on every
// conforming ext2 image.
const RootInode uint32 = 2

// FileSystem adapts an Image to the shared read-only filesystem.FileSystem
// contract. Every mutating operation the embedded interfaces imply is
// absent here; ext2fs never exposes anything beyond what
// filesystem.FileSystem requires.
type FileSystem struct {
	image *Image
}

// NewFileSystem wraps an already-mounted Image.
func NewFileSystem(image *Image) *FileSystem {
	return &FileSystem{image: image}
}

// Type reports this is an ext2 filesystem.
func (f *FileSystem) Type() filesystem.Type { return filesystem.TypeExt2 }

// Label returns the volume label, or "" if none was set.
func (f *FileSystem) Label() string { return f.image.superblock.volumeLabel }

// resolve walks name (a fs.FS-style slash-separated path rooted at ".")
// down from the root directory and returns the final inode.
func (f *FileSystem) resolve(name string) (uint32, *Inode, error) {
	if !fs.ValidPath(name) {
		return 0, nil, fmt.Errorf("%w: invalid path %q", fs.ErrInvalid, name)
	}

	if name == "." {
		in, err := f.image.GetInode(RootInode)
		return RootInode, in, err
	}

	rootListing, err := f.image.ReadDir(RootInode)
	if err != nil {
		return 0, nil, err
	}

	inodeNumber, err := f.image.FollowPath(name, rootListing)
	if err != nil {
		return 0, nil, err
	}
	in, err := f.image.GetInode(inodeNumber)
	if err != nil {
		return 0, nil, err
	}
	return inodeNumber, in, nil
}

// Open implements fs.FS.
func (f *FileSystem) Open(name string) (fs.File, error) {
	inodeNumber, in, err := f.resolve(name)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	if in.typePerm.IsDirectory() {
		return f.openDir(name, inodeNumber)
	}
	return f.image.openFile(name, inodeNumber)
}

// ReadDir implements fs.ReadDirFS.
func (f *FileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	inodeNumber, in, err := f.resolve(name)
	if err != nil {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: err}
	}
	if !in.typePerm.IsDirectory() {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: ErrNotADirectory}
	}

	listing, err := f.image.ReadDir(inodeNumber)
	if err != nil {
		return nil, err
	}

	entries := make([]fs.DirEntry, 0, len(listing))
	for _, e := range listing {
		if e.Inode == 0 || e.Name == "." || e.Name == ".." {
			continue
		}
		childInode, err := f.image.GetInode(e.Inode)
		if err != nil {
			return nil, err
		}
		entries = append(entries, dirEntryInfo{fileInfoFromInode(e.Name, e.Inode, childInode)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// ReadFile implements fs.ReadFileFS.
func (f *FileSystem) ReadFile(name string) ([]byte, error) {
	file, err := f.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

// Stat implements fs.StatFS.
func (f *FileSystem) Stat(name string) (fs.FileInfo, error) {
	inodeNumber, in, err := f.resolve(name)
	if err != nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: err}
	}
	return fileInfoFromInode(name, inodeNumber, in), nil
}

// dir is the fs.File/fs.ReadDirFile returned for directory Opens.
type dir struct {
	name    string
	info    fs.FileInfo
	entries []fs.DirEntry
	offset  int
}

func (f *FileSystem) openDir(name string, inodeNumber uint32) (fs.File, error) {
	in, err := f.image.GetInode(inodeNumber)
	if err != nil {
		return nil, err
	}
	entries, err := f.ReadDir(name)
	if err != nil {
		return nil, err
	}
	return &dir{
		name:    name,
		info:    fileInfoFromInode(name, inodeNumber, in),
		entries: entries,
	}, nil
}

func (d *dir) Stat() (fs.FileInfo, error) { return d.info, nil }
func (d *dir) Read([]byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: d.name, Err: fs.ErrInvalid}
}
func (d *dir) Close() error { return nil }

func (d *dir) ReadDir(n int) ([]fs.DirEntry, error) {
	if n <= 0 {
		rest := d.entries[d.offset:]
		d.offset = len(d.entries)
		return rest, nil
	}
	if d.offset >= len(d.entries) {
		return nil, io.EOF
	}
	end := d.offset + n
	if end > len(d.entries) {
		end = len(d.entries)
	}
	rest := d.entries[d.offset:end]
	d.offset = end
	return rest, nil
}

// interface guards
var (
	_ filesystem.FileSystem = (*FileSystem)(nil)
	_ fs.ReadDirFile        = (*dir)(nil)
)
