package ext2

import (
	"io/fs"
	"path"
	"time"
)

// fileInfo adapts an ext2 inode to fs.FileInfo so the explorer can be
// driven through io/fs tooling (fs.WalkDir, fs.Glob, http.FileServer).
type fileInfo struct {
	name        string
	inodeNumber uint32
	typePerm    TypePerm
	size        int64
}

func fileInfoFromInode(name string, inodeNumber uint32, in *Inode) fs.FileInfo {
	return fileInfo{
		name:        path.Base(name),
		inodeNumber: inodeNumber,
		typePerm:    in.TypePerm(),
		size:        int64(in.Size()),
	}
}

func (fi fileInfo) Name() string { return fi.name }
func (fi fileInfo) Size() int64  { return fi.size }

func (fi fileInfo) Mode() fs.FileMode {
	mode := fs.FileMode(fi.typePerm & 0o7777)
	if fi.typePerm.IsDirectory() {
		mode |= fs.ModeDir
	}
	if fi.typePerm.IsSymlink() {
		mode |= fs.ModeSymlink
	}
	return mode
}

// ModTime is not tracked by this explorer: no inode timestamp field is
// consulted anywhere in the core, so there is nothing authoritative to
// report here.
func (fi fileInfo) ModTime() time.Time { return time.Time{} }

func (fi fileInfo) IsDir() bool { return fi.typePerm.IsDirectory() }

func (fi fileInfo) Sys() any { return fi.inodeNumber }

// dirEntryInfo adapts a DirEntry (plus its resolved inode) to fs.DirEntry.
type dirEntryInfo struct {
	fs.FileInfo
}

func (d dirEntryInfo) Type() fs.FileMode          { return d.FileInfo.Mode().Type() }
func (d dirEntryInfo) Info() (fs.FileInfo, error) { return d.FileInfo, nil }
