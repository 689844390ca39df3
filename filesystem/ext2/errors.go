package ext2

import "errors"

// Sentinel errors returned by the core. Callers branch on kind with errors.Is;
// call sites wrap these with fmt.Errorf("...: %w", ...) to add context.
var (
	// ErrBadMagic is returned when the superblock magic is not 0xEF53.
	ErrBadMagic = errors.New("ext2: bad superblock magic")
	// ErrBadBlockRef is returned when a logical block number falls outside
	// the mounted image's block range.
	ErrBadBlockRef = errors.New("ext2: block reference out of range")
	// ErrNoSuchInode is returned for an inode number of 0 or greater than
	// the superblock's inodes_count.
	ErrNoSuchInode = errors.New("ext2: no such inode")
	// ErrNotADirectory is returned when a path component that is not the
	// final one resolves to a non-directory inode.
	ErrNotADirectory = errors.New("ext2: not a directory")
	// ErrNotFound is returned when a path component has no matching
	// directory entry.
	ErrNotFound = errors.New("ext2: no such file or directory")
	// ErrCorruptDirectory is returned when a directory entry's entry_size
	// is zero, which would otherwise loop forever.
	ErrCorruptDirectory = errors.New("ext2: corrupt directory entry")
	// ErrInvalidUTF8 is raised only by callers that choose to decode file
	// bytes as text (the core streamer never raises it).
	ErrInvalidUTF8 = errors.New("ext2: file contents are not valid utf-8")
)
