package ext2

import (
	"encoding/binary"
	"fmt"
)

// directoryEntryHeaderSize is the fixed part of a directory entry record
// (inode, entry_size, name_length, type_indicator) preceding the name.
const directoryEntryHeaderSize = 8

// DirEntry is one (inode, name) pair produced by walking a directory's
// entry records. Entries with Inode == 0 are unused slots; the iterator
// emits them verbatim, name included. Callers that compare by name never
// match a slot whose name is empty, but an unused slot that still carries
// a name is matched like any other entry.
type DirEntry struct {
	Inode uint32
	Name  string
}

// directoryEntryFromBytes parses a single variable-length directory entry
// record starting at b[0]. It returns the entry and the number of bytes to
// advance to the next record (entry.entry_size). An entry_size of zero is
// reported as ErrCorruptDirectory so callers never loop forever.
func directoryEntryFromBytes(b []byte) (DirEntry, uint16, error) {
	if len(b) < directoryEntryHeaderSize {
		return DirEntry{}, 0, fmt.Errorf("directory entry header truncated: %d bytes available", len(b))
	}

	inodeNum := binary.LittleEndian.Uint32(b[0x0:0x4])
	entrySize := binary.LittleEndian.Uint16(b[0x4:0x6])
	nameLength := b[0x6]

	if entrySize == 0 {
		return DirEntry{}, 0, ErrCorruptDirectory
	}

	nameEnd := directoryEntryHeaderSize + int(nameLength)
	if nameEnd > len(b) || int(entrySize) > len(b) {
		return DirEntry{}, 0, fmt.Errorf("directory entry name overruns its record: name_length=%d entry_size=%d available=%d", nameLength, entrySize, len(b))
	}

	name := string(b[directoryEntryHeaderSize:nameEnd])

	return DirEntry{Inode: inodeNum, Name: name}, entrySize, nil
}
