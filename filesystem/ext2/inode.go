package ext2

import (
	"encoding/binary"
	"fmt"
)

// minInodeSize is the smallest on-disk inode record this explorer reads;
// ext2 revision 0 images use exactly this size, later revisions may report
// a larger inodeSize in the superblock (extra bytes are ignored).
const minInodeSize = 128

// directPointerCount is the number of direct block pointers in an inode.
const directPointerCount = 12

// Inode is the fixed-size on-disk record describing one file or directory.
// Only the fields the core consults are kept.
type Inode struct {
	typePerm        TypePerm
	sizeLow         uint32
	sizeHigh        uint32
	directPointer   [directPointerCount]uint32
	indirectPointer uint32
	doublyIndirect  uint32
	triplyIndirect  uint32
}

// Size returns the inode's declared byte length. Only size_low is
// consulted; 64-bit file sizes are out of scope.
func (i *Inode) Size() uint64 {
	return uint64(i.sizeLow)
}

// IsDirectory reports whether the directory bit is set in the inode's
// type/permission field (see TypePerm.IsDirectory).
func (i *Inode) IsDirectory() bool {
	return i.typePerm.IsDirectory()
}

// TypePerm returns the inode's raw type/permission bitfield.
func (i *Inode) TypePerm() TypePerm {
	return i.typePerm
}

// inodeFromBytes interprets b (at least minInodeSize bytes) as an inode record.
func inodeFromBytes(b []byte) (*Inode, error) {
	if len(b) < minInodeSize {
		return nil, fmt.Errorf("inode data too short: %d bytes, need %d", len(b), minInodeSize)
	}

	in := &Inode{
		typePerm: TypePerm(binary.LittleEndian.Uint16(b[0x0:0x2])),
		sizeLow:  binary.LittleEndian.Uint32(b[0x4:0x8]),
		sizeHigh: binary.LittleEndian.Uint32(b[0x6c:0x70]),
	}

	blockPointers := b[0x28:0x64]
	for idx := 0; idx < directPointerCount; idx++ {
		in.directPointer[idx] = binary.LittleEndian.Uint32(blockPointers[idx*4 : idx*4+4])
	}
	in.indirectPointer = binary.LittleEndian.Uint32(blockPointers[48:52])
	in.doublyIndirect = binary.LittleEndian.Uint32(blockPointers[52:56])
	in.triplyIndirect = binary.LittleEndian.Uint32(blockPointers[56:60])

	return in, nil
}
