package ext2

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

const (
	// superblockOffset is the byte offset of the superblock within the image.
	superblockOffset = 1024
	// superblockSize is the fixed on-disk size of the superblock record.
	superblockSize = 1024
	// ext2Magic is the required little-endian value of the superblock's magic field.
	ext2Magic = 0xEF53
)

// superblock is the fixed 1024-byte record beginning at byte offset 1024 of
// the image. Only the fields the core needs are kept; the remainder of the
// on-disk record is ignored.
type superblock struct {
	inodesCount    uint32
	blocksCount    uint32
	blocksPerGroup uint32
	inodesPerGroup uint32
	logBlockSize   uint32
	magic          uint16
	inodeSize      uint16
	filesystemID   uuid.UUID
	volumeLabel    string
}

// blockSize returns 1024 shifted left by logBlockSize, per the on-disk format.
func (s *superblock) blockSize() uint32 {
	return 1024 << s.logBlockSize
}

// blockGroupCount returns ceil(blocksCount / blocksPerGroup).
func (s *superblock) blockGroupCount() uint32 {
	if s.blocksPerGroup == 0 {
		return 0
	}
	count := s.blocksCount / s.blocksPerGroup
	if s.blocksCount%s.blocksPerGroup != 0 {
		count++
	}
	return count
}

// superblockFromBytes interprets b (which must be at least superblockSize
// bytes) as a superblock record. b is normally image[1024:2048].
func superblockFromBytes(b []byte) (*superblock, error) {
	if len(b) < superblockSize {
		return nil, fmt.Errorf("superblock data too short: %d bytes, need %d", len(b), superblockSize)
	}

	sb := &superblock{
		inodesCount:    binary.LittleEndian.Uint32(b[0x0:0x4]),
		blocksCount:    binary.LittleEndian.Uint32(b[0x4:0x8]),
		blocksPerGroup: binary.LittleEndian.Uint32(b[0x20:0x24]),
		inodesPerGroup: binary.LittleEndian.Uint32(b[0x28:0x2c]),
		logBlockSize:   binary.LittleEndian.Uint32(b[0x18:0x1c]),
		magic:          binary.LittleEndian.Uint16(b[0x38:0x3a]),
	}
	if sb.magic != ext2Magic {
		return nil, ErrBadMagic
	}

	// inode_size lives at offset 0x58 in the extended superblock fields;
	// a 0 value (very old ext2 revisions) means the historical fixed size.
	if len(b) >= 0x5a {
		sb.inodeSize = binary.LittleEndian.Uint16(b[0x58:0x5a])
	}
	if sb.inodeSize == 0 {
		sb.inodeSize = 128
	}

	if len(b) >= 0x68+16 {
		id, err := uuid.FromBytes(b[0x68 : 0x68+16])
		if err == nil {
			sb.filesystemID = id
		}
	}

	if len(b) >= 0x78+16 {
		sb.volumeLabel = cStringTrim(b[0x78 : 0x78+16])
	}

	return sb, nil
}

// cStringTrim returns b decoded as a string, truncated at the first NUL byte.
func cStringTrim(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
