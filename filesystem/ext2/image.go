// Package ext2 implements a read-only, in-memory parser and navigator for
// an ext2 filesystem image: the superblock, block group descriptor table,
// inode table, directory entries, and the direct/indirect block pointer
// trees that make up file contents.
//
// Everything here is a pure view over the bytes captured at Mount time:
// blocks are sub-slices of that buffer, and records (inodes, directory
// entries) are decoded from it on each lookup. Nothing mutates the image; there is no
// mkdir, rm, mount (of a second image), or link.
package ext2

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/go-ext2/ext2fs/backend"
)

// Image is the mounted, read-only view of an ext2 volume.
type Image struct {
	blocks      [][]byte
	superblock  *superblock
	groups      []groupDescriptor
	blockSize   uint32
	blockOffset int64
}

// BlockSize returns the filesystem's block size in bytes.
func (img *Image) BlockSize() uint32 {
	return img.blockSize
}

// InodesCount returns the total number of inodes the superblock declares.
func (img *Image) InodesCount() uint32 {
	return img.superblock.inodesCount
}

// BlocksCount returns the total number of blocks the superblock declares.
func (img *Image) BlocksCount() uint32 {
	return img.superblock.blocksCount
}

// FilesystemID returns the volume's UUID, parsed from the superblock's fs_id.
func (img *Image) FilesystemID() uuid.UUID {
	return img.superblock.filesystemID
}

// Mount reads the entirety of b, validates the superblock, and builds an
// Image over the decoded metadata. baseAddress anchors the logical-to-block
// index translation: it is the logical block number that block 0 of b is
// considered to occupy, normally 0. A non-zero baseAddress lets callers
// mount a byte range that is itself a sub-window of a larger logical device
// (e.g., one partition of a disk image) without losing the ability to
// translate the logical block numbers stored in on-disk pointers.
func Mount(b backend.Storage, baseAddress int64) (*Image, error) {
	info, err := b.Stat()
	if err != nil {
		return nil, fmt.Errorf("ext2: could not stat backend: %w", err)
	}

	image := make([]byte, info.Size())
	if _, err := b.ReadAt(image, 0); err != nil {
		return nil, fmt.Errorf("ext2: could not read image: %w", err)
	}

	return mountBytes(image, baseAddress)
}

// mountBytes is the byte-slice-only core of Mount, split out so tests can
// build a synthetic image in memory without a backend.Storage.
func mountBytes(image []byte, baseAddress int64) (*Image, error) {
	if len(image) < superblockOffset+superblockSize {
		return nil, fmt.Errorf("ext2: image too short to contain a superblock: %d bytes", len(image))
	}

	sb, err := superblockFromBytes(image[superblockOffset : superblockOffset+superblockSize])
	if err != nil {
		return nil, err
	}

	blockSize := sb.blockSize()
	groupCount := sb.blockGroupCount()

	gdtStart := superblockOffset + superblockSize
	gdtEnd := gdtStart + int(blockSize)
	if len(image) < gdtEnd {
		return nil, fmt.Errorf("ext2: image too short to contain the block group descriptor table: %d bytes", len(image))
	}
	groups, err := groupDescriptorsFromBytes(image[gdtStart:gdtEnd], groupCount)
	if err != nil {
		return nil, err
	}

	// Partition the remainder of the image into blocksCount fixed-size
	// blocks, logical block 0 first. The region [0, gdtEnd) is padding +
	// superblock + GDT and is not addressed by any logical block number.
	rest := image[gdtEnd:]
	blockCount := int(sb.blocksCount)
	blocks := make([][]byte, 0, blockCount)
	for i := 0; i < blockCount; i++ {
		start := i * int(blockSize)
		end := start + int(blockSize)
		if end > len(rest) {
			break
		}
		blocks = append(blocks, rest[start:end])
	}

	return &Image{
		blocks:      blocks,
		superblock:  sb,
		groups:      groups,
		blockSize:   blockSize,
		blockOffset: baseAddress,
	}, nil
}

// block returns the byte slice for logical block number n, translating
// through the image's block offset. n must lie in
// [blockOffset, blockOffset+len(blocks)).
func (img *Image) block(n uint32) ([]byte, error) {
	physical := int64(n) - img.blockOffset
	if physical < 0 || physical >= int64(len(img.blocks)) {
		return nil, fmt.Errorf("%w: logical block %d (physical index %d, have %d blocks)", ErrBadBlockRef, n, physical, len(img.blocks))
	}
	return img.blocks[physical], nil
}
