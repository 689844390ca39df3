package ext2

import "fmt"

// GetInode resolves a 1-indexed inode number to its inode record. Inode 2
// is always the root directory on a conforming ext2 image.
func (img *Image) GetInode(n uint32) (*Inode, error) {
	if n == 0 || n > img.superblock.inodesCount {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchInode, n)
	}

	group := (n - 1) / img.superblock.inodesPerGroup
	index := (n - 1) % img.superblock.inodesPerGroup

	if int(group) >= len(img.groups) {
		return nil, fmt.Errorf("%w: inode %d maps to group %d, have %d groups", ErrNoSuchInode, n, group, len(img.groups))
	}

	inodeSize := int(img.superblock.inodeSize)
	inodesPerBlock := int(img.blockSize) / inodeSize
	blockWithinTable := int(index) / inodesPerBlock
	offsetWithinBlock := (int(index) % inodesPerBlock) * inodeSize

	tableBlock := img.groups[group].inodeTableBlock + uint32(blockWithinTable)
	block, err := img.block(tableBlock)
	if err != nil {
		return nil, err
	}

	if offsetWithinBlock+inodeSize > len(block) {
		return nil, fmt.Errorf("%w: inode %d offset %d overruns block of size %d", ErrBadBlockRef, n, offsetWithinBlock, len(block))
	}

	return inodeFromBytes(block[offsetWithinBlock : offsetWithinBlock+inodeSize])
}

// ReadDir walks the directory entry records inside inodeNumber's first
// direct data block, producing (inode, name) pairs in on-disk order.
// It does not follow further direct blocks or indirect pointers for
// directories larger than one block; only direct_pointer[0] is ever read.
func (img *Image) ReadDir(inodeNumber uint32) ([]DirEntry, error) {
	dirInode, err := img.GetInode(inodeNumber)
	if err != nil {
		return nil, err
	}

	if dirInode.directPointer[0] == 0 {
		// An empty or sparse first block has no entries to yield.
		return nil, nil
	}

	block, err := img.block(dirInode.directPointer[0])
	if err != nil {
		return nil, err
	}

	var entries []DirEntry
	size := dirInode.Size()
	var offset uint64
	for offset < size {
		if offset >= uint64(len(block)) {
			break
		}
		entry, advance, err := directoryEntryFromBytes(block[offset:])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
		offset += uint64(advance)
	}

	return entries, nil
}
