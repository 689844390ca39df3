package ext2

import "encoding/binary"

// BlockVisitor is called once per data block in file order while walking an
// inode's block pointer tree. data is nil for a hole (an unallocated
// pointer, or an absent indirect sub-tree); callers render holes however
// they like (the shell prints "..."). Returning a non-nil error aborts the
// walk.
type BlockVisitor func(data []byte) error

// ReadFile walks target's direct, singly-, doubly-, and triply-indirect
// block pointer trees in file order, invoking visit once per data block
// (or hole), and stops as soon as the cumulative byte count reaches the
// inode's declared size_low. A hole counts one block_size against the
// running total regardless of which level of indirection it was found at,
// matching spec.md §4.6's termination rule.
func (img *Image) ReadFile(target *Inode, visit BlockVisitor) error {
	sizeLow := uint64(target.sizeLow)
	blockSize := uint64(img.blockSize)
	pointersPerBlock := uint64(img.blockSize) / 4

	var running uint64

	emit := func(pointer uint32) error {
		if running >= sizeLow {
			return nil
		}
		if pointer == 0 {
			running += blockSize
			return visit(nil)
		}
		block, err := img.block(pointer)
		if err != nil {
			return err
		}
		running += blockSize
		return visit(block)
	}

	walkIndirect := func(pointer uint32) error {
		block, err := img.block(pointer)
		if err != nil {
			return err
		}
		for _, entry := range readPointers(block, pointersPerBlock) {
			if running >= sizeLow {
				return nil
			}
			if err := emit(entry); err != nil {
				return err
			}
		}
		return nil
	}

	var walkDoublyIndirect func(pointer uint32) error
	walkDoublyIndirect = func(pointer uint32) error {
		block, err := img.block(pointer)
		if err != nil {
			return err
		}
		for _, ref := range readPointers(block, pointersPerBlock) {
			if running >= sizeLow {
				return nil
			}
			if ref == 0 {
				if err := emit(0); err != nil {
					return err
				}
				continue
			}
			if err := walkIndirect(ref); err != nil {
				return err
			}
		}
		return nil
	}

	walkTriplyIndirect := func(pointer uint32) error {
		block, err := img.block(pointer)
		if err != nil {
			return err
		}
		for _, ref := range readPointers(block, pointersPerBlock) {
			if running >= sizeLow {
				return nil
			}
			if ref == 0 {
				if err := emit(0); err != nil {
					return err
				}
				continue
			}
			if err := walkDoublyIndirect(ref); err != nil {
				return err
			}
		}
		return nil
	}

	// Stage 1: direct pointers.
	for i := 0; i < directPointerCount && running < sizeLow; i++ {
		if err := emit(target.directPointer[i]); err != nil {
			return err
		}
	}

	// Stage 2: singly indirect.
	if running < sizeLow && target.indirectPointer != 0 {
		if err := walkIndirect(target.indirectPointer); err != nil {
			return err
		}
	}

	// Stage 3: doubly indirect.
	if running < sizeLow && target.doublyIndirect != 0 {
		if err := walkDoublyIndirect(target.doublyIndirect); err != nil {
			return err
		}
	}

	// Stage 4: triply indirect.
	if running < sizeLow && target.triplyIndirect != 0 {
		if err := walkTriplyIndirect(target.triplyIndirect); err != nil {
			return err
		}
	}

	return nil
}

// readPointers interprets block as an array of up to count little-endian
// 32-bit logical block numbers.
func readPointers(block []byte, count uint64) []uint32 {
	pointers := make([]uint32, 0, count)
	for i := uint64(0); i < count && (i+1)*4 <= uint64(len(block)); i++ {
		pointers = append(pointers, binary.LittleEndian.Uint32(block[i*4:i*4+4]))
	}
	return pointers
}
