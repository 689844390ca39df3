package ext2

import (
	"encoding/binary"
	"fmt"
)

// groupDescriptorSize is the on-disk size of a single block group descriptor
// record in the (32-bit, non-64bit-feature) format this explorer targets.
const groupDescriptorSize = 32

// groupDescriptor is one record of the block group descriptor table. Only
// the field the core consults is kept.
type groupDescriptor struct {
	inodeTableBlock uint32
}

// groupDescriptorsFromBytes interprets b as a contiguous array of count
// group descriptor records, each groupDescriptorSize bytes.
func groupDescriptorsFromBytes(b []byte, count uint32) ([]groupDescriptor, error) {
	need := int(count) * groupDescriptorSize
	if len(b) < need {
		return nil, fmt.Errorf("group descriptor table too short: %d bytes, need %d for %d groups", len(b), need, count)
	}
	descriptors := make([]groupDescriptor, count)
	for i := range descriptors {
		rec := b[i*groupDescriptorSize : (i+1)*groupDescriptorSize]
		descriptors[i] = groupDescriptor{
			inodeTableBlock: binary.LittleEndian.Uint32(rec[0x8:0xc]),
		}
	}
	return descriptors, nil
}
