package ext2

import "encoding/binary"

// putU32/putU16 write a little-endian value into b at offset, growing
// nothing — b must already be large enough. Shared by the package's
// hand-built byte-buffer tests.
func putU32(b []byte, offset int, v uint32) {
	binary.LittleEndian.PutUint32(b[offset:offset+4], v)
}

func putU16(b []byte, offset int, v uint16) {
	binary.LittleEndian.PutUint16(b[offset:offset+2], v)
}
