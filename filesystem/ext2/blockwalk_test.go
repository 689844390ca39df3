package ext2

import (
	"bytes"
	"testing"
)

func blockOf(blockSize int, fill byte) []byte {
	b := make([]byte, blockSize)
	for i := range b {
		b[i] = fill
	}
	return b
}

func pointerBlock(blockSize int, pointers ...uint32) []byte {
	b := make([]byte, blockSize)
	for i, p := range pointers {
		putU32(b, i*4, p)
	}
	return b
}

func readAll(t *testing.T, img *Image, in *Inode) ([]byte, []bool) {
	t.Helper()
	var out bytes.Buffer
	var holes []bool
	err := img.ReadFile(in, func(data []byte) error {
		if data == nil {
			holes = append(holes, true)
			out.Write(make([]byte, img.blockSize))
			return nil
		}
		holes = append(holes, false)
		out.Write(data)
		return nil
	})
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	return out.Bytes(), holes
}

// Logical block number 0 is reserved to mean "unallocated" at every level
// of the pointer tree, so every test image below leaves blocks[0] unused
// and addresses real data starting at logical block 1.

func TestReadFileDirectPointers(t *testing.T) {
	const blockSize = 1024
	blocks := [][]byte{
		blockOf(blockSize, 0), // unused; block 0 never appears as a pointer value
		blockOf(blockSize, 'A'),
		blockOf(blockSize, 'B'),
		blockOf(blockSize, 'C'),
		blockOf(blockSize, 'D'),
	}
	img := &Image{blocks: blocks, blockSize: blockSize}
	in := &Inode{
		sizeLow:       4 * blockSize,
		directPointer: [12]uint32{1, 2, 3, 4},
	}

	data, holes := readAll(t, img, in)
	if len(data) != 4*blockSize {
		t.Fatalf("len(data) = %d, want %d", len(data), 4*blockSize)
	}
	for i, want := range []byte{'A', 'B', 'C', 'D'} {
		if data[i*blockSize] != want {
			t.Errorf("block %d starts with %q, want %q", i, data[i*blockSize], want)
		}
	}
	for i, h := range holes {
		if h {
			t.Errorf("holes[%d] = true, want false (all pointers are allocated)", i)
		}
	}
}

func TestReadFileDirectPointerHole(t *testing.T) {
	const blockSize = 1024
	blocks := [][]byte{blockOf(blockSize, 0), blockOf(blockSize, 'A')}
	img := &Image{blocks: blocks, blockSize: blockSize}
	in := &Inode{
		sizeLow:       2 * blockSize,
		directPointer: [12]uint32{1, 0}, // second direct pointer unallocated
	}

	data, holes := readAll(t, img, in)
	if len(data) != 2*blockSize {
		t.Fatalf("len(data) = %d, want %d", len(data), 2*blockSize)
	}
	if holes[0] {
		t.Error("holes[0] = true, want false")
	}
	if !holes[1] {
		t.Error("holes[1] = false, want true")
	}
	for _, b := range data[blockSize:] {
		if b != 0 {
			t.Fatal("hole block contains non-zero byte")
		}
	}
}

func TestReadFileSinglyIndirect(t *testing.T) {
	const blockSize = 1024
	blocks := [][]byte{
		blockOf(blockSize, 0),
		pointerBlock(blockSize, 2, 3), // block 1: the indirect pointer block
		blockOf(blockSize, 'X'),
		blockOf(blockSize, 'Y'),
	}
	img := &Image{blocks: blocks, blockSize: blockSize}
	in := &Inode{
		sizeLow:         2 * blockSize,
		indirectPointer: 1,
	}

	data, holes := readAll(t, img, in)
	if len(data) != 2*blockSize || data[0] != 'X' || data[blockSize] != 'Y' {
		t.Fatalf("unexpected data from singly indirect walk: len=%d", len(data))
	}
	for i, h := range holes {
		if h {
			t.Errorf("holes[%d] = true, want false", i)
		}
	}
}

func TestReadFileDoublyIndirectHole(t *testing.T) {
	const blockSize = 1024
	// block 1: doubly-indirect pointer block, first entry references the
	// singly-indirect block at 2, second entry is a hole.
	doubly := pointerBlock(blockSize, 2, 0)
	singly := pointerBlock(blockSize, 3)
	leaf := blockOf(blockSize, 'Z')
	blocks := [][]byte{blockOf(blockSize, 0), doubly, singly, leaf}
	img := &Image{blocks: blocks, blockSize: blockSize}

	// size covers one real block through the first branch, plus one hole
	// block through the second (zero) doubly-indirect entry.
	in := &Inode{
		sizeLow:        2 * blockSize,
		doublyIndirect: 1,
	}

	data, holes := readAll(t, img, in)
	if len(data) != 2*blockSize {
		t.Fatalf("len(data) = %d, want %d", len(data), 2*blockSize)
	}
	if data[0] != 'Z' {
		t.Errorf("first block = %q, want 'Z'", data[0])
	}
	if holes[0] {
		t.Error("holes[0] = true, want false (real block from the singly-indirect branch)")
	}
	if !holes[1] {
		t.Error("holes[1] = false, want true (zero doubly-indirect entry)")
	}
}

func TestReadFileTerminatesAtDeclaredSize(t *testing.T) {
	const blockSize = 1024
	blocks := [][]byte{blockOf(blockSize, 0), blockOf(blockSize, 'A'), blockOf(blockSize, 'B'), blockOf(blockSize, 'C')}
	img := &Image{blocks: blocks, blockSize: blockSize}
	in := &Inode{
		sizeLow:       1, // declares a single byte, but three direct pointers are populated
		directPointer: [12]uint32{1, 2, 3},
	}

	data, _ := readAll(t, img, in)
	if len(data) != blockSize {
		t.Errorf("len(data) = %d, want %d (only the first block should be emitted)", len(data), blockSize)
	}
}

func TestReadFileBadBlockRef(t *testing.T) {
	const blockSize = 1024
	img := &Image{blocks: [][]byte{blockOf(blockSize, 0)}, blockSize: blockSize}
	in := &Inode{
		sizeLow:       blockSize,
		directPointer: [12]uint32{99}, // out of range
	}

	err := img.ReadFile(in, func(data []byte) error { return nil })
	if err == nil {
		t.Error("ReadFile() with an out-of-range direct pointer: expected error, got nil")
	}
}
