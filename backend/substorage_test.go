package backend

import (
	"io"
	"testing"

	"github.com/go-ext2/ext2fs/testhelper"
)

func TestSubStorageReadAt(t *testing.T) {
	underlying := &testhelper.FileImpl{Bytes: []byte("0123456789abcdef")}
	sub := Sub(underlying, 4, 6) // "456789"

	b := make([]byte, 6)
	n, err := sub.ReadAt(b, 0)
	if err != nil {
		t.Fatalf("ReadAt() error = %v", err)
	}
	if n != 6 || string(b) != "456789" {
		t.Errorf("ReadAt() = %q (n=%d), want %q", b, n, "456789")
	}
}

func TestSubStorageReadAtClampsToRange(t *testing.T) {
	underlying := &testhelper.FileImpl{Bytes: []byte("0123456789abcdef")}
	sub := Sub(underlying, 4, 3) // "456" only

	b := make([]byte, 10)
	n, err := sub.ReadAt(b, 0)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadAt() error = %v", err)
	}
	if n != 3 || string(b[:n]) != "456" {
		t.Errorf("ReadAt() = %q (n=%d), want %q", b[:n], n, "456")
	}
}

func TestSubStorageStatReportsSubRangeSize(t *testing.T) {
	underlying := &testhelper.FileImpl{Bytes: make([]byte, 100)}
	sub := Sub(underlying, 10, 20)

	info, err := sub.Stat()
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Size() != 20 {
		t.Errorf("Stat().Size() = %d, want 20 (the sub-range, not the underlying 100)", info.Size())
	}
}

func TestSubStorageReadAtOutOfRange(t *testing.T) {
	underlying := &testhelper.FileImpl{Bytes: []byte("0123456789")}
	sub := Sub(underlying, 2, 4)

	if _, err := sub.ReadAt(make([]byte, 1), 4); err != io.EOF {
		t.Errorf("ReadAt() past the sub-range error = %v, want io.EOF", err)
	}
}
