package ext2

import (
	"testing"

	"github.com/go-test/deep"
)

func TestGroupDescriptorsFromBytes(t *testing.T) {
	b := make([]byte, groupDescriptorSize*3)
	putU32(b, 0*groupDescriptorSize+0x8, 10)
	putU32(b, 1*groupDescriptorSize+0x8, 42)
	putU32(b, 2*groupDescriptorSize+0x8, 100)

	got, err := groupDescriptorsFromBytes(b, 3)
	if err != nil {
		t.Fatalf("groupDescriptorsFromBytes() error = %v", err)
	}

	want := []groupDescriptor{
		{inodeTableBlock: 10},
		{inodeTableBlock: 42},
		{inodeTableBlock: 100},
	}
	deep.CompareUnexportedFields = true
	if diff := deep.Equal(want, got); diff != nil {
		t.Errorf("groupDescriptorsFromBytes() diff: %v", diff)
	}
}

func TestGroupDescriptorsFromBytesTooShort(t *testing.T) {
	b := make([]byte, groupDescriptorSize) // only enough for 1, asking for 2
	if _, err := groupDescriptorsFromBytes(b, 2); err == nil {
		t.Error("groupDescriptorsFromBytes() with short buffer: expected error, got nil")
	}
}

func TestGroupDescriptorsFromBytesZeroCount(t *testing.T) {
	got, err := groupDescriptorsFromBytes(nil, 0)
	if err != nil {
		t.Fatalf("groupDescriptorsFromBytes() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("groupDescriptorsFromBytes() with count=0 = %v, want empty", got)
	}
}
