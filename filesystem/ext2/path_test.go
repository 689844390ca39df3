package ext2

import (
	"errors"
	"testing"
)

func TestFollowPath(t *testing.T) {
	img := buildTestImage(t)
	rootListing, err := img.ReadDir(RootInode)
	if err != nil {
		t.Fatalf("ReadDir(RootInode) error = %v", err)
	}

	inodeNumber, err := img.FollowPath("greeting.txt", rootListing)
	if err != nil {
		t.Fatalf("FollowPath() error = %v", err)
	}
	if inodeNumber != 3 {
		t.Errorf("FollowPath() = %d, want 3", inodeNumber)
	}
}

func TestFollowPathNotFound(t *testing.T) {
	img := buildTestImage(t)
	rootListing, err := img.ReadDir(RootInode)
	if err != nil {
		t.Fatalf("ReadDir(RootInode) error = %v", err)
	}

	if _, err := img.FollowPath("nonexistent.txt", rootListing); !errors.Is(err, ErrNotFound) {
		t.Errorf("FollowPath() error = %v, want ErrNotFound", err)
	}
}

func TestFollowPathThroughNonDirectory(t *testing.T) {
	img := buildTestImage(t)
	rootListing, err := img.ReadDir(RootInode)
	if err != nil {
		t.Fatalf("ReadDir(RootInode) error = %v", err)
	}

	// greeting.txt is a regular file; descending through it must fail.
	if _, err := img.FollowPath("greeting.txt/nested", rootListing); !errors.Is(err, ErrNotADirectory) {
		t.Errorf("FollowPath() error = %v, want ErrNotADirectory", err)
	}
}
