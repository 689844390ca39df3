package ext2

import (
	"fmt"
	"strings"
)

// FollowPath descends a slash-separated path component by component,
// starting from startingListing (the caller's choice of cwd or root
// listing — the resolver itself is starting-point-agnostic). It returns the
// inode number of the final component.
//
// Empty components (from leading/trailing or consecutive slashes) are
// passed through literally; since no conforming ext2 image contains a
// directory entry with an empty name, such paths fail with ErrNotFound,
// exactly as spec.md §4.5 specifies.
func (img *Image) FollowPath(path string, startingListing []DirEntry) (uint32, error) {
	components := strings.Split(path, "/")
	listing := startingListing

	for i, component := range components {
		remaining := len(components) - i - 1

		var matched *DirEntry
		for idx := range listing {
			if listing[idx].Name == component {
				matched = &listing[idx]
				break
			}
		}
		if matched == nil {
			return 0, fmt.Errorf("%w: %s", ErrNotFound, component)
		}

		if remaining == 0 {
			return matched.Inode, nil
		}

		candidate, err := img.GetInode(matched.Inode)
		if err != nil {
			return 0, err
		}
		if !candidate.typePerm.IsDirectory() {
			return 0, fmt.Errorf("%w: %s", ErrNotADirectory, component)
		}

		listing, err = img.ReadDir(matched.Inode)
		if err != nil {
			return 0, err
		}
	}

	// Not reached: strings.Split always yields at least one component (an
	// empty path yields [""], which fails the match above), and the last
	// component always returns inside the loop.
	return 0, ErrNotFound
}
