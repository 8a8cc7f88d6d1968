package intern

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// FileKeyID is an opaque, non-zero identifier for an interned (path,
// contents) pair, keyed by absolute path.
type FileKeyID uint32

func (id FileKeyID) String() string {
	return fmt.Sprintf("FileKeyID(%d)", uint32(id))
}

// fileEntry is the registered record for one interned file.
type fileEntry struct {
	path     string
	contents []byte
}

// FileInterner assigns stable ids to (path, contents) pairs, keyed by
// absolute path, mirroring StringInterner's contract.
type FileInterner struct {
	shared bool
	mu     sync.Mutex

	byHash  map[uint64][]FileKeyID
	entries []fileEntry // index 0 unused sentinel
}

// NewFileInterner creates a single-threaded file interner.
func NewFileInterner() *FileInterner {
	return &FileInterner{entries: make([]fileEntry, 1, 16), byHash: make(map[uint64][]FileKeyID)}
}

// NewSharedFileInterner creates a file interner safe for concurrent Intern
// calls, matching spec.md §5's multi-threaded mode.
func NewSharedFileInterner() *FileInterner {
	f := NewFileInterner()
	f.shared = true
	return f
}

// Intern records path+contents and returns its FileKeyID, reusing an
// existing id if path was already interned.
func (fi *FileInterner) Intern(path string, contents []byte) FileKeyID {
	if fi.shared {
		fi.mu.Lock()
		defer fi.mu.Unlock()
	}

	h := xxhash.Sum64String(path)
	for _, id := range fi.byHash[h] {
		if fi.entries[id].path == path {
			return id
		}
	}

	cp := make([]byte, len(contents))
	copy(cp, contents)
	id := FileKeyID(len(fi.entries))
	fi.entries = append(fi.entries, fileEntry{path: path, contents: cp})
	fi.byHash[h] = append(fi.byHash[h], id)
	return id
}

// Lookup returns the (path, contents) pair for id.
func (fi *FileInterner) Lookup(id FileKeyID) (path string, contents []byte, ok bool) {
	if fi.shared {
		fi.mu.Lock()
		defer fi.mu.Unlock()
	}
	idx := int(id)
	if idx <= 0 || idx >= len(fi.entries) {
		return "", nil, false
	}
	e := fi.entries[idx]
	return e.path, e.contents, true
}
