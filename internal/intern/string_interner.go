// Package intern assigns stable small-integer identifiers to byte strings
// and source files so the rest of the compiler can compare identity instead
// of content.
package intern

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// StringID is an opaque, non-zero identifier for an interned byte string.
type StringID uint32

func (id StringID) String() string {
	return fmt.Sprintf("StringID(%d)", uint32(id))
}

// StringInterner assigns stable ids to byte strings: intern(s) == intern(s)
// for equal s, and distinct ids imply distinct content. By default it is
// single-threaded (no locking); call NewSharedStringInterner for the
// multi-threaded mode described in spec.md §5.
type StringInterner struct {
	shared bool
	mu     sync.Mutex // held only when shared; no-op lock otherwise

	byHash map[uint64][]StringID // hash bucket -> candidate ids (collision chain)
	values [][]byte              // StringID i -> bytes, 1-based (index 0 unused)
}

// NewStringInterner creates a single-threaded interner.
func NewStringInterner() *StringInterner {
	return &StringInterner{values: make([][]byte, 1, 64), byHash: make(map[uint64][]StringID)}
}

// NewSharedStringInterner creates an interner safe for concurrent Intern
// calls from multiple goroutines. Intern, Lookup and Len all take the same
// exclusive mutex, so lookups are not lock-free: concurrent lookups
// serialize with each other and with inserts.
func NewSharedStringInterner() *StringInterner {
	s := NewStringInterner()
	s.shared = true
	return s
}

// Intern returns the existing id for s if present, else allocates a new one.
// The returned id is monotonically increasing from 1 across the interner's
// lifetime.
func (si *StringInterner) Intern(s []byte) StringID {
	if si.shared {
		si.mu.Lock()
		defer si.mu.Unlock()
	}

	h := xxhash.Sum64(s)
	for _, id := range si.byHash[h] {
		if string(si.values[id]) == string(s) {
			return id
		}
	}

	if len(si.values) >= maxInternedIDs {
		panic("intern: exceeded maximum number of interned strings")
	}

	cp := make([]byte, len(s))
	copy(cp, s)
	id := StringID(len(si.values))
	si.values = append(si.values, cp)
	si.byHash[h] = append(si.byHash[h], id)
	return id
}

// InternString is a convenience wrapper around Intern for string inputs.
func (si *StringInterner) InternString(s string) StringID {
	return si.Intern([]byte(s))
}

// Lookup returns the original bytes for id. It is a precondition that id was
// produced by this interner; violating it returns (nil, false).
func (si *StringInterner) Lookup(id StringID) ([]byte, bool) {
	if si.shared {
		si.mu.Lock()
		defer si.mu.Unlock()
	}
	idx := int(id)
	if idx <= 0 || idx >= len(si.values) {
		return nil, false
	}
	return si.values[idx], true
}

// LookupString is Lookup decoded as a string.
func (si *StringInterner) LookupString(id StringID) (string, bool) {
	b, ok := si.Lookup(id)
	if !ok {
		return "", false
	}
	return string(b), true
}

// Len returns the number of interned strings (not counting the unused
// sentinel at index 0).
func (si *StringInterner) Len() int {
	if si.shared {
		si.mu.Lock()
		defer si.mu.Unlock()
	}
	return len(si.values) - 1
}

// maxInternedIDs is a practical ceiling well short of the platform's
// usize::MAX - 1 failure mode in spec.md §4.1; this module aborts the same
// way, just at a value that will never be reached by a legitimate session.
const maxInternedIDs = 1 << 31
