// Package codemap registers compiled source files and resolves byte offsets
// to line/column positions.
package codemap

import (
	"fmt"

	"github.com/leafc-lang/leafc/internal/intern"
	"github.com/leafc-lang/leafc/internal/text"
)

// FileID is an opaque, densely-allocated, non-zero identifier for a File.
// FileID(0) is reserved and never assigned by a FileSet.
type FileID uint32

// NoFile is the reserved sentinel FileID.
const NoFile FileID = 0

func (id FileID) String() string {
	return fmt.Sprintf("FileID(%d)", uint32(id))
}

// File is an immutable record of one registered source file.
type File struct {
	ID          FileID
	DisplayName string
	AbsPath     string
	TextID      intern.StringID // interned source text
	lineIndex   *text.LineIndex
}

// LineStarts returns the byte offsets of the start of each line, index 0 is
// always 0. The slice must not be mutated by callers.
func (f *File) LineStarts() []text.ByteOffset {
	return f.lineIndex.LineStarts()
}

// LineColumn is a 0-indexed (line, column) pair, per spec.md §4.2: internal
// semantics are 0-indexed; 1-indexing is strictly a rendering concern left
// to the external collaborator.
type LineColumn struct {
	Line   int
	Column int
}
