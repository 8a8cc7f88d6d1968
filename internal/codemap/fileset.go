package codemap

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/leafc-lang/leafc/internal/intern"
	"github.com/leafc-lang/leafc/internal/text"
)

// FileSet is an ordered collection of Files, keyed by FileID, plus the
// current-working-directory used for path resolution and a cursor pointing
// at the file under compilation. Lookup is O(1).
//
// AddFile, File and Cursor take FileSet's own internal lock, so they may be
// called from several goroutines in the multi-threaded mode of spec.md §5;
// the interners it wraps are locked separately when built in shared mode.
type FileSet struct {
	cwd     string
	strings *intern.StringInterner
	files   *intern.FileInterner

	mu      sync.RWMutex
	records []*File // index 0 unused sentinel, matches FileID(0) reserved
	cursor  FileID
}

// NewFileSet creates an empty FileSet rooted at cwd.
func NewFileSet(cwd string, strings *intern.StringInterner, files *intern.FileInterner) *FileSet {
	return &FileSet{
		cwd:     cwd,
		strings: strings,
		files:   files,
		records: make([]*File, 1, 16),
	}
}

// AddFile constructs a File from path+contents and registers it, returning
// its FileID. line_starts is computed by scanning contents for '\n' bytes;
// offset 0 is always the first line start.
func (fs *FileSet) AddFile(path string, contents []byte) FileID {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	abs := path
	if !filepath.IsAbs(abs) {
		if resolved, err := filepath.Abs(filepath.Join(fs.cwd, path)); err == nil {
			abs = resolved
		}
	}

	textID := fs.strings.Intern(contents)
	fs.files.Intern(abs, contents)

	id := FileID(len(fs.records))
	fs.records = append(fs.records, &File{
		ID:          id,
		DisplayName: filepath.Base(path),
		AbsPath:     abs,
		TextID:      textID,
		lineIndex:   text.NewLineIndex(contents),
	})
	fs.cursor = id
	return id
}

// File returns the File for id, or nil if id is unknown.
func (fs *FileSet) File(id FileID) *File {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	idx := int(id)
	if idx <= 0 || idx >= len(fs.records) {
		return nil
	}
	return fs.records[idx]
}

// Cursor returns the FileID of the file most recently added, i.e. the file
// currently under compilation.
func (fs *FileSet) Cursor() FileID {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.cursor
}

// CWD returns the current-working-directory used to resolve relative paths.
func (fs *FileSet) CWD() string {
	return fs.cwd
}

// Resolve converts a byte offset in file id to a 0-indexed LineColumn by
// binary-searching line_starts for the last entry <= position.
func (fs *FileSet) Resolve(id FileID, pos text.ByteOffset) (LineColumn, error) {
	f := fs.File(id)
	if f == nil {
		return LineColumn{}, fmt.Errorf("codemap: unknown file id %v", id)
	}
	pt, err := f.lineIndex.OffsetToPoint(pos)
	if err != nil {
		return LineColumn{}, fmt.Errorf("codemap: resolve %v@%d: %w", id, pos, err)
	}
	return LineColumn{Line: pt.Line, Column: pt.Column}, nil
}

// Location is the canonical identity of a syntactic fragment: a FileID and
// a Span within that file.
type Location struct {
	File FileID
	Span text.Span
}

func (l Location) String() string {
	return fmt.Sprintf("%v:%s", l.File, l.Span)
}

// SpanToLineRange resolves both endpoints of a Location to LineColumns.
func (fs *FileSet) SpanToLineRange(loc Location) (start, end LineColumn, err error) {
	start, err = fs.Resolve(loc.File, loc.Span.Start)
	if err != nil {
		return LineColumn{}, LineColumn{}, err
	}
	end, err = fs.Resolve(loc.File, loc.Span.End)
	if err != nil {
		return LineColumn{}, LineColumn{}, err
	}
	return start, end, nil
}
