// Package driver ties codemap, lexer, and parser together into compilation
// sessions (spec.md §5), in both the single-threaded default mode and an
// opt-in multi-threaded mode that parses distinct files concurrently while
// sharing only the interners and code map.
package driver

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/leafc-lang/leafc/internal/codemap"
	"github.com/leafc-lang/leafc/internal/config"
	"github.com/leafc-lang/leafc/internal/diagnostics"
	"github.com/leafc-lang/leafc/internal/greentree"
	"github.com/leafc-lang/leafc/internal/intern"
	"github.com/leafc-lang/leafc/internal/parser"
	"github.com/leafc-lang/leafc/internal/redtree"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Session is one compilation run: the shared code map and interners, the
// resolved configuration, and a logger tagged with the session's UUID.
// Nothing on Session is mutated concurrently except through the FileSet and
// interners, which are internally synchronized (spec.md §5: "shared state
// limited to interners and the code map").
type Session struct {
	ID      string
	Config  config.Configuration
	Logger  *logrus.Logger
	Strings *intern.StringInterner
	Files   *intern.FileInterner
	FileSet *codemap.FileSet
}

// NewSession builds a Session. In multi-threaded mode the interners are the
// shareable, lock-protected variants (spec.md §5: "makes interners
// shareable via a reference-counted, internally-locked insert path");
// single-threaded mode uses the plain variants, which are cheaper since
// they never need to synchronize.
func NewSession(cfg config.Configuration, logger *logrus.Logger, cwd string) *Session {
	var strings *intern.StringInterner
	var files *intern.FileInterner
	if cfg.MultiThreaded {
		strings = intern.NewSharedStringInterner()
		files = intern.NewSharedFileInterner()
	} else {
		strings = intern.NewStringInterner()
		files = intern.NewFileInterner()
	}
	return &Session{
		ID:      uuid.NewString(),
		Config:  cfg,
		Logger:  logger,
		Strings: strings,
		Files:   files,
		FileSet: codemap.NewFileSet(cwd, strings, files),
	}
}

// FileResult is the outcome of compiling a single file through the front
// end: its green tree and the diagnostics raised while building it. The
// tree is always present, even when diagnostics include errors, so later
// phases can still emit best-effort output (spec.md §7).
type FileResult struct {
	File   codemap.FileID
	Path   string
	Source []byte
	Tree   *greentree.GreenNode
	Diags  *diagnostics.Manager
}

// Root returns the red-tree view of the result's green tree.
func (r FileResult) Root() *redtree.SyntaxNode { return redtree.NewRoot(r.Tree) }

// CompileFiles reads and parses every path, registering each with the
// session's FileSet first (spec.md §5 requires AddFile calls to be
// serialized even in multi-threaded mode, since FileSet itself takes its
// own lock per call but the driver still adds files up front to keep
// FileIDs assigned in argument order). A file that cannot be read is a
// non-located FileNotFound error that aborts the whole run; parse errors
// never abort — they accumulate into each FileResult's Diags.
func CompileFiles(ctx context.Context, s *Session, paths []string) ([]FileResult, error) {
	sources := make([][]byte, len(paths))
	ids := make([]codemap.FileID, len(paths))
	for i, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, diagnostics.Wrap(diagnostics.FileNotFound, fmt.Errorf("%s: %w", p, err))
		}
		sources[i] = data
		ids[i] = s.FileSet.AddFile(p, data)
	}

	results := make([]FileResult, len(paths))
	if !s.Config.MultiThreaded {
		for i := range paths {
			results[i] = compileOne(s, paths[i], ids[i], sources[i])
		}
		return results, nil
	}

	g, _ := errgroup.WithContext(ctx)
	for i := range paths {
		i := i
		g.Go(func() error {
			results[i] = compileOne(s, paths[i], ids[i], sources[i])
			return nil
		})
	}
	// Parse errors live in each FileResult, not in g's own error; every
	// goroutine above returns nil, and Wait reports only errors returned by
	// the goroutines, so it returns nil here.
	if err := g.Wait(); err != nil {
		return nil, diagnostics.Wrap(diagnostics.DriverInitialization, err)
	}
	return results, nil
}

func compileOne(s *Session, path string, id codemap.FileID, src []byte) FileResult {
	entry := sessionEntry(s, path)
	tree, diags := parser.Parse(src, id)
	entry.WithField("diagnostics", diags.Count()).Debug("parsed file")
	return FileResult{File: id, Path: path, Source: src, Tree: tree, Diags: diags}
}

func sessionEntry(s *Session, path string) *logrus.Entry {
	return s.Logger.WithFields(logrus.Fields{"session": s.ID, "phase": "parse", "file": path})
}

// HasErrors reports whether any of results carries an error-severity
// diagnostic — the condition spec.md §7 keys a non-zero exit off.
func HasErrors(results []FileResult) bool {
	for _, r := range results {
		if r.Diags.HasErrors() {
			return true
		}
	}
	return false
}

// RenderDiagnostics writes every diagnostic from every result to w, one per
// line, via fmt.Fprintln(w, diag). Rendering happens once at the end of the
// parse phase (spec.md §7: "the driver aggregates Parse errors from each
// file and renders them through a sink at the end of a phase"), not
// incrementally as each file finishes.
func RenderDiagnostics(w io.Writer, results []FileResult) {
	for _, r := range results {
		r.Diags.Iterate(func(d diagnostics.Diagnostic) {
			fmt.Fprintln(w, d.String())
		})
	}
}
