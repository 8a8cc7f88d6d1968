package driver

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/leafc-lang/leafc/internal/diagnostics"
)

// ReplHistory is a line-oriented history file, newest entry last, persisted
// under $LEAFC_HOME (spec.md §6's "Persisted state: ... REPL history file
// (line-oriented, newest last)").
type ReplHistory struct {
	path    string
	entries []string
}

// LoadReplHistory reads the history file under home, or returns an empty
// history if none exists yet. A file that exists but cannot be read is a
// non-located ReplHistoryFileOpen error.
func LoadReplHistory(home string) (*ReplHistory, error) {
	path := filepath.Join(home, "repl_history")
	h := &ReplHistory{path: path}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return h, nil
		}
		return nil, diagnostics.Wrap(diagnostics.ReplHistoryFileOpen, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		h.entries = append(h.entries, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, diagnostics.Wrap(diagnostics.ReplHistoryFileOpen, err)
	}
	return h, nil
}

// Entries returns the history's lines, oldest first.
func (h *ReplHistory) Entries() []string { return h.entries }

// Append adds line as the newest entry and appends it to the history file.
func (h *ReplHistory) Append(line string) error {
	h.entries = append(h.entries, line)
	if err := os.MkdirAll(filepath.Dir(h.path), 0o755); err != nil {
		return diagnostics.Wrap(diagnostics.ReplHistoryFileOpen, err)
	}
	f, err := os.OpenFile(h.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return diagnostics.Wrap(diagnostics.ReplHistoryFileOpen, err)
	}
	defer f.Close()
	if _, err := f.WriteString(line + "\n"); err != nil {
		return diagnostics.Wrap(diagnostics.ReplHistoryFileOpen, err)
	}
	return nil
}

// ReplSettings are the interactive-mode options a REPL session can change
// mid-session (spec.md §6), separate from the Configuration loaded at
// startup so a REPL can be reconfigured without restarting the process.
type ReplSettings struct {
	Verbosity string
	OptLevel  string
}

// Update applies a `key=value` setting change, as a REPL `:set` command
// would. An unrecognized key is a non-located ReplInvalidSettingsUpdate
// error, since unlike a malformed source line it has no location to attach
// a diagnostic to.
func (s *ReplSettings) Update(key, value string) error {
	switch key {
	case "verbosity":
		s.Verbosity = value
	case "opt-level":
		s.OptLevel = value
	default:
		return diagnostics.Wrapf(diagnostics.ReplInvalidSettingsUpdate, "unknown setting %q", key)
	}
	return nil
}
