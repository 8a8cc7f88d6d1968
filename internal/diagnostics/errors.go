package diagnostics

import "fmt"

// NonLocatedKind is spec.md §7's non-located error taxonomy: failures with
// no source position, reported as plain messages, that propagate and abort
// a run rather than accumulating in a Manager.
type NonLocatedKind uint8

const (
	ConfigInitialization NonLocatedKind = iota
	FileNotFound
	LogInitialization
	LogFileOpen
	ReplHistoryFileOpen
	ReplInvalidSettingsUpdate
	DriverInitialization
)

func (k NonLocatedKind) String() string {
	switch k {
	case ConfigInitialization:
		return "config initialization"
	case FileNotFound:
		return "file not found"
	case LogInitialization:
		return "log initialization"
	case LogFileOpen:
		return "log file open"
	case ReplHistoryFileOpen:
		return "repl history file open"
	case ReplInvalidSettingsUpdate:
		return "repl invalid settings update"
	case DriverInitialization:
		return "driver initialization"
	default:
		return fmt.Sprintf("NonLocatedKind(%d)", uint8(k))
	}
}

// NonLocatedError is a plain Go error carrying one of the taxonomy kinds
// above, wrapping the underlying cause with %w so callers can still
// errors.Is/As through it.
type NonLocatedError struct {
	Kind NonLocatedKind
	Err  error
}

func (e *NonLocatedError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *NonLocatedError) Unwrap() error { return e.Err }

// Wrap builds a NonLocatedError of the given kind wrapping err.
func Wrap(kind NonLocatedKind, err error) error {
	if err == nil {
		return nil
	}
	return &NonLocatedError{Kind: kind, Err: err}
}

// Wrapf is Wrap with a formatted message in place of an existing error.
func Wrapf(kind NonLocatedKind, format string, args ...any) error {
	return &NonLocatedError{Kind: kind, Err: fmt.Errorf(format, args...)}
}
