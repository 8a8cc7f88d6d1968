// Package diagnostics implements the error taxonomy and accumulation
// interface of spec.md §4.6/§7: located errors carry a codemap.Location,
// non-located errors are plain Go errors that propagate and abort a run.
package diagnostics

import (
	"fmt"

	"github.com/leafc-lang/leafc/internal/codemap"
)

// Severity distinguishes an error from a warning. Warnings never cause a
// non-zero exit (spec.md §7); errors do.
type Severity uint8

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Kind is the located-error taxonomy from spec.md §7.
type Kind uint8

const (
	UnknownToken Kind = iota
	UnexpectedToken
	UnterminatedLiteral
	InvalidNumericLiteral
)

func (k Kind) String() string {
	switch k {
	case UnknownToken:
		return "unknown token"
	case UnexpectedToken:
		return "unexpected token"
	case UnterminatedLiteral:
		return "unterminated literal"
	case InvalidNumericLiteral:
		return "invalid numeric literal"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Locatable wraps a value with the codemap.Location it was produced at —
// spec.md §4.6's generic `Locatable[T]`.
type Locatable[T any] struct {
	Value    T
	Location codemap.Location
}

// Diagnostic is a single located error or warning.
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	Message  string
	Location codemap.Location
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Location, d.Severity, d.Message)
}

// Manager holds two FIFO queues (errors, warnings) and the accumulation
// operations spec.md §4.6 names: add, iterate, count, has_any. It never
// renders or prints; emitting to a terminal, file, or structured report is
// an external sink's job (spec.md §4.6).
type Manager struct {
	errors   []Diagnostic
	warnings []Diagnostic
}

// NewManager returns an empty Manager.
func NewManager() *Manager {
	return &Manager{}
}

// Add appends d to the errors or warnings queue according to its severity.
func (m *Manager) Add(d Diagnostic) {
	if d.Severity == SeverityError {
		m.errors = append(m.errors, d)
		return
	}
	m.warnings = append(m.warnings, d)
}

// AddError is a convenience wrapper that builds and adds an error-severity
// Diagnostic.
func (m *Manager) AddError(kind Kind, message string, loc codemap.Location) {
	m.Add(Diagnostic{Kind: kind, Severity: SeverityError, Message: message, Location: loc})
}

// AddWarning is the warning-severity counterpart to AddError.
func (m *Manager) AddWarning(kind Kind, message string, loc codemap.Location) {
	m.Add(Diagnostic{Kind: kind, Severity: SeverityWarning, Message: message, Location: loc})
}

// Errors returns the accumulated errors in the order they were added.
func (m *Manager) Errors() []Diagnostic { return m.errors }

// Warnings returns the accumulated warnings in the order they were added.
func (m *Manager) Warnings() []Diagnostic { return m.warnings }

// Iterate yields every diagnostic, errors first, then warnings, each in
// FIFO order.
func (m *Manager) Iterate(visit func(Diagnostic)) {
	for _, d := range m.errors {
		visit(d)
	}
	for _, d := range m.warnings {
		visit(d)
	}
}

// Count returns the total number of accumulated diagnostics.
func (m *Manager) Count() int { return len(m.errors) + len(m.warnings) }

// HasAny reports whether any diagnostic, of either severity, was recorded.
func (m *Manager) HasAny() bool { return m.Count() > 0 }

// HasErrors reports whether any error-severity diagnostic was recorded.
// spec.md §7's user-visible failure behavior keys a non-zero exit off this,
// not off HasAny — warnings alone must not fail the run.
func (m *Manager) HasErrors() bool { return len(m.errors) > 0 }
