// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package diagnostics implements structured diagnostic values for the
// VB6 parsing pipeline. Every stage collects diagnostics alongside its
// partial result; no stage aborts on the first failure. Rendering is
// left to an external collaborator.
package diagnostics

import "fmt"

// Severity is the weight of a diagnostic.
type Severity int

const (
	SeverityNote Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityNote:
		return "note"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Label attaches a message to a sub-span of the source.
type Label struct {
	Span    Span
	Message string
}

// Diagnostic is a value describing one condition found during a parse.
// It carries enough information to render itself; it never owns the
// source content, only a reference to it.
type Diagnostic struct {
	Kind        ErrorKind
	Severity    Severity
	PrimarySpan Span
	Labels      []Label
	Notes       []string

	// SourceName and SourceContent reference the file the diagnostic
	// was produced from. The content is shared with the SourceFile,
	// not copied.
	SourceName    string
	SourceContent string
}

// NewDiagnostic returns an error-severity diagnostic for kind at span.
func NewDiagnostic(kind ErrorKind, span Span, name, content string) Diagnostic {
	return Diagnostic{
		Kind:          kind,
		Severity:      SeverityError,
		PrimarySpan:   span,
		SourceName:    name,
		SourceContent: content,
	}
}

// WithSeverity returns a copy of the diagnostic at the given severity.
// Producing sites may promote or demote individual conditions.
func (d Diagnostic) WithSeverity(s Severity) Diagnostic {
	d.Severity = s
	return d
}

// WithLabel returns a copy of the diagnostic with an added label.
func (d Diagnostic) WithLabel(span Span, msg string) Diagnostic {
	labels := make([]Label, len(d.Labels), len(d.Labels)+1)
	copy(labels, d.Labels)
	d.Labels = append(labels, Label{Span: span, Message: msg})
	return d
}

// WithNote returns a copy of the diagnostic with an added note.
func (d Diagnostic) WithNote(note string) Diagnostic {
	notes := make([]string, len(d.Notes), len(d.Notes)+1)
	copy(notes, d.Notes)
	d.Notes = append(notes, note)
	return d
}

// Message returns the kind's message.
func (d Diagnostic) Message() string {
	if d.Kind == nil {
		return ""
	}
	return d.Kind.Message()
}

// Equal reports structural equality of two diagnostics.
func (d Diagnostic) Equal(other Diagnostic) bool {
	if d.Kind != other.Kind ||
		d.Severity != other.Severity ||
		d.PrimarySpan != other.PrimarySpan ||
		d.SourceName != other.SourceName ||
		d.SourceContent != other.SourceContent {
		return false
	}
	if len(d.Labels) != len(other.Labels) || len(d.Notes) != len(other.Notes) {
		return false
	}
	for i := range d.Labels {
		if d.Labels[i] != other.Labels[i] {
			return false
		}
	}
	for i := range d.Notes {
		if d.Notes[i] != other.Notes[i] {
			return false
		}
	}
	return true
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.SourceName, d.Severity, d.Message())
}
