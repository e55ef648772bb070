package errors

import (
	"fmt"
	"strings"
)

// TransformError represents a single lowering diagnostic with rich context.
// Diagnostics are recoverable: the pass that produced one leaves the
// offending node in place and the traversal continues.
type TransformError struct {
	Code        ErrorCode
	Message     string
	Pass        string // name of the pass that produced the diagnostic
	Filename    string
	Line        int // 1-based
	Column      int // 1-based
	EndColumn   int
	SourceLine  string
	Suggestions []Suggestion
	Note        string
}

// Error implements the error interface.
func (e *TransformError) Error() string {
	var b strings.Builder
	b.WriteString("transform error: ")
	b.WriteString(e.Message)
	if e.Filename != "" || e.Line > 0 {
		b.WriteString("\n\nlocation: ")
		if e.Filename != "" {
			b.WriteString(e.Filename)
			b.WriteString(":")
		}
		fmt.Fprintf(&b, "%d:%d", e.Line, e.Column)
	}
	return b.String()
}

// Location returns the diagnostic's position as a SourceLocation.
func (e *TransformError) Location() SourceLocation {
	return SourceLocation{
		Filename: e.Filename,
		Line:     e.Line,
		Column:   e.Column,
		Source:   e.SourceLine,
	}
}

// FriendlyErrorMessage returns a human-friendly error message.
func (e *TransformError) FriendlyErrorMessage() string {
	formatted := e.ToFormatted()
	formatter := NewFormatter(false)
	return formatter.Format(formatted)
}

// ToFormatted converts to the FormattedError type for display.
func (e *TransformError) ToFormatted() *FormattedError {
	fe := &FormattedError{
		Code:      e.Code,
		Kind:      "error",
		Message:   e.Message,
		Filename:  e.Filename,
		Line:      e.Line,
		Column:    e.Column,
		EndColumn: e.EndColumn,
		Note:      e.Note,
	}
	if e.SourceLine != "" {
		fe.SourceLines = []SourceLineEntry{
			{Number: e.Line, Text: e.SourceLine, IsMain: true},
		}
	}
	if len(e.Suggestions) > 0 {
		fe.Hint = FormatSuggestions(e.Suggestions)
	}
	return fe
}

// TransformErrors holds the diagnostics of one transform run in emission
// order. The order is never changed and duplicates are never removed, so
// callers can rely on the log to mirror the traversal.
type TransformErrors struct {
	Errors []*TransformError
}

// Error implements the error interface.
func (e *TransformErrors) Error() string {
	if len(e.Errors) == 0 {
		return ""
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", e.Errors[0].Error(), len(e.Errors)-1)
}

// FriendlyErrorMessage returns a human-friendly error message for all errors.
func (e *TransformErrors) FriendlyErrorMessage() string {
	if len(e.Errors) == 0 {
		return ""
	}
	var formatted []*FormattedError
	for _, err := range e.Errors {
		formatted = append(formatted, err.ToFormatted())
	}
	formatter := NewFormatter(false)
	return formatter.FormatMultiple(formatted)
}

// Add appends a diagnostic to the collection.
func (e *TransformErrors) Add(err *TransformError) {
	e.Errors = append(e.Errors, err)
}

// Count returns the number of diagnostics.
func (e *TransformErrors) Count() int {
	return len(e.Errors)
}

// HasErrors returns true if there are any diagnostics.
func (e *TransformErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// ToError returns the diagnostics as a single error, or nil if empty.
func (e *TransformErrors) ToError() error {
	if len(e.Errors) == 0 {
		return nil
	}
	if len(e.Errors) == 1 {
		return e.Errors[0]
	}
	return e
}
