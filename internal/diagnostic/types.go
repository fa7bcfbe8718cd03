package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"formbind/internal/common"
)

// Codes reported by the analyzer.
const (
	CodeMarkerNotType       = "marker_not_type"
	CodeMarkerNotStruct     = "marker_not_struct"
	CodeMarkerGeneric       = "marker_generic"
	CodeMarkerBadOption     = "marker_bad_option"
	CodeMarkerUnknown       = "marker_unknown"
	CodePresenterNotField   = "presenter_not_field"
	CodePresenterUnexported = "presenter_unexported"
	CodePresenterEmptyID    = "presenter_empty_id"
	CodePresenterType       = "presenter_incompatible"
	CodeDuplicateID         = "duplicate_presenter_id"
	CodeImplNameConflict    = "impl_name_conflict"
	CodeNoPresenters        = "no_presenters"
	CodeTagTypo             = "tag_typo"
	CodeStaleGenerated      = "stale_generated"
)

// Diagnostics holds all diagnostic information from one generation round.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Decl names the marked declaration this relates to (if any).
	Decl string
	// Field names the presenter field this relates to (if any).
	Field string
	// Pos locates the offending source, when known.
	Pos token.Position
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Errorf builds an error diagnostic.
func Errorf(code, decl, field string, pos token.Position, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Decl:     decl,
		Field:    field,
		Pos:      pos,
	}
}

// WithSuggestions returns a copy of d carrying the given suggestions.
func (d Diagnostic) WithSuggestions(s ...string) Diagnostic {
	d.Suggestions = append(append([]string(nil), d.Suggestions...), s...)
	return d
}

// Add appends d to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	if diag.Severity == SeverityError {
		d.Errors = append(d.Errors, diag)
		return
	}

	d.Warnings = append(d.Warnings, diag)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, decl, field string, pos token.Position) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Decl:     decl,
		Field:    field,
		Pos:      pos,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns the error diagnostics joined, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	errs := make([]error, 0, len(d.Errors))
	for _, e := range d.Errors {
		errs = append(errs, e)
	}

	return errors.Join(errs...)
}

// Error implements error.
func (d Diagnostic) Error() string {
	return d.String()
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Pos.IsValid() {
		prefix = append(prefix, d.Pos.String()+":")
	}

	if d.Decl != "" {
		prefix = append(prefix, "["+d.Decl+"]")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(d.Suggestions, ", "))
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
