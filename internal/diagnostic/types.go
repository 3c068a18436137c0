package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"strenum/internal/common"
)

// Diagnostic codes.
const (
	// CodeInvalidDiscriminant marks an annotation that is not a string literal.
	// The variant falls back to its symbolic name.
	CodeInvalidDiscriminant = "invalid-discriminant"
	// CodeDuplicateRepresentation marks two variants sharing one representation.
	CodeDuplicateRepresentation = "duplicate-representation"
	// CodeEmptyRepresentation marks an explicit empty string literal.
	CodeEmptyRepresentation = "empty-representation"
)

// Diagnostics holds all diagnostic information from one generation run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Enum names the enum type this relates to (if any).
	Enum string
	// Variant names the variant this relates to (if any).
	Variant string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticWarning DiagnosticSeverity = iota + 1
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, enum, variant string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  message,
		Enum:     enum,
		Variant:  variant,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, enum, variant string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Enum:     enum,
		Variant:  variant,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Len returns the total number of diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings)
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// Promote moves every warning to the error list. Used by strict mode.
func (d *Diagnostics) Promote() {
	for _, w := range d.Warnings {
		w.Severity = DiagnosticError
		d.Errors = append(d.Errors, w)
	}

	d.Warnings = nil
}

// All returns errors followed by warnings.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, d.Len())
	all = append(all, d.Errors...)

	return append(all, d.Warnings...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix string

	switch {
	case d.Enum != "" && d.Variant != "":
		prefix = d.Enum + "." + d.Variant
	case d.Enum != "":
		prefix = d.Enum
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if prefix != "" {
		return prefix + ": " + msg
	}

	return msg
}
