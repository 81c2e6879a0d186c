package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseValue   Phase = "value"   // value model operations
	PhaseConvert Phase = "convert" // dynamic value to native type
	PhaseEmbed   Phase = "embed"   // opaque pointer embedding
	PhaseArray   Phase = "array"   // dimensioned array views
	PhaseFactor  Phase = "factor"  // categorical enumeration codec
	PhaseFrame   Phase = "frame"   // data frame access
	PhaseHeap    Phase = "heap"    // host heap operations
)

// Kind categorizes the error
type Kind string

const (
	KindExpectedNonZeroLength      Kind = "expected_non_zero_length"
	KindExpectedScalar             Kind = "expected_scalar"
	KindMustNotBeNA                Kind = "must_not_be_na"
	KindOutOfLimits                Kind = "out_of_limits"
	KindExpectedWholeNumber        Kind = "expected_whole_number"
	KindExpectedNumeric            Kind = "expected_numeric"
	KindExpectedLogical            Kind = "expected_logical"
	KindExpectedString             Kind = "expected_string"
	KindExpectedList               Kind = "expected_list"
	KindExpectedVector             Kind = "expected_vector"
	KindExpectedMatrix             Kind = "expected_matrix"
	KindExpectedMatrix3D           Kind = "expected_matrix3d"
	KindTypeMismatch               Kind = "type_mismatch"
	KindExpectedExternalPtr        Kind = "expected_external_ptr"
	KindExpectedExternalNonNullPtr Kind = "expected_external_non_null_ptr"
	KindExpectedFactor             Kind = "expected_factor"
	KindExpectedScalarFactor       Kind = "expected_scalar_factor"
	KindInvalidLevels              Kind = "invalid_levels"
	KindExpectedDataframe          Kind = "expected_dataframe"
)

// Error is the structured error type used throughout the library.
// Value holds the offending dynamic value; it is typed as any so this
// package stays a leaf with no dependency on the value model.
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Detail   string
	Found    []string // InvalidLevels: the label set attached to the value
	Expected []string // InvalidLevels: the label set the target type declares
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Found != nil || e.Expected != nil {
		b.WriteString(": found levels [")
		b.WriteString(strings.Join(e.Found, ", "))
		b.WriteString("], expected [")
		b.WriteString(strings.Join(e.Expected, ", "))
		b.WriteByte(']')
	}

	if e.Detail != "" {
		if e.Found != nil || e.Expected != nil {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Value sets the offending dynamic value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Levels sets the found and expected label sets
func (b *Builder) Levels(found, expected []string) *Builder {
	b.err.Found = found
	b.err.Expected = expected
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// ExpectedNonZeroLength reports a zero-length value where a scalar was required
func ExpectedNonZeroLength(phase Phase, value any) *Error {
	return &Error{Phase: phase, Kind: KindExpectedNonZeroLength, Value: value, Detail: "length 0, want 1"}
}

// ExpectedScalar reports a multi-element value where a scalar was required
func ExpectedScalar(phase Phase, value any, length int) *Error {
	return &Error{Phase: phase, Kind: KindExpectedScalar, Value: value, Detail: fmt.Sprintf("length %d, want 1", length)}
}

// MustNotBeNA reports a missing value where a concrete value was required
func MustNotBeNA(phase Phase, value any) *Error {
	return &Error{Phase: phase, Kind: KindMustNotBeNA, Value: value}
}

// OutOfLimits reports a numeric value outside the target type's range
func OutOfLimits(phase Phase, value any, targetType string) *Error {
	return &Error{Phase: phase, Kind: KindOutOfLimits, Value: value, Detail: fmt.Sprintf("value does not fit %s", targetType)}
}

// ExpectedWholeNumber reports a real value with a fractional part where an
// integer target was requested
func ExpectedWholeNumber(phase Phase, value any) *Error {
	return &Error{Phase: phase, Kind: KindExpectedWholeNumber, Value: value}
}

// ExpectedNumeric reports a non-numeric value where a number was required
func ExpectedNumeric(phase Phase, value any) *Error {
	return &Error{Phase: phase, Kind: KindExpectedNumeric, Value: value}
}

// TypeMismatch reports storage whose element type differs from the requested one
func TypeMismatch(phase Phase, value any, detail string) *Error {
	return &Error{Phase: phase, Kind: KindTypeMismatch, Value: value, Detail: detail}
}

// InvalidLevels reports a label set that differs from the one the target
// enumeration type declares. Both sets are carried for diagnostics.
func InvalidLevels(found, expected []string) *Error {
	return &Error{Phase: PhaseFactor, Kind: KindInvalidLevels, Found: found, Expected: expected}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{Phase: phase, Kind: kind, Detail: detail, Cause: cause}
}
