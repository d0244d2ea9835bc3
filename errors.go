package unicover

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failure conditions of unicover operations.
// Build-time structural violations are fatal; per-font conditions are
// recoverable (the offending font is skipped, the run continues).
type ErrorKind int

const (
	// KindOther is the catch-all for errors outside the taxonomy.
	KindOther ErrorKind = iota
	// KindMalformedInput indicates corrupt or unparsable reference-data
	// source text. Fatal: malformed data cannot be trusted.
	KindMalformedInput
	// KindRangeInvariantViolation indicates a UCD Last record without a
	// pending First, or a range with last < first. Fatal.
	KindRangeInvariantViolation
	// KindMissingReferenceVersion indicates that the requested Unicode
	// version has no installed reference artifact.
	KindMissingReferenceVersion
	// KindUnreadableFont indicates a font file which cannot be opened or
	// parsed. Recoverable: the font is skipped.
	KindUnreadableFont
	// KindDuplicateFont indicates a font whose resolved name has already
	// been scanned in this run. Recoverable: the duplicate is skipped.
	KindDuplicateFont
	// KindNoUsableInput indicates that no font supplied any usable data.
	// Fatal: a run without input is an abort, not a zero-coverage report.
	KindNoUsableInput
	// KindArtifactExists indicates an attempt to rebuild reference data
	// for a version which already has an artifact. Fatal: artifacts are
	// write-once.
	KindArtifactExists
)

// String returns a stable identifier for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindMalformedInput:
		return "MalformedInput"
	case KindRangeInvariantViolation:
		return "RangeInvariantViolation"
	case KindMissingReferenceVersion:
		return "MissingReferenceVersion"
	case KindUnreadableFont:
		return "UnreadableFont"
	case KindDuplicateFont:
		return "DuplicateFont"
	case KindNoUsableInput:
		return "NoUsableInput"
	case KindArtifactExists:
		return "ArtifactAlreadyExists"
	default:
		return "Error"
	}
}

// Error is the structured error type used throughout unicover. It carries a
// kind from the closed taxonomy, a human-readable detail, and an optional
// wrapped cause.
type Error struct {
	Kind   ErrorKind
	Detail string
	Cause  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Detail, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Detail)
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any error of the same kind, so that sentinels like
// ErrMalformedInput work with errors.Is.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}

// Errorf creates a taxonomy error with a formatted detail message.
func Errorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Wrap creates a taxonomy error around an underlying cause.
func Wrap(kind ErrorKind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...), Cause: cause}
}

// Sentinel values for errors.Is checks. Matching is by kind only.
var (
	ErrMalformedInput          = &Error{Kind: KindMalformedInput}
	ErrRangeInvariantViolation = &Error{Kind: KindRangeInvariantViolation}
	ErrMissingReferenceVersion = &Error{Kind: KindMissingReferenceVersion}
	ErrUnreadableFont          = &Error{Kind: KindUnreadableFont}
	ErrDuplicateFont           = &Error{Kind: KindDuplicateFont}
	ErrNoUsableInput           = &Error{Kind: KindNoUsableInput}
	ErrArtifactExists          = &Error{Kind: KindArtifactExists}
)

// Process exit codes, one per fatal error category. ExitPartial is used when
// a report run skipped some fonts but produced output for others.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitMalformed = 2
	ExitRange     = 3
	ExitMissing   = 4
	ExitNoInput   = 5
	ExitExists    = 6
	ExitPartial   = 7
)

// ExitCode maps an error to the process exit code of its category.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var e *Error
	if !errors.As(err, &e) {
		return ExitFailure
	}
	switch e.Kind {
	case KindMalformedInput:
		return ExitMalformed
	case KindRangeInvariantViolation:
		return ExitRange
	case KindMissingReferenceVersion:
		return ExitMissing
	case KindNoUsableInput:
		return ExitNoInput
	case KindArtifactExists:
		return ExitExists
	default:
		return ExitFailure
	}
}
