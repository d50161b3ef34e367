// Package errors provides the error types shared by the versetab engines,
// the batch runner and the CLI.
//
// Errors fall into three groups:
//   - InputError: the batch cannot start (bad path, unsupported extension,
//     nothing to convert). These are fatal.
//   - ParseError / IOError: a single file could not be converted. The batch
//     logs them and moves on to the next file.
//   - UnsupportedError: a requested output feature is not available.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrInvalidInput indicates an unusable input path or argument
	ErrInvalidInput = errors.New("invalid input")
	// ErrMalformed indicates structurally malformed source markup
	ErrMalformed = errors.New("malformed input")
	// ErrUnsupported indicates an unsupported extension or output option
	ErrUnsupported = errors.New("unsupported")
)

// InputError reports a batch-level problem with the requested input.
// It is always fatal: the run stops before any file is converted.
type InputError struct {
	Path    string // Input path as given on the command line
	Message string // Human-readable reason
	Err     error  // Underlying error, if any
}

func (e *InputError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid input %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

func (e *InputError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// ParseError reports a file whose markup could not be turned into verses.
type ParseError struct {
	Format  string // "USX" or "USFM"
	Path    string // File path, if known
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse %s at %s: %s", e.Format, e.Path, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrMalformed
}

// Is reports ErrMalformed for every ParseError, including those that wrap
// an underlying cause.
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformed
}

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "write", "open")
	Path      string // File/resource path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// UnsupportedError represents an unsupported extension or output option
type UnsupportedError struct {
	Feature string // Feature or format that is unsupported
	Reason  string // Why it's not supported
	Err     error  // Underlying error, if any
}

func (e *UnsupportedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported %s: %s", e.Feature, e.Reason)
	}
	return fmt.Sprintf("unsupported %s", e.Feature)
}

func (e *UnsupportedError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrUnsupported
}

// NewInput creates an InputError
func NewInput(path, message string) *InputError {
	return &InputError{
		Path:    path,
		Message: message,
	}
}

// NewParse creates a ParseError
func NewParse(format, path, message string) *ParseError {
	return &ParseError{
		Format:  format,
		Path:    path,
		Message: message,
	}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// NewUnsupported creates an UnsupportedError
func NewUnsupported(feature, reason string) *UnsupportedError {
	return &UnsupportedError{
		Feature: feature,
		Reason:  reason,
	}
}

// IsFatal reports whether err must abort the whole batch.
func IsFatal(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr)
}
