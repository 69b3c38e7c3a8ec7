package types

import "fmt"

// ErrorKind classifies failures crossing component boundaries.
type ErrorKind string

const (
	// ErrParse: a corpus file is malformed. Fatal to warm-up.
	ErrParse ErrorKind = "parse_error"
	// ErrInvalidConfig: a configured path is invalid. Fatal to warm-up.
	ErrInvalidConfig ErrorKind = "invalid_config"
	// ErrInvalidArgument: a caller-supplied identifier fails shape validation.
	ErrInvalidArgument ErrorKind = "invalid_argument"
	// ErrNotFound: a class or symbol is absent from the corpus.
	ErrNotFound ErrorKind = "not_found"
	// ErrInternal: the index is missing or corrupt when it should not be.
	ErrInternal ErrorKind = "internal"
)

// DocError is the error type carried across the resolver and facade
// boundaries. NotFound errors carry ranked suggestions so the caller can
// self-correct.
type DocError struct {
	Kind        ErrorKind
	Message     string
	Suggestions []string
}

func (e *DocError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewParseError reports a malformed corpus file; file names the offender.
func NewParseError(file string, cause error) *DocError {
	return &DocError{Kind: ErrParse, Message: fmt.Sprintf("failed to parse %s: %v", file, cause)}
}

// NewInvalidConfig reports an invalid configured path.
func NewInvalidConfig(format string, args ...any) *DocError {
	return &DocError{Kind: ErrInvalidConfig, Message: fmt.Sprintf(format, args...)}
}

// NewInvalidArgument reports a caller mistake.
func NewInvalidArgument(format string, args ...any) *DocError {
	return &DocError{Kind: ErrInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// NewNotFound reports a missing class or symbol with optional suggestions.
func NewNotFound(message string, suggestions []string) *DocError {
	return &DocError{Kind: ErrNotFound, Message: message, Suggestions: suggestions}
}

// NewInternal reports a state that should not occur in normal operation.
func NewInternal(format string, args ...any) *DocError {
	return &DocError{Kind: ErrInternal, Message: fmt.Sprintf(format, args...)}
}
