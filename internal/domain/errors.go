package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidConfig      = errors.New("invalid config")
	ErrMissingDefinitions = errors.New("definitions file not found")
	ErrExecution          = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound           ErrorKind = "not_found"
	KindInvalidConfig      ErrorKind = "invalid_config"
	KindMissingDefinitions ErrorKind = "missing_definitions"
	KindExecution          ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// Execution wraps an I/O failure so it matches both ErrExecution and err.
func Execution(op, path string, err error) error {
	return &OpError{
		Op:   op,
		Kind: KindExecution,
		Path: path,
		Err:  fmt.Errorf("%w: %w", ErrExecution, err),
	}
}

// MissingDefinitions builds the error reported when the definitions file is absent.
func MissingDefinitions(op, path string) error {
	return &OpError{
		Op:   op,
		Kind: KindMissingDefinitions,
		Path: path,
		Err:  ErrMissingDefinitions,
	}
}
