package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks a malformed sort input or a failing key selector.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidConfiguration marks a harness or tool configuration that cannot run.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// InputError is returned by the sort implementations.
type InputError struct {
	Algorithm string
	Index     int // element whose key failed, -1 when not element specific
	Message   string
	Err       error
}

// Error implements the error interface
func (e *InputError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Algorithm, e.Message)
	if e.Index >= 0 {
		msg = fmt.Sprintf("%s (element %d)", msg, e.Index)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *InputError) Unwrap() error { return e.Err }

func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }

// ConfigError is returned before any work starts when a setting is out of range.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Message)
}

func (e *ConfigError) Is(target error) bool { return target == ErrInvalidConfiguration }

// NewInputError creates a new InputError
func NewInputError(algorithm string, index int, message string, err error) *InputError {
	return &InputError{
		Algorithm: algorithm,
		Index:     index,
		Message:   message,
		Err:       err,
	}
}

// NewConfigError creates a new ConfigError
func NewConfigError(field, format string, args ...any) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsInvalidInput reports whether err originates from malformed sort input.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsInvalidConfiguration reports whether err originates from a bad setting.
func IsInvalidConfiguration(err error) bool {
	return errors.Is(err, ErrInvalidConfiguration)
}
