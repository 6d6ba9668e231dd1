package models

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidField is matched by every *InvalidFieldError
	ErrInvalidField = errors.New("invalid settings field")
	// ErrInvalidEnum is matched by every *InvalidEnumError
	ErrInvalidEnum = errors.New("invalid enum value")
)

// InvalidFieldError is returned when a toggle names a field that is not a boolean setting.
type InvalidFieldError struct {
	Field string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidField, e.Field)
}

func (e *InvalidFieldError) Is(target error) bool {
	return target == ErrInvalidField
}

// InvalidEnumError is returned for a value outside an enumerated set.
type InvalidEnumError struct {
	Enum  string
	Value string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("%s for %s: %q", ErrInvalidEnum, e.Enum, e.Value)
}

func (e *InvalidEnumError) Is(target error) bool {
	return target == ErrInvalidEnum
}
