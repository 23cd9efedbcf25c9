package costmodel

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is returned when an estimation input is out of range.
type ErrInvalidParameter struct {
	error
}

func NewErrInvalidParameter(format string, args ...any) *ErrInvalidParameter {
	return &ErrInvalidParameter{fmt.Errorf(format, args...)}
}

// IsInvalidParameter reports whether err wraps an ErrInvalidParameter.
func IsInvalidParameter(err error) bool {
	var target *ErrInvalidParameter
	return errors.As(err, &target)
}
