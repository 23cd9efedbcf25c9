package service

import (
	"errors"
	"fmt"
	"strings"
)

type ErrUnknownSystem struct {
	error
}

func NewErrUnknownSystem(system string, known []string) *ErrUnknownSystem {
	return &ErrUnknownSystem{fmt.Errorf("unknown system %q, expected one of: %s", system, strings.Join(known, ", "))}
}

func IsUnknownSystem(err error) bool {
	var target *ErrUnknownSystem
	return errors.As(err, &target)
}
