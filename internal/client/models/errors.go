package models

import (
	"errors"
	"fmt"
)

// ErrInvalid marks a value that failed Validate.
var ErrInvalid = errors.New("invalid value")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
