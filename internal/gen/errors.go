package gen

import (
	"errors"
	"fmt"
)

// ValidationError marks a precondition failure on a generator's input
// (empty parent table, missing role population). The pipeline treats it as
// a degraded stage, not a fatal error.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
