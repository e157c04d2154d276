package errors

import (
	"errors"
	"strings"
)

// ValidationError aggregates every problem found while validating a
// configuration. Generation must refuse to start while any problem remains,
// and callers get the full list rather than just the first failure.
type ValidationError struct {
	Problems []string
}

// Error implements the error interface. All problems are joined so a single
// log line or CLI message shows everything that needs fixing.
func (e *ValidationError) Error() string {
	return "invalid configuration: " + strings.Join(e.Problems, "; ")
}

// Validation wraps a list of problems into a CONFIG_INVALID error.
// Returns nil when the list is empty.
func Validation(problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return Wrap(ErrCodeConfigInvalid, &ValidationError{Problems: problems},
		"%d configuration problem(s)", len(problems))
}

// Problems extracts the individual validation problems from an error chain.
// Returns nil if the error does not carry a ValidationError.
func Problems(err error) []string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Problems
	}
	return nil
}
