package parsec

import (
	"fmt"

	"github.com/pkg/errors"
)

// Failure reports that a parser could not match. Offset is the scan
// position at the moment of failure, whatever the cursor does
// afterward. Failure is the only error backtracking combinators catch;
// anything else propagates uncaught.
type Failure struct {
	Message string
	Offset  int
}

func (f *Failure) Error() string {
	return fmt.Sprintf("parse error: %v at position %v", f.Message, f.Offset)
}

func failf(offset int, format string, args ...any) (any, error) {
	return nil, &Failure{Message: fmt.Sprintf(format, args...), Offset: offset}
}

// IsFailure reports whether err is, or wraps, a parse Failure.
func IsFailure(err error) bool {
	var f *Failure
	return errors.As(err, &f)
}
