package ridge

import "fmt"

// InvariantError mirrors bigint.InvariantError: a geometry invariant was
// violated mid-computation. It is never returned for caller-input mistakes.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string { return "ridge: invariant violated: " + e.Msg }

func invariantf(format string, args ...interface{}) {
	panic(&InvariantError{Msg: fmt.Sprintf(format, args...)})
}
