package bigint

// InvariantError is the panic value raised by invariantf. Every package in
// this module that detects a geometry invariant violated mid-computation
// (as opposed to a caller-input error, which is always an ordinary returned
// error) panics with one of these, matching spec §7's split between fatal
// input errors and assert-fail bugs.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string { return "bigint: invariant violated: " + e.Msg }
