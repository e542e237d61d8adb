package fft1d

import "errors"

// Sentinel errors for NewPlan and Plan.Forward/Inverse (spec §7).
var (
	// ErrSizeNotPositive is returned when N <= 0.
	ErrSizeNotPositive = errors.New("fft1d: size must be positive")

	// ErrNotPowerOfTwo is returned when N is not a power of two.
	ErrNotPowerOfTwo = errors.New("fft1d: size must be a power of two")

	// ErrLengthMismatch is returned when a buffer passed to Forward or
	// Inverse does not have exactly N elements.
	ErrLengthMismatch = errors.New("fft1d: buffer length does not match plan size")
)
