package bluestein

import "errors"

// ErrEmptyInput is returned by Transform1D when given a zero-length input.
var ErrEmptyInput = errors.New("bluestein: input has no samples")

// ErrDimensionMismatch is returned by Transform2D when data's length does
// not equal width*height. This is distinct from compute.ErrBufferSizeMismatch,
// which guards the device-buffer/image-extent pairing one layer up.
var ErrDimensionMismatch = errors.New("bluestein: buffer length does not match width*height")
