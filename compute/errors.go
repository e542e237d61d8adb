package compute

import "errors"

var (
	// ErrNilDevice is returned when a nil *Device is passed to
	// NewComputeImage or NewComputeVector.
	ErrNilDevice = errors.New("compute: device is nil")

	// ErrNoShaders is returned when no ShaderSet option was supplied:
	// this package has no SPIR-V of its own to fall back to.
	ErrNoShaders = errors.New("compute: no shader bytecode configured")

	// ErrNoBuffers is returned by ComputeCommands/Exec when CreateBuffers
	// has not been called yet, or DeleteBuffers already released it.
	ErrNoBuffers = errors.New("compute: buffers not created")

	// ErrBufferSizeMismatch is returned when a supplied data slice's
	// length does not equal the buffer's configured width*height (spec
	// §7 BufferSizeMismatch).
	ErrBufferSizeMismatch = errors.New("compute: data length does not match width*height")

	// ErrRectExceedsImage is returned when ComputeImage.CreateBuffers'
	// source rectangle does not fit inside the input image's extent.
	ErrRectExceedsImage = errors.New("compute: source rectangle exceeds input image extent")
)
