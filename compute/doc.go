// Package compute orchestrates the 2D DFT pipeline (spec Core B) as
// Vulkan compute-shader dispatches: device-local buffer lifecycle,
// descriptor/pipeline setup, command-buffer recording, and the barriers
// between the copy/bit-reversal/butterfly/diagonal-multiply stages.
//
// The numeric algorithm itself — which work-group count and dispatch
// variant a given transform size needs, and the host-side chirp-z
// diagonals Bluestein's reduction requires — is computed by fft1d and
// bluestein; this package only decides *when* and *with what group
// counts* to issue vkCmdDispatch, mirroring fft1d.Plan.Dispatch's
// variant/pass accounting in real dispatch calls instead of a report.
//
// Shader bytecode (SPIR-V) is supplied by the caller via ShaderSet,
// rather than compiled or embedded here: authoring and compiling the
// compute shaders themselves is outside this package's — and this
// module's — scope, the same boundary spec §1 draws around the graphics
// renderer. Without a real device, this package's own tests exercise
// only input validation (constructor and rectangle checks, the
// ErrNoBuffers guards) and DeleteBuffers; the numeric pipeline it
// dispatches is exercised by fft1d's and bluestein's own tests.
package compute
