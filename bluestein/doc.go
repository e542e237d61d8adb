// Package bluestein computes the 2D discrete Fourier transform of
// arbitrary (not necessarily power-of-two) dimensions, by reducing each
// axis to a power-of-two fft1d.Plan transform via Bluestein's chirp-z
// trick: scatter the input through a quadratic-phase chirp, convolve via
// an oversized power-of-two FFT, then gather back through the conjugate
// chirp.
//
// Transform1D handles one axis; Transform2D applies it to every row, then
// every column, matching spec §4.6's per-axis recipe. Axes whose length is
// already a power of two (including the degenerate length 1) skip the
// chirp machinery entirely and hand off straight to fft1d, since the
// chirp's own textbook construction degenerates to the identity there.
package bluestein
