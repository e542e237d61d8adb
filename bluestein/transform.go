package bluestein

import (
	"github.com/cppd/math-sub006/fft1d"
)

// axisPlan precomputes everything Transform1D needs to repeatedly
// transform one fixed length n, the way fft1d.Plan precomputes roots and
// a permutation for one fixed power-of-two length: an axisPlan either
// wraps a power-of-two fft1d.Plan directly (identity chirp), or carries
// the oversized fft1d.Plan and the precomputed forward chirp diagonal
// Bluestein's reduction needs.
type axisPlan struct {
	n int

	// direct is set when n is already a power of two (spec §4.6's
	// degenerate case): the chirp machinery is skipped entirely.
	direct *fft1d.Plan

	m     int
	mPlan *fft1d.Plan
	h     []complex128
	d     []complex128
}

func newAxisPlan(n int) (*axisPlan, error) {
	if n == 1 || isPowerOfTwo(n) {
		plan, err := fft1d.NewPlan(n)
		if err != nil {
			return nil, err
		}
		return &axisPlan{n: n, direct: plan}, nil
	}

	m := nextPowerOfTwo(2*n - 1)
	mPlan, err := fft1d.NewPlan(m)
	if err != nil {
		return nil, err
	}

	h := chirpSequence(n, false)
	h2 := embedChirp(h, m)
	if err := mPlan.Forward(h2); err != nil {
		return nil, err
	}

	return &axisPlan{n: n, m: m, mPlan: mPlan, h: h, d: h2}, nil
}

// forward runs Bluestein's algorithm for one axis in place on x (which
// must have length a.n), following spec §4.6's five numbered steps: scatter
// through the conjugate chirp, forward length-M FFT, multiply by the precomputed
// diagonal, inverse length-M FFT, gather through the conjugate chirp.
func (a *axisPlan) forward(x []complex128) error {
	if a.direct != nil {
		return a.direct.Forward(x)
	}

	buf := make([]complex128, a.m)
	for l := 0; l < a.n; l++ {
		buf[l] = x[l] * conj(a.h[l])
	}

	if err := a.mPlan.Forward(buf); err != nil {
		return err
	}
	for i := range buf {
		buf[i] *= a.d[i]
	}
	if err := a.mPlan.Inverse(buf); err != nil {
		return err
	}

	for l := 0; l < a.n; l++ {
		x[l] = buf[l] * conj(a.h[l])
	}
	return nil
}

// inverse computes the inverse DFT via IDFT(x) == conj(DFT(conj(x)))/n,
// reusing the forward pipeline instead of a second, independently-derived
// chirp/diagonal pair — the same identity fft1d.Plan's own Inverse relies
// on implicitly by conjugating its roots table, just applied around the
// whole Bluestein reduction rather than inside a single butterfly stage.
func (a *axisPlan) inverse(x []complex128) error {
	if a.direct != nil {
		return a.direct.Inverse(x)
	}

	for i := range x {
		x[i] = conj(x[i])
	}
	if err := a.forward(x); err != nil {
		return err
	}
	scale := complex(1/float64(a.n), 0)
	for i := range x {
		x[i] = conj(x[i]) * scale
	}
	return nil
}

func (a *axisPlan) transform(x []complex128, inverse bool) error {
	if inverse {
		return a.inverse(x)
	}
	return a.forward(x)
}

// Transform1D computes the forward (or, if inverse, the inverse) DFT of x
// in place. x's length need not be a power of two.
func Transform1D(x []complex128, inverse bool) error {
	if len(x) == 0 {
		return ErrEmptyInput
	}
	plan, err := newAxisPlan(len(x))
	if err != nil {
		return err
	}
	return plan.transform(x, inverse)
}

// Transform2D computes the 2D DFT of a width*height row-major complex
// grid in place: every row transformed by a width-length axisPlan, then
// every column by a height-length axisPlan, per spec §4.6 ("apply the
// per-axis transform to every row, then every column"). Either dimension
// may be 1, in which case that axis is skipped (spec: "if N=1 along one
// axis, skip that axis; if both are 1, the output equals the input").
func Transform2D(width, height int, data []complex128, inverse bool) error {
	if len(data) != width*height {
		return ErrDimensionMismatch
	}
	if width == 1 && height == 1 {
		return nil
	}

	if width > 1 {
		rowPlan, err := newAxisPlan(width)
		if err != nil {
			return err
		}
		row := make([]complex128, width)
		for r := 0; r < height; r++ {
			copy(row, data[r*width:(r+1)*width])
			if err := rowPlan.transform(row, inverse); err != nil {
				return err
			}
			copy(data[r*width:(r+1)*width], row)
		}
	}

	if height > 1 {
		colPlan, err := newAxisPlan(height)
		if err != nil {
			return err
		}
		col := make([]complex128, height)
		for c := 0; c < width; c++ {
			for r := 0; r < height; r++ {
				col[r] = data[r*width+c]
			}
			if err := colPlan.transform(col, inverse); err != nil {
				return err
			}
			for r := 0; r < height; r++ {
				data[r*width+c] = col[r]
			}
		}
	}

	return nil
}

// ChirpDiagonal exposes the host-side precompute a GPU-backed caller (the
// compute package) needs before it can run this axis's FFT passes on a
// device buffer instead of in process memory: the chirp sequence h, its
// length-M embedded-FFT diagonal d, and M itself. When n is already a
// power of two the chirp is the identity and M == n, so h and d are nil —
// callers should skip the diagonal-multiply dispatch entirely in that
// case, matching spec §4.6's degenerate-case instruction.
func ChirpDiagonal(n int) (h, d []complex128, m int, err error) {
	a, err := newAxisPlan(n)
	if err != nil {
		return nil, nil, 0, err
	}
	if a.direct != nil {
		return nil, nil, a.n, nil
	}
	return a.h, a.d, a.m, nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
