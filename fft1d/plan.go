package fft1d

import "math"

// Plan holds the roots-of-unity table and bit-reversal permutation for one
// fixed power-of-two transform length, so that Forward/Inverse never
// recompute them. Unlike andewx-gofft's package-level Es/perms maps, a Plan
// carries this state as a value: callers transforming different sizes, or
// calling Forward from multiple goroutines on independent Plans, never
// share mutable package state.
type Plan struct {
	n     int
	roots []complex128
	perm  []int
}

// NewPlan builds a Plan for transforms of length n, which must be a
// positive power of two.
func NewPlan(n int) (*Plan, error) {
	if n <= 0 {
		return nil, ErrSizeNotPositive
	}
	if !isPowerOfTwo(n) {
		return nil, ErrNotPowerOfTwo
	}
	return &Plan{
		n:     n,
		roots: computeRoots(n),
		perm:  bitReversalPermutation(n),
	}, nil
}

// Size returns the transform length the Plan was built for.
func (p *Plan) Size() int { return p.n }

// Forward computes the in-place forward DFT of x, which must have exactly
// p.Size() elements.
func (p *Plan) Forward(x []complex128) error {
	if len(x) != p.n {
		return ErrLengthMismatch
	}
	p.transform(x, false)
	return nil
}

// Inverse computes the in-place inverse DFT of x (normalised by 1/N), which
// must have exactly p.Size() elements.
func (p *Plan) Inverse(x []complex128) error {
	if len(x) != p.n {
		return ErrLengthMismatch
	}
	p.transform(x, true)
	return nil
}

// transform runs the iterative radix-2 decimation-in-time Cooley-Tukey
// butterfly: bit-reversal permutation on load, then log2(n) butterfly
// layers combining progressively larger blocks — mirroring the shared-
// memory dispatch's own load/bit-reverse/butterfly/store structure
// (spec §4.7), just run on the host instead of in a compute shader.
func (p *Plan) transform(x []complex128, inverse bool) {
	n := p.n
	permute(x, p.perm)

	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		stride := n / size
		for start := 0; start < n; start += size {
			for j := 0; j < half; j++ {
				w := p.roots[j*stride]
				if inverse {
					w = complex(real(w), -imag(w))
				}
				a := x[start+j]
				b := x[start+j+half] * w
				x[start+j] = a + b
				x[start+j+half] = a - b
			}
		}
	}

	if inverse {
		invN := complex(1/float64(n), 0)
		for i := range x {
			x[i] *= invN
		}
	}
}

func isPowerOfTwo(n int) bool {
	return n&(n-1) == 0
}

// computeRoots returns the n/2 distinct n-th roots of unity needed to
// drive every butterfly stage of a length-n transform, e^(-2*pi*i*k/n) for
// k in [0, n/2). Later stages index into this table with a stride, rather
// than each keeping their own smaller table.
func computeRoots(n int) []complex128 {
	half := n / 2
	roots := make([]complex128, half)
	for k := 0; k < half; k++ {
		sin, cos := math.Sincos(-2 * math.Pi * float64(k) / float64(n))
		roots[k] = complex(cos, sin)
	}
	return roots
}

// bitReversalPermutation builds the index p such that p[i] is i with its
// log2(n)-bit binary representation reversed, via the same iterative
// doubling construction as andewx-gofft's permutationIndex.
func bitReversalPermutation(n int) []int {
	perm := make([]int, n)
	for i := 1; i < n; i <<= 1 {
		for j := 0; j < i; j++ {
			perm[j] <<= 1
			perm[j+i] = perm[j] + 1
		}
	}
	return perm
}

// permute applies a bit-reversal permutation in place. Bit reversal is its
// own inverse, so a single pass of swap-if-greater suffices.
func permute(x []complex128, perm []int) {
	for i, p := range perm {
		if p > i {
			x[i], x[p] = x[p], x[i]
		}
	}
}
