package bigint

import (
	"fmt"
	"math/big"
)

// Det computes the exact determinant of a square matrix given as rows, using
// the Bareiss fraction-free elimination algorithm. Every intermediate value
// stays an exact integer (no rational arithmetic, no rounding), which is the
// property the hull engine's orientation tests depend on.
//
// rows must all have length len(rows); Det panics via invariantf if they do
// not, since a ragged matrix reaching this function is a programming error in
// the caller (hull/delaunay always build square minors), not an input error.
//
// Complexity: O(n^3) big.Int multiplications/divisions for an n x n matrix;
// n is at most 5 everywhere this package is used (N <= 5 per spec).
func Det(rows []Vec) *big.Int {
	n := len(rows)
	if n == 0 {
		return big.NewInt(1) // determinant of the empty matrix is the multiplicative identity
	}
	for _, r := range rows {
		if len(r) != n {
			invariantf("bigint.Det: non-square matrix, %d rows but a row has %d columns", n, len(r))
		}
	}

	// Work on a private deep copy; Bareiss elimination mutates in place.
	m := make([][]*big.Int, n)
	for i := range rows {
		m[i] = make([]*big.Int, n)
		for j := range rows[i] {
			m[i][j] = new(big.Int).Set(rows[i][j])
		}
	}

	sign := 1
	prev := big.NewInt(1)
	tmp1, tmp2 := new(big.Int), new(big.Int)

	for k := 0; k < n-1; k++ {
		if m[k][k].Sign() == 0 {
			// Pivot on the first row below k with a non-zero k-th column.
			pivot := -1
			for l := k + 1; l < n; l++ {
				if m[l][k].Sign() != 0 {
					pivot = l
					break
				}
			}
			if pivot < 0 {
				// The whole remaining k-th column is zero: singular matrix.
				return big.NewInt(0)
			}
			m[k], m[pivot] = m[pivot], m[k]
			sign = -sign
		}
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				tmp1.Mul(m[i][j], m[k][k])
				tmp2.Mul(m[i][k], m[k][j])
				tmp1.Sub(tmp1, tmp2)
				// Exact division: Bareiss's identity guarantees prev | tmp1.
				m[i][j] = new(big.Int).Quo(tmp1, prev)
			}
			m[i][k] = big.NewInt(0)
		}
		prev = m[k][k]
	}

	d := new(big.Int).Set(m[n-1][n-1])
	if sign < 0 {
		d.Neg(d)
	}
	return d
}

// Ortho computes the generalized N-dimensional cross product of n-1 edge
// vectors in R^n, i.e. the exact vector orthogonal to all of them, via
// cofactor expansion: component i is (-1)^i times the determinant of the
// (n-1)x(n-1) matrix obtained by dropping column i from the edges matrix.
//
// This is the facet orthogonal-complement primitive of spec §4.2, prior to
// orientation resolution (handled in package hull, which knows about the
// direction point/facet).
func Ortho(edges []Vec) Vec {
	if len(edges) == 0 {
		invariantf("bigint.Ortho: need at least one edge vector")
	}
	n := len(edges[0])
	for _, e := range edges {
		if len(e) != n {
			invariantf("bigint.Ortho: ragged edge dimensions")
		}
	}
	if len(edges) != n-1 {
		invariantf("bigint.Ortho: need exactly n-1=%d edges for dimension n=%d, got %d", n-1, n, len(edges))
	}

	out := make(Vec, n)
	minor := make([]Vec, len(edges))
	for i := 0; i < n; i++ {
		// Build the minor: every edge row with column i removed.
		for r, e := range edges {
			row := make(Vec, 0, n-1)
			for c := 0; c < n; c++ {
				if c == i {
					continue
				}
				row = append(row, e[c])
			}
			minor[r] = row
		}
		d := Det(minor)
		if i%2 == 1 {
			d = new(big.Int).Neg(d)
		}
		out[i] = d
	}
	return out
}

// invariantf panics with a location-identifying message. It signals a
// geometry invariant violated mid-computation (a bug, not an input error),
// per spec §7's distinction between input errors and assertion failures.
func invariantf(format string, args ...interface{}) {
	panic(&InvariantError{Msg: fmt.Sprintf(format, args...)})
}
