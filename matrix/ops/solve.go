package ops

import (
	"fmt"

	"github.com/cppd/math-sub006/matrix"
)

// Solve solves the square linear system A x = b via Doolittle LU
// decomposition (LU above) followed by forward and back substitution.
// Returns ErrMatrixDimensionMismatch if A is not square or b's length
// does not match, and ErrMatrixSingular if a zero pivot is hit during
// back substitution.
//
// This is the Voronoi-vertex solve the delaunay package needs (spec
// §4.4): A's rows are (p_i - p_0) and b_i = (|p_i|^2 - |p_0|^2)/2 for each
// neighbour p_i of a common base point p_0, with x the circumcenter.
// Time Complexity: O(n^3) for the LU call plus O(n^2) for substitution.
var ErrMatrixSingular = fmt.Errorf("ops: singular matrix")

func Solve(a matrix.Matrix, b []float64) ([]float64, error) {
	// Stage 1: Validate shapes.
	n := a.Rows()
	if n != a.Cols() {
		return nil, fmt.Errorf("Solve: non-square matrix %dx%d: %w", n, a.Cols(), matrix.ErrMatrixDimensionMismatch)
	}
	if len(b) != n {
		return nil, fmt.Errorf("Solve: rhs length %d does not match dimension %d: %w", len(b), n, matrix.ErrMatrixDimensionMismatch)
	}

	// Stage 2: Decompose.
	L, U, err := LU(a)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	// Stage 3: Forward substitution, L y = b (L is unit lower triangular).
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for k := 0; k < i; k++ {
			lik, _ := L.At(i, k)
			sum += lik * y[k]
		}
		y[i] = b[i] - sum
	}

	// Stage 4: Back substitution, U x = y.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := 0.0
		for k := i + 1; k < n; k++ {
			uik, _ := U.At(i, k)
			sum += uik * x[k]
		}
		uii, _ := U.At(i, i)
		if uii == 0 {
			return nil, fmt.Errorf("Solve: zero pivot at row %d: %w", i, ErrMatrixSingular)
		}
		x[i] = (y[i] - sum) / uii
	}

	return x, nil
}
