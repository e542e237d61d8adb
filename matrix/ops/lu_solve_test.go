package ops

import (
	"math"
	"testing"

	"github.com/cppd/math-sub006/matrix"
)

func TestLUReconstructsOriginal(t *testing.T) {
	a, _ := matrix.NewDense(3, 3)
	rows := [][]float64{
		{4, 3, 2},
		{2, 6, 1},
		{1, 1, 5},
	}
	for i, row := range rows {
		for j, v := range row {
			_ = a.Set(i, j, v)
		}
	}

	L, U, err := LU(a)
	if err != nil {
		t.Fatalf("LU: %v", err)
	}

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				l, _ := L.At(i, k)
				u, _ := U.At(k, j)
				sum += l * u
			}
			if math.Abs(sum-rows[i][j]) > 1e-9 {
				t.Fatalf("L*U[%d][%d] = %v, want %v", i, j, sum, rows[i][j])
			}
		}
	}
}

func TestLURejectsNonSquare(t *testing.T) {
	a, _ := matrix.NewDense(2, 3)
	if _, _, err := LU(a); err == nil {
		t.Fatal("expected error for non-square matrix")
	}
}

func TestSolveKnownSystem(t *testing.T) {
	// x + y = 3; 2x + 5y = 12  =>  x=1, y=2
	a, _ := matrix.NewDense(2, 2)
	_ = a.Set(0, 0, 1)
	_ = a.Set(0, 1, 1)
	_ = a.Set(1, 0, 2)
	_ = a.Set(1, 1, 5)
	b := []float64{3, 12}

	x, err := Solve(a, b)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if math.Abs(x[0]-1) > 1e-9 || math.Abs(x[1]-2) > 1e-9 {
		t.Fatalf("x = %v, want [1 2]", x)
	}
}

func TestSolveRejectsDimensionMismatch(t *testing.T) {
	a, _ := matrix.NewDense(2, 2)
	if _, err := Solve(a, []float64{1, 2, 3}); err == nil {
		t.Fatal("expected error for mismatched rhs length")
	}
}

func TestSolveSingularMatrix(t *testing.T) {
	a, _ := matrix.NewDense(2, 2)
	_ = a.Set(0, 0, 1)
	_ = a.Set(0, 1, 1)
	_ = a.Set(1, 0, 2)
	_ = a.Set(1, 1, 2)
	if _, err := Solve(a, []float64{1, 2}); err == nil {
		t.Fatal("expected singular-matrix error")
	}
}
