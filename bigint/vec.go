package bigint

import (
	"errors"
	"math/big"
)

// ErrDimensionMismatch indicates two Vec operands have different lengths.
var ErrDimensionMismatch = errors.New("bigint: dimension mismatch")

// Vec is a fixed-dimension vector of exact signed integers. Every element is
// non-nil; a Vec is never partially populated once returned from a
// constructor in this package.
type Vec []*big.Int

// NewVec allocates an n-dimensional Vec, every element initialized to zero.
// Complexity: O(n).
func NewVec(n int) Vec {
	v := make(Vec, n)
	for i := range v {
		v[i] = new(big.Int)
	}
	return v
}

// FromInts builds a Vec from machine integers, one element per argument.
func FromInts(xs ...int64) Vec {
	v := make(Vec, len(xs))
	for i, x := range xs {
		v[i] = big.NewInt(x)
	}
	return v
}

// Clone returns a deep copy of v; mutating the result never aliases v.
func (v Vec) Clone() Vec {
	out := make(Vec, len(v))
	for i, x := range v {
		out[i] = new(big.Int).Set(x)
	}
	return out
}

// Sub returns a-b element-wise. a and b must have equal length.
func Sub(a, b Vec) (Vec, error) {
	if len(a) != len(b) {
		return nil, ErrDimensionMismatch
	}
	out := make(Vec, len(a))
	for i := range a {
		out[i] = new(big.Int).Sub(a[i], b[i])
	}
	return out, nil
}

// Dot returns the exact dot product of a and b. a and b must have equal length.
func Dot(a, b Vec) (*big.Int, error) {
	if len(a) != len(b) {
		return nil, ErrDimensionMismatch
	}
	sum := new(big.Int)
	term := new(big.Int)
	for i := range a {
		term.Mul(a[i], b[i])
		sum.Add(sum, term)
	}
	return sum, nil
}

// DotSquared returns a·a, the exact squared norm of a.
func DotSquared(a Vec) *big.Int {
	sum := new(big.Int)
	term := new(big.Int)
	for _, x := range a {
		term.Mul(x, x)
		sum.Add(sum, term)
	}
	return sum
}

// IsZero reports whether every element of v is zero.
func IsZero(v Vec) bool {
	for _, x := range v {
		if x.Sign() != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether a and b hold the same values (lengths may differ; if
// they do, Equal returns false rather than erroring, since it is a predicate).
func Equal(a, b Vec) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}
	return true
}
