package bigint

import "math/big"

// GCDReduce returns a copy of v divided through by the GCD of the absolute
// values of its elements (or an unreduced copy of v if v is the zero vector
// or every element already shares no common factor). Reducing before the
// square root in ToUnitFloat64 keeps the subsequent squared-norm computation
// as small as possible, per spec §4.2's "optional" GCD-reduction step.
func GCDReduce(v Vec) Vec {
	g := new(big.Int)
	for _, x := range v {
		if x.Sign() == 0 {
			continue
		}
		abs := new(big.Int).Abs(x)
		if g.Sign() == 0 {
			g.Set(abs)
		} else {
			g.GCD(nil, nil, g, abs)
		}
	}
	if g.Sign() == 0 || g.Cmp(big.NewInt(1)) == 0 {
		return v.Clone()
	}
	out := make(Vec, len(v))
	for i, x := range v {
		out[i] = new(big.Int).Quo(x, g)
	}
	return out
}

// sqrtPrecisionBits is the working precision for the arbitrary-precision
// square root below. 128 bits comfortably exceeds float64's 53-bit mantissa,
// so the final conversion to float64 is correctly rounded rather than
// precision-starved by the sqrt step itself.
const sqrtPrecisionBits = 128

// SqrtNonNegative returns the arbitrary-precision square root of a
// non-negative integer, computed without ever routing through float64 (so a
// squared norm too large for IEEE-754 still produces a correct result). It
// panics via invariantf if n is negative, which a caller should never pass.
func SqrtNonNegative(n *big.Int) *big.Float {
	if n.Sign() < 0 {
		invariantf("bigint.SqrtNonNegative: negative operand %s", n.String())
	}
	f := new(big.Float).SetPrec(sqrtPrecisionBits).SetInt(n)
	return new(big.Float).SetPrec(sqrtPrecisionBits).Sqrt(f)
}

// ToUnitFloat64 converts v to its float64 unit vector, GCD-reducing first and
// computing the norm via SqrtNonNegative so that components which would
// overflow float64 during squaring never do so here.
func ToUnitFloat64(v Vec) []float64 {
	r := GCDReduce(v)
	sq := DotSquared(r)
	if sq.Sign() == 0 {
		// The zero vector has no direction; return it unit-scaled as zero.
		out := make([]float64, len(r))
		return out
	}
	norm := SqrtNonNegative(sq)
	out := make([]float64, len(r))
	comp := new(big.Float).SetPrec(sqrtPrecisionBits)
	for i, x := range r {
		comp.SetPrec(sqrtPrecisionBits).SetInt(x)
		comp.Quo(comp, norm)
		out[i], _ = comp.Float64()
	}
	return out
}

// ToFloat64 converts v to a plain (non-unit) float64 vector. Used where the
// caller wants the raw ortho, not its direction only (e.g. as an
// intermediate before a further floating-point computation).
func ToFloat64(v Vec) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		f := new(big.Float).SetPrec(sqrtPrecisionBits).SetInt(x)
		out[i], _ = f.Float64()
	}
	return out
}
