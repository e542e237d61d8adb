package quant

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"

	"github.com/cppd/math-sub006/bigint"
)

// DefaultMaxValue is the default quantisation ceiling, derived from
// bigint.BitsBase the same way spec §6 derives it: the largest magnitude a
// B-bit signed integer can hold is 2^(B-1)-1.
const DefaultMaxValue = int64(1)<<(bigint.BitsBase-1) - 1

// Quantize maps points (a slice of equal-length float64 coordinate slices)
// onto the integer lattice [0, maxValue]^N, deduplicates identical lattice
// points (keeping the first original index seen), and deterministically
// shuffles the result with a PRNG seeded from the element count, per spec §3.
//
// maxValue <= 0 selects DefaultMaxValue.
//
// Complexity: O(n*N) to quantise and bound, O(n log n) to dedupe via a map
// plus a stable-order rebuild, O(n) to shuffle (Fisher-Yates).
func Quantize(points [][]float64, maxValue int64) (Set, error) {
	if len(points) == 0 {
		return Set{}, ErrEmptyInput
	}
	if maxValue <= 0 {
		maxValue = DefaultMaxValue
	}
	n := len(points[0])
	for _, p := range points {
		if len(p) != n {
			return Set{}, ErrDimensionMismatch
		}
		for _, c := range p {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return Set{}, ErrNonFinite
			}
		}
	}

	lo := make([]float64, n)
	hi := make([]float64, n)
	copy(lo, points[0])
	copy(hi, points[0])
	for _, p := range points[1:] {
		for i, c := range p {
			if c < lo[i] {
				lo[i] = c
			}
			if c > hi[i] {
				hi[i] = c
			}
		}
	}

	// L-infinity norm of the extents: the largest per-axis span.
	var extent float64
	for i := range lo {
		if e := hi[i] - lo[i]; e > extent {
			extent = e
		}
	}
	if extent == 0 {
		return Set{}, ErrAllEqual
	}
	scale := float64(maxValue) / extent

	// Quantise every point; keep first-seen index on collision.
	seen := make(map[string]int, len(points))
	order := make([]string, 0, len(points))
	quantized := make(map[string]bigint.Vec, len(points))
	for idx, p := range points {
		coords := make([]int64, n)
		for i, c := range p {
			q := math.RoundToEven((c - lo[i]) * scale)
			if q < 0 || q > float64(maxValue) {
				return Set{}, fmt.Errorf("quant: coordinate %d of point %d quantised to %v, outside [0,%d]: %w", i, idx, q, maxValue, ErrOutOfRange)
			}
			coords[i] = int64(q)
		}
		key := latticeKey(coords)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = idx
		order = append(order, key)
		quantized[key] = bigint.FromInts(coords...)
	}

	out := make([]Point, len(order))
	for i, key := range order {
		out[i] = Point{Coords: quantized[key], Index: seen[key]}
	}

	shuffle(out)

	return Set{Points: out, N: n, Lo: lo, Scale: scale}, nil
}

// latticeKey produces a map key uniquely identifying an integer lattice
// point, used only for the dedup pass (not for hashing within the hull
// engine itself, which operates on bigint.Vec directly).
func latticeKey(coords []int64) string {
	// A simple separator-delimited encoding is sufficient and collision-free
	// since every coordinate is bounded and printed in full.
	b := make([]byte, 0, len(coords)*8)
	for _, c := range coords {
		b = strconv.AppendInt(b, c, 10)
		b = append(b, ',')
	}
	return string(b)
}

// shuffle performs a deterministic Fisher-Yates shuffle, seeded from the
// element count per spec §3 ("randomly permuted by a deterministic
// pseudo-random generator seeded from the element count").
func shuffle(pts []Point) {
	r := rand.New(rand.NewSource(int64(len(pts))))
	for i := len(pts) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		pts[i], pts[j] = pts[j], pts[i]
	}
}
