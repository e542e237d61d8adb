package compute

import (
	"github.com/cppd/math-sub006/bluestein"
	"github.com/cppd/math-sub006/fft1d"
)

// axisSchedule is the host-side precompute for running one axis's DFT on
// a device buffer of power-of-two length m: the chirp-z diagonal (nil if
// n is already a power of two, per bluestein.ChirpDiagonal), the fft1d
// plan for that length, and the dispatch variant/work-group/pass counts
// that length implies for batches transforms run concurrently (one per
// row, or one per column).
type axisSchedule struct {
	n, m     int
	chirpH   []complex128
	chirpD   []complex128
	fft      *fft1d.Plan
	dispatch fft1d.DispatchPlan
}

func newAxisSchedule(n, batches int) (*axisSchedule, error) {
	h, d, m, err := bluestein.ChirpDiagonal(n)
	if err != nil {
		return nil, err
	}

	plan, err := fft1d.NewPlan(m)
	if err != nil {
		return nil, err
	}

	dispatch := plan.Dispatch(make([][]complex128, batches))

	return &axisSchedule{n: n, m: m, chirpH: h, chirpD: d, fft: plan, dispatch: dispatch}, nil
}

// identity reports whether this axis needs no chirp-z reduction at all —
// n was already a power of two, so m == n and the diagonal-multiply
// dispatch can be skipped entirely.
func (s *axisSchedule) identity() bool {
	return s.chirpD == nil
}
