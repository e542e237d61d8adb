package fft1d

import "math/bits"

// sharedMemoryThreshold is S from spec §4.7: the largest transform length
// whose entire butterfly sequence is assumed to fit in one compute work
// group's on-chip shared memory. Real devices derive S from
// max_shared_bytes/max_group_size/max_threads_per_group; lacking a device
// to query, this is a conservative fixed power of two in the "up to a few
// thousand" range the spec describes.
const sharedMemoryThreshold = 2048

// elementsPerGlobalBlock is the work-group granularity ("per N/256 element
// block") the global-memory variant's scheduling model uses once a
// transform is too large for the shared-memory variant.
const elementsPerGlobalBlock = 256

// Variant names the GPU dispatch strategy a transform length would use.
type Variant string

const (
	// VariantSharedMemory is one work group per batch, entirely on-chip.
	VariantSharedMemory Variant = "shared-memory"

	// VariantGlobalMemory is a bit-reversal pass, a shared-memory pass up
	// to sharedMemoryThreshold, then staged global-memory butterfly passes.
	VariantGlobalMemory Variant = "global-memory"
)

// DispatchPlan reports the scheduling decision Plan.Dispatch computed for
// a batch of transforms: which variant, how many work groups a single pass
// would launch, and how many dispatches (passes) the whole transform takes.
type DispatchPlan struct {
	Variant    Variant
	WorkGroups int
	Passes     int
}

// Dispatch reports, without executing anything, which GPU dispatch variant
// (spec §4.7) a transform of this Plan's size would use for the given
// batches, and the work-group/pass counts that follow from that choice.
// This is the pure-Go mirror of the scheduling decision the compute
// package's real Vulkan dispatch makes.
func (p *Plan) Dispatch(batches [][]complex128) DispatchPlan {
	if p.n <= sharedMemoryThreshold {
		return DispatchPlan{
			Variant:    VariantSharedMemory,
			WorkGroups: len(batches),
			Passes:     1,
		}
	}

	logN := bits.Len(uint(p.n)) - 1
	logS := bits.Len(uint(sharedMemoryThreshold)) - 1
	blocksPerBatch := (p.n + elementsPerGlobalBlock - 1) / elementsPerGlobalBlock

	return DispatchPlan{
		Variant:    VariantGlobalMemory,
		WorkGroups: len(batches) * blocksPerBatch,
		Passes:     2 + (logN - logS), // bit-reverse + shared-up-to-S + global butterfly passes
	}
}
