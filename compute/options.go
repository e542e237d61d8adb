package compute

// ShaderSet carries the precompiled SPIR-V bytecode every stage of the
// DFT pipeline binds. This package builds the orchestration around them
// (buffers, descriptor sets, command recording, barriers, dispatch
// counts); it does not author or compile shaders itself.
type ShaderSet struct {
	CopyInput       []uint32
	CopyOutput      []uint32
	BitReverse      []uint32
	ButterflyShared []uint32
	ButterflyGlobal []uint32
	MulDiagonal     []uint32
}

func (s ShaderSet) empty() bool {
	return len(s.CopyInput) == 0 &&
		len(s.CopyOutput) == 0 &&
		len(s.BitReverse) == 0 &&
		len(s.ButterflyShared) == 0 &&
		len(s.ButterflyGlobal) == 0 &&
		len(s.MulDiagonal) == 0
}

type config struct {
	shaders   ShaderSet
	groupSize [2]int
}

// Option configures NewComputeImage/NewComputeVector, following this
// module's functional-options convention (quant, hull, delaunay, cocone,
// mst).
type Option func(*config)

// WithShaders supplies the SPIR-V bytecode for every pipeline stage.
func WithShaders(s ShaderSet) Option {
	return func(c *config) { c.shaders = s }
}

// defaultGroupSize2D matches the original DFT pipeline's GROUP_SIZE_2D.
const defaultGroupSize2D = 16

// WithGroupSize2D overrides the compute-shader work-group dimensions used
// for the image copy-in/copy-out dispatches.
func WithGroupSize2D(x, y int) Option {
	return func(c *config) { c.groupSize = [2]int{x, y} }
}

func (c config) resolve() config {
	if c.groupSize[0] == 0 {
		c.groupSize[0] = defaultGroupSize2D
	}
	if c.groupSize[1] == 0 {
		c.groupSize[1] = defaultGroupSize2D
	}
	return c
}
