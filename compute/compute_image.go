package compute

import "github.com/vulkan-go/vulkan"

// ComputeImage records the forward 2D DFT of an input image's luminance,
// normalised by 1/(width*height), into a single-channel float output
// image: spec §6's "2D DFT (image)" API.
type ComputeImage struct {
	device *Device
	cfg    config

	rowSchedule, colSchedule   *axisSchedule
	buffer                     *deviceBuffer

	copyInput, copyOutput     *computePipeline
	rowPipelines, colPipelines axisPipelines

	outputImage vulkan.Image
	copyGroups  [2]int
	created     bool
}

// NewComputeImage validates device and options; CreateBuffers does the
// actual device-resource allocation, since the extent isn't known yet.
func NewComputeImage(device *Device, opts ...Option) (*ComputeImage, error) {
	if err := device.validate(); err != nil {
		return nil, err
	}
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}
	cfg = cfg.resolve()
	if cfg.shaders.empty() {
		return nil, ErrNoShaders
	}
	return &ComputeImage{device: device, cfg: cfg}, nil
}

// CreateBuffers allocates the device buffer and pipelines for a forward
// DFT of input clipped to rect, writing into output — mirroring
// DftImage::create_buffers' row/column Dft setup plus its copy-in/
// copy-out pipeline pair.
func (ci *ComputeImage) CreateBuffers(sampler Sampler, input, output Image, rect Rect, queueFamily uint32) error {
	if rect.Width != output.Width || rect.Height != output.Height {
		return ErrBufferSizeMismatch
	}
	if rect.X+rect.Width > input.Width || rect.Y+rect.Height > input.Height {
		return ErrRectExceedsImage
	}

	ci.DeleteBuffers()

	rowSchedule, err := newAxisSchedule(rect.Width, rect.Height)
	if err != nil {
		return err
	}
	colSchedule, err := newAxisSchedule(rect.Height, rect.Width)
	if err != nil {
		return err
	}

	buffer, err := createComplexBuffer(ci.device, rowSchedule.m*colSchedule.m, false)
	if err != nil {
		return err
	}

	copyInput, err := createComputePipeline(ci.device, ci.cfg.shaders.CopyInput, buffer.buffer, buffer.size)
	if err != nil {
		buffer.destroy(ci.device)
		return err
	}
	copyOutput, err := createComputePipeline(ci.device, ci.cfg.shaders.CopyOutput, buffer.buffer, buffer.size)
	if err != nil {
		copyInput.destroy(ci.device)
		buffer.destroy(ci.device)
		return err
	}
	rowPipelines, err := buildAxisPipelines(ci.device, ci.cfg.shaders, buffer.buffer, buffer.size)
	if err != nil {
		copyOutput.destroy(ci.device)
		copyInput.destroy(ci.device)
		buffer.destroy(ci.device)
		return err
	}
	colPipelines, err := buildAxisPipelines(ci.device, ci.cfg.shaders, buffer.buffer, buffer.size)
	if err != nil {
		rowPipelines.destroy(ci.device)
		copyOutput.destroy(ci.device)
		copyInput.destroy(ci.device)
		buffer.destroy(ci.device)
		return err
	}

	ci.rowSchedule, ci.colSchedule = rowSchedule, colSchedule
	ci.buffer = buffer
	ci.copyInput, ci.copyOutput = copyInput, copyOutput
	ci.rowPipelines, ci.colPipelines = rowPipelines, colPipelines
	ci.outputImage = output.Handle
	ci.copyGroups = groupCount2D([2]int{rect.Width, rect.Height}, ci.cfg.groupSize)
	ci.created = true

	_ = sampler // bound by copy-input's descriptor set, not tracked further here
	return nil
}

func buildAxisPipelines(device *Device, shaders ShaderSet, buffer vulkan.Buffer, size vulkan.DeviceSize) (axisPipelines, error) {
	bitReverse, err := createComputePipeline(device, shaders.BitReverse, buffer, size)
	if err != nil {
		return axisPipelines{}, err
	}
	butterflyShared, err := createComputePipeline(device, shaders.ButterflyShared, buffer, size)
	if err != nil {
		bitReverse.destroy(device)
		return axisPipelines{}, err
	}
	butterflyGlobal, err := createComputePipeline(device, shaders.ButterflyGlobal, buffer, size)
	if err != nil {
		butterflyShared.destroy(device)
		bitReverse.destroy(device)
		return axisPipelines{}, err
	}
	mulDiagonal, err := createComputePipeline(device, shaders.MulDiagonal, buffer, size)
	if err != nil {
		butterflyGlobal.destroy(device)
		butterflyShared.destroy(device)
		bitReverse.destroy(device)
		return axisPipelines{}, err
	}
	return axisPipelines{
		bitReverse: bitReverse, butterflyShared: butterflyShared,
		butterflyGlobal: butterflyGlobal, mulDiagonal: mulDiagonal,
	}, nil
}

// ComputeCommands records the forward DFT into cmd: copy the input
// image's luminance into the row-major complex buffer, transform rows
// then columns, then copy the result (normalised by 1/(width*height))
// into the output image — mirroring DftImage::compute_commands' copy-in,
// buffer_barrier, dft_->compute_commands, image_barrier, copy-out
// sequence.
func (ci *ComputeImage) ComputeCommands(cmd CommandBuffer) error {
	if !ci.created {
		return ErrNoBuffers
	}

	ci.copyInput.bindAndDispatch(cmd, [3]uint32{uint32(ci.copyGroups[0]), uint32(ci.copyGroups[1]), 1})
	bufferBarrier(cmd, ci.buffer.buffer, ci.buffer.size)

	const inverse = false
	recordAxisPasses(cmd, ci.rowPipelines, ci.rowSchedule, ci.buffer.buffer, inverse)
	bufferBarrier(cmd, ci.buffer.buffer, ci.buffer.size)
	recordAxisPasses(cmd, ci.colPipelines, ci.colSchedule, ci.buffer.buffer, inverse)

	imageLayoutBarrier(cmd, ci.outputImage,
		vulkan.ImageLayoutUndefined, vulkan.ImageLayoutGeneral,
		0, vulkan.AccessShaderWriteBit)

	ci.copyOutput.bindAndDispatch(cmd, [3]uint32{uint32(ci.copyGroups[0]), uint32(ci.copyGroups[1]), 1})

	imageLayoutBarrier(cmd, ci.outputImage,
		vulkan.ImageLayoutGeneral, vulkan.ImageLayoutShaderReadOnlyOptimal,
		vulkan.AccessShaderWriteBit, vulkan.AccessShaderReadBit)

	return nil
}

// DeleteBuffers releases every device resource CreateBuffers allocated.
// Safe to call on a ComputeImage that never had CreateBuffers called.
func (ci *ComputeImage) DeleteBuffers() {
	ci.copyInput.destroy(ci.device)
	ci.copyOutput.destroy(ci.device)
	ci.rowPipelines.destroy(ci.device)
	ci.colPipelines.destroy(ci.device)
	ci.buffer.destroy(ci.device)

	ci.copyInput, ci.copyOutput = nil, nil
	ci.rowPipelines, ci.colPipelines = axisPipelines{}, axisPipelines{}
	ci.buffer = nil
	ci.created = false
}
