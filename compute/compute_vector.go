package compute

import (
	"fmt"

	"github.com/vulkan-go/vulkan"
)

// ComputeVector performs an in-place forward or inverse 2D DFT of a
// width*height complex64 buffer: spec §6's "2D DFT (vector)" API.
// Unlike ComputeImage it keeps two pre-recorded command buffers (forward
// and inverse) and submits one per Exec call, mirroring DftVector's own
// FORWARD/INVERSE command-buffer pair.
type ComputeVector struct {
	device *Device
	cfg    config

	rowSchedule, colSchedule   *axisSchedule
	buffer                     *deviceBuffer
	rowPipelines, colPipelines axisPipelines

	commandPool vulkan.CommandPool
	forwardCmd  vulkan.CommandBuffer
	inverseCmd  vulkan.CommandBuffer

	width, height int
	created       bool
}

// NewComputeVector validates device and options; CreateBuffers does the
// actual device-resource allocation once width/height are known.
func NewComputeVector(device *Device, opts ...Option) (*ComputeVector, error) {
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
	return &ComputeVector{device: device, cfg: cfg}, nil
}

// CreateBuffers allocates the device buffer, pipelines, and the two
// pre-recorded (forward/inverse) command buffers for a width*height
// transform — mirroring DftVector::create_buffers.
func (cv *ComputeVector) CreateBuffers(width, height int) error {
	cv.DeleteBuffers()

	rowSchedule, err := newAxisSchedule(width, height)
	if err != nil {
		return err
	}
	colSchedule, err := newAxisSchedule(height, width)
	if err != nil {
		return err
	}

	buffer, err := createComplexBuffer(cv.device, rowSchedule.m*colSchedule.m, true)
	if err != nil {
		return err
	}

	rowPipelines, err := buildAxisPipelines(cv.device, cv.cfg.shaders, buffer.buffer, buffer.size)
	if err != nil {
		buffer.destroy(cv.device)
		return err
	}
	colPipelines, err := buildAxisPipelines(cv.device, cv.cfg.shaders, buffer.buffer, buffer.size)
	if err != nil {
		rowPipelines.destroy(cv.device)
		buffer.destroy(cv.device)
		return err
	}

	pool, forwardCmd, inverseCmd, err := allocateVectorCommandBuffers(cv.device)
	if err != nil {
		colPipelines.destroy(cv.device)
		rowPipelines.destroy(cv.device)
		buffer.destroy(cv.device)
		return err
	}

	for _, pass := range []struct {
		cmd     vulkan.CommandBuffer
		inverse bool
	}{{forwardCmd, false}, {inverseCmd, true}} {
		beginInfo := vulkan.CommandBufferBeginInfo{SType: vulkan.StructureTypeCommandBufferBeginInfo}
		vulkan.BeginCommandBuffer(pass.cmd, &beginInfo)
		recordAxisPasses(pass.cmd, rowPipelines, rowSchedule, buffer.buffer, pass.inverse)
		bufferBarrier(pass.cmd, buffer.buffer, buffer.size)
		recordAxisPasses(pass.cmd, colPipelines, colSchedule, buffer.buffer, pass.inverse)
		vulkan.EndCommandBuffer(pass.cmd)
	}

	cv.rowSchedule, cv.colSchedule = rowSchedule, colSchedule
	cv.buffer = buffer
	cv.rowPipelines, cv.colPipelines = rowPipelines, colPipelines
	cv.commandPool = cv.device.ComputeCommandPool
	cv.forwardCmd, cv.inverseCmd = forwardCmd, inverseCmd
	cv.width, cv.height = width, height
	cv.created = true
	return nil
}

func allocateVectorCommandBuffers(device *Device) (vulkan.CommandPool, vulkan.CommandBuffer, vulkan.CommandBuffer, error) {
	allocInfo := vulkan.CommandBufferAllocateInfo{
		SType:              vulkan.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        device.ComputeCommandPool,
		Level:              vulkan.CommandBufferLevelPrimary,
		CommandBufferCount: 2,
	}
	buffers := make([]vulkan.CommandBuffer, 2)
	if ret := vulkan.AllocateCommandBuffers(device.Handle, &allocInfo, buffers); ret != vulkan.Success {
		return vulkan.CommandPool(vulkan.NullHandle), nil, nil, fmt.Errorf("compute: vkAllocateCommandBuffers failed: %d", ret)
	}
	return device.ComputeCommandPool, buffers[0], buffers[1], nil
}

// Exec uploads data, submits the forward or inverse command buffer, waits
// for completion, and downloads the result back into data in place —
// mirroring DftVector::exec's map/submit/wait-idle/map sequence.
func (cv *ComputeVector) Exec(inverse bool, data []complex64) error {
	if !cv.created {
		return ErrNoBuffers
	}
	if len(data) != cv.width*cv.height {
		return ErrBufferSizeMismatch
	}

	if err := cv.buffer.write(cv.device, data); err != nil {
		return err
	}

	cmd := cv.forwardCmd
	if inverse {
		cmd = cv.inverseCmd
	}
	submit := vulkan.SubmitInfo{
		SType:              vulkan.StructureTypeSubmitInfo,
		CommandBufferCount: 1,
		PCommandBuffers:    []vulkan.CommandBuffer{cmd},
	}
	if ret := vulkan.QueueSubmit(cv.device.ComputeQueue, 1, []vulkan.SubmitInfo{submit}, vulkan.Fence(vulkan.NullHandle)); ret != vulkan.Success {
		return fmt.Errorf("compute: vkQueueSubmit failed: %d", ret)
	}
	if ret := vulkan.QueueWaitIdle(cv.device.ComputeQueue); ret != vulkan.Success {
		return fmt.Errorf("compute: vkQueueWaitIdle failed: %d", ret)
	}

	return cv.buffer.read(cv.device, data)
}

// DeleteBuffers releases every device resource CreateBuffers allocated.
// Safe to call on a ComputeVector that never had CreateBuffers called.
func (cv *ComputeVector) DeleteBuffers() {
	if cv.commandPool != vulkan.CommandPool(vulkan.NullHandle) {
		vulkan.FreeCommandBuffers(cv.device.Handle, cv.commandPool, 2, []vulkan.CommandBuffer{cv.forwardCmd, cv.inverseCmd})
	}
	cv.rowPipelines.destroy(cv.device)
	cv.colPipelines.destroy(cv.device)
	cv.buffer.destroy(cv.device)

	cv.rowPipelines, cv.colPipelines = axisPipelines{}, axisPipelines{}
	cv.buffer = nil
	cv.forwardCmd, cv.inverseCmd = nil, nil
	cv.created = false
}
