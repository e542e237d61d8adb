package compute

import (
	"unsafe"

	"github.com/vulkan-go/vulkan"
)

// pushDirection sets the forward/inverse push constant every butterfly
// and diagonal-multiply shader reads, so one pipeline serves both
// directions instead of compiling a second copy per direction.
func pushDirection(cmd CommandBuffer, layout vulkan.PipelineLayout, inverse bool) {
	var flag uint32
	if inverse {
		flag = 1
	}
	vulkan.CmdPushConstants(cmd, layout, vulkan.ShaderStageFlags(vulkan.ShaderStageComputeBit), 0, 4, unsafe.Pointer(&flag))
}

// bufferBarrier serialises two dispatches that read-then-write the same
// storage buffer, the Go form of the teacher's buffer_barrier helper —
// every FFT-shared dispatch barriers against the prior bit-reverse
// dispatch on the same buffer, and every mul-D dispatch barriers against
// the prior FFT dispatch.
func bufferBarrier(cmd CommandBuffer, buffer vulkan.Buffer, size vulkan.DeviceSize) {
	barrier := vulkan.BufferMemoryBarrier{
		SType:               vulkan.StructureTypeBufferMemoryBarrier,
		SrcAccessMask:       vulkan.AccessFlags(vulkan.AccessShaderWriteBit),
		DstAccessMask:       vulkan.AccessFlags(vulkan.AccessShaderReadBit | vulkan.AccessShaderWriteBit),
		SrcQueueFamilyIndex: vulkan.QueueFamilyIgnored,
		DstQueueFamilyIndex: vulkan.QueueFamilyIgnored,
		Buffer:              buffer,
		Offset:              0,
		Size:                size,
	}
	vulkan.CmdPipelineBarrier(
		cmd,
		vulkan.PipelineStageFlags(vulkan.PipelineStageComputeShaderBit),
		vulkan.PipelineStageFlags(vulkan.PipelineStageComputeShaderBit),
		0, 0, nil, 1, []vulkan.BufferMemoryBarrier{barrier}, 0, nil,
	)
}

// imageLayoutBarrier transitions output between the layout copy_output's
// shader write needs and the layout the image needs once the pipeline
// hands it back to its owner — the Go form of the teacher's
// image_barrier_before/image_barrier_after pair.
func imageLayoutBarrier(cmd CommandBuffer, image vulkan.Image, oldLayout, newLayout vulkan.ImageLayout, srcAccess, dstAccess vulkan.AccessFlagBits) {
	barrier := vulkan.ImageMemoryBarrier{
		SType:               vulkan.StructureTypeImageMemoryBarrier,
		SrcAccessMask:       vulkan.AccessFlags(srcAccess),
		DstAccessMask:       vulkan.AccessFlags(dstAccess),
		OldLayout:           oldLayout,
		NewLayout:           newLayout,
		SrcQueueFamilyIndex: vulkan.QueueFamilyIgnored,
		DstQueueFamilyIndex: vulkan.QueueFamilyIgnored,
		Image:               image,
		SubresourceRange: vulkan.ImageSubresourceRange{
			AspectMask:     vulkan.ImageAspectFlags(vulkan.ImageAspectColorBit),
			BaseMipLevel:   0,
			LevelCount:     1,
			BaseArrayLayer: 0,
			LayerCount:     1,
		},
	}
	vulkan.CmdPipelineBarrier(
		cmd,
		vulkan.PipelineStageFlags(vulkan.PipelineStageComputeShaderBit),
		vulkan.PipelineStageFlags(vulkan.PipelineStageComputeShaderBit),
		0, 0, nil, 0, nil, 1, []vulkan.ImageMemoryBarrier{barrier},
	)
}

// recordAxisPasses issues the dispatches for one axis's DFT against the
// shared device buffer: bit-reversal (global variant only), the
// shared-memory butterfly pass, and — if the axis needed Bluestein's
// chirp-z reduction at all — the diagonal multiply in between the two
// length-M FFTs recordButterflyPasses itself issues.
func recordAxisPasses(cmd CommandBuffer, pipelines axisPipelines, schedule *axisSchedule, buffer vulkan.Buffer, inverse bool) {
	pushDirection(cmd, pipelines.butterflyShared.layout, inverse)

	if schedule.dispatch.Variant == "global-memory" {
		pipelines.bitReverse.bindAndDispatch(cmd, [3]uint32{uint32(schedule.dispatch.WorkGroups), 1, 1})
		bufferBarrier(cmd, buffer, vulkan.DeviceSize(schedule.m*complexSize))
	}

	pipelines.butterflyShared.bindAndDispatch(cmd, [3]uint32{uint32(schedule.dispatch.WorkGroups), 1, 1})

	if !schedule.identity() {
		bufferBarrier(cmd, buffer, vulkan.DeviceSize(schedule.m*complexSize))
		pipelines.mulDiagonal.bindAndDispatch(cmd, [3]uint32{uint32(schedule.dispatch.WorkGroups), 1, 1})
	}

	for pass := 0; pass < schedule.dispatch.Passes-2; pass++ {
		bufferBarrier(cmd, buffer, vulkan.DeviceSize(schedule.m*complexSize))
		pipelines.butterflyGlobal.bindAndDispatch(cmd, [3]uint32{uint32(schedule.dispatch.WorkGroups), 1, 1})
	}
}

// axisPipelines is the set of bound shader stages one axis's DFT cycles
// through; ComputeImage and ComputeVector each build one per axis.
type axisPipelines struct {
	bitReverse      *computePipeline
	butterflyShared *computePipeline
	butterflyGlobal *computePipeline
	mulDiagonal     *computePipeline
}

func (p axisPipelines) destroy(device *Device) {
	p.bitReverse.destroy(device)
	p.butterflyShared.destroy(device)
	p.butterflyGlobal.destroy(device)
	p.mulDiagonal.destroy(device)
}
