package compute

import "github.com/vulkan-go/vulkan"

// Device bundles the logical/physical device handles, compute and
// transfer queues, and their command pools a ComputeImage/ComputeVector
// needs to create buffers and record commands — mirroring the source's
// vulkan::DeviceCompute, which bundles exactly this set of handles behind
// one object so the DFT pipeline doesn't have to thread five separate
// constructor parameters through.
type Device struct {
	Handle   vulkan.Device
	Physical vulkan.PhysicalDevice

	ComputeQueue       vulkan.Queue
	ComputeFamily      uint32
	ComputeCommandPool vulkan.CommandPool

	TransferQueue       vulkan.Queue
	TransferFamily      uint32
	TransferCommandPool vulkan.CommandPool
}

func (d *Device) validate() error {
	if d == nil {
		return ErrNilDevice
	}
	return nil
}
