package compute

import (
	"fmt"
	"unsafe"

	"github.com/vulkan-go/vulkan"
)

// complexBufferUsage is shared by every buffer this package allocates:
// read/write as a storage buffer from a compute shader, and host-visible
// transfer for ComputeVector.Exec's upload/download.
const complexBufferUsage = vulkan.BufferUsageFlags(
	vulkan.BufferUsageStorageBufferBit | vulkan.BufferUsageTransferSrcBit | vulkan.BufferUsageTransferDstBit,
)

// complexSize is sizeof(complex64) as laid out for a GPU storage buffer:
// two packed 32-bit floats.
const complexSize = 8

// deviceBuffer is a Vulkan buffer plus its bound memory, freed together
// by destroy.
type deviceBuffer struct {
	buffer vulkan.Buffer
	memory vulkan.DeviceMemory
	size   vulkan.DeviceSize
	hostVisible bool
}

func createComplexBuffer(device *Device, elements int, hostVisible bool) (*deviceBuffer, error) {
	size := vulkan.DeviceSize(elements * complexSize)

	info := vulkan.BufferCreateInfo{
		SType:       vulkan.StructureTypeBufferCreateInfo,
		Size:        size,
		Usage:       complexBufferUsage,
		SharingMode: vulkan.SharingModeExclusive,
	}

	var buffer vulkan.Buffer
	if ret := vulkan.CreateBuffer(device.Handle, &info, nil, &buffer); ret != vulkan.Success {
		return nil, fmt.Errorf("compute: vkCreateBuffer failed: %d", ret)
	}

	var reqs vulkan.MemoryRequirements
	vulkan.GetBufferMemoryRequirements(device.Handle, buffer, &reqs)
	reqs.Deref()

	memoryType, err := findMemoryType(device, reqs.MemoryTypeBits, hostVisible)
	if err != nil {
		vulkan.DestroyBuffer(device.Handle, buffer, nil)
		return nil, err
	}

	allocInfo := vulkan.MemoryAllocateInfo{
		SType:           vulkan.StructureTypeMemoryAllocateInfo,
		AllocationSize:  reqs.Size,
		MemoryTypeIndex: memoryType,
	}

	var memory vulkan.DeviceMemory
	if ret := vulkan.AllocateMemory(device.Handle, &allocInfo, nil, &memory); ret != vulkan.Success {
		vulkan.DestroyBuffer(device.Handle, buffer, nil)
		return nil, fmt.Errorf("compute: vkAllocateMemory failed: %d", ret)
	}

	if ret := vulkan.BindBufferMemory(device.Handle, buffer, memory, 0); ret != vulkan.Success {
		vulkan.FreeMemory(device.Handle, memory, nil)
		vulkan.DestroyBuffer(device.Handle, buffer, nil)
		return nil, fmt.Errorf("compute: vkBindBufferMemory failed: %d", ret)
	}

	return &deviceBuffer{buffer: buffer, memory: memory, size: size, hostVisible: hostVisible}, nil
}

func (b *deviceBuffer) destroy(device *Device) {
	if b == nil {
		return
	}
	vulkan.DestroyBuffer(device.Handle, b.buffer, nil)
	vulkan.FreeMemory(device.Handle, b.memory, nil)
	b.buffer = vulkan.Buffer(vulkan.NullHandle)
	b.memory = vulkan.DeviceMemory(vulkan.NullHandle)
}

// write copies src into the buffer's host-visible memory, for
// ComputeVector.Exec's upload before a dispatch.
func (b *deviceBuffer) write(device *Device, src []complex64) error {
	var ptr unsafe.Pointer
	if ret := vulkan.MapMemory(device.Handle, b.memory, 0, b.size, 0, &ptr); ret != vulkan.Success {
		return fmt.Errorf("compute: vkMapMemory failed: %d", ret)
	}
	defer vulkan.UnmapMemory(device.Handle, b.memory)

	dst := unsafe.Slice((*complex64)(ptr), len(src))
	copy(dst, src)
	return nil
}

// read copies the buffer's host-visible memory into dst, for
// ComputeVector.Exec's download after a dispatch completes.
func (b *deviceBuffer) read(device *Device, dst []complex64) error {
	var ptr unsafe.Pointer
	if ret := vulkan.MapMemory(device.Handle, b.memory, 0, b.size, 0, &ptr); ret != vulkan.Success {
		return fmt.Errorf("compute: vkMapMemory failed: %d", ret)
	}
	defer vulkan.UnmapMemory(device.Handle, b.memory)

	src := unsafe.Slice((*complex64)(ptr), len(dst))
	copy(dst, src)
	return nil
}

func findMemoryType(device *Device, typeBits uint32, hostVisible bool) (uint32, error) {
	var props vulkan.PhysicalDeviceMemoryProperties
	vulkan.GetPhysicalDeviceMemoryProperties(device.Physical, &props)
	props.Deref()

	want := vulkan.MemoryPropertyFlags(vulkan.MemoryPropertyDeviceLocalBit)
	if hostVisible {
		want = vulkan.MemoryPropertyFlags(vulkan.MemoryPropertyHostVisibleBit | vulkan.MemoryPropertyHostCoherentBit)
	}

	for i := uint32(0); i < props.MemoryTypeCount; i++ {
		if typeBits&(1<<i) == 0 {
			continue
		}
		props.MemoryTypes[i].Deref()
		if props.MemoryTypes[i].PropertyFlags&want == want {
			return i, nil
		}
	}
	return 0, fmt.Errorf("compute: no memory type matches requirements 0x%x (hostVisible=%v)", typeBits, hostVisible)
}
