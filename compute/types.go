package compute

import "github.com/vulkan-go/vulkan"

// Sampler and CommandBuffer are re-exported so callers building a DFT
// pipeline on top of this package's vulkan import don't need their own.
type (
	Sampler       = vulkan.Sampler
	CommandBuffer = vulkan.CommandBuffer
)

// Image is a device image plus the view ComputeImage.CreateBuffers binds
// descriptors against, and the extent used to validate the source
// rectangle — the Go equivalent of vulkan::ImageWithMemory's
// (image, image_view, extent) trio.
type Image struct {
	Handle vulkan.Image
	View   vulkan.ImageView
	Width  int
	Height int
}

// Rect is the sub-region of the input image the DFT reads — the Go
// equivalent of the source's numerical::Region<2, int>.
type Rect struct {
	X, Y          int
	Width, Height int
}
