package compute

import (
	"fmt"

	"github.com/vulkan-go/vulkan"
)

// computePipeline is one bound shader stage: the pipeline itself, the
// layout ComputeCommands needs to bind descriptor sets against, and the
// descriptor set layout/pool/set backing a single storage-buffer binding
// (every shader in this pipeline reads and writes one buffer in place).
type computePipeline struct {
	module         vulkan.ShaderModule
	setLayout      vulkan.DescriptorSetLayout
	layout         vulkan.PipelineLayout
	pipeline       vulkan.Pipeline
	descriptorPool vulkan.DescriptorPool
	set            vulkan.DescriptorSet
}

func createComputePipeline(device *Device, code []uint32, buffer vulkan.Buffer, bufferSize vulkan.DeviceSize) (*computePipeline, error) {
	moduleInfo := vulkan.ShaderModuleCreateInfo{
		SType:    vulkan.StructureTypeShaderModuleCreateInfo,
		CodeSize: uint(len(code)) * 4,
		PCode:    code,
	}
	var module vulkan.ShaderModule
	if ret := vulkan.CreateShaderModule(device.Handle, &moduleInfo, nil, &module); ret != vulkan.Success {
		return nil, fmt.Errorf("compute: vkCreateShaderModule failed: %d", ret)
	}

	setLayoutInfo := vulkan.DescriptorSetLayoutCreateInfo{
		SType:        vulkan.StructureTypeDescriptorSetLayoutCreateInfo,
		BindingCount: 1,
		PBindings: []vulkan.DescriptorSetLayoutBinding{{
			Binding:         0,
			DescriptorType:  vulkan.DescriptorTypeStorageBuffer,
			DescriptorCount: 1,
			StageFlags:      vulkan.ShaderStageFlags(vulkan.ShaderStageComputeBit),
		}},
	}
	var setLayout vulkan.DescriptorSetLayout
	if ret := vulkan.CreateDescriptorSetLayout(device.Handle, &setLayoutInfo, nil, &setLayout); ret != vulkan.Success {
		vulkan.DestroyShaderModule(device.Handle, module, nil)
		return nil, fmt.Errorf("compute: vkCreateDescriptorSetLayout failed: %d", ret)
	}

	layoutInfo := vulkan.PipelineLayoutCreateInfo{
		SType:                  vulkan.StructureTypePipelineLayoutCreateInfo,
		SetLayoutCount:         1,
		PSetLayouts:            []vulkan.DescriptorSetLayout{setLayout},
		PushConstantRangeCount: 1,
		PPushConstantRanges: []vulkan.PushConstantRange{{
			StageFlags: vulkan.ShaderStageFlags(vulkan.ShaderStageComputeBit),
			Offset:     0,
			Size:       4, // a single uint32 direction flag, read by pushDirection
		}},
	}
	var layout vulkan.PipelineLayout
	if ret := vulkan.CreatePipelineLayout(device.Handle, &layoutInfo, nil, &layout); ret != vulkan.Success {
		vulkan.DestroyDescriptorSetLayout(device.Handle, setLayout, nil)
		vulkan.DestroyShaderModule(device.Handle, module, nil)
		return nil, fmt.Errorf("compute: vkCreatePipelineLayout failed: %d", ret)
	}

	pipelineInfo := vulkan.ComputePipelineCreateInfo{
		SType:  vulkan.StructureTypeComputePipelineCreateInfo,
		Layout: layout,
		Stage: vulkan.PipelineShaderStageCreateInfo{
			SType:  vulkan.StructureTypePipelineShaderStageCreateInfo,
			Stage:  vulkan.ShaderStageComputeBit,
			Module: module,
			PName:  "main\x00",
		},
	}
	pipelines := make([]vulkan.Pipeline, 1)
	if ret := vulkan.CreateComputePipelines(device.Handle, vulkan.PipelineCache(vulkan.NullHandle), 1, []vulkan.ComputePipelineCreateInfo{pipelineInfo}, nil, pipelines); ret != vulkan.Success {
		vulkan.DestroyPipelineLayout(device.Handle, layout, nil)
		vulkan.DestroyDescriptorSetLayout(device.Handle, setLayout, nil)
		vulkan.DestroyShaderModule(device.Handle, module, nil)
		return nil, fmt.Errorf("compute: vkCreateComputePipelines failed: %d", ret)
	}

	poolInfo := vulkan.DescriptorPoolCreateInfo{
		SType:         vulkan.StructureTypeDescriptorPoolCreateInfo,
		MaxSets:       1,
		PoolSizeCount: 1,
		PPoolSizes: []vulkan.DescriptorPoolSize{{
			Type:            vulkan.DescriptorTypeStorageBuffer,
			DescriptorCount: 1,
		}},
	}
	var pool vulkan.DescriptorPool
	if ret := vulkan.CreateDescriptorPool(device.Handle, &poolInfo, nil, &pool); ret != vulkan.Success {
		vulkan.DestroyPipeline(device.Handle, pipelines[0], nil)
		vulkan.DestroyPipelineLayout(device.Handle, layout, nil)
		vulkan.DestroyDescriptorSetLayout(device.Handle, setLayout, nil)
		vulkan.DestroyShaderModule(device.Handle, module, nil)
		return nil, fmt.Errorf("compute: vkCreateDescriptorPool failed: %d", ret)
	}

	allocInfo := vulkan.DescriptorSetAllocateInfo{
		SType:              vulkan.StructureTypeDescriptorSetAllocateInfo,
		DescriptorPool:     pool,
		DescriptorSetCount: 1,
		PSetLayouts:        []vulkan.DescriptorSetLayout{setLayout},
	}
	sets := make([]vulkan.DescriptorSet, 1)
	if ret := vulkan.AllocateDescriptorSets(device.Handle, &allocInfo, sets); ret != vulkan.Success {
		vulkan.DestroyDescriptorPool(device.Handle, pool, nil)
		vulkan.DestroyPipeline(device.Handle, pipelines[0], nil)
		vulkan.DestroyPipelineLayout(device.Handle, layout, nil)
		vulkan.DestroyDescriptorSetLayout(device.Handle, setLayout, nil)
		vulkan.DestroyShaderModule(device.Handle, module, nil)
		return nil, fmt.Errorf("compute: vkAllocateDescriptorSets failed: %d", ret)
	}

	write := vulkan.WriteDescriptorSet{
		SType:           vulkan.StructureTypeWriteDescriptorSet,
		DstSet:          sets[0],
		DstBinding:      0,
		DescriptorCount: 1,
		DescriptorType:  vulkan.DescriptorTypeStorageBuffer,
		PBufferInfo: []vulkan.DescriptorBufferInfo{{
			Buffer: buffer,
			Offset: 0,
			Range:  bufferSize,
		}},
	}
	vulkan.UpdateDescriptorSets(device.Handle, 1, []vulkan.WriteDescriptorSet{write}, 0, nil)

	return &computePipeline{
		module: module, setLayout: setLayout, layout: layout,
		pipeline: pipelines[0], descriptorPool: pool, set: sets[0],
	}, nil
}

func (p *computePipeline) destroy(device *Device) {
	if p == nil {
		return
	}
	vulkan.DestroyDescriptorPool(device.Handle, p.descriptorPool, nil)
	vulkan.DestroyPipeline(device.Handle, p.pipeline, nil)
	vulkan.DestroyPipelineLayout(device.Handle, p.layout, nil)
	vulkan.DestroyDescriptorSetLayout(device.Handle, p.setLayout, nil)
	vulkan.DestroyShaderModule(device.Handle, p.module, nil)
}

func (p *computePipeline) bindAndDispatch(cmd CommandBuffer, groups [3]uint32) {
	vulkan.CmdBindPipeline(cmd, vulkan.PipelineBindPointCompute, p.pipeline)
	vulkan.CmdBindDescriptorSets(cmd, vulkan.PipelineBindPointCompute, p.layout, 0, 1, []vulkan.DescriptorSet{p.set}, 0, nil)
	vulkan.CmdDispatch(cmd, groups[0], groups[1], groups[2])
}
