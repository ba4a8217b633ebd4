//go:build !nogpu

package gpu

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"sync"
	"unsafe"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	// Registers the Vulkan HAL backend.
	_ "github.com/gogpu/wgpu/hal/vulkan"

	"github.com/gogpu/lantern"
)

//go:embed shaders/expand.wgsl
var expandShaderWGSL string

// expandConfig is the uniform block of the expand shader.
// Must match the Config struct in expand.wgsl.
type expandConfig struct {
	Width  uint32
	Height uint32
	Pad0   uint32
	Pad1   uint32
}

// Presenter expands indexed frames to RGBA on the GPU.
//
// Present uploads the packed 4bpp frame and the palette, dispatches the
// expand shader and reads the RGBA result back. The latest result is
// cached for RenderTo, which composites it into a GoGPU host context.
//
// A Presenter without a working GPU stays usable: Present reports
// lantern.ErrPresentSkipped and the runner keeps ticking headless.
type Presenter struct {
	mu sync.Mutex

	instance     hal.Instance
	device       hal.Device
	queue        hal.Queue
	sharedDevice bool

	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipeline   hal.ComputePipeline

	width  uint32
	height uint32

	rgba    []byte // last expanded frame, RGBA bytes
	texture any    // host texture built from rgba, invalid when dirty
	dirty   bool

	ready bool
}

// New creates a GPU presenter. GPU resources are acquired lazily in
// Init, so construction never fails.
func New() *Presenter {
	return &Presenter{}
}

// Name returns the backend name.
func (p *Presenter) Name() string {
	return "wgpu"
}

// SetDeviceProvider configures the presenter to use a shared GPU device
// from an external provider (e.g., a gogpu application). This avoids
// creating a separate GPU instance and enables device sharing with the
// host. The provider must implement HalDevice() any and HalQueue() any
// returning hal.Device and hal.Queue.
//
// Call this before the runner boots.
func (p *Presenter) SetDeviceProvider(provider gpucontext.DeviceProvider) error {
	hp, ok := provider.(interface {
		HalDevice() any
		HalQueue() any
	})
	if !ok {
		return fmt.Errorf("gpu: provider does not expose HAL device access")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok {
		return fmt.Errorf("gpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok {
		return fmt.Errorf("gpu: provider HalQueue is not hal.Queue")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.device = device
	p.queue = queue
	p.sharedDevice = true
	return nil
}

// Init implements lantern.Presenter. A missing GPU is not an error:
// the presenter downgrades to skipping frames so headless runs work.
func (p *Presenter) Init(width, height int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.width = uint32(width)   //nolint:gosec // dimensions always fit uint32
	p.height = uint32(height) //nolint:gosec // dimensions always fit uint32

	if err := p.initGPU(); err != nil {
		lantern.Logger().Warn("GPU presenter not available, skipping frames", "err", err)
		p.ready = false
		return nil
	}
	p.ready = true
	return nil
}

func (p *Presenter) initGPU() error {
	if p.device == nil {
		backend, ok := hal.GetBackend(gputypes.BackendVulkan)
		if !ok {
			return fmt.Errorf("vulkan backend not available")
		}
		instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
		if err != nil {
			return fmt.Errorf("create instance: %w", err)
		}
		p.instance = instance
		adapters := instance.EnumerateAdapters(nil)
		if len(adapters) == 0 {
			return fmt.Errorf("no GPU adapters found")
		}
		var selected *hal.ExposedAdapter
		for i := range adapters {
			if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
				adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
				selected = &adapters[i]
				break
			}
		}
		if selected == nil {
			selected = &adapters[0]
		}
		openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
		if err != nil {
			return fmt.Errorf("open device: %w", err)
		}
		p.device = openDev.Device
		p.queue = openDev.Queue
		lantern.Logger().Info("GPU presenter initialized", "adapter", selected.Info.Name)
	}

	if err := p.createPipeline(); err != nil {
		p.releaseDevice()
		return err
	}
	return nil
}

func (p *Presenter) createPipeline() error {
	// Compile WGSL to SPIR-V
	spirvBytes, err := naga.Compile(expandShaderWGSL)
	if err != nil {
		return fmt.Errorf("compile expand shader: %w", err)
	}
	spirv := make([]uint32, len(spirvBytes)/4)
	for i := range spirv {
		spirv[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "lantern_expand",
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return fmt.Errorf("create expand shader module: %w", err)
	}
	p.shader = shader

	bindLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "lantern_expand_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{Binding: 0, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform}},
			{Binding: 1, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeReadOnlyStorage}},
			{Binding: 2, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeReadOnlyStorage}},
			{Binding: 3, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeStorage}},
		},
	})
	if err != nil {
		return fmt.Errorf("create bind group layout: %w", err)
	}
	p.bindLayout = bindLayout

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: "lantern_expand_pipe_layout", BindGroupLayouts: []hal.BindGroupLayout{p.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	pipeline, err := p.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label: "lantern_expand_pipeline", Layout: p.pipeLayout,
		Compute: hal.ComputeState{Module: p.shader, EntryPoint: "cs_expand"},
	})
	if err != nil {
		return fmt.Errorf("create expand compute pipeline: %w", err)
	}
	p.pipeline = pipeline

	return nil
}

// Present implements lantern.Presenter.
func (p *Presenter) Present(f *lantern.Frame, pal lantern.Palette) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return lantern.ErrPresentSkipped
	}

	packed := packFrame(f)
	palBytes := packPalette(pal)
	rgba, err := p.dispatchExpand(packed, palBytes)
	if err != nil {
		return fmt.Errorf("gpu: expand frame: %w", err)
	}
	p.rgba = rgba
	p.dirty = true
	return nil
}

// dispatchExpand runs one expand pass and reads back the RGBA pixels.
func (p *Presenter) dispatchExpand(packed, palBytes []byte) ([]byte, error) {
	pixelBufSize := uint64(p.width) * uint64(p.height) * 4

	cfg := expandConfig{Width: p.width, Height: p.height}
	cfgBytes := structToBytes(unsafe.Pointer(&cfg), unsafe.Sizeof(cfg)) //nolint:gosec // safe struct serialization

	configBuf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "lantern_expand_config", Size: uint64(len(cfgBytes)),
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create config buffer: %w", err)
	}
	defer p.device.DestroyBuffer(configBuf)

	packedBuf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "lantern_expand_packed", Size: uint64(len(packed)),
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create packed buffer: %w", err)
	}
	defer p.device.DestroyBuffer(packedBuf)

	paletteBuf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "lantern_expand_palette", Size: uint64(len(palBytes)),
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create palette buffer: %w", err)
	}
	defer p.device.DestroyBuffer(paletteBuf)

	pixelsBuf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "lantern_expand_pixels", Size: pixelBufSize,
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopySrc,
	})
	if err != nil {
		return nil, fmt.Errorf("create pixels buffer: %w", err)
	}
	defer p.device.DestroyBuffer(pixelsBuf)

	stagingBuf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "lantern_expand_staging", Size: pixelBufSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create staging buffer: %w", err)
	}
	defer p.device.DestroyBuffer(stagingBuf)

	p.queue.WriteBuffer(configBuf, 0, cfgBytes)
	p.queue.WriteBuffer(packedBuf, 0, packed)
	p.queue.WriteBuffer(paletteBuf, 0, palBytes)

	bindGroup, err := p.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label: "lantern_expand_bind", Layout: p.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{Buffer: configBuf.NativeHandle(), Offset: 0, Size: uint64(len(cfgBytes))}},
			{Binding: 1, Resource: gputypes.BufferBinding{Buffer: packedBuf.NativeHandle(), Offset: 0, Size: uint64(len(packed))}},
			{Binding: 2, Resource: gputypes.BufferBinding{Buffer: paletteBuf.NativeHandle(), Offset: 0, Size: uint64(len(palBytes))}},
			{Binding: 3, Resource: gputypes.BufferBinding{Buffer: pixelsBuf.NativeHandle(), Offset: 0, Size: pixelBufSize}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create bind group: %w", err)
	}
	defer p.device.DestroyBindGroup(bindGroup)

	encoder, err := p.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "lantern_expand_encoder"})
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("lantern_expand"); err != nil {
		return nil, fmt.Errorf("begin encoding: %w", err)
	}

	computePass := encoder.BeginComputePass(&hal.ComputePassDescriptor{Label: "lantern_expand_pass"})
	computePass.SetPipeline(p.pipeline)
	computePass.SetBindGroup(0, bindGroup, nil)
	computePass.Dispatch((p.width+7)/8, (p.height+7)/8, 1)
	computePass.End()

	encoder.CopyBufferToBuffer(pixelsBuf, stagingBuf, []hal.BufferCopy{
		{SrcOffset: 0, DstOffset: 0, Size: pixelBufSize},
	})
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("end encoding: %w", err)
	}
	defer p.device.FreeCommandBuffer(cmdBuf)

	// The HAL manages its own submission fences; WaitIdle is the
	// synchronization point before mapping the staging buffer.
	if _, err := p.queue.Submit([]hal.CommandBuffer{cmdBuf}); err != nil {
		return nil, fmt.Errorf("submit: %w", err)
	}
	if err := p.device.WaitIdle(); err != nil {
		return nil, fmt.Errorf("wait for GPU: %w", err)
	}

	mapping, err := p.device.MapBuffer(stagingBuf, 0, pixelBufSize)
	if err != nil {
		return nil, fmt.Errorf("map staging buffer: %w", err)
	}
	readback := make([]byte, pixelBufSize)
	copy(readback, unsafe.Slice((*byte)(mapping.Ptr), pixelBufSize)) //nolint:gosec // mapped range is pixelBufSize bytes
	if err := p.device.UnmapBuffer(stagingBuf); err != nil {
		return nil, fmt.Errorf("unmap staging buffer: %w", err)
	}
	return readback, nil
}

// RGBA returns the last expanded frame as raw RGBA bytes, or nil when
// no frame has been presented yet.
func (p *Presenter) RGBA() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rgba
}

// textureDestroyer is the interface for destroying host textures.
type textureDestroyer interface {
	Destroy()
}

// RenderTo composites the last expanded frame into a GoGPU host
// context. The dc parameter should be obtained from
// gogpu.Context.AsTextureDrawer(). The host texture is rebuilt only
// when a new frame was presented since the previous call.
//
// Example:
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    presenter.RenderTo(dc.AsTextureDrawer())
//	})
func (p *Presenter) RenderTo(dc gpucontext.TextureDrawer) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.rgba == nil {
		return lantern.ErrPresentSkipped
	}

	if p.dirty {
		creator := dc.TextureCreator()
		if creator == nil {
			return fmt.Errorf("gpu: draw context has no texture creator")
		}
		tex, err := creator.NewTextureFromRGBA(int(p.width), int(p.height), p.rgba)
		if err != nil {
			return fmt.Errorf("gpu: create host texture: %w", err)
		}
		// The old texture is safe to destroy here: NewTextureFromRGBA
		// waits for the GPU internally, so no prior draw still reads it.
		if old, ok := p.texture.(textureDestroyer); ok {
			old.Destroy()
		}
		p.texture = tex
		p.dirty = false
	}

	gpuTex, ok := p.texture.(gpucontext.Texture)
	if !ok {
		return fmt.Errorf("gpu: host texture does not implement gpucontext.Texture")
	}
	return dc.DrawTexture(gpuTex, 0, 0)
}

// Close implements lantern.Presenter.
func (p *Presenter) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.destroyPipeline()
	p.releaseDevice()
	p.ready = false
}

func (p *Presenter) destroyPipeline() {
	if p.device == nil {
		return
	}
	if p.pipeline != nil {
		p.device.DestroyComputePipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.bindLayout != nil {
		p.device.DestroyBindGroupLayout(p.bindLayout)
		p.bindLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}

// releaseDevice drops GPU resources the presenter created itself.
// Shared devices belong to the host and are left alone.
func (p *Presenter) releaseDevice() {
	if p.sharedDevice {
		return
	}
	if p.device != nil {
		p.device.Destroy()
		p.device = nil
		p.queue = nil
	}
	if p.instance != nil {
		p.instance.Destroy()
		p.instance = nil
	}
}

var (
	availableOnce sync.Once
	availableGPU  bool
)

// available reports whether a usable GPU adapter exists. The probe runs
// once: it creates a throwaway instance and enumerates adapters, so the
// registry can skip the wgpu backend on GPU-less machines.
func available() bool {
	availableOnce.Do(func() {
		backend, ok := hal.GetBackend(gputypes.BackendVulkan)
		if !ok {
			return
		}
		instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
		if err != nil {
			return
		}
		defer instance.Destroy()
		availableGPU = len(instance.EnumerateAdapters(nil)) > 0
	})
	return availableGPU
}

func structToBytes(ptr unsafe.Pointer, size uintptr) []byte {
	return unsafe.Slice((*byte)(ptr), size) //nolint:gosec // safe struct serialization
}

// packFrame packs the frame to 4 bits per pixel, two pixels per byte
// with the left pixel in the low nibble, padded to a u32 boundary for
// the storage buffer.
func packFrame(f *lantern.Frame) []byte {
	data := f.Data()
	n := (len(data) + 1) / 2
	out := make([]byte, (n+3)&^3)
	for i, slot := range data {
		if i%2 == 0 {
			out[i/2] |= slot & 0x0f
		} else {
			out[i/2] |= (slot & 0x0f) << 4
		}
	}
	return out
}

// packPalette encodes the palette as 16 little-endian RGBA words.
func packPalette(pal lantern.Palette) []byte {
	out := make([]byte, len(pal)*4)
	for i, c := range pal {
		packed := uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | 0xff<<24
		binary.LittleEndian.PutUint32(out[i*4:], packed)
	}
	return out
}
