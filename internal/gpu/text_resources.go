package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/msdftext/mesh"
	"github.com/gogpu/msdftext/shader"
	"github.com/gogpu/wgpu/hal"
)

// Bytes per glyph in each buffer.
const (
	glyphFloatBytes = mesh.VerticesPerGlyph * floatPairStride
	glyphIndexBytes = mesh.IndicesPerGlyph * 2
)

// ErrNilTextureView is returned when resources are created without an atlas.
var ErrNilTextureView = errors.New("gpu: texture view is nil")

// Resources are the GPU objects of one text object: its pipeline, the
// position, texture coordinate, index and uniform buffers, and the bind
// group tying the uniforms to the atlas texture.
//
// Geometry buffers grow to fit the mesh and never shrink.
type Resources struct {
	device hal.Device
	queue  hal.Queue

	pipeline *Pipeline

	posBuf     hal.Buffer
	uvBuf      hal.Buffer
	idxBuf     hal.Buffer
	uniformBuf hal.Buffer
	bindGroup  hal.BindGroup

	glyphCap   int
	indexCount uint32
}

// NewResources creates the pipeline and buffers for a text object drawing
// with the atlas view into targets of the given format. glyphCapacity
// sizes the initial geometry buffers.
func NewResources(device hal.Device, queue hal.Queue, format gputypes.TextureFormat,
	view hal.TextureView, glyphCapacity int) (*Resources, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	if view == nil {
		return nil, ErrNilTextureView
	}

	pipeline, err := NewPipeline(device, format)
	if err != nil {
		return nil, err
	}
	r := &Resources{device: device, queue: queue, pipeline: pipeline}
	if err := r.create(view, max(glyphCapacity, 1)); err != nil {
		r.Destroy()
		return nil, err
	}
	return r, nil
}

func (r *Resources) create(view hal.TextureView, glyphCap int) error {
	if err := r.allocGeometry(glyphCap); err != nil {
		return err
	}

	uniformBuf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "msdf_text_uniforms",
		Size:  shader.UniformSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("gpu: create uniform buffer: %w", err)
	}
	r.uniformBuf = uniformBuf

	bindGroup, err := r.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "msdf_text_bind_group",
		Layout: r.pipeline.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: shader.BindingUniforms, Resource: gputypes.BufferBinding{
				Buffer: r.uniformBuf.NativeHandle(),
				Size:   shader.UniformSize,
			}},
			{Binding: shader.BindingTexture, Resource: gputypes.TextureViewBinding{
				TextureView: view.NativeHandle(),
			}},
			{Binding: shader.BindingSampler, Resource: gputypes.SamplerBinding{
				Sampler: r.pipeline.sampler.NativeHandle(),
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: create bind group: %w", err)
	}
	r.bindGroup = bindGroup
	return nil
}

// allocGeometry (re)creates the geometry buffers for glyphCap glyphs.
func (r *Resources) allocGeometry(glyphCap int) error {
	r.destroyGeometry()

	n := uint64(glyphCap) //nolint:gosec // glyphCap is positive
	vertexUsage := gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst
	var err error
	if r.posBuf, err = r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "msdf_text_positions",
		Size:  n * glyphFloatBytes,
		Usage: vertexUsage,
	}); err != nil {
		return fmt.Errorf("gpu: create position buffer: %w", err)
	}
	if r.uvBuf, err = r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "msdf_text_texcoords",
		Size:  n * glyphFloatBytes,
		Usage: vertexUsage,
	}); err != nil {
		return fmt.Errorf("gpu: create texcoord buffer: %w", err)
	}
	if r.idxBuf, err = r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "msdf_text_indices",
		Size:  n * glyphIndexBytes,
		Usage: gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst,
	}); err != nil {
		return fmt.Errorf("gpu: create index buffer: %w", err)
	}
	r.glyphCap = glyphCap
	return nil
}

// Upload writes the mesh and uniforms for the next Draw, growing the
// geometry buffers when the mesh does not fit.
func (r *Resources) Upload(m *mesh.Mesh, u *shader.Uniforms) error {
	if r == nil || r.device == nil {
		return ErrNilDevice
	}

	n := m.GlyphCount()
	if n > r.glyphCap {
		newCap := max(n, 2*r.glyphCap)
		slogger().Debug("growing msdf_text buffers", "from", r.glyphCap, "to", newCap)
		if err := r.allocGeometry(newCap); err != nil {
			return err
		}
	}

	if n > 0 {
		if err := r.queue.WriteBuffer(r.posBuf, 0, m.VertexBytes()); err != nil {
			return fmt.Errorf("gpu: write positions: %w", err)
		}
		if err := r.queue.WriteBuffer(r.uvBuf, 0, m.TexCoordBytes()); err != nil {
			return fmt.Errorf("gpu: write texcoords: %w", err)
		}
		if err := r.queue.WriteBuffer(r.idxBuf, 0, m.IndexBytes()); err != nil {
			return fmt.Errorf("gpu: write indices: %w", err)
		}
	}
	if err := r.queue.WriteBuffer(r.uniformBuf, 0, u.Bytes()); err != nil {
		return fmt.Errorf("gpu: write uniforms: %w", err)
	}

	r.indexCount = uint32(n * mesh.IndicesPerGlyph) //nolint:gosec // n <= mesh.MaxGlyphs
	return nil
}

// Draw records the indexed draw of the last uploaded mesh. An empty mesh
// records nothing.
func (r *Resources) Draw(rp hal.RenderPassEncoder) {
	if r == nil || r.indexCount == 0 || r.pipeline == nil {
		return
	}
	rp.SetPipeline(r.pipeline.pipeline)
	rp.SetBindGroup(0, r.bindGroup, nil)
	rp.SetVertexBuffer(shader.LocationPosition, r.posBuf, 0)
	rp.SetVertexBuffer(shader.LocationTexCoord, r.uvBuf, 0)
	rp.SetIndexBuffer(r.idxBuf, gputypes.IndexFormatUint16, 0)
	rp.DrawIndexed(r.indexCount, 1, 0, 0, 0)
}

// GlyphCapacity returns how many glyphs fit without reallocating.
func (r *Resources) GlyphCapacity() int { return r.glyphCap }

// IndexCount returns the index count of the last upload.
func (r *Resources) IndexCount() uint32 { return r.indexCount }

func (r *Resources) destroyGeometry() {
	if r.posBuf != nil {
		r.device.DestroyBuffer(r.posBuf)
		r.posBuf = nil
	}
	if r.uvBuf != nil {
		r.device.DestroyBuffer(r.uvBuf)
		r.uvBuf = nil
	}
	if r.idxBuf != nil {
		r.device.DestroyBuffer(r.idxBuf)
		r.idxBuf = nil
	}
	r.glyphCap = 0
	r.indexCount = 0
}

// Destroy releases every buffer, the bind group and the pipeline. Safe to
// call multiple times or on partially created resources.
func (r *Resources) Destroy() {
	if r == nil || r.device == nil {
		return
	}
	if r.bindGroup != nil {
		r.device.DestroyBindGroup(r.bindGroup)
		r.bindGroup = nil
	}
	if r.uniformBuf != nil {
		r.device.DestroyBuffer(r.uniformBuf)
		r.uniformBuf = nil
	}
	r.destroyGeometry()
	r.pipeline.Destroy()
	r.pipeline = nil
	r.indexCount = 0
}
