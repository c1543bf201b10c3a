package gpu

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/msdftext/shader"
)

func TestNewPipeline(t *testing.T) {
	device, _ := newNoopDevice(t)

	for _, format := range []gputypes.TextureFormat{
		gputypes.TextureFormatBGRA8Unorm,
		gputypes.TextureFormatRGBA8Unorm,
	} {
		p, err := NewPipeline(device, format)
		if err != nil {
			t.Fatalf("NewPipeline(%v) error = %v", format, err)
		}
		if p.shader == nil || p.bindLayout == nil || p.pipeLayout == nil || p.sampler == nil || p.pipeline == nil {
			t.Errorf("NewPipeline(%v) left objects unset: %+v", format, p)
		}
		p.Destroy()
	}
}

func TestPipelineDestroy(t *testing.T) {
	device, _ := newNoopDevice(t)
	p, err := NewPipeline(device, gputypes.TextureFormatBGRA8Unorm)
	if err != nil {
		t.Fatalf("NewPipeline() error = %v", err)
	}

	p.Destroy()
	if p.pipeline != nil || p.shader != nil {
		t.Error("Destroy() did not release the pipeline")
	}
	// Double destroy should be safe.
	p.Destroy()

	var nilPipeline *Pipeline
	nilPipeline.Destroy()
	(&Pipeline{}).Destroy()
}

func TestNewPipelineNilDevice(t *testing.T) {
	if _, err := NewPipeline(nil, gputypes.TextureFormatBGRA8Unorm); !errors.Is(err, ErrNilDevice) {
		t.Errorf("NewPipeline(nil) error = %v, want ErrNilDevice", err)
	}
}

func TestVertexLayout(t *testing.T) {
	l := vertexLayout()
	if len(l) != 2 {
		t.Fatalf("len(vertexLayout()) = %d, want 2", len(l))
	}
	wantLocations := []uint32{shader.LocationPosition, shader.LocationTexCoord}
	for i, b := range l {
		if b.ArrayStride != floatPairStride || len(b.Attributes) != 1 {
			t.Errorf("buffer %d = %+v, want stride 8 with one attribute", i, b)
			continue
		}
		a := b.Attributes[0]
		if a.ShaderLocation != wantLocations[i] || a.Format != gputypes.VertexFormatFloat32x2 {
			t.Errorf("buffer %d attribute = %+v, want vec2<f32> at location %d", i, a, wantLocations[i])
		}
	}
}
