package asset

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Texture is a loaded image on the GPU.
type Texture interface {
	// IsReady reports whether the texture can be sampled.
	IsReady() bool
	Width() int
	Height() int
	// Src is the path the texture was loaded from.
	Src() string
	View() hal.TextureView
}

// Texture2D is an RGBA8 texture holding an image.
type Texture2D struct {
	device hal.Device
	tex    hal.Texture
	view   hal.TextureView
	src    string
	width  int
	height int
}

// NewTexture2D uploads img to a new texture. Channels are stored
// unpremultiplied since MSDF atlases keep distances, not colors, in RGB.
func NewTexture2D(device hal.Device, queue hal.Queue, src string, img image.Image) (*Texture2D, error) {
	if device == nil || queue == nil {
		return nil, ErrNoDevice
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: %s", ErrEmptyImage, src)
	}

	pix := toNRGBA(img)
	w, h := b.Dx(), b.Dy()
	size := hal.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1} //nolint:gosec // image bounds

	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         src,
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("asset: create texture %s: %w", src, err)
	}
	t := &Texture2D{device: device, tex: tex, src: src, width: w, height: h}

	err = queue.WriteTexture(
		&hal.ImageCopyTexture{Texture: tex, Aspect: gputypes.TextureAspectAll},
		pix.Pix,
		&hal.ImageDataLayout{BytesPerRow: uint32(pix.Stride), RowsPerImage: uint32(h)}, //nolint:gosec // image bounds
		&size,
	)
	if err != nil {
		t.Destroy()
		return nil, fmt.Errorf("asset: upload texture %s: %w", src, err)
	}

	t.view, err = device.CreateTextureView(tex, &hal.TextureViewDescriptor{Label: src + "_view"})
	if err != nil {
		t.Destroy()
		return nil, fmt.Errorf("asset: create texture view %s: %w", src, err)
	}
	return t, nil
}

// toNRGBA returns img as a tightly packed NRGBA image at the origin.
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) && n.Stride == 4*b.Dx() {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// IsReady reports whether the texture was uploaded and not destroyed.
func (t *Texture2D) IsReady() bool { return t != nil && t.view != nil }

// Width returns the width in pixels.
func (t *Texture2D) Width() int { return t.width }

// Height returns the height in pixels.
func (t *Texture2D) Height() int { return t.height }

// Src returns the path the texture was loaded from.
func (t *Texture2D) Src() string { return t.src }

// View returns the sampled view.
func (t *Texture2D) View() hal.TextureView { return t.view }

// Destroy releases the texture. Safe to call multiple times.
func (t *Texture2D) Destroy() {
	if t == nil || t.device == nil {
		return
	}
	if t.view != nil {
		t.device.DestroyTextureView(t.view)
		t.view = nil
	}
	if t.tex != nil {
		t.device.DestroyTexture(t.tex)
		t.tex = nil
	}
}
