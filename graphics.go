package msdftext

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// halProvider is implemented by providers that expose their HAL objects,
// such as the gogpu application context.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

type providerGraphics struct {
	device hal.Device
	queue  hal.Queue
	format gputypes.TextureFormat
}

func (g *providerGraphics) Device() hal.Device                   { return g.device }
func (g *providerGraphics) Queue() hal.Queue                     { return g.queue }
func (g *providerGraphics) TargetFormat() gputypes.TextureFormat { return g.format }

// NewGraphics returns the Graphics of a shared GPU device. The provider
// must either implement HalDevice() any and HalQueue() any, or return a
// hal.Device and hal.Queue directly from Device and Queue.
//
// format is the render target format; TextureFormatUndefined selects the
// provider's surface format.
func NewGraphics(p gpucontext.DeviceProvider, format gputypes.TextureFormat) (Graphics, error) {
	if p == nil {
		return nil, ErrNilProvider
	}

	var device, queue any
	if hp, ok := p.(halProvider); ok {
		device, queue = hp.HalDevice(), hp.HalQueue()
	} else {
		device, queue = p.Device(), p.Queue()
	}

	d, ok := device.(hal.Device)
	if !ok || d == nil {
		return nil, fmt.Errorf("%w: device is %T", ErrNoHAL, device)
	}
	q, ok := queue.(hal.Queue)
	if !ok || q == nil {
		return nil, fmt.Errorf("%w: queue is %T", ErrNoHAL, queue)
	}

	if format == gputypes.TextureFormatUndefined {
		format = p.SurfaceFormat()
	}
	if format == gputypes.TextureFormatUndefined {
		return nil, ErrNoTargetFormat
	}

	info := p.AdapterInfo()
	slogger().Debug("msdftext: graphics from provider", "adapter", info.Name, "format", format)
	return &providerGraphics{device: d, queue: q, format: format}, nil
}
