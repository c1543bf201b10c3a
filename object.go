package msdftext

import (
	"errors"
	"time"

	"github.com/gogpu/wgpu/hal"
)

// Frame is what a Renderer needs to draw one frame.
type Frame struct {
	// Pass is the open render pass to record into. A nil Pass skips
	// draw calls; buffers are still updated.
	Pass hal.RenderPassEncoder

	// Camera is the view-projection matrix.
	Camera Matrix4
}

// Renderer is anything that can be drawn as part of a scene.
type Renderer interface {
	Render(delta time.Duration, f Frame) error
}

// Transform holds the local placement of an object.
type Transform struct {
	Position Vec2 `yaml:"position" json:"position"`
}

// Object is the scene node base: a name, an enabled flag, a transform and
// children rendered after their owner.
//
// Objects are owned by the render goroutine and are not safe for
// concurrent mutation.
type Object struct {
	name      string
	disabled  bool
	transform Transform
	children  []Renderer
}

// Name returns the object name.
func (o *Object) Name() string { return o.name }

// SetName sets the object name.
func (o *Object) SetName(name string) { o.name = name }

// Enabled reports whether the object is rendered.
func (o *Object) Enabled() bool { return !o.disabled }

// SetEnabled toggles rendering of the object and its children.
func (o *Object) SetEnabled(enabled bool) { o.disabled = !enabled }

// Transform returns the local transform.
func (o *Object) Transform() Transform { return o.transform }

// Position returns the local position.
func (o *Object) Position() Vec2 { return o.transform.Position }

// SetPosition moves the object.
func (o *Object) SetPosition(p Vec2) { o.transform.Position = p }

// AddChild appends a child rendered after this object.
func (o *Object) AddChild(r Renderer) {
	if r != nil {
		o.children = append(o.children, r)
	}
}

// RemoveChild removes the first occurrence of r and reports whether it
// was found.
func (o *Object) RemoveChild(r Renderer) bool {
	for i, c := range o.children {
		if c == r {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return true
		}
	}
	return false
}

// Children returns the children in render order.
func (o *Object) Children() []Renderer {
	return append([]Renderer(nil), o.children...)
}

// Render renders the children in order. All children are rendered even
// when some fail; the errors are joined.
func (o *Object) Render(delta time.Duration, f Frame) error {
	if o.disabled {
		return nil
	}
	var errs []error
	for _, c := range o.children {
		if err := c.Render(delta, f); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
