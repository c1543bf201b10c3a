// Package gpu holds the wgpu HAL objects behind MSDF text drawing.
//
// A [Pipeline] owns the compiled text shader, its layouts, the atlas
// sampler and the render pipeline. [Resources] add the per-text vertex,
// index and uniform buffers plus the bind group tying them to one atlas
// texture view.
//
// Everything is created against a hal.Device supplied by the caller and
// released with Destroy.
package gpu
