package asset

import (
	"context"
	"fmt"
	"image"
	"io/fs"
	"path"
	"strings"
	"sync"

	// Atlas formats.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/wgpu/hal"
)

// Loader reads images and files from a file system and caches them by
// path. An alias can be registered for any loaded asset.
//
// A Loader is safe for concurrent use.
type Loader struct {
	fsys   fs.FS
	device hal.Device
	queue  hal.Queue

	mu         sync.RWMutex
	images     map[string]image.Image
	imageAlias map[string]string
	files      map[string][]byte
	fileAlias  map[string]string
	textures   map[string]*Texture2D
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithDevice lets the loader upload textures.
func WithDevice(device hal.Device, queue hal.Queue) LoaderOption {
	return func(l *Loader) {
		l.device = device
		l.queue = queue
	}
}

// NewLoader returns a loader reading from fsys.
func NewLoader(fsys fs.FS, opts ...LoaderOption) *Loader {
	l := &Loader{fsys: fsys}
	for _, opt := range opts {
		opt(l)
	}
	l.reset()
	return l
}

func (l *Loader) reset() {
	l.images = make(map[string]image.Image)
	l.imageAlias = make(map[string]string)
	l.files = make(map[string][]byte)
	l.fileAlias = make(map[string]string)
	l.textures = make(map[string]*Texture2D)
}

// cleanPath turns p into an fs.FS path. Leading slashes are dropped so
// web-style absolute paths resolve against the file system root.
func cleanPath(p string) (string, error) {
	p = path.Clean(strings.TrimLeft(p, "/"))
	if !fs.ValidPath(p) || p == "." {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	return p, nil
}

// LoadImage decodes the image at p, caching it by path. PNG, JPEG, BMP
// and WebP are supported. A non-empty alias is registered for the path.
func (l *Loader) LoadImage(ctx context.Context, p, alias string) (image.Image, error) {
	p, err := cleanPath(p)
	if err != nil {
		return nil, err
	}

	l.mu.RLock()
	img, ok := l.images[p]
	l.mu.RUnlock()

	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		f, err := l.fsys.Open(p)
		if err != nil {
			slogger().Warn("asset: image load failed", "path", p, "err", err)
			return nil, err
		}
		defer f.Close()

		var format string
		img, format, err = image.Decode(f)
		if err != nil {
			slogger().Warn("asset: image decode failed", "path", p, "err", err)
			return nil, fmt.Errorf("asset: decode %s: %w", p, err)
		}
		slogger().Debug("asset: image loaded", "path", p, "format", format,
			"size", img.Bounds().Size())
	}

	l.mu.Lock()
	l.images[p] = img
	if alias != "" {
		l.imageAlias[alias] = p
	}
	l.mu.Unlock()
	return img, nil
}

// LoadFile reads the file at p, caching it by path.
func (l *Loader) LoadFile(ctx context.Context, p, alias string) ([]byte, error) {
	p, err := cleanPath(p)
	if err != nil {
		return nil, err
	}

	l.mu.RLock()
	data, ok := l.files[p]
	l.mu.RUnlock()

	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err = fs.ReadFile(l.fsys, p)
		if err != nil {
			slogger().Warn("asset: file load failed", "path", p, "err", err)
			return nil, err
		}
	}

	l.mu.Lock()
	l.files[p] = data
	if alias != "" {
		l.fileAlias[alias] = p
	}
	l.mu.Unlock()
	return data, nil
}

// Image returns a loaded image by alias.
func (l *Loader) Image(alias string) (image.Image, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.imageAlias[alias]
	if !ok {
		return nil, false
	}
	img, ok := l.images[p]
	return img, ok
}

// File returns a loaded file by alias.
func (l *Loader) File(alias string) ([]byte, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.fileAlias[alias]
	if !ok {
		return nil, false
	}
	data, ok := l.files[p]
	return data, ok
}

// SourcePath returns the path an image alias refers to.
func (l *Loader) SourcePath(alias string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.imageAlias[alias]
	return p, ok
}

// TextureFromPath uploads the image at p as a texture, caching it by
// path. The loader must have a device.
func (l *Loader) TextureFromPath(ctx context.Context, p string) (Texture, error) {
	if l.device == nil || l.queue == nil {
		return nil, ErrNoDevice
	}
	p, err := cleanPath(p)
	if err != nil {
		return nil, err
	}

	l.mu.RLock()
	tex, ok := l.textures[p]
	l.mu.RUnlock()
	if ok {
		return tex, nil
	}

	img, err := l.LoadImage(ctx, p, "")
	if err != nil {
		return nil, err
	}
	tex, err = NewTexture2D(l.device, l.queue, p, img)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if prev, ok := l.textures[p]; ok {
		// Lost a race with a concurrent upload of the same path.
		tex.Destroy()
		return prev, nil
	}
	l.textures[p] = tex
	return tex, nil
}

// Clear drops every cached asset and destroys the textures the loader
// created.
func (l *Loader) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, tex := range l.textures {
		tex.Destroy()
	}
	l.reset()
}
