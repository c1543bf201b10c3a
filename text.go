package msdftext

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/msdftext/asset"
	"github.com/gogpu/msdftext/font"
	"github.com/gogpu/msdftext/internal/gpu"
	"github.com/gogpu/msdftext/layout"
	"github.com/gogpu/msdftext/mesh"
	"github.com/gogpu/msdftext/shader"
)

// maxReported bounds the strings a Text remembers having reported missing
// glyphs for.
const maxReported = 32

// Graphics is the render context a Text draws with.
type Graphics interface {
	Device() hal.Device
	Queue() hal.Queue
	TargetFormat() gputypes.TextureFormat
}

// Texture is a loaded image on the GPU.
type Texture = asset.Texture

// TextureSource resolves texture paths.
type TextureSource interface {
	TextureFromPath(ctx context.Context, path string) (Texture, error)
}

// FontSource loads a font descriptor together with its atlas.
type FontSource interface {
	LoadFont(ctx context.Context, path string) (*asset.FontResult, error)
}

// Text is a scene object drawing a string with an MSDF font atlas.
//
// Setters may be called from any goroutine; Render is expected to be
// called from the render goroutine only. Children added through the
// embedded Object are rendered after the text.
type Text struct {
	Object

	mu sync.Mutex
	g  Graphics

	text  string
	style *font.Style

	color             RGBA
	stroke            Stroke
	strokeEnabled     bool
	dropShadow        DropShadow
	dropShadowEnabled bool
	gamma             float64
	debug             bool

	align         layout.Align
	wordWrap      bool
	characterWrap bool
	maxWidth      float64

	fontPath   string
	textureSrc string
	texture    Texture
	texWidth   int
	texHeight  int

	glyphCap int
	res      *gpu.Resources

	textures TextureSource
	fonts    FontSource

	// gen is bumped by Unload; loads started before it are discarded.
	gen uint64

	// reported holds the strings whose missing glyphs were logged for the
	// current font style.
	reported map[string]struct{}
}

// NewText creates a text object. A nil g gives a headless text whose
// layout and mesh work but which never touches the GPU.
func NewText(g Graphics, opts ...Option) *Text {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	cfg := o.config

	t := &Text{
		g:                 g,
		text:              o.text,
		style:             o.style,
		color:             cfg.color(),
		stroke:            cfg.stroke(),
		strokeEnabled:     cfg.Stroke.Enabled,
		dropShadow:        cfg.dropShadow(),
		dropShadowEnabled: cfg.DropShadow.Enabled,
		gamma:             cfg.Gamma,
		align:             cfg.Align,
		wordWrap:          cfg.WordWrap,
		characterWrap:     cfg.CharacterWrap,
		maxWidth:          cfg.MaxWidth,
		glyphCap:          cfg.InitialGlyphCapacity,
		textures:          o.textures,
		fonts:             o.fonts,
	}
	t.SetName(o.name)

	if o.texture != nil {
		if err := t.SetTexture(o.texture); err != nil {
			slogger().Warn("msdftext: initial texture rejected", "name", o.name, "err", err)
		}
	}
	return t
}

// Text returns the displayed string.
func (t *Text) Text() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.text
}

// SetText sets the displayed string.
func (t *Text) SetText(s string) {
	t.mu.Lock()
	t.text = s
	t.mu.Unlock()
}

// FontStyle returns the font style, possibly nil.
func (t *Text) FontStyle() *font.Style {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.style
}

// SetFontStyle sets the font style. The style may be shared.
func (t *Text) SetFontStyle(s *font.Style) {
	t.mu.Lock()
	t.style = s
	t.reported = nil
	t.mu.Unlock()
}

// FontSize returns the style's rendering size, or 0 without a style.
func (t *Text) FontSize() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.style == nil {
		return 0
	}
	return t.style.FontSize()
}

// SetFontSize changes the style's rendering size. Texts sharing the style
// change with it.
func (t *Text) SetFontSize(size float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.style != nil {
		t.style.SetFontSize(size)
	}
}

// LetterSpacing returns the style's letter spacing, or 0 without a style.
func (t *Text) LetterSpacing() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.style == nil {
		return 0
	}
	return t.style.LetterSpacing()
}

// SetLetterSpacing sets the style's letter spacing.
func (t *Text) SetLetterSpacing(v float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.style != nil {
		t.style.SetLetterSpacing(v)
	}
}

// Color returns the fill color.
func (t *Text) Color() RGBA {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.color
}

// SetColor sets the fill color.
func (t *Text) SetColor(c RGBA) {
	t.mu.Lock()
	t.color = c
	t.mu.Unlock()
}

// Stroke returns the outline.
func (t *Text) Stroke() Stroke {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stroke
}

// SetStroke sets the outline.
func (t *Text) SetStroke(s Stroke) {
	t.mu.Lock()
	t.stroke = s
	t.mu.Unlock()
}

// StrokeEnabled reports whether the outline is drawn.
func (t *Text) StrokeEnabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.strokeEnabled
}

// SetStrokeEnabled toggles the outline.
func (t *Text) SetStrokeEnabled(v bool) {
	t.mu.Lock()
	t.strokeEnabled = v
	t.mu.Unlock()
}

// DropShadow returns the drop shadow.
func (t *Text) DropShadow() DropShadow {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dropShadow
}

// SetDropShadow sets the drop shadow.
func (t *Text) SetDropShadow(d DropShadow) {
	t.mu.Lock()
	t.dropShadow = d
	t.mu.Unlock()
}

// DropShadowEnabled reports whether the drop shadow is drawn.
func (t *Text) DropShadowEnabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dropShadowEnabled
}

// SetDropShadowEnabled toggles the drop shadow.
func (t *Text) SetDropShadowEnabled(v bool) {
	t.mu.Lock()
	t.dropShadowEnabled = v
	t.mu.Unlock()
}

// Align returns the line alignment.
func (t *Text) Align() layout.Align {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.align
}

// SetAlign sets the line alignment.
func (t *Text) SetAlign(a layout.Align) {
	t.mu.Lock()
	t.align = a
	t.mu.Unlock()
}

// WordWrap reports whether lines break at whitespace.
func (t *Text) WordWrap() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.wordWrap
}

// SetWordWrap toggles breaking at whitespace.
func (t *Text) SetWordWrap(v bool) {
	t.mu.Lock()
	t.wordWrap = v
	t.mu.Unlock()
}

// CharacterWrap reports whether lines break between any characters.
func (t *Text) CharacterWrap() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.characterWrap
}

// SetCharacterWrap toggles breaking between characters.
func (t *Text) SetCharacterWrap(v bool) {
	t.mu.Lock()
	t.characterWrap = v
	t.mu.Unlock()
}

// MaxWidth returns the layout width.
func (t *Text) MaxWidth() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.maxWidth
}

// SetMaxWidth sets the layout width. A width <= 0 disables wrapping.
func (t *Text) SetMaxWidth(w float64) {
	t.mu.Lock()
	t.maxWidth = w
	t.mu.Unlock()
}

// Gamma returns the stored gamma. The shader derives its edge smoothing
// from the font scale instead.
func (t *Text) Gamma() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.gamma
}

// SetGamma stores a gamma value.
func (t *Text) SetGamma(g float64) {
	t.mu.Lock()
	t.gamma = g
	t.mu.Unlock()
}

// Debug reports whether the raw distance field is drawn.
func (t *Text) Debug() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.debug
}

// SetDebug toggles drawing the raw distance field.
func (t *Text) SetDebug(v bool) {
	t.mu.Lock()
	t.debug = v
	t.mu.Unlock()
}

// FontPath returns the path of the last font loaded by SetFontPath.
func (t *Text) FontPath() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fontPath
}

// TextureSrc returns the source path of the current texture.
func (t *Text) TextureSrc() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.textureSrc
}

// Texture returns the atlas texture, possibly nil.
func (t *Text) Texture() Texture {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.texture
}

// SetTexture sets the atlas. A nil or not yet loaded texture clears the
// atlas and releases the GPU resources. A ready texture gets a fresh
// pipeline and buffers bound to it.
//
// If the GPU resources cannot be created the previous atlas is kept and
// the error is returned.
func (t *Text) SetTexture(tex Texture) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.setTexture(tex)
}

func (t *Text) setTexture(tex Texture) error {
	if tex == nil || !tex.IsReady() {
		t.releaseGPU()
		t.texture = nil
		t.textureSrc = ""
		t.texWidth, t.texHeight = 0, 0
		return nil
	}

	var res *gpu.Resources
	if t.g != nil {
		var err error
		res, err = gpu.NewResources(t.g.Device(), t.g.Queue(), t.g.TargetFormat(), tex.View(), t.glyphCap)
		if err != nil {
			return fmt.Errorf("msdftext: create resources for %q: %w", tex.Src(), err)
		}
	}
	t.releaseGPU()
	t.res = res

	t.texture = tex
	t.textureSrc = tex.Src()
	t.texWidth, t.texHeight = tex.Width(), tex.Height()
	return nil
}

// SetTextureSrc loads the texture at path through the TextureSource and
// sets it. It blocks; run it in a goroutine for a background load. On
// failure the current atlas is kept.
func (t *Text) SetTextureSrc(ctx context.Context, path string) error {
	t.mu.Lock()
	src, gen := t.textures, t.gen
	t.mu.Unlock()

	if src == nil {
		return ErrNoTextureSource
	}
	tex, err := src.TextureFromPath(ctx, path)
	if err != nil {
		slogger().Warn("msdftext: texture load failed", "path", path, "err", err)
		return fmt.Errorf("msdftext: load texture %q: %w", path, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.gen != gen {
		return ErrUnloaded
	}
	return t.setTexture(tex)
}

// SetFontPath loads a font descriptor and its atlas through the
// FontSource and applies both. It blocks; run it in a goroutine for a
// background load. It reports false, leaving the text unchanged, when the
// load fails or the atlas image is missing.
func (t *Text) SetFontPath(ctx context.Context, path string) (bool, error) {
	t.mu.Lock()
	src, gen := t.fonts, t.gen
	t.mu.Unlock()

	if src == nil {
		return false, ErrNoFontSource
	}
	res, err := src.LoadFont(ctx, path)
	if err != nil {
		slogger().Warn("msdftext: font load failed", "path", path, "err", err)
		return false, fmt.Errorf("msdftext: load font %q: %w", path, err)
	}
	if res == nil || res.Texture == nil || !res.Texture.IsReady() {
		return false, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.gen != gen {
		return false, ErrUnloaded
	}
	if err := t.setTexture(res.Texture); err != nil {
		return false, err
	}
	t.style = res.Style
	t.reported = nil
	t.fontPath = path
	return true, nil
}

// Matrix returns the local transform.
func (t *Text) Matrix() Matrix4 {
	p := t.Position()
	return Translate(p.X, p.Y, 0)
}

// Mesh lays out and builds the current glyph mesh without the GPU.
// It returns a *mesh.NotRenderableError when the font style cannot
// produce one.
func (t *Text) Mesh() (*mesh.Mesh, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buildMesh()
}

func (t *Text) buildMesh() (*mesh.Mesh, error) {
	s := t.style
	lines := layout.MeasureText(s, t.text, t.maxWidth, t.wordWrap, t.characterWrap)

	if _, done := t.reported[t.text]; !done && s.Description() != nil {
		if missing := layout.Unknown(s, t.text); len(missing) > 0 {
			slogger().Debug("msdftext: characters missing from font",
				"name", t.Name(), "chars", string(missing))
		}
		t.markReported(t.text)
	}

	pos := t.Position()
	b := mesh.Builder{
		Align:    t.align,
		Origin:   mesh.Pen{X: pos.X, Y: pos.Y},
		MaxWidth: t.maxWidth,
	}
	return b.Build(s, lines, s.Scale(), s.LineHeight())
}

// markReported remembers s, starting over once maxReported strings are held.
func (t *Text) markReported(s string) {
	if t.reported == nil || len(t.reported) >= maxReported {
		t.reported = make(map[string]struct{})
	}
	t.reported[s] = struct{}{}
}

// Uniforms returns the shader parameters for drawing with camera.
func (t *Text) Uniforms(camera Matrix4) shader.Uniforms {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.uniforms(camera)
}

func (t *Text) uniforms(camera Matrix4) shader.Uniforms {
	u := shader.Uniforms{
		Matrix:    camera.Float32(),
		Transform: t.Matrix().Float32(),

		Color:           t.color.Float32(),
		OutlineColor:    t.stroke.Color.Float32(),
		DropShadowColor: t.dropShadow.Stroke.Color.Float32(),

		TexSize:          [2]float32{float32(t.texWidth), float32(t.texHeight)},
		DropShadowOffset: t.normalizedDropShadowOffset().Float32(),

		OutlineDistance:     float32(t.normalizedStrokeSize()),
		Outline:             t.strokeEnabled,
		DropShadowSmoothing: float32(t.normalizedDropShadowSmoothing()),
		DropShadow:          t.dropShadowEnabled,
		Debug:               t.debug,
	}
	if scale := t.style.Scale(); scale > 0 {
		u.Gamma = float32(0.25 / (10 * scale))
	}
	return u
}

// Render draws the text and then its children. Nothing is drawn while the
// text is disabled or has no atlas. A text whose style cannot produce a
// mesh is skipped without error.
func (t *Text) Render(delta time.Duration, f Frame) error {
	drawn, err := t.draw(f)
	if err != nil || !drawn {
		return err
	}
	return t.Object.Render(delta, f)
}

func (t *Text) draw(f Frame) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.Enabled() || t.texture == nil {
		return false, nil
	}

	m, err := t.buildMesh()
	if err != nil {
		if errors.Is(err, mesh.ErrNotRenderable) {
			slogger().Debug("msdftext: text not drawn", "name", t.Name(), "reason", err)
			return false, nil
		}
		return false, err
	}

	if t.res == nil {
		return true, nil
	}
	u := t.uniforms(f.Camera)
	if err := t.res.Upload(m, &u); err != nil {
		return false, fmt.Errorf("msdftext: upload %q: %w", t.Name(), err)
	}
	if f.Pass != nil {
		t.res.Draw(f.Pass)
	}
	return true, nil
}

// Unload releases the GPU resources. Loads still in flight are discarded
// when they complete. Safe to call multiple times.
func (t *Text) Unload() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gen++
	t.releaseGPU()
}

func (t *Text) releaseGPU() {
	if t.res != nil {
		t.res.Destroy()
		t.res = nil
	}
}

// NormalizedStrokeSize maps the stroke size onto the shader's outline
// distance: 0.5 for no outline down to 0 at MaxSize.
func (t *Text) NormalizedStrokeSize() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.normalizedStrokeSize()
}

func (t *Text) normalizedStrokeSize() float64 {
	return 0.5 - Normalize(t.stroke.Size, 0, t.stroke.MaxSize, 0, 0.5)
}

// NormalizedDropShadowSmoothing maps the drop shadow stroke size onto
// [0, 0.5].
func (t *Text) NormalizedDropShadowSmoothing() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.normalizedDropShadowSmoothing()
}

func (t *Text) normalizedDropShadowSmoothing() float64 {
	s := t.dropShadow.Stroke
	return Normalize(s.Size, 0, s.MaxSize, 0, 0.5)
}

// MaxDropShadowOffset returns the largest shadow offset in texture
// coordinates: the font spread over the atlas size. It is zero without an
// atlas or a style.
func (t *Text) MaxDropShadowOffset() Vec2 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.maxDropShadowOffset()
}

func (t *Text) maxDropShadowOffset() Vec2 {
	var v Vec2
	if t.style == nil {
		return v
	}
	if t.texWidth != 0 {
		v.X = t.style.Spread() / float64(t.texWidth)
	}
	if t.texHeight != 0 {
		v.Y = t.style.Spread() / float64(t.texHeight)
	}
	return v
}

// NormalizedDropShadowOffset maps the raw shadow offset from
// [-RawMaxOffset, RawMaxOffset] onto ±MaxDropShadowOffset.
func (t *Text) NormalizedDropShadowOffset() Vec2 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.normalizedDropShadowOffset()
}

func (t *Text) normalizedDropShadowOffset() Vec2 {
	off, raw := t.dropShadow.Offset, t.dropShadow.RawMaxOffset
	lim := t.maxDropShadowOffset()
	return Vec2{
		X: Normalize(off.X, -raw.X, raw.X, -lim.X, lim.X),
		Y: Normalize(off.Y, -raw.Y, raw.Y, -lim.Y, lim.Y),
	}
}
