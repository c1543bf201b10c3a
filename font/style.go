package font

import (
	"io"
	"path"
	"strings"
)

// Style binds a Description to a rendering size.
//
// The description is treated as read-only and may be shared between
// styles; the size and letter spacing belong to the style.
type Style struct {
	desc          *Description
	fontSize      float64
	letterSpacing float64
}

// NewStyle returns a style rendering desc at fontSize. A non-positive
// fontSize selects the descriptor's base size (scale 1).
func NewStyle(desc *Description, fontSize float64) *Style {
	s := &Style{desc: desc}
	s.SetFontSize(fontSize)
	return s
}

// Description returns the parsed metrics table, possibly nil.
func (s *Style) Description() *Description {
	if s == nil {
		return nil
	}
	return s.desc
}

// FontSize returns the rendering size.
func (s *Style) FontSize() float64 { return s.fontSize }

// SetFontSize changes the rendering size, and with it Scale.
func (s *Style) SetFontSize(size float64) {
	if size <= 0 && s.desc != nil {
		size = s.desc.Size
	}
	s.fontSize = size
}

// LetterSpacing returns the extra pen advance added after every glyph.
func (s *Style) LetterSpacing() float64 { return s.letterSpacing }

// SetLetterSpacing sets the extra per-glyph advance.
func (s *Style) SetLetterSpacing(v float64) { s.letterSpacing = v }

// Scale is the ratio between the rendering size and the atlas base size.
// It is 0 when either is unknown, which callers treat as not renderable.
func (s *Style) Scale() float64 {
	if s == nil || s.desc == nil || s.desc.Size <= 0 {
		return 0
	}
	return s.fontSize / s.desc.Size
}

// Spread returns the SDF range in texels.
func (s *Style) Spread() float64 {
	if s == nil || s.desc == nil {
		return 0
	}
	return s.desc.Spread
}

// LineHeight returns the unscaled line height.
func (s *Style) LineHeight() float64 {
	if s == nil || s.desc == nil {
		return 0
	}
	return s.desc.LineHeight
}

// FindCharID returns the glyph id for r. The boolean is false when the
// font has no glyph for r; there is no zero-valued sentinel.
func (s *Style) FindCharID(r rune) (rune, bool) {
	g, ok := s.Description().Glyph(r)
	if !ok {
		return 0, false
	}
	return g.ID, true
}

// Glyph returns the metrics for r.
func (s *Style) Glyph(r rune) (Glyph, bool) {
	return s.Description().Glyph(r)
}

// Kerning returns the unscaled adjustment between a and b.
func (s *Style) Kerning(a, b rune) float64 {
	return s.Description().Kerning(a, b)
}

// Advance returns the scaled horizontal advance of r, ignoring kerning.
func (s *Style) Advance(r rune) (float64, bool) {
	g, ok := s.Description().Glyph(r)
	if !ok {
		return 0, false
	}
	return g.XAdvance * s.Scale(), true
}

// Parse reads a descriptor, choosing the reader from the file extension:
// ".json" for msdf-atlas-gen, ".fnt" or ".txt" for BMFont text.
func Parse(name string, r io.Reader) (*Description, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return ParseMSDFJSON(r)
	case ".fnt", ".txt":
		return ParseBMFont(r)
	default:
		return nil, ErrUnknownFormat
	}
}
