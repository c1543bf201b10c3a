package mesh

import (
	"math"

	"github.com/gogpu/msdftext/font"
	"github.com/gogpu/msdftext/layout"
)

// GlyphSource supplies glyph metrics. *font.Style implements it.
type GlyphSource interface {
	Glyph(r rune) (font.Glyph, bool)
	Kerning(a, b rune) float64
	LetterSpacing() float64
}

// describer is implemented by sources backed by a font description.
type describer interface {
	Description() *font.Description
}

// CreateGlyph appends the quad for ch to m and returns the advanced pen
// together with the glyph id to pass as last on the next call.
//
// last is honoured only when hasLast is true. Characters the font lacks
// add nothing, leave the pen in place and end the kerning chain. Glyphs
// without area are never kerned; they advance the pen but emit no quad.
func CreateGlyph(src GlyphSource, ch rune, scale float64, pen Pen, last rune, hasLast bool, m *Mesh) (Pen, rune, bool) {
	g, ok := src.Glyph(ch)
	if !ok {
		return pen, 0, false
	}

	var kern float64
	if g.Visible() {
		if hasLast {
			kern = src.Kerning(last, g.ID)
		}
		x0 := pen.X + (g.XOffset+kern)*scale
		x1 := pen.X + (g.XOffset+kern+g.Width)*scale
		y0 := pen.Y + g.YOffset*scale
		y1 := pen.Y + (g.YOffset+g.Height)*scale
		m.appendQuad(x0, y0, x1, y1, g.X, g.Y, g.X+g.Width, g.Y+g.Height)
	}

	pen.X += src.LetterSpacing() + (g.XAdvance+kern)*scale
	return pen, g.ID, true
}

// PrepareLine emits the quads of one line starting at pen and returns the
// pen after the last character. Kerning never crosses lines.
func PrepareLine(src GlyphSource, chars []rune, scale float64, pen Pen, m *Mesh) Pen {
	var (
		last    rune
		hasLast bool
	)
	for _, ch := range chars {
		pen, last, hasLast = CreateGlyph(src, ch, scale, pen, last, hasLast, m)
	}
	return pen
}

// Builder places lines within a block.
type Builder struct {
	// Align positions each line horizontally.
	Align layout.Align

	// Origin is the block position; Y is the first line's pen y.
	Origin Pen

	// MaxWidth is the layout width used by centered and right alignment.
	MaxWidth float64
}

// Build returns the mesh for lines. Each line starts at its aligned x and
// the pen moves down lineHeight*scale after every line.
//
// When src, scale or lineHeight cannot produce a mesh, Build returns a
// *NotRenderableError and no mesh.
func (b Builder) Build(src GlyphSource, lines []layout.Line, scale, lineHeight float64) (*Mesh, error) {
	if err := validate(src, scale, lineHeight); err != nil {
		return nil, err
	}

	n := countVisible(src, lines)
	if n > MaxGlyphs {
		return nil, notRenderable(ReasonTooManyGlyphs)
	}

	m := NewMesh(n)
	pen := Pen{Y: b.Origin.Y}
	for _, line := range lines {
		pen.X = b.Align.LineStart(b.Origin.X, b.MaxWidth, line.Width)
		pen = PrepareLine(src, line.Chars, scale, pen, m)
		pen.Y += lineHeight * scale
	}
	return m, nil
}

func validate(src GlyphSource, scale, lineHeight float64) error {
	if src == nil {
		return notRenderable(ReasonNoFontStyle)
	}
	if s, ok := src.(*font.Style); ok && s == nil {
		return notRenderable(ReasonNoFontStyle)
	}
	if d, ok := src.(describer); ok && d.Description() == nil {
		return notRenderable(ReasonNoDescription)
	}
	if !(scale > 0) || math.IsInf(scale, 0) {
		return notRenderable(ReasonInvalidScale)
	}
	if lineHeight == 0 || math.IsNaN(lineHeight) || math.IsInf(lineHeight, 0) {
		return notRenderable(ReasonInvalidLineHeight)
	}
	return nil
}

func countVisible(src GlyphSource, lines []layout.Line) int {
	n := 0
	for _, line := range lines {
		for _, ch := range line.Chars {
			if g, ok := src.Glyph(ch); ok && g.Visible() {
				n++
			}
		}
	}
	return n
}
