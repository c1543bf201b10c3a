package font

import (
	"github.com/iancoleman/strcase"
)

// Glyph holds the atlas rectangle and placement metrics of one character.
// All values are in atlas pixels at the descriptor's base size.
type Glyph struct {
	ID       rune    `yaml:"id" json:"id"`
	X        float64 `yaml:"x" json:"x"`
	Y        float64 `yaml:"y" json:"y"`
	Width    float64 `yaml:"width" json:"width"`
	Height   float64 `yaml:"height" json:"height"`
	XOffset  float64 `yaml:"xoffset" json:"xoffset"`
	YOffset  float64 `yaml:"yoffset" json:"yoffset"`
	XAdvance float64 `yaml:"xadvance" json:"xadvance"`
	Page     int     `yaml:"page,omitempty" json:"page,omitempty"`
}

// Visible reports whether the glyph covers any atlas area.
// Whitespace glyphs advance the pen but produce no quad.
func (g Glyph) Visible() bool {
	return g.Width > 0 && g.Height > 0
}

// KerningPair identifies an ordered pair of characters.
type KerningPair struct {
	First  rune `yaml:"first" json:"first"`
	Second rune `yaml:"second" json:"second"`
}

// Kerning is a signed adjustment for a KerningPair, in atlas pixels.
type Kerning struct {
	KerningPair `yaml:",inline" json:",inline"`
	Amount      float64 `yaml:"amount" json:"amount"`
}

// Description is the parsed metrics table of a bitmap font.
type Description struct {
	// Face is the font family name as written by the atlas generator.
	Face string

	// Size is the base size the atlas was generated at.
	Size float64

	// LineHeight is the distance between consecutive baselines.
	LineHeight float64

	// Base is the distance from the top of a line to the baseline.
	Base float64

	// ScaleW and ScaleH are the atlas texture dimensions.
	ScaleW, ScaleH int

	// Spread is the SDF distance range in texels.
	Spread float64

	// Pages lists atlas image file names, relative to the descriptor.
	Pages []string

	// Chars maps a character to its glyph.
	Chars map[rune]Glyph

	kernings map[KerningPair]float64
}

// NewDescription returns an empty description ready to be filled.
func NewDescription() *Description {
	return &Description{
		Chars:    make(map[rune]Glyph),
		kernings: make(map[KerningPair]float64),
	}
}

// Glyph returns the glyph for r.
func (d *Description) Glyph(r rune) (Glyph, bool) {
	if d == nil {
		return Glyph{}, false
	}
	g, ok := d.Chars[r]
	return g, ok
}

// AddGlyph inserts or replaces a glyph.
func (d *Description) AddGlyph(g Glyph) {
	if d.Chars == nil {
		d.Chars = make(map[rune]Glyph)
	}
	d.Chars[g.ID] = g
}

// SetKerning records the adjustment for the pair (first, second).
// A zero amount removes the pair.
func (d *Description) SetKerning(first, second rune, amount float64) {
	if d.kernings == nil {
		d.kernings = make(map[KerningPair]float64)
	}
	p := KerningPair{First: first, Second: second}
	if amount == 0 {
		delete(d.kernings, p)
		return
	}
	d.kernings[p] = amount
}

// Kerning returns the adjustment for (first, second), or 0.
func (d *Description) Kerning(first, second rune) float64 {
	if d == nil {
		return 0
	}
	return d.kernings[KerningPair{First: first, Second: second}]
}

// Kernings returns all kerning pairs in unspecified order.
func (d *Description) Kernings() []Kerning {
	out := make([]Kerning, 0, len(d.kernings))
	for p, a := range d.kernings {
		out = append(out, Kerning{KerningPair: p, Amount: a})
	}
	return out
}

// Key returns a canonical snake_case identifier for the face,
// suitable as an asset alias.
func (d *Description) Key() string {
	return strcase.ToSnake(d.Face)
}

// Valid reports whether the description carries the data layout needs.
func (d *Description) Valid() bool {
	return d != nil && d.LineHeight > 0 && len(d.Chars) > 0
}
