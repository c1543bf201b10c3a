package font

import "sort"

// StyleRecord is the serialized form of a Style. The full description is
// embedded so a restored style does not depend on the descriptor file.
type StyleRecord struct {
	FontSize      float64   `yaml:"fontSize" json:"fontSize"`
	LetterSpacing float64   `yaml:"letterSpacing" json:"letterSpacing"`
	Face          string    `yaml:"face,omitempty" json:"face,omitempty"`
	Size          float64   `yaml:"size" json:"size"`
	LineHeight    float64   `yaml:"lineHeight" json:"lineHeight"`
	Base          float64   `yaml:"base" json:"base"`
	ScaleW        int       `yaml:"scaleW" json:"scaleW"`
	ScaleH        int       `yaml:"scaleH" json:"scaleH"`
	Spread        float64   `yaml:"spread" json:"spread"`
	Pages         []string  `yaml:"pages,omitempty" json:"pages,omitempty"`
	Chars         []Glyph   `yaml:"chars" json:"chars"`
	Kernings      []Kerning `yaml:"kernings,omitempty" json:"kernings,omitempty"`
}

// Record returns the serialized form of s. Glyphs and kernings are sorted
// so records compare and diff stably.
func (s *Style) Record() StyleRecord {
	rec := StyleRecord{
		FontSize:      s.fontSize,
		LetterSpacing: s.letterSpacing,
	}
	d := s.desc
	if d == nil {
		return rec
	}
	rec.Face = d.Face
	rec.Size = d.Size
	rec.LineHeight = d.LineHeight
	rec.Base = d.Base
	rec.ScaleW, rec.ScaleH = d.ScaleW, d.ScaleH
	rec.Spread = d.Spread
	rec.Pages = append([]string(nil), d.Pages...)

	rec.Chars = make([]Glyph, 0, len(d.Chars))
	for _, g := range d.Chars {
		rec.Chars = append(rec.Chars, g)
	}
	sort.Slice(rec.Chars, func(i, j int) bool { return rec.Chars[i].ID < rec.Chars[j].ID })

	if ks := d.Kernings(); len(ks) > 0 {
		rec.Kernings = ks
	}
	sort.Slice(rec.Kernings, func(i, j int) bool {
		a, b := rec.Kernings[i], rec.Kernings[j]
		if a.First != b.First {
			return a.First < b.First
		}
		return a.Second < b.Second
	})
	return rec
}

// RestoreStyle rebuilds a Style from its record.
func RestoreStyle(rec StyleRecord) *Style {
	d := NewDescription()
	d.Face = rec.Face
	d.Size = rec.Size
	d.LineHeight = rec.LineHeight
	d.Base = rec.Base
	d.ScaleW, d.ScaleH = rec.ScaleW, rec.ScaleH
	d.Spread = rec.Spread
	d.Pages = append([]string(nil), rec.Pages...)
	for _, g := range rec.Chars {
		d.AddGlyph(g)
	}
	for _, k := range rec.Kernings {
		d.SetKerning(k.First, k.Second, k.Amount)
	}

	s := NewStyle(d, rec.FontSize)
	s.letterSpacing = rec.LetterSpacing
	return s
}
