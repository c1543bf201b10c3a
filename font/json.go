package font

import (
	"encoding/json"
	"fmt"
	"io"
)

// msdf-atlas-gen JSON layout. Plane bounds and metrics are in em units,
// atlas bounds in texels.
type jsonBounds struct {
	Left   float64 `json:"left"`
	Bottom float64 `json:"bottom"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
}

type jsonGlyph struct {
	Unicode     rune        `json:"unicode"`
	Advance     float64     `json:"advance"`
	PlaneBounds *jsonBounds `json:"planeBounds"`
	AtlasBounds *jsonBounds `json:"atlasBounds"`
}

type jsonAtlas struct {
	Type          string  `json:"type"`
	DistanceRange float64 `json:"distanceRange"`
	Size          float64 `json:"size"`
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	YOrigin       string  `json:"yOrigin"`
}

type jsonMetrics struct {
	EmSize     float64 `json:"emSize"`
	LineHeight float64 `json:"lineHeight"`
	Ascender   float64 `json:"ascender"`
	Descender  float64 `json:"descender"`
}

type jsonKerning struct {
	Unicode1 rune    `json:"unicode1"`
	Unicode2 rune    `json:"unicode2"`
	Advance  float64 `json:"advance"`
}

type jsonFont struct {
	Atlas   jsonAtlas     `json:"atlas"`
	Metrics jsonMetrics   `json:"metrics"`
	Glyphs  []jsonGlyph   `json:"glyphs"`
	Kerning []jsonKerning `json:"kerning"`
	Name    string        `json:"name"`
}

// ParseMSDFJSON parses an msdf-atlas-gen JSON layout and converts it to the
// BMFont-style pixel metrics the layout code works with. The atlas image
// file name is not part of the format; Pages is left empty.
func ParseMSDFJSON(r io.Reader) (*Description, error) {
	var jf jsonFont
	if err := json.NewDecoder(r).Decode(&jf); err != nil {
		return nil, fmt.Errorf("font: decode msdf json: %w", err)
	}

	size := jf.Atlas.Size
	if size <= 0 {
		size = jf.Metrics.EmSize
	}

	d := NewDescription()
	d.Face = jf.Name
	d.Size = size
	d.LineHeight = jf.Metrics.LineHeight * size
	d.Base = jf.Metrics.Ascender * size
	d.ScaleW = jf.Atlas.Width
	d.ScaleH = jf.Atlas.Height
	d.Spread = jf.Atlas.DistanceRange
	if d.Spread <= 0 {
		d.Spread = DefaultSpread
	}

	yDown := jf.Atlas.YOrigin == "top"
	for _, jg := range jf.Glyphs {
		g := Glyph{ID: jg.Unicode, XAdvance: jg.Advance * size}
		if jg.AtlasBounds != nil && jg.PlaneBounds != nil {
			ab, pb := jg.AtlasBounds, jg.PlaneBounds
			g.X = ab.Left
			g.Width = ab.Right - ab.Left
			g.XOffset = pb.Left * size
			if yDown {
				g.Y = ab.Top
				g.Height = ab.Bottom - ab.Top
				g.YOffset = d.Base + pb.Top*size
			} else {
				g.Y = float64(jf.Atlas.Height) - ab.Top
				g.Height = ab.Top - ab.Bottom
				g.YOffset = d.Base - pb.Top*size
			}
		}
		d.AddGlyph(g)
	}
	for _, k := range jf.Kerning {
		d.SetKerning(k.Unicode1, k.Unicode2, k.Advance*size)
	}

	if d.LineHeight <= 0 {
		return d, ErrNoCommon
	}
	if len(d.Chars) == 0 {
		return d, ErrNoGlyphs
	}
	return d, nil
}
