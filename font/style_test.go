package font

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

func testStyle(t *testing.T, fontSize float64) *Style {
	t.Helper()
	d, err := ParseBMFont(strings.NewReader(testDescriptor))
	if err != nil {
		t.Fatalf("ParseBMFont() error = %v", err)
	}
	return NewStyle(d, fontSize)
}

func TestStyleScale(t *testing.T) {
	tests := []struct {
		fontSize float64
		want     float64
	}{
		{32, 1},
		{64, 2},
		{16, 0.5},
		{0, 1}, // base size
	}
	for _, tt := range tests {
		s := testStyle(t, tt.fontSize)
		if got := s.Scale(); got != tt.want {
			t.Errorf("Scale() at size %v = %v, want %v", tt.fontSize, got, tt.want)
		}
	}

	var nilStyle *Style
	if got := nilStyle.Scale(); got != 0 {
		t.Errorf("nil Style Scale() = %v, want 0", got)
	}
	if got := NewStyle(nil, 12).Scale(); got != 0 {
		t.Errorf("Scale() without description = %v, want 0", got)
	}
}

func TestStyleFindCharID(t *testing.T) {
	s := testStyle(t, 32)

	id, ok := s.FindCharID('A')
	if !ok || id != 'A' {
		t.Errorf("FindCharID('A') = %v, %v, want 'A', true", id, ok)
	}
	if _, ok := s.FindCharID('Z'); ok {
		t.Error("FindCharID('Z') found a glyph that is not in the font")
	}
}

func TestStyleAdvance(t *testing.T) {
	s := testStyle(t, 64)
	adv, ok := s.Advance('B')
	if !ok || adv != 24 {
		t.Errorf("Advance('B') = %v, %v, want 24, true", adv, ok)
	}
	adv, ok = s.Advance('?')
	if ok || adv != 0 {
		t.Errorf("Advance('?') = %v, %v, want 0, false", adv, ok)
	}
}

func TestStyleRecordRoundTrip(t *testing.T) {
	s := testStyle(t, 48)
	s.SetLetterSpacing(1.5)

	r := RestoreStyle(s.Record())

	if r.FontSize() != 48 || r.LetterSpacing() != 1.5 {
		t.Errorf("restored size/spacing = %v/%v, want 48/1.5", r.FontSize(), r.LetterSpacing())
	}
	if math.Abs(r.Scale()-s.Scale()) > 1e-12 {
		t.Errorf("restored Scale() = %v, want %v", r.Scale(), s.Scale())
	}
	if !reflect.DeepEqual(r.Description().Chars, s.Description().Chars) {
		t.Error("restored glyph table differs")
	}
	if got := r.Kerning('A', 'B'); got != -2 {
		t.Errorf("restored Kerning(A, B) = %v, want -2", got)
	}
	if !reflect.DeepEqual(r.Record(), s.Record()) {
		t.Error("Record() of restored style differs from original")
	}
}

func TestParseByExtension(t *testing.T) {
	if _, err := Parse("font.fnt", strings.NewReader(testDescriptor)); err != nil {
		t.Errorf("Parse(.fnt) error = %v", err)
	}
	if _, err := Parse("font.ttf", strings.NewReader("")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Parse(.ttf) error = %v, want ErrUnknownFormat", err)
	}
}

const testJSON = `{
  "name": "Roboto Mono",
  "atlas": {"type": "msdf", "distanceRange": 4, "size": 32, "width": 128, "height": 64, "yOrigin": "bottom"},
  "metrics": {"emSize": 1, "lineHeight": 1.25, "ascender": 0.75, "descender": -0.25},
  "glyphs": [
    {"unicode": 32, "advance": 0.5},
    {"unicode": 65, "advance": 0.5,
     "planeBounds": {"left": 0, "bottom": -0.25, "right": 0.5, "top": 0.75},
     "atlasBounds": {"left": 8, "bottom": 16, "right": 24, "top": 48}}
  ],
  "kerning": [{"unicode1": 65, "unicode2": 65, "advance": -0.0625}]
}`

func TestParseMSDFJSON(t *testing.T) {
	d, err := ParseMSDFJSON(strings.NewReader(testJSON))
	if err != nil {
		t.Fatalf("ParseMSDFJSON() error = %v", err)
	}
	if d.Size != 32 || d.LineHeight != 40 || d.Base != 24 || d.Spread != 4 {
		t.Errorf("metrics = size %v line %v base %v spread %v", d.Size, d.LineHeight, d.Base, d.Spread)
	}

	space, _ := d.Glyph(' ')
	if space.Visible() || space.XAdvance != 16 {
		t.Errorf("space glyph = %+v, want invisible with advance 16", space)
	}

	a, _ := d.Glyph('A')
	want := Glyph{ID: 'A', X: 8, Y: 16, Width: 16, Height: 32, XOffset: 0, YOffset: 0, XAdvance: 16}
	if a != want {
		t.Errorf("glyph A = %+v, want %+v", a, want)
	}
	if got := d.Kerning('A', 'A'); got != -2 {
		t.Errorf("Kerning(A, A) = %v, want -2", got)
	}
}

func TestParseMSDFJSONInvalid(t *testing.T) {
	if _, err := ParseMSDFJSON(strings.NewReader("{")); err == nil {
		t.Error("ParseMSDFJSON() on truncated input returned nil error")
	}
}
