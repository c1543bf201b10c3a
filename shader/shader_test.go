package shader

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"
)

// nearest samples a w×h RGB image with clamp-to-edge addressing.
func nearest(w, h int, pix [][3]float32) Sampler {
	return func(uv [2]float32) [3]float32 {
		x := int(math.Floor(float64(uv[0]) * float64(w)))
		y := int(math.Floor(float64(uv[1]) * float64(h)))
		x = min(max(x, 0), w-1)
		y = min(max(y, 0), h-1)
		return pix[y*w+x]
	}
}

func constant(v float32) Sampler {
	return func([2]float32) [3]float32 { return [3]float32{v, v, v} }
}

func readFloat(b []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
}

func TestUniformsBytes(t *testing.T) {
	u := Uniforms{
		Color:               [4]float32{0.1, 0.2, 0.3, 0.4},
		OutlineColor:        [4]float32{1, 0, 0, 1},
		DropShadowColor:     [4]float32{0, 0, 0, 0.5},
		TexSize:             [2]float32{256, 128},
		DropShadowOffset:    [2]float32{0.01, -0.02},
		OutlineDistance:     0.25,
		Outline:             true,
		DropShadowSmoothing: 0.125,
		DropShadow:          false,
		Gamma:               0.0125,
		Debug:               true,
	}
	u.Matrix[0], u.Matrix[15] = 2, 1
	u.Transform[12] = 7

	b := u.Bytes()
	if len(b) != UniformSize {
		t.Fatalf("len(Bytes()) = %d, want %d", len(b), UniformSize)
	}
	tests := []struct {
		name string
		off  int
		want float32
	}{
		{"uMatrix[0]", offMatrix, 2},
		{"uMatrix[15]", offMatrix + 60, 1},
		{"uTransform[12]", offTransform + 48, 7},
		{"uColor.a", offColor + 12, 0.4},
		{"uOutlineColor.r", offOutlineColor, 1},
		{"uDropShadowColor.a", offDropShadowColor + 12, 0.5},
		{"uTexSize.y", offTexSize + 4, 128},
		{"uDropShadowOffset.y", offDropShadowOffset + 4, -0.02},
		{"uOutlineDistance", offOutlineDistance, 0.25},
		{"uOutline", offOutline, 1},
		{"uDropShadowSmoothing", offDropShadowSmoothing, 0.125},
		{"uDropShadow", offDropShadow, 0},
		{"uGamma", offGamma, 0.0125},
		{"uDebug", offDebug, 1},
	}
	for _, tt := range tests {
		if got := readFloat(b, tt.off); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestUniformNamesInSource(t *testing.T) {
	for _, name := range UniformNames {
		if !strings.Contains(Source(), name) {
			t.Errorf("uniform %s missing from WGSL source", name)
		}
	}
}

func TestMedian(t *testing.T) {
	tests := []struct{ r, g, b, want float32 }{
		{0, 0.5, 1, 0.5},
		{1, 0, 0.5, 0.5},
		{0.2, 0.2, 0.9, 0.2},
		{0.7, 0.3, 0.3, 0.3},
	}
	for _, tt := range tests {
		if got := Median(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("Median(%v, %v, %v) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func baseUniforms() Uniforms {
	return Uniforms{
		Color:   [4]float32{1, 0, 0, 1},
		TexSize: [2]float32{256, 256},
		Gamma:   0.0125,
	}
}

// One texel per pixel.
var unitWidth = [2]float32{1.0 / 256, 1.0 / 256}

func TestFragmentFill(t *testing.T) {
	u := baseUniforms()

	inside := Fragment(constant(1), [2]float32{0.5, 0.5}, unitWidth, u)
	if inside != u.Color {
		t.Errorf("inside = %v, want %v", inside, u.Color)
	}
	outside := Fragment(constant(0), [2]float32{0.5, 0.5}, unitWidth, u)
	if outside != Background {
		t.Errorf("outside = %v, want background %v", outside, Background)
	}
}

func TestFragmentDebug(t *testing.T) {
	u := baseUniforms()
	u.Debug = true
	got := Fragment(constant(1), [2]float32{0.5, 0.5}, unitWidth, u)
	// (1 - 0.5 - gamma) * dot(4/256, 0.5*256) summed over both axes.
	want := float32(1-0.5-0.0125) * 4
	if math.Abs(float64(got[0]-want)) > 1e-5 || got[0] != got[1] || got[1] != got[2] || got[3] != 1 {
		t.Errorf("debug = %v, want gray %v with alpha 1", got, want)
	}
}

func TestFragmentOutline(t *testing.T) {
	u := baseUniforms()
	u.Outline = true
	u.OutlineColor = [4]float32{0, 0, 1, 1}
	u.OutlineDistance = 0.25

	// Deep inside the glyph the tint wins over the outline color.
	core := Fragment(constant(1), [2]float32{0.5, 0.5}, unitWidth, u)
	if core != u.Color {
		t.Errorf("core = %v, want %v", core, u.Color)
	}

	// Just outside the fill edge but inside the outline band.
	band := Fragment(constant(0.47), [2]float32{0.5, 0.5}, unitWidth, u)
	if band[2] != 1 || band[0] != 0 {
		t.Errorf("outline band = %v, want outline color", band)
	}
}

func TestFragmentDropShadow(t *testing.T) {
	u := baseUniforms()
	u.Color = [4]float32{1, 1, 1, 0}
	u.DropShadow = true
	u.DropShadowColor = [4]float32{0, 0, 0, 0.5}
	u.DropShadowOffset = [2]float32{0.5, 0}

	// Left texel is glyph, right texel is empty.
	s := nearest(2, 1, [][3]float32{{1, 1, 1}, {0, 0, 0}})

	// A transparent tint over the glyph reveals the shadow underneath.
	got := Fragment(s, [2]float32{0.25, 0.5}, unitWidth, u)
	if got != u.DropShadowColor {
		t.Errorf("glyph pixel = %v, want shadow %v", got, u.DropShadowColor)
	}

	// Outside the glyph the opaque background covers the shadow.
	got = Fragment(s, [2]float32{0.75, 0.5}, unitWidth, u)
	if got != Background {
		t.Errorf("empty pixel = %v, want %v", got, Background)
	}
}

func TestSmoothstep(t *testing.T) {
	tests := []struct{ e0, e1, x, want float32 }{
		{0, 1, -1, 0},
		{0, 1, 2, 1},
		{0, 1, 0.5, 0.5},
		{0.5, 0.5, 0.4, 0},
		{0.5, 0.5, 0.6, 1},
	}
	for _, tt := range tests {
		if got := smoothstep(tt.e0, tt.e1, tt.x); got != tt.want {
			t.Errorf("smoothstep(%v, %v, %v) = %v, want %v", tt.e0, tt.e1, tt.x, got, tt.want)
		}
	}
}

func TestCompileSPIRV(t *testing.T) {
	code, err := CompileSPIRV()
	if err != nil {
		t.Fatalf("CompileSPIRV() error = %v", err)
	}
	if len(code) < 5 || code[0] != 0x07230203 {
		t.Fatalf("CompileSPIRV() does not start with the SPIR-V magic number")
	}
	again, _ := CompileSPIRV()
	if &again[0] != &code[0] {
		t.Error("CompileSPIRV() recompiled instead of reusing the result")
	}
}

func TestTranslateGLSL(t *testing.T) {
	for _, entry := range []string{VertexEntryPoint, FragmentEntryPoint} {
		t.Run(entry, func(t *testing.T) {
			src, err := TranslateGLSL(entry)
			if err != nil {
				t.Fatalf("TranslateGLSL() error = %v", err)
			}
			if !strings.Contains(src, "#version 300 es") {
				t.Errorf("output is not GLSL ES 3.00:\n%s", src)
			}
			if !strings.Contains(src, "uColor") {
				t.Errorf("output lost uniform member names:\n%s", src)
			}
		})
	}
}
