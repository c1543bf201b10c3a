package msdftext

import (
	"errors"
	"image/color"
	"testing"
)

func TestRGBAColor(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want color.NRGBA
	}{
		{"black", Black, color.NRGBA{0, 0, 0, 255}},
		{"white", White, color.NRGBA{255, 255, 255, 255}},
		{"clamped", RGBA{2, -1, 0.5, 1}, color.NRGBA{255, 0, 128, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Color(); got != tt.want {
				t.Errorf("Color() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRGBA8(t *testing.T) {
	c := RGBA8(164, 56, 32, 1)
	if c.R != 164.0/255 || c.G != 56.0/255 || c.B != 32.0/255 || c.A != 1 {
		t.Errorf("RGBA8() = %+v", c)
	}
	if got := c.Hex(); got != "#a43820" {
		t.Errorf("Hex() = %q, want #a43820", got)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#ff0000", RGB(1, 0, 0)},
		{"00ff00", RGB(0, 1, 0)},
		{"#00f", RGB(0, 0, 1)},
		{"#fff8", RGBA{1, 1, 1, 136.0 / 255}},
		{"#00000080", RGBA{0, 0, 0, 128.0 / 255}},
		{"#A43820", RGBA8(164, 56, 32, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseHex() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#12345", "#gg0000", "red"} {
		if _, err := ParseHex(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseHex(%q) error = %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestHexWithAlpha(t *testing.T) {
	if got := (RGBA{1, 0, 0, 0.5}).Hex(); got != "#ff000080" {
		t.Errorf("Hex() = %q, want #ff00007f", got)
	}
}
