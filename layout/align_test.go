package layout

import "testing"

func TestAlignLineStart(t *testing.T) {
	tests := []struct {
		align Align
		want  float64
	}{
		{AlignLeft, 5},
		{AlignCenter, 5 + 50 - 20},
		{AlignRight, 5 + 100 - 40},
		{AlignJustified, 0},
	}
	for _, tt := range tests {
		if got := tt.align.LineStart(5, 100, 40); got != tt.want {
			t.Errorf("%v.LineStart() = %v, want %v", tt.align, got, tt.want)
		}
	}
}

func TestAlignText(t *testing.T) {
	for _, a := range []Align{AlignLeft, AlignCenter, AlignRight, AlignJustified} {
		b, err := a.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d) error = %v", a, err)
		}
		var got Align
		if err := got.UnmarshalText(b); err != nil || got != a {
			t.Errorf("UnmarshalText(%q) = %v, %v, want %v", b, got, err, a)
		}
	}

	var a Align
	if err := a.UnmarshalText([]byte("MIDDLE")); err == nil {
		t.Error("UnmarshalText(MIDDLE) returned nil error")
	}
	if s := Align(42).String(); s != "UNKNOWN" {
		t.Errorf("String() = %q, want UNKNOWN", s)
	}
}
