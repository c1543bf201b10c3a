package msdftext

import (
	"math"
	"testing"
)

func approxVec(a, b Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity() is not identity")
	}
	m := Translate(3, 4, 0)
	if m.Multiply(Identity()) != m || Identity().Multiply(m) != m {
		t.Error("multiplying by identity changed the matrix")
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(10, 20, 0)
	if got := m.TransformPoint(V2(1, 2)); got != V2(11, 22) {
		t.Errorf("TransformPoint() = %v, want (11, 22)", got)
	}
	// Column-major: translation lives in the last column.
	if m[12] != 10 || m[13] != 20 {
		t.Errorf("m[12], m[13] = %v, %v, want 10, 20", m[12], m[13])
	}
}

func TestMultiply(t *testing.T) {
	got := Translate(1, 0, 0).Multiply(Translate(0, 2, 0))
	if got != Translate(1, 2, 0) {
		t.Errorf("Multiply() = %v, want Translate(1, 2, 0)", got)
	}

	scale := Identity()
	scale[0], scale[5] = 2, 3
	// Scale then translate: the translation is scaled too.
	p := scale.Multiply(Translate(1, 1, 0)).TransformPoint(V2(0, 0))
	if p != V2(2, 3) {
		t.Errorf("scale*translate applied to origin = %v, want (2, 3)", p)
	}
}

func TestOrthographic(t *testing.T) {
	m := Orthographic(0, 800, 600, 0, -1, 1)
	tests := []struct {
		in, want Vec2
	}{
		{V2(0, 0), V2(-1, 1)},
		{V2(800, 600), V2(1, -1)},
		{V2(400, 300), V2(0, 0)},
	}
	for _, tt := range tests {
		if got := m.TransformPoint(tt.in); !approxVec(got, tt.want) {
			t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMatrixFloat32(t *testing.T) {
	f := Translate(1.5, -2, 0).Float32()
	if f[0] != 1 || f[12] != 1.5 || f[13] != -2 || f[15] != 1 {
		t.Errorf("Float32() = %v", f)
	}
}
