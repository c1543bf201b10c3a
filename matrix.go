package msdftext

// Matrix4 is a 4x4 transformation matrix in column-major order, the
// layout shaders expect:
//
//	| m0  m4  m8  m12 |
//	| m1  m5  m9  m13 |
//	| m2  m6  m10 m14 |
//	| m3  m7  m11 m15 |
type Matrix4 [16]float64

// Identity returns the identity matrix.
func Identity() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate creates a translation matrix.
func Translate(x, y, z float64) Matrix4 {
	m := Identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

// Orthographic creates an orthographic projection mapping the box onto
// clip space with depth in [0, 1].
func Orthographic(left, right, bottom, top, near, far float64) Matrix4 {
	return Matrix4{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, 1 / (near - far), 0,
		(left + right) / (left - right), (bottom + top) / (bottom - top), near / (near - far), 1,
	}
}

// Multiply returns m * other.
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var out Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * other[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// TransformPoint applies the matrix to the point (p.X, p.Y, 0, 1) and
// returns the x and y of the result.
func (m Matrix4) TransformPoint(p Vec2) Vec2 {
	return Vec2{
		X: m[0]*p.X + m[4]*p.Y + m[12],
		Y: m[1]*p.X + m[5]*p.Y + m[13],
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix4) IsIdentity() bool {
	return m == Identity()
}

// Float32 converts the matrix for upload.
func (m Matrix4) Float32() [16]float32 {
	var out [16]float32
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}
