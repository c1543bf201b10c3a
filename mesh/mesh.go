// Package mesh turns laid-out lines into the flat vertex, texture
// coordinate and index arrays drawn by the MSDF text shader.
//
// Every visible glyph becomes one quad: four vertices, four texture
// coordinates in atlas pixel space and six indices forming two triangles.
// Glyphs without area (whitespace) only move the pen.
package mesh

import (
	"encoding/binary"
	"math"
)

// Per-glyph element counts.
const (
	VerticesPerGlyph = 4
	IndicesPerGlyph  = 6
	floatsPerGlyph   = VerticesPerGlyph * 2
)

// MaxGlyphs is the most glyphs a mesh can address with uint16 indices.
const MaxGlyphs = (math.MaxUint16 + 1) / VerticesPerGlyph

// Pen is the layout cursor. It is passed and returned by value.
type Pen struct {
	X, Y float64
}

// Mesh holds the geometry of a text block.
//
// Invariant: len(Indices) == 6*G and len(Vertices) == len(TexCoords) == 8*G
// for G visible glyphs; indices of glyph g are 4g + {0, 1, 2, 1, 2, 3}.
type Mesh struct {
	Vertices  []float32
	TexCoords []float32
	Indices   []uint16
}

// NewMesh returns an empty mesh with room for capacity glyphs.
func NewMesh(capacity int) *Mesh {
	if capacity < 0 {
		capacity = 0
	}
	return &Mesh{
		Vertices:  make([]float32, 0, capacity*floatsPerGlyph),
		TexCoords: make([]float32, 0, capacity*floatsPerGlyph),
		Indices:   make([]uint16, 0, capacity*IndicesPerGlyph),
	}
}

// GlyphCount returns the number of quads in the mesh.
func (m *Mesh) GlyphCount() int {
	if m == nil {
		return 0
	}
	return len(m.Indices) / IndicesPerGlyph
}

// Reset empties the mesh, keeping its storage.
func (m *Mesh) Reset() {
	m.Vertices = m.Vertices[:0]
	m.TexCoords = m.TexCoords[:0]
	m.Indices = m.Indices[:0]
}

// appendQuad adds one glyph quad. Corners are ordered top-left, top-right,
// bottom-left, bottom-right, matching the index pattern.
func (m *Mesh) appendQuad(x0, y0, x1, y1, u0, v0, u1, v1 float64) {
	f := uint16(m.GlyphCount() * VerticesPerGlyph) //nolint:gosec // bounded by MaxGlyphs
	m.Indices = append(m.Indices, f, f+1, f+2, f+1, f+2, f+3)

	m.Vertices = append(m.Vertices,
		float32(x0), float32(y0),
		float32(x1), float32(y0),
		float32(x0), float32(y1),
		float32(x1), float32(y1),
	)
	m.TexCoords = append(m.TexCoords,
		float32(u0), float32(v0),
		float32(u1), float32(v0),
		float32(u0), float32(v1),
		float32(u1), float32(v1),
	)
}

// VertexBytes returns the positions as little-endian float32 data for
// GPU upload.
func (m *Mesh) VertexBytes() []byte { return floatBytes(m.Vertices) }

// TexCoordBytes returns the texture coordinates as little-endian float32
// data for GPU upload.
func (m *Mesh) TexCoordBytes() []byte { return floatBytes(m.TexCoords) }

// IndexBytes returns the indices as little-endian uint16 data, padded to
// a multiple of four bytes as buffer writes require.
func (m *Mesh) IndexBytes() []byte {
	if len(m.Indices) == 0 {
		return nil
	}
	n := len(m.Indices) * 2
	data := make([]byte, (n+3)&^3)
	for i, idx := range m.Indices {
		binary.LittleEndian.PutUint16(data[i*2:], idx)
	}
	return data
}

func floatBytes(v []float32) []byte {
	if len(v) == 0 {
		return nil
	}
	data := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(data[i*4:], math.Float32bits(f))
	}
	return data
}
