// Package shader holds the MSDF text shader and its uniform contract.
//
// The WGSL source is the single definition. The wgpu HAL consumes it as
// SPIR-V through naga; WebGL 2 backends consume the GLSL ES 3.00
// translation. Uniform member names are the same in every backend.
package shader

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
)

//go:embed msdf_text.wgsl
var source string

// Entry points of the shader module.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// Bind group 0 layout.
const (
	BindingUniforms = 0
	BindingTexture  = 1
	BindingSampler  = 2
)

// Vertex buffer slots and shader locations.
const (
	LocationPosition = 0
	LocationTexCoord = 1
)

// UniformSize is the byte size of the uniform block.
const UniformSize = 224

// Byte offsets of the uniform members.
const (
	offMatrix              = 0
	offTransform           = 64
	offColor               = 128
	offOutlineColor        = 144
	offDropShadowColor     = 160
	offTexSize             = 176
	offDropShadowOffset    = 184
	offOutlineDistance     = 192
	offOutline             = 196
	offDropShadowSmoothing = 200
	offDropShadow          = 204
	offGamma               = 208
	offDebug               = 212
)

// UniformNames lists the uniform names every backend must expose.
var UniformNames = []string{
	"uMatrix",
	"uTransform",
	"uTexture",
	"uTexSize",
	"uColor",
	"uOutlineColor",
	"uOutlineDistance",
	"uOutline",
	"uDropShadowColor",
	"uDropShadowSmoothing",
	"uDropShadowOffset",
	"uDropShadow",
	"uGamma",
	"uDebug",
}

// Source returns the WGSL source.
func Source() string { return source }

// Uniforms are the per-draw shader parameters.
// Matrices are column-major.
type Uniforms struct {
	Matrix    [16]float32
	Transform [16]float32

	Color           [4]float32
	OutlineColor    [4]float32
	DropShadowColor [4]float32

	TexSize          [2]float32
	DropShadowOffset [2]float32

	OutlineDistance     float32
	Outline             bool
	DropShadowSmoothing float32
	DropShadow          bool
	Gamma               float32
	Debug               bool
}

// Bytes encodes u in the uniform buffer layout.
func (u *Uniforms) Bytes() []byte {
	buf := make([]byte, UniformSize)
	putFloats(buf[offMatrix:], u.Matrix[:])
	putFloats(buf[offTransform:], u.Transform[:])
	putFloats(buf[offColor:], u.Color[:])
	putFloats(buf[offOutlineColor:], u.OutlineColor[:])
	putFloats(buf[offDropShadowColor:], u.DropShadowColor[:])
	putFloats(buf[offTexSize:], u.TexSize[:])
	putFloats(buf[offDropShadowOffset:], u.DropShadowOffset[:])
	putFloats(buf[offOutlineDistance:], []float32{u.OutlineDistance})
	putFloats(buf[offOutline:], []float32{flag(u.Outline)})
	putFloats(buf[offDropShadowSmoothing:], []float32{u.DropShadowSmoothing})
	putFloats(buf[offDropShadow:], []float32{flag(u.DropShadow)})
	putFloats(buf[offGamma:], []float32{u.Gamma})
	putFloats(buf[offDebug:], []float32{flag(u.Debug)})
	return buf
}

func putFloats(buf []byte, v []float32) {
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
}

func flag(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

var compileSPIRV = sync.OnceValues(func() ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("shader: compile msdf_text: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}
	return code, nil
})

// CompileSPIRV returns the SPIR-V words of the shader. The result is
// computed once.
func CompileSPIRV() ([]uint32, error) {
	return compileSPIRV()
}

// TranslateGLSL returns GLSL ES 3.00 source for one entry point.
func TranslateGLSL(entryPoint string) (string, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return "", fmt.Errorf("shader: parse msdf_text: %w", err)
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return "", fmt.Errorf("shader: lower msdf_text: %w", err)
	}
	out, _, err := glsl.Compile(module, glsl.Options{
		LangVersion:        glsl.VersionES300,
		EntryPoint:         entryPoint,
		ForceHighPrecision: true,
	})
	if err != nil {
		return "", fmt.Errorf("shader: translate %s: %w", entryPoint, err)
	}
	return out, nil
}
