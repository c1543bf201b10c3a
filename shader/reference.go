package shader

// Background is the fixed color glyph edges blend against.
var Background = [4]float32{29.0 / 255.0, 25.0 / 255.0, 35.0 / 255.0, 1}

// Sampler returns the atlas RGB at a normalized texture coordinate.
type Sampler func(uv [2]float32) [3]float32

// Median returns the middle value of r, g and b.
func Median(r, g, b float32) float32 {
	return max(min(r, g), min(max(r, g), b))
}

// Fragment evaluates the fragment stage on the CPU. fw is the screen-space
// derivative width of uv, fwidth(uv) on the GPU. It is used to check
// backends against each other and to preview output without a device.
func Fragment(sample Sampler, uv, fw [2]float32, u Uniforms) [4]float32 {
	s := sample(uv)
	dist := Median(s[0], s[1], s[2])

	sigDist := dist - 0.5 - u.Gamma
	if u.Outline {
		sigDist += u.OutlineDistance
	}
	sigDist *= (4/u.TexSize[0])*(0.5/fw[0]) + (4/u.TexSize[1])*(0.5/fw[1])

	if u.Debug {
		return [4]float32{sigDist, sigDist, sigDist, 1}
	}

	var final [4]float32
	if u.Outline {
		factor := smoothstep(0.5-u.Gamma, 0.5+u.Gamma, dist)
		color := mix4(u.OutlineColor, u.Color, factor)
		alpha := clamp(sigDist+0.5+u.Gamma-u.OutlineDistance, 0, 1)
		final = mix4(Background, color, alpha)
	} else {
		alpha := clamp(sigDist+0.5+u.Gamma, 0, 1)
		final = mix4(Background, u.Color, alpha)
	}

	if u.DropShadow {
		sd := sample([2]float32{uv[0] - u.DropShadowOffset[0], uv[1] - u.DropShadowOffset[1]})
		a := smoothstep(0.5-u.DropShadowSmoothing, 0.5+u.DropShadowSmoothing, Median(sd[0], sd[1], sd[2]))
		shadow := [4]float32{u.DropShadowColor[0], u.DropShadowColor[1], u.DropShadowColor[2], u.DropShadowColor[3] * a}
		return mix4(shadow, final, final[3])
	}
	return final
}

func clamp(x, lo, hi float32) float32 {
	return min(max(x, lo), hi)
}

// smoothstep follows the GLSL definition, including edge0 == edge1.
func smoothstep(edge0, edge1, x float32) float32 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

func mix4(a, b [4]float32, t float32) [4]float32 {
	var out [4]float32
	for i := range out {
		out[i] = a[i]*(1-t) + b[i]*t
	}
	return out
}
