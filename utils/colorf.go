package utils

import "github.com/chewxy/math32"

type ColorFloat [4]float32

func (c *ColorFloat) RGBA() (r, g, b, a uint32) {
	const mf = float32(256*256 - 1)
	r = uint32(c[0] * mf)
	g = uint32(c[1] * mf)
	b = uint32(c[2] * mf)
	a = uint32(c[3] * mf)
	return
}

func NewColorFloatA(c []float32) ColorFloat {
	return ColorFloat{c[0], c[1], c[2], c[3]}
}

func NewColorFloat(c []float32) ColorFloat {
	return ColorFloat{c[0], c[1], c[2], 1.0}
}

func clamp01(v float32) float32 {
	return math32.Min(math32.Max(v, 0.0), 1.0)
}

// HSVToRGB converts a hue/saturation/value triple (conventionally in [0,1])
// to an opaque color using a branchless triangle-wave per channel. Inputs are
// deliberately not clamped: out-of-range values extrapolate through the same
// formula, which keeps debug-coloring output deterministic.
func HSVToRGB(hue, saturation, value float32) ColorFloat {
	r := math32.Abs(hue*6.0-3.0) - 1.0
	g := 2.0 - math32.Abs(hue*6.0-2.0)
	b := 2.0 - math32.Abs(hue*6.0-4.0)

	r = clamp01(r)
	g = clamp01(g)
	b = clamp01(b)

	return ColorFloat{
		((r-1.0)*saturation + 1.0) * value,
		((g-1.0)*saturation + 1.0) * value,
		((b-1.0)*saturation + 1.0) * value,
		1.0,
	}
}
