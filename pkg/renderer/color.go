package renderer

import (
	"image/color"
	"math"

	"github.com/df07/weekend-raytracer/pkg/core"
)

// maxIntensity keeps 256*c below 256 so the result fits in a byte
const maxIntensity = 0.999

// RGB is a quantized 8-bit output color
type RGB struct {
	R, G, B uint8
}

// RGBA converts to the standard library color type
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// MapColor averages an accumulated sample sum, applies gamma 2 and quantizes to 8 bits
func MapColor(sum core.Color, samples int) RGB {
	scale := 1.0
	if samples > 0 {
		scale = 1.0 / float64(samples)
	}

	return RGB{
		R: quantize(sum.X * scale),
		G: quantize(sum.Y * scale),
		B: quantize(sum.Z * scale),
	}
}

// quantize gamma-encodes a linear channel and maps it to [0,255]
func quantize(linear float64) uint8 {
	// NaN and negative radiance carry no light
	if !(linear > 0) {
		return 0
	}
	encoded := clamp(math.Sqrt(linear), 0.0, maxIntensity)
	return uint8(256 * encoded)
}

// clamp restricts x to [minVal, maxVal]
func clamp(x, minVal, maxVal float64) float64 {
	return max(minVal, min(maxVal, x))
}
