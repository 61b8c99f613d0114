package ktx2cube

import "math"

// RGB9E5 layout: three 9-bit mantissas in ascending bit order sharing one
// 5-bit exponent in the top bits, exponent bias 15.
const (
	rgb9e5MantissaBits = 9
	rgb9e5ExponentBias = 15
	rgb9e5MantissaMax  = 1<<rgb9e5MantissaBits - 1

	// MaxRGB9E5 is the largest representable channel value:
	// (511/512) * 2^(31-15).
	MaxRGB9E5 = float32(rgb9e5MantissaMax) / (1 << rgb9e5MantissaBits) * (1 << 16)
)

// PackRGB9E5 encodes a linear RGB triple into a 32-bit shared-exponent
// word. Channels are clamped to [0, MaxRGB9E5]; negative values and NaN
// clamp to zero. The all-zero triple encodes as the all-zero word.
func PackRGB9E5(r, g, b float32) uint32 {
	rc := clampRGB9E5(r)
	gc := clampRGB9E5(g)
	bc := clampRGB9E5(b)

	maxc := rc
	if gc > maxc {
		maxc = gc
	}
	if bc > maxc {
		maxc = bc
	}

	// Shared exponent of the max channel, floored at the denormal range.
	exp := -rgb9e5ExponentBias - 1
	if maxc > 0 {
		if f := math.Floor(math.Log2(float64(maxc))); f > float64(exp) {
			exp = int(f)
		}
	}
	expShared := exp + 1 + rgb9e5ExponentBias

	scale := math.Exp2(float64(expShared - rgb9e5ExponentBias - rgb9e5MantissaBits))
	if maxm := int(math.Floor(float64(maxc)/scale + 0.5)); maxm == rgb9e5MantissaMax+1 {
		// Rounding carried the max mantissa out of range; one exponent step
		// absorbs it. The clamp above keeps expShared within 5 bits here.
		expShared++
		scale *= 2
	}

	rm := uint32(math.Floor(float64(rc)/scale + 0.5))
	gm := uint32(math.Floor(float64(gc)/scale + 0.5))
	bm := uint32(math.Floor(float64(bc)/scale + 0.5))

	// #nosec G115 -- expShared is in [0, 31] by construction.
	return rm | gm<<rgb9e5MantissaBits | bm<<(2*rgb9e5MantissaBits) | uint32(expShared)<<(3*rgb9e5MantissaBits)
}

// UnpackRGB9E5 decodes a packed shared-exponent word back into linear RGB.
func UnpackRGB9E5(word uint32) (r, g, b float32) {
	exp := int(word >> (3 * rgb9e5MantissaBits))
	scale := float32(math.Exp2(float64(exp - rgb9e5ExponentBias - rgb9e5MantissaBits)))

	r = float32(word&rgb9e5MantissaMax) * scale
	g = float32(word>>rgb9e5MantissaBits&rgb9e5MantissaMax) * scale
	b = float32(word>>(2*rgb9e5MantissaBits)&rgb9e5MantissaMax) * scale

	return r, g, b
}

func clampRGB9E5(v float32) float32 {
	if !(v > 0) {
		// Negatives, zero and NaN.
		return 0
	}
	if v > MaxRGB9E5 {
		return MaxRGB9E5
	}

	return v
}
