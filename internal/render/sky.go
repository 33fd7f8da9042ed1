package render

import "math"

// Background glyph catalog. Deliberately disjoint from the brightness ramp
// so stars never read as disk pixels.
const (
	StarDim    = '.'
	StarMedium = '+'
	StarBright = '*'
	EmptySky   = ' '
)

// FNV-style mixing constants for the deterministic star placement. These are
// part of the output contract: changing them rearranges the starfield.
const (
	skyHashBasis = 1469598103
	skyHashX     = 374761393
	skyHashY     = 668265263
	skyHashPrime = 16777619
)

// SkyGlyph returns the background glyph for pixel (x, y) at the given
// animation phase. Placement depends only on the integer coordinates: a
// hash tiers pixels into dense dim stars, sparser medium stars, rare bright
// stars, and empty space. The two brighter tiers twinkle with a sinusoid of
// the phase plus a hash-derived per-star offset, so no per-star state is
// stored anywhere.
func SkyGlyph(x, y int, phase float64) byte {
	h := uint32(skyHashBasis)
	h ^= uint32(x)*skyHashX + uint32(y)*skyHashY
	h *= skyHashPrime
	r := h & 0xffff

	switch {
	case r < 12000:
		return StarDim
	case r < 16000:
		// Medium star with an occasional twinkle up to bright.
		tw := math.Sin(phase*0.60 + float64((h>>8)&1023)*(2.0*math.Pi/1024.0))
		if tw > 0.92 {
			return StarBright
		}
		return StarMedium
	case r < 16800:
		// Bright star twinkling down to medium.
		tw := math.Sin(phase*0.75 + float64(h&1023)*(2.0*math.Pi/1024.0))
		if tw > 0.10 {
			return StarBright
		}
		return StarMedium
	default:
		return EmptySky
	}
}
