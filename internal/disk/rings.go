package disk

import (
	"math"

	"github.com/vovakirdan/tui-blackhole/internal/scene"
)

// RingMul returns the phase-independent radial banding multiplier at disk
// radius r: concentric bright bands separated by darker gaps, with
// tanh-smoothed edges. Radii outside the annulus are clamped to the nearest
// boundary, so the multiplier is continuous across both disk edges.
func RingMul(dk *scene.DiskParams, r float64) float64 {
	if r < dk.InnerRadius {
		r = dk.InnerRadius
	}
	if r > dk.OuterRadius {
		r = dk.OuterRadius
	}
	s := (r - dk.InnerRadius) / (dk.OuterRadius - dk.InnerRadius)

	pos := dk.RingBands * s
	f := pos - math.Floor(pos) // position within the current band [0,1)
	w := dk.RingEdgeSoftness + 1e-6
	// Near 1 inside the bright fraction of the band, near 0 in the gap.
	t := 0.5 + 0.5*math.Tanh((dk.RingFillFraction-f)/w)
	return dk.RingFloor + (dk.RingPeak-dk.RingFloor)*t
}
