package disk

import (
	"math"

	"github.com/vovakirdan/tui-blackhole/internal/scene"
)

// HotspotsMul returns the time-varying hotspot multiplier at in-plane polar
// coordinates (r, phi) for the given animation phase. Hotspots are soft-edged
// circular boosts orbiting clockwise at half the outer disk radius, evenly
// spaced in angle, each adding its amplitude on top of a baseline of 1.
func HotspotsMul(dk *scene.DiskParams, r, phi, phase float64) float64 {
	n := dk.HotspotCount
	if n <= 0 {
		return 1.0
	}

	rc := 0.5 * dk.OuterRadius   // orbit radius of hotspot centers
	rh := 0.5 * dk.OuterRadius   // hotspot radius
	edge := 0.1 * dk.OuterRadius // soft edge width

	x := r * math.Cos(phi)
	y := r * math.Sin(phi)

	m := 1.0
	for k := 0; k < n; k++ {
		ang := -phase + 2.0*math.Pi*float64(k)/float64(n) // clockwise
		cx := rc * math.Cos(ang)
		cy := rc * math.Sin(ang)
		dx, dy := x-cx, y-cy
		d := math.Sqrt(dx*dx + dy*dy)
		// Soft disk: ~1 inside rh, falling to 0 over the edge width.
		t := 0.5 + 0.5*math.Tanh((rh-d)/(edge+1e-9))
		m += dk.HotspotAmplitude * t
	}
	return m
}
