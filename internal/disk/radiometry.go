// Package disk models the photometry of the thin accretion disk: the
// combined gravitational and Doppler redshift of a photon leaving the disk,
// the power-law emissivity profile, and the cosmetic ring banding and
// rotating hotspot overlays.
package disk

import (
	"math"

	"github.com/vovakirdan/tui-blackhole/internal/scene"
	"github.com/vovakirdan/tui-blackhole/internal/spacetime"
)

// emittedEnergyFloor keeps the redshift denominator away from zero.
const emittedEnergyFloor = 1e-15

// RedshiftFactor computes g = E_observed / E_emitted for a photon with
// 4-velocity v crossing the disk at (r, theta), seen by a static observer at
// radius robs. The emitter follows a circular Keplerian orbit, which is only
// meaningful at or beyond the innermost stable circular orbit at 3M; the
// configured inner disk radius keeps hits outside it. Negative values, a
// numerical artifact, are clamped to zero.
func RedshiftFactor(robs, r, theta float64, v spacetime.Vec4) float64 {
	p := spacetime.Lower(r, theta, v)

	// Observed energy: projection onto the static observer 4-velocity.
	utObs := 1.0 / math.Sqrt(spacetime.A(robs))
	eObs := -(p[0] * utObs)

	// Emitted energy: projection onto the circular orbit 4-velocity.
	denom := math.Sqrt(1.0 - 3.0*spacetime.M/r)
	ut := 1.0 / denom
	uphi := math.Sqrt(spacetime.M/(r*r*r)) / denom
	eEm := -(p[0]*ut + p[3]*uphi)
	if eEm < emittedEnergyFloor {
		eEm = emittedEnergyFloor
	}

	g := eObs / eEm
	if g < 0 {
		g = 0
	}
	return g
}

// Emissivity returns the baseline disk emissivity r^-p: bright center,
// dim edge. A stand-in for a real disk temperature profile.
func Emissivity(r, p float64) float64 {
	return math.Pow(r, -p)
}

// BaseValue is the phase-independent disk brightness at a hit: emissivity
// times the cubed redshift factor times the ring banding. The cube
// approximates combined frequency shift and relativistic beaming on the
// bolometric flux.
func BaseValue(dk *scene.DiskParams, r, g, emiss float64) float64 {
	return emiss * g * g * g * RingMul(dk, r)
}

// Value is the full disk brightness at a hit for a given animation phase,
// including the rotating hotspot modulation.
func Value(dk *scene.DiskParams, r, phi, g, emiss, phase float64) float64 {
	return BaseValue(dk, r, g, emiss) * HotspotsMul(dk, r, phi, phase)
}
