// Package spacetime implements the Schwarzschild geometry the ray tracer
// integrates against: the metric, the geodesic acceleration derived from its
// connection coefficients, and the characteristic radii. Units are
// geometrized (G=c=1) with the black hole mass fixed at M=1, so every radius
// in the program is a multiple of M.
package spacetime

import "math"

// M is the black hole mass.
const M = 1.0

// HorizonRadius is the Schwarzschild radius 2M. Rays crossing it never
// come back.
const HorizonRadius = 2.0 * M

// PhotonSphereRadius is the unstable circular photon orbit at 3M. Used as a
// closest-approach classification threshold, not a physical boundary.
const PhotonSphereRadius = 3.0 * M

// polarEps keeps the phi-theta coupling finite near the theta=0,pi axis.
// Callers additionally clamp theta away from the poles after each step.
const polarEps = 1e-12

// Vec4 is a spacetime 4-tuple: a position (t, r, theta, phi) or its
// derivative with respect to the affine parameter.
type Vec4 [4]float64

// A returns the lapse 1 - 2M/r.
func A(r float64) float64 {
	return 1.0 - 2.0*M/r
}

// Metric returns the diagonal metric components (g_tt, g_rr, g_thth, g_phph)
// at radius r and polar angle theta.
func Metric(r, theta float64) (gtt, grr, gthth, gphph float64) {
	s := math.Sin(theta)
	return -A(r), 1.0 / A(r), r * r, r * r * s * s
}

// Lower contracts a contravariant 4-vector with the metric at (r, theta),
// producing covariant components.
func Lower(r, theta float64, v Vec4) Vec4 {
	gtt, grr, gthth, gphph := Metric(r, theta)
	return Vec4{gtt * v[0], grr * v[1], gthth * v[2], gphph * v[3]}
}

// Accel computes the geodesic acceleration a^mu = -Gamma^mu_ab v^a v^b from
// the nonzero Christoffel symbols at position x with velocity v.
func Accel(x, v Vec4) Vec4 {
	r, th := x[1], x[2]
	s, c := math.Sin(th), math.Cos(th)

	gttr := M / (r * (r - 2.0*M))     // Gamma^t_{tr}
	grtt := A(r) * M / (r * r)        // Gamma^r_{tt}
	grrr := -M / (r * (r - 2.0*M))    // Gamma^r_{rr}
	grthth := -(r - 2.0*M)            // Gamma^r_{theta theta}
	grphph := -(r - 2.0*M) * s * s    // Gamma^r_{phi phi}
	gthrth := 1.0 / r                 // Gamma^theta_{r theta}
	gthphph := -s * c                 // Gamma^theta_{phi phi}
	gphrph := 1.0 / r                 // Gamma^phi_{r phi}
	gphthph := c / (s + polarEps)     // Gamma^phi_{theta phi}, singular at poles

	vt, vr, vth, vph := v[0], v[1], v[2], v[3]
	return Vec4{
		-2.0 * gttr * vt * vr,
		-(grtt*vt*vt + grrr*vr*vr + grthth*vth*vth + grphph*vph*vph),
		-(2.0*gthrth*vr*vth + gthphph*vph*vph),
		-(2.0*gphrph*vr*vph + 2.0*gphthph*vth*vph),
	}
}
