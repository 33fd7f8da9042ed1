// Package geodesic traces null geodesics backward from the observer's camera
// through the Schwarzschild geometry and classifies where each ray ends up:
// on the accretion disk, in the sky, captured by the hole, or in the dark
// band between the photon sphere and the inner disk edge.
package geodesic

import (
	"math"

	"github.com/vovakirdan/tui-blackhole/internal/spacetime"
)

// State is one ray's position and velocity along the affine parameter.
// Owned by a single trace invocation and discarded when it terminates.
type State struct {
	X spacetime.Vec4 // position (t, r, theta, phi)
	V spacetime.Vec4 // velocity (dt, dr, dtheta, dphi) / dlambda
}

const (
	// baseStep is the full integration step used far from the hole.
	baseStep = 0.5

	// thetaEps keeps the polar angle away from the axis singularity.
	thetaEps = 1e-6
)

// StepSize returns the integration step for a ray at radius r. The step
// shrinks near the center where curvature is largest: quarter step below
// r=10M, eighth step below r=6M. These thresholds are part of the output
// contract and must not change.
func StepSize(r float64) float64 {
	h := baseStep
	if r < 10.0 {
		h = 0.25 * baseStep
	}
	if r < 6.0 {
		h = 0.125 * baseStep
	}
	return h
}

// RK4Step advances the state by one classic fourth-order Runge-Kutta step of
// size h, then clamps theta into (thetaEps, pi-thetaEps). There is no error
// control or step rejection; accuracy comes from the caller's step size
// heuristic.
func RK4Step(s *State, h float64) {
	var k1x, k2x, k3x, k4x spacetime.Vec4
	var k1v, k2v, k3v, k4v spacetime.Vec4
	var xt, vt spacetime.Vec4

	a := spacetime.Accel(s.X, s.V)
	for i := 0; i < 4; i++ {
		k1x[i] = h * s.V[i]
		k1v[i] = h * a[i]
		xt[i] = s.X[i] + 0.5*k1x[i]
		vt[i] = s.V[i] + 0.5*k1v[i]
	}
	a = spacetime.Accel(xt, vt)
	for i := 0; i < 4; i++ {
		k2x[i] = h * vt[i]
		k2v[i] = h * a[i]
		xt[i] = s.X[i] + 0.5*k2x[i]
		vt[i] = s.V[i] + 0.5*k2v[i]
	}
	a = spacetime.Accel(xt, vt)
	for i := 0; i < 4; i++ {
		k3x[i] = h * vt[i]
		k3v[i] = h * a[i]
		xt[i] = s.X[i] + k3x[i]
		vt[i] = s.V[i] + k3v[i]
	}
	a = spacetime.Accel(xt, vt)
	for i := 0; i < 4; i++ {
		k4x[i] = h * vt[i]
		k4v[i] = h * a[i]
	}
	for i := 0; i < 4; i++ {
		s.X[i] += (k1x[i] + 2*k2x[i] + 2*k3x[i] + k4x[i]) / 6.0
		s.V[i] += (k1v[i] + 2*k2v[i] + 2*k3v[i] + k4v[i]) / 6.0
	}

	if s.X[2] < thetaEps {
		s.X[2] = thetaEps
	}
	if s.X[2] > math.Pi-thetaEps {
		s.X[2] = math.Pi - thetaEps
	}
}
