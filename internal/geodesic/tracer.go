package geodesic

import (
	"github.com/vovakirdan/tui-blackhole/internal/disk"
	"github.com/vovakirdan/tui-blackhole/internal/scene"
	"github.com/vovakirdan/tui-blackhole/internal/spacetime"
)

const (
	// maxSteps bounds one trace; rays that never terminate within it are
	// classified by closest approach.
	maxSteps = 5000

	// captureFactor triggers capture slightly outside the horizon to stop
	// the integrator before the metric blows up.
	captureFactor = 1.001

	// escapeFactor marks a ray as outgoing once it is well past the
	// observer radius; minEscapeSteps prevents the very first steps from
	// qualifying.
	escapeFactor   = 1.2
	minEscapeSteps = 10

	// crossingEps regularizes the interpolation fraction denominator.
	crossingEps = 1e-15
)

// TracePixel integrates the ray for pixel (px, py) until it terminates and
// returns the classified outcome. Every ray terminates in one of the four
// Hit kinds; there is no error path.
func TracePixel(sc *scene.Params, px, py int) Hit {
	cur := CameraRay(sc, px, py)
	prev := cur
	rmin := cur.X[1]

	for step := 0; step < maxSteps; step++ {
		prev = cur
		RK4Step(&cur, StepSize(cur.X[1]))

		if cur.X[1] < rmin {
			rmin = cur.X[1]
		}
		if cur.X[1] <= captureFactor*spacetime.HorizonRadius {
			return Hit{Kind: Captured}
		}
		if cur.X[1] > escapeFactor*sc.Robs && step > minEscapeSteps {
			return classifyMiss(sc, rmin)
		}

		sPrev := sc.PlaneEval(prev.X[1], prev.X[2], prev.X[3])
		sCur := sc.PlaneEval(cur.X[1], cur.X[2], cur.X[3])
		if sPrev*sCur <= 0.0 {
			if h, ok := finalizeCrossing(sc, prev, cur, sPrev, sCur); ok {
				return h
			}
		}
	}

	return classifyMiss(sc, rmin)
}

// classifyMiss classifies a ray that left the scene (or ran out of steps) by
// the minimum radius it ever reached.
func classifyMiss(sc *scene.Params, rmin float64) Hit {
	switch {
	case rmin < spacetime.PhotonSphereRadius:
		return Hit{Kind: Captured}
	case rmin < sc.Disk.InnerRadius:
		return Hit{Kind: InnerVoid}
	default:
		return Hit{Kind: Sky}
	}
}

// finalizeCrossing interpolates the disk-plane crossing between two states
// and, if it lands inside the emitting annulus, computes the hit photometry.
// Returns ok=false when the crossing misses the annulus so the trace can
// continue.
func finalizeCrossing(sc *scene.Params, prev, cur State, sPrev, sCur float64) (Hit, bool) {
	f := -sPrev / (sCur - sPrev + crossingEps)
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}

	rhit := prev.X[1] + f*(cur.X[1]-prev.X[1])
	thit := prev.X[2] + f*(cur.X[2]-prev.X[2])
	phit := prev.X[3] + f*(cur.X[3]-prev.X[3])
	if rhit < sc.Disk.InnerRadius || rhit > sc.Disk.OuterRadius {
		return Hit{}, false
	}

	var vh spacetime.Vec4
	for i := 0; i < 4; i++ {
		vh[i] = prev.V[i] + f*(cur.V[i]-prev.V[i])
	}

	return Hit{
		Kind:  Disk,
		R:     rhit,
		Phi:   sc.PlaneAzimuth(rhit, thit, phit),
		G:     disk.RedshiftFactor(sc.Robs, rhit, thit, vh),
		Emiss: disk.Emissivity(rhit, sc.Disk.EmissExponent),
	}, true
}
