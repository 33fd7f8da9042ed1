package geodesic

import (
	"math"

	"github.com/vovakirdan/tui-blackhole/internal/scene"
	"github.com/vovakirdan/tui-blackhole/internal/spacetime"
)

// sinFloor guards the azimuthal component against sin(theta_obs) -> 0.
const sinFloor = 1e-12

// CameraRay builds the initial state of a past-directed light ray leaving
// the observer toward pixel (px, py). The pixel center maps to normalized
// screen coordinates in [-0.5, 0.5]^2, scaled by the field of view to local
// pitch/yaw angles. The tan-based direction is an approximation valid for
// moderate FOV, not an exact spherical camera.
func CameraRay(sc *scene.Params, px, py int) State {
	u := (float64(px)+0.5)/float64(sc.Width) - 0.5
	v := (float64(py)+0.5)/float64(sc.Height) - 0.5
	ax := u * sc.FOVx
	ay := v * sc.FOVy

	nr, nth, nph := -1.0, math.Tan(ay), math.Tan(ax)
	norm := math.Sqrt(nr*nr + nth*nth + nph*nph)
	nr /= norm
	nth /= norm
	nph /= norm

	ar := spacetime.A(sc.Robs)
	s := math.Sin(sc.ThetaObs)
	if s <= sinFloor {
		s = sinFloor
	}

	return State{
		X: spacetime.Vec4{0, sc.Robs, sc.ThetaObs, sc.PhiObs},
		V: spacetime.Vec4{
			1.0 / math.Sqrt(ar),
			nr * math.Sqrt(ar),
			nth / sc.Robs,
			nph / (sc.Robs * s),
		},
	}
}
