// Package scene turns the external configuration into the immutable derived
// parameters every other component reads: observer pose, field of view,
// disk plane orientation, and display gamma. A Params value never changes
// for the lifetime of one lensing pass.
package scene

import (
	"math"

	"github.com/vovakirdan/tui-blackhole/internal/config"
)

// Vec3 is a Cartesian 3-vector used for the disk plane basis.
type Vec3 [3]float64

// Dot returns the scalar product of two vectors.
func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns the vector product a x b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// DiskParams holds the accretion disk geometry and texture parameters.
type DiskParams struct {
	InnerRadius   float64
	OuterRadius   float64
	EmissExponent float64

	RingBands        float64
	RingFillFraction float64
	RingEdgeSoftness float64
	RingFloor        float64
	RingPeak         float64

	HotspotCount     int
	HotspotAmplitude float64
}

// Params is the fully derived scene. Constructed once at startup from a
// validated config.Scene, immutable thereafter.
type Params struct {
	Width  int
	Height int

	Robs     float64 // observer radial coordinate
	ThetaObs float64 // observer polar angle, pi/2 - inclination
	PhiObs   float64 // observer azimuth, fixed at 0
	FOVx     float64 // horizontal field of view, radians
	FOVy     float64 // vertical field of view, derived from aspect ratio
	Gamma    float64 // display gamma exponent

	TiltDeg float64
	// Disk plane basis: Normal is the plane normal, U the in-plane
	// reference axis, V = Normal x U. At zero tilt the plane is equatorial
	// with Normal = (0, 0, 1).
	Normal Vec3
	U      Vec3
	V      Vec3

	Disk DiskParams
}

// FromConfig derives the scene parameters from a validated configuration.
// Width and height must already be resolved (at least 1 each).
func FromConfig(cfg config.Scene) *Params {
	w, h := cfg.Display.Width, cfg.Display.Height
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	fovx := cfg.Observer.FOVDeg * math.Pi / 180.0

	p := &Params{
		Width:    w,
		Height:   h,
		Robs:     cfg.Observer.Radius,
		ThetaObs: math.Pi/2.0 - cfg.Observer.InclinationDeg*math.Pi/180.0,
		PhiObs:   0.0,
		FOVx:     fovx,
		FOVy:     fovx * float64(h) / float64(w),
		Gamma:    cfg.Display.Gamma,
		TiltDeg:  cfg.Disk.TiltDeg,
		Disk: DiskParams{
			InnerRadius:      cfg.Disk.InnerRadius,
			OuterRadius:      cfg.Disk.OuterRadius,
			EmissExponent:    cfg.Disk.EmissExponent,
			RingBands:        cfg.Disk.Rings.Bands,
			RingFillFraction: cfg.Disk.Rings.FillFraction,
			RingEdgeSoftness: cfg.Disk.Rings.EdgeSoftness,
			RingFloor:        cfg.Disk.Rings.Floor,
			RingPeak:         cfg.Disk.Rings.Peak,
			HotspotCount:     cfg.Disk.Hotspots.Count,
			HotspotAmplitude: cfg.Disk.Hotspots.Amplitude,
		},
	}

	// Disk plane orientation: rotate the equatorial normal (0,0,1) by the
	// tilt angle about the screen X axis. U stays the world X axis and V
	// completes the right-handed in-plane basis.
	tilt := cfg.Disk.TiltDeg * math.Pi / 180.0
	ct, st := math.Cos(tilt), math.Sin(tilt)
	p.Normal = Vec3{0, -st, ct}
	p.U = Vec3{1, 0, 0}
	p.V = p.Normal.Cross(p.U)

	return p
}

// PixelCount returns the number of pixels in one frame.
func (p *Params) PixelCount() int {
	return p.Width * p.Height
}

// SphToCart converts Schwarzschild spherical coordinates to Cartesian.
func SphToCart(r, theta, phi float64) Vec3 {
	st, ct := math.Sin(theta), math.Cos(theta)
	cp, sp := math.Cos(phi), math.Sin(phi)
	return Vec3{r * st * cp, r * st * sp, r * ct}
}

// PlaneEval returns the signed distance proxy of a spherical point relative
// to the disk plane. A sign change between two points means the segment
// between them crossed the plane; zero tilt reduces this to the equatorial
// test against theta = pi/2.
func (p *Params) PlaneEval(r, theta, phi float64) float64 {
	return p.Normal.Dot(SphToCart(r, theta, phi))
}

// PlaneAzimuth projects a spherical point onto the in-plane (U, V) basis and
// returns its azimuth wrapped to [0, 2pi).
func (p *Params) PlaneAzimuth(r, theta, phi float64) float64 {
	c := SphToCart(r, theta, phi)
	raw := math.Atan2(p.V.Dot(c), p.U.Dot(c))
	return math.Mod(raw+1000.0*2.0*math.Pi, 2.0*math.Pi)
}
