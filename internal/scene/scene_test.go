package scene

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/vovakirdan/tui-blackhole/internal/config"
)

func TestFromConfigDerived(t *testing.T) {
	cfg := config.DefaultScene()
	p := FromConfig(cfg)

	wantTheta := math.Pi/2 - 10.0*math.Pi/180.0
	if !scalar.EqualWithinAbs(p.ThetaObs, wantTheta, 1e-12) {
		t.Errorf("ThetaObs = %v, want %v", p.ThetaObs, wantTheta)
	}
	wantFOVy := p.FOVx * 52.0 / 80.0
	if !scalar.EqualWithinAbs(p.FOVy, wantFOVy, 1e-12) {
		t.Errorf("FOVy = %v, want %v", p.FOVy, wantFOVy)
	}
	if p.PhiObs != 0 {
		t.Errorf("PhiObs = %v, want 0", p.PhiObs)
	}
	if p.PixelCount() != 80*52 {
		t.Errorf("PixelCount = %d, want %d", p.PixelCount(), 80*52)
	}
}

func TestZeroTiltPlaneIsEquatorial(t *testing.T) {
	cfg := config.DefaultScene()
	p := FromConfig(cfg)

	if p.Normal != (Vec3{0, 0, 1}) {
		t.Fatalf("zero tilt normal = %v, want (0,0,1)", p.Normal)
	}

	// Points exactly on the equator evaluate to zero; points above and
	// below straddle the plane.
	if got := p.PlaneEval(10, math.Pi/2, 1.3); !scalar.EqualWithinAbs(got, 0, 1e-12) {
		t.Errorf("PlaneEval on equator = %v, want 0", got)
	}
	above := p.PlaneEval(10, math.Pi/2-0.1, 0)
	below := p.PlaneEval(10, math.Pi/2+0.1, 0)
	if above*below >= 0 {
		t.Errorf("points straddling the equator should change sign: %v, %v", above, below)
	}

	// With the equatorial basis the plane azimuth is just phi.
	for _, phi := range []float64{0, 1.0, math.Pi, 5.0} {
		got := p.PlaneAzimuth(12, math.Pi/2, phi)
		want := math.Mod(phi, 2*math.Pi)
		if !scalar.EqualWithinAbs(got, want, 1e-9) {
			t.Errorf("PlaneAzimuth(phi=%v) = %v, want %v", phi, got, want)
		}
	}
}

func TestTiltedPlaneBasis(t *testing.T) {
	cfg := config.DefaultScene()
	cfg.Disk.TiltDeg = 25
	p := FromConfig(cfg)

	// Basis must stay orthonormal and right-handed.
	if !scalar.EqualWithinAbs(p.Normal.Dot(p.U), 0, 1e-12) {
		t.Errorf("normal and U not orthogonal: %v", p.Normal.Dot(p.U))
	}
	if !scalar.EqualWithinAbs(p.Normal.Dot(p.V), 0, 1e-12) {
		t.Errorf("normal and V not orthogonal: %v", p.Normal.Dot(p.V))
	}
	if !scalar.EqualWithinAbs(p.V.Dot(p.V), 1, 1e-12) {
		t.Errorf("V not unit length: %v", p.V.Dot(p.V))
	}

	// The tilted plane no longer contains the polar axis projection of an
	// equatorial point.
	if got := p.PlaneEval(10, math.Pi/2, math.Pi/2); scalar.EqualWithinAbs(got, 0, 1e-9) {
		t.Error("tilted plane should not contain generic equatorial points")
	}
	// Points along U remain in the plane for any tilt.
	if got := p.PlaneEval(10, math.Pi/2, 0); !scalar.EqualWithinAbs(got, 0, 1e-9) {
		t.Errorf("points along the tilt axis should stay in the plane, got %v", got)
	}
}

func TestPlaneAzimuthRange(t *testing.T) {
	cfg := config.DefaultScene()
	cfg.Disk.TiltDeg = 40
	p := FromConfig(cfg)

	for phi := -10.0; phi < 10.0; phi += 0.37 {
		got := p.PlaneAzimuth(8, 1.2, phi)
		if got < 0 || got >= 2*math.Pi {
			t.Fatalf("PlaneAzimuth(phi=%v) = %v, outside [0, 2pi)", phi, got)
		}
	}
}

func TestDegenerateSizeClamped(t *testing.T) {
	cfg := config.DefaultScene()
	cfg.Display.Width = 0
	cfg.Display.Height = -3
	p := FromConfig(cfg)
	if p.Width != 1 || p.Height != 1 {
		t.Errorf("size = %dx%d, want 1x1 clamp", p.Width, p.Height)
	}
}
