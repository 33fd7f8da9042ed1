package spacetime

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestLapse(t *testing.T) {
	tests := []struct {
		r    float64
		want float64
	}{
		{r: HorizonRadius, want: 0.0},
		{r: 4.0, want: 0.5},
		{r: math.Inf(1), want: 1.0},
	}
	for _, tt := range tests {
		if got := A(tt.r); !scalar.EqualWithinAbs(got, tt.want, 1e-12) {
			t.Errorf("A(%v) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestMetricDiagonal(t *testing.T) {
	r, theta := 10.0, math.Pi/2
	gtt, grr, gthth, gphph := Metric(r, theta)

	if !scalar.EqualWithinAbs(gtt, -0.8, 1e-12) {
		t.Errorf("g_tt = %v, want -0.8", gtt)
	}
	if !scalar.EqualWithinAbs(grr, 1.25, 1e-12) {
		t.Errorf("g_rr = %v, want 1.25", grr)
	}
	if !scalar.EqualWithinAbs(gthth, 100.0, 1e-12) {
		t.Errorf("g_thth = %v, want 100", gthth)
	}
	// sin(pi/2) = 1 so the phi component matches the theta component.
	if !scalar.EqualWithinAbs(gphph, gthth, 1e-12) {
		t.Errorf("g_phph = %v, want %v at the equator", gphph, gthth)
	}
}

func TestLower(t *testing.T) {
	r, theta := 8.0, math.Pi/2
	v := Vec4{1.0, 0.5, 0.0, 0.25}
	p := Lower(r, theta, v)

	if p[0] >= 0 {
		t.Errorf("p_t = %v, want negative for future-directed v_t > 0", p[0])
	}
	if !scalar.EqualWithinAbs(p[1], v[1]/A(r), 1e-12) {
		t.Errorf("p_r = %v, want %v", p[1], v[1]/A(r))
	}
	if !scalar.EqualWithinAbs(p[3], r*r*v[3], 1e-12) {
		t.Errorf("p_phi = %v, want %v", p[3], r*r*v[3])
	}
}

func TestAccelEquatorialPlaneIsStable(t *testing.T) {
	// A velocity confined to the equatorial plane (v_theta = 0) must not
	// pick up a polar acceleration: cos(pi/2) = 0 kills both theta terms.
	x := Vec4{0, 12.0, math.Pi / 2, 0}
	v := Vec4{1.2, -0.8, 0, 0.05}
	a := Accel(x, v)

	if !scalar.EqualWithinAbs(a[2], 0, 1e-12) {
		t.Errorf("a_theta = %v, want 0 for equatorial motion", a[2])
	}
}

func TestAccelRadialInfall(t *testing.T) {
	// A purely radial ray keeps phi and theta frozen.
	x := Vec4{0, 30.0, 1.2, 0}
	v := Vec4{1.0, -1.0, 0, 0}
	a := Accel(x, v)

	if a[2] != 0 {
		t.Errorf("a_theta = %v, want 0 for radial motion", a[2])
	}
	if a[3] != 0 {
		t.Errorf("a_phi = %v, want 0 for radial motion", a[3])
	}
	// Time-radial coupling: vt > 0 and vr < 0 gives a positive a_t.
	if a[0] <= 0 {
		t.Errorf("a_t = %v, want > 0 for infalling ray", a[0])
	}
}
