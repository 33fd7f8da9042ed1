// Package config provides YAML-based scene configuration loading and view
// presets for the black hole renderer.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-blackhole/internal/spacetime"
)

// Scene contains all configuration for one rendering run.
type Scene struct {
	Observer Observer `yaml:"observer"`
	Disk     Disk     `yaml:"disk"`
	Display  Display  `yaml:"display"`
}

// Observer defines where the camera sits and how wide it looks.
type Observer struct {
	// Radius is the observer's radial coordinate in units of M.
	Radius float64 `yaml:"radius"`
	// InclinationDeg lifts the line of sight out of the equatorial plane.
	// 0 is edge-on, 90 would be face-on (and is rejected by Validate).
	InclinationDeg float64 `yaml:"inclination_deg"`
	// FOVDeg is the horizontal field of view in degrees. The vertical FOV
	// is derived from the pixel aspect ratio.
	FOVDeg float64 `yaml:"fov_deg"`
}

// Disk defines the accretion disk geometry and its cosmetic texture.
type Disk struct {
	// TiltDeg rotates the disk plane around the screen X axis.
	// 0 keeps the disk equatorial.
	TiltDeg float64 `yaml:"tilt_deg"`
	// InnerRadius and OuterRadius bound the emitting annulus, in units of M.
	InnerRadius float64 `yaml:"inner_radius"`
	OuterRadius float64 `yaml:"outer_radius"`
	// EmissExponent is p in the emissivity law r^-p.
	EmissExponent float64 `yaml:"emiss_exponent"`

	Rings    Rings    `yaml:"rings"`
	Hotspots Hotspots `yaml:"hotspots"`
}

// Rings defines the phase-independent radial banding of the disk.
type Rings struct {
	Bands        float64 `yaml:"bands"`         // number of concentric bands
	FillFraction float64 `yaml:"fill_fraction"` // bright fraction per band
	EdgeSoftness float64 `yaml:"edge_softness"` // soft edge width (band fraction)
	Floor        float64 `yaml:"floor"`         // darkness of gaps
	Peak         float64 `yaml:"peak"`          // brightness of bands
}

// Hotspots defines the rotating brightness boosts overlaid on the disk.
// Their radius, size and edge width are derived from the outer disk radius.
type Hotspots struct {
	Count     int     `yaml:"count"`
	Amplitude float64 `yaml:"amplitude"`
}

// Display defines the output raster and tone mapping.
type Display struct {
	// Width and Height are the frame size in characters. Zero means
	// "use the terminal size", resolved by the command layer.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Gamma is the display gamma exponent applied before quantization.
	Gamma float64 `yaml:"gamma"`
	// FPS is the animation pacing in frames per second.
	FPS int `yaml:"fps"`
}

// Validate reports the first precondition violation in the configuration.
// The numerical core does not defend against degenerate geometry, so every
// run goes through this check at the collaborator boundary.
func (s *Scene) Validate() error {
	if s.Display.Width < 0 || s.Display.Height < 0 {
		return fmt.Errorf("config: display size %dx%d must not be negative",
			s.Display.Width, s.Display.Height)
	}
	if s.Display.Gamma <= 0 {
		return fmt.Errorf("config: display gamma %v must be positive", s.Display.Gamma)
	}
	if s.Display.FPS < 1 {
		return fmt.Errorf("config: fps %d must be at least 1", s.Display.FPS)
	}
	if s.Observer.Radius <= spacetime.HorizonRadius {
		return fmt.Errorf("config: observer radius %v must exceed the horizon radius %v",
			s.Observer.Radius, spacetime.HorizonRadius)
	}
	if s.Observer.InclinationDeg <= -90 || s.Observer.InclinationDeg >= 90 {
		return fmt.Errorf("config: inclination %v deg must be strictly within (-90, 90)",
			s.Observer.InclinationDeg)
	}
	if s.Observer.FOVDeg <= 0 || s.Observer.FOVDeg >= 180 {
		return fmt.Errorf("config: fov %v deg must be strictly within (0, 180)",
			s.Observer.FOVDeg)
	}
	if s.Disk.TiltDeg < -89 || s.Disk.TiltDeg > 89 {
		return fmt.Errorf("config: disk tilt %v deg must be within [-89, 89]", s.Disk.TiltDeg)
	}
	if s.Disk.InnerRadius < spacetime.PhotonSphereRadius {
		return fmt.Errorf("config: inner disk radius %v must not be inside the innermost stable orbit %v",
			s.Disk.InnerRadius, spacetime.PhotonSphereRadius)
	}
	if s.Disk.OuterRadius <= s.Disk.InnerRadius {
		return fmt.Errorf("config: outer disk radius %v must exceed inner radius %v",
			s.Disk.OuterRadius, s.Disk.InnerRadius)
	}
	if s.Disk.Rings.Bands < 1 {
		return fmt.Errorf("config: ring band count %v must be at least 1", s.Disk.Rings.Bands)
	}
	if s.Disk.Hotspots.Count < 0 {
		return fmt.Errorf("config: hotspot count %d must not be negative", s.Disk.Hotspots.Count)
	}
	return nil
}
