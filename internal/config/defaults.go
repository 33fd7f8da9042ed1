package config

import (
	_ "embed"
)

//go:embed defaults/scene.yaml
var defaultSceneYAML []byte

// DefaultScene returns the default scene configuration: an 80x52 frame seen
// from r=39M at 10 degrees inclination with a 60 degree field of view.
func DefaultScene() Scene {
	return Scene{
		Observer: Observer{
			Radius:         39.0,
			InclinationDeg: 10.0,
			FOVDeg:         60.0,
		},
		Disk: Disk{
			TiltDeg:       0.0,
			InnerRadius:   6.0,
			OuterRadius:   40.0,
			EmissExponent: 2.0,
			Rings: Rings{
				Bands:        8,
				FillFraction: 0.30,
				EdgeSoftness: 0.02,
				Floor:        0.12,
				Peak:         1.45,
			},
			Hotspots: Hotspots{
				Count:     1,
				Amplitude: 3.0,
			},
		},
		Display: Display{
			Width:  80,
			Height: 52,
			Gamma:  0.30,
			FPS:    25,
		},
	}
}
