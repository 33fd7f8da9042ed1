package config

// ViewPreset represents a named observer pose.
type ViewPreset string

const (
	// ViewClassic is the default near-edge-on view.
	ViewClassic ViewPreset = "classic"
	// ViewEdge skims the disk plane, maximizing the lensed far side.
	ViewEdge ViewPreset = "edge"
	// ViewHigh looks down at the disk from a steep inclination.
	ViewHigh ViewPreset = "high"
	// ViewTilted keeps the classic pose but tilts the disk plane itself.
	ViewTilted ViewPreset = "tilted"
)

// KnownPresets lists the presets accepted on the command line, in display order.
func KnownPresets() []ViewPreset {
	return []ViewPreset{ViewClassic, ViewEdge, ViewHigh, ViewTilted}
}

// ApplyViewPreset modifies the observer pose based on a preset.
// Unknown presets leave the configuration untouched.
func ApplyViewPreset(cfg *Scene, preset ViewPreset) {
	switch preset {
	case ViewClassic:
		cfg.Observer.InclinationDeg = 10
		cfg.Disk.TiltDeg = 0
	case ViewEdge:
		cfg.Observer.InclinationDeg = 2
		cfg.Disk.TiltDeg = 0
	case ViewHigh:
		cfg.Observer.InclinationDeg = 70
		cfg.Disk.TiltDeg = 0
	case ViewTilted:
		cfg.Observer.InclinationDeg = 10
		cfg.Disk.TiltDeg = 25
	}
}
