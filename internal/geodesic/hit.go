package geodesic

// Kind classifies where a traced ray ended up.
type Kind uint8

const (
	// Disk means the ray crossed the disk plane inside the emitting annulus.
	Disk Kind = iota
	// Sky means the ray escaped without ever dipping below the inner disk
	// radius: the pixel shows background stars.
	Sky
	// Captured means the ray crossed the horizon, or approached inside the
	// photon sphere, which is visually indistinguishable from capture.
	Captured
	// InnerVoid means the ray's closest approach fell between the photon
	// sphere and the inner disk edge: a dark band with no stars.
	InnerVoid
)

// String returns a human-readable name for the classification.
func (k Kind) String() string {
	switch k {
	case Disk:
		return "disk"
	case Sky:
		return "sky"
	case Captured:
		return "captured"
	case InnerVoid:
		return "inner-void"
	default:
		return "unknown"
	}
}

// Hit is the per-pixel lensing result. R, Phi, G and Emiss are only
// meaningful when Kind is Disk.
type Hit struct {
	Kind  Kind
	R     float64 // disk radius of the crossing
	Phi   float64 // in-plane azimuth, wrapped to [0, 2pi)
	G     float64 // redshift factor E_obs/E_em, clamped >= 0
	Emiss float64 // baseline emissivity r^-p
}
