package render

import (
	"math"

	"github.com/vovakirdan/tui-blackhole/internal/disk"
	"github.com/vovakirdan/tui-blackhole/internal/geodesic"
)

// Ramp is the dark-to-bright glyph catalog for disk brightness. The exact
// glyphs are a caller-visible contract for byte-for-byte output
// compatibility; star glyphs are deliberately excluded from it.
const Ramp = " `,-:'_;~/\\^\"<>!=()?{}|[]#%$&@"

// EmptyGlyph is emitted for captured rays and the inner void band.
const EmptyGlyph = ' '

// PhaseStep is the canonical per-frame phase advance: 180 frames per full
// hotspot rotation.
const PhaseStep = 2.0 * math.Pi / 180.0

// Compositor turns the immutable lens map into per-phase frames. The
// normalization scale is computed once at construction and reused for every
// frame so the overall brightness does not pump as hotspots rotate.
type Compositor struct {
	lens *LensMap
	norm float64
}

// NewCompositor creates a compositor for the given lens map.
func NewCompositor(lens *LensMap) *Compositor {
	return &Compositor{
		lens: lens,
		norm: lens.NormScale(),
	}
}

// NormScale returns the fixed normalization scale.
func (c *Compositor) NormScale() float64 {
	return c.norm
}

// Render composites the frame for one animation phase into dst, which must
// match the lens map's dimensions.
func (c *Compositor) Render(phase float64, dst *Frame) {
	sc := c.lens.Scene()
	for y := 0; y < sc.Height; y++ {
		for x := 0; x < sc.Width; x++ {
			h := c.lens.At(x, y)
			var ch byte
			switch h.Kind {
			case geodesic.Disk:
				val := disk.Value(&sc.Disk, h.R, h.Phi, h.G, h.Emiss, phase)
				ch = c.quantize(val)
			case geodesic.Captured, geodesic.InnerVoid:
				ch = EmptyGlyph
			default:
				ch = SkyGlyph(x, y, phase)
			}
			dst.Set(x, y, ch)
		}
	}
}

// Frame allocates and composites a frame for one animation phase.
func (c *Compositor) Frame(phase float64) *Frame {
	sc := c.lens.Scene()
	dst := NewFrame(sc.Width, sc.Height)
	c.Render(phase, dst)
	return dst
}

// quantize maps a disk brightness onto the ramp: normalize, clamp to [0,1],
// gamma-correct, and index into the glyph catalog.
func (c *Compositor) quantize(val float64) byte {
	v := val / c.norm
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	q := math.Pow(v, c.lens.Scene().Gamma)

	idx := int(q * float64(len(Ramp)-1))
	if idx < 0 {
		idx = 0
	}
	if idx > len(Ramp)-1 {
		idx = len(Ramp) - 1
	}
	return Ramp[idx]
}
