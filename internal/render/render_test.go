package render

import (
	"bytes"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/vovakirdan/tui-blackhole/internal/config"
	"github.com/vovakirdan/tui-blackhole/internal/disk"
	"github.com/vovakirdan/tui-blackhole/internal/geodesic"
	"github.com/vovakirdan/tui-blackhole/internal/scene"
)

// defaultLens traces the default 80x52 scene once and shares it across
// tests; the lens map is read-only by contract.
var defaultLens = func() *LensMap {
	return Trace(scene.FromConfig(config.DefaultScene()))
}()

func TestTraceDeterminism(t *testing.T) {
	sc := scene.FromConfig(config.DefaultScene())
	m1 := Trace(sc)
	m2 := Trace(sc)
	if !reflect.DeepEqual(m1.hits, m2.hits) {
		t.Error("two traces of the same scene should produce identical lens maps")
	}
}

func TestLensMapCoversAllOutcomes(t *testing.T) {
	// The default view contains the disk band, the central shadow, and
	// background sky all at once.
	counts := make(map[geodesic.Kind]int)
	sc := defaultLens.Scene()
	for y := 0; y < sc.Height; y++ {
		for x := 0; x < sc.Width; x++ {
			counts[defaultLens.At(x, y).Kind]++
		}
	}
	for _, k := range []geodesic.Kind{geodesic.Disk, geodesic.Sky, geodesic.Captured} {
		if counts[k] == 0 {
			t.Errorf("default scene should contain at least one %v pixel, got %v", k, counts)
		}
	}
}

func TestNormScaleNormalizesBaselineToOne(t *testing.T) {
	norm := defaultLens.NormScale()
	if norm <= 0 {
		t.Fatalf("norm scale = %v, want strictly positive", norm)
	}

	sc := defaultLens.Scene()
	maxRatio := 0.0
	for y := 0; y < sc.Height; y++ {
		for x := 0; x < sc.Width; x++ {
			h := defaultLens.At(x, y)
			if h.Kind != geodesic.Disk {
				continue
			}
			ratio := disk.BaseValue(&sc.Disk, h.R, h.G, h.Emiss) / norm
			if ratio > maxRatio {
				maxRatio = ratio
			}
		}
	}
	if !scalar.EqualWithinAbs(maxRatio, 1.0, 1e-12) {
		t.Errorf("max baseline/norm = %v, want exactly 1", maxRatio)
	}
}

func TestNormScaleDegenerateScene(t *testing.T) {
	// A 1x1 frame whose only ray falls into the hole has no disk pixels;
	// the scale must still be positive.
	cfg := config.DefaultScene()
	cfg.Display.Width = 1
	cfg.Display.Height = 1
	m := Trace(scene.FromConfig(cfg))
	if norm := m.NormScale(); norm <= 0 {
		t.Errorf("degenerate norm scale = %v, want positive floor", norm)
	}
}

func TestCompositorDeterminism(t *testing.T) {
	c := NewCompositor(defaultLens)
	for _, phase := range []float64{0, 1.0, 3.7} {
		f1 := c.Frame(phase)
		f2 := c.Frame(phase)
		if !bytes.Equal(f1.Bytes(), f2.Bytes()) {
			t.Errorf("phase %v composited twice gave different frames", phase)
		}
	}
}

func TestCompositorFramesChangeWithPhase(t *testing.T) {
	// Hotspot rotation and starfield twinkle make distant phases differ.
	c := NewCompositor(defaultLens)
	f1 := c.Frame(0)
	f2 := c.Frame(2.0)
	if bytes.Equal(f1.Bytes(), f2.Bytes()) {
		t.Error("frames half a rotation apart should differ")
	}
}

func TestQuantizeBounds(t *testing.T) {
	c := NewCompositor(defaultLens)
	if got := c.quantize(0); got != Ramp[0] {
		t.Errorf("quantize(0) = %q, want darkest glyph %q", got, Ramp[0])
	}
	if got := c.quantize(c.norm * 100); got != Ramp[len(Ramp)-1] {
		t.Errorf("quantize(overbright) = %q, want brightest glyph %q", got, Ramp[len(Ramp)-1])
	}
}

func TestEmptyPixelsForCapturedAndVoid(t *testing.T) {
	c := NewCompositor(defaultLens)
	f := c.Frame(0)
	sc := defaultLens.Scene()
	for y := 0; y < sc.Height; y++ {
		for x := 0; x < sc.Width; x++ {
			k := defaultLens.At(x, y).Kind
			if k == geodesic.Captured || k == geodesic.InnerVoid {
				if got := f.Get(x, y); got != EmptyGlyph {
					t.Fatalf("pixel (%d,%d) kind %v rendered %q, want blank", x, y, k, got)
				}
			}
		}
	}
}

func TestSkyGlyphDeterministicPerCoordinate(t *testing.T) {
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			if SkyGlyph(x, y, 1.25) != SkyGlyph(x, y, 1.25) {
				t.Fatalf("sky glyph at (%d,%d) not deterministic", x, y)
			}
		}
	}
}

func TestSkyDensestTierIsPhaseInvariant(t *testing.T) {
	// Pixels in the densest tier render a dim star regardless of phase;
	// only the two brighter tiers twinkle.
	found := false
	for y := 0; y < 100 && !found; y++ {
		for x := 0; x < 100; x++ {
			if SkyGlyph(x, y, 0) != StarDim {
				continue
			}
			found = true
			for phase := 0.0; phase < 6.3; phase += 0.1 {
				if got := SkyGlyph(x, y, phase); got != StarDim {
					t.Fatalf("dim star at (%d,%d) changed to %q at phase %v", x, y, got, phase)
				}
			}
			break
		}
	}
	if !found {
		t.Fatal("expected at least one dim-tier pixel in a 100x100 patch")
	}
}

func TestSkyTwinkleTiersOnlySwapStarGlyphs(t *testing.T) {
	// Twinkling changes brightness, not placement: a star pixel stays a
	// star at every phase.
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			base := SkyGlyph(x, y, 0)
			if base != StarMedium && base != StarBright {
				continue
			}
			for phase := 0.0; phase < 6.3; phase += 0.5 {
				got := SkyGlyph(x, y, phase)
				if got != StarMedium && got != StarBright {
					t.Fatalf("star at (%d,%d) became %q at phase %v", x, y, got, phase)
				}
			}
		}
	}
}

func TestFrameBuffer(t *testing.T) {
	f := NewFrame(4, 2)
	f.Set(0, 0, '#')
	f.Set(3, 1, '*')
	f.Set(-1, 0, 'X') // out of bounds, ignored
	f.Set(4, 0, 'X')
	f.Set(0, 2, 'X')

	if got := f.Get(0, 0); got != '#' {
		t.Errorf("Get(0,0) = %q, want '#'", got)
	}
	if got := f.Get(99, 99); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
	if got := f.Row(0); got != "#   " {
		t.Errorf("Row(0) = %q, want %q", got, "#   ")
	}
	if got := f.String(); got != "#   \n   *" {
		t.Errorf("String() = %q, want %q", got, "#   \n   *")
	}
	if got := len(f.Bytes()); got != 8 {
		t.Errorf("Bytes() length = %d, want 8 (row-major, no separators)", got)
	}
}

func TestRampGlyphsDisjointFromStars(t *testing.T) {
	for _, star := range []byte{StarDim, StarMedium, StarBright} {
		if bytes.IndexByte([]byte(Ramp), star) >= 0 {
			t.Errorf("star glyph %q must not appear in the brightness ramp", star)
		}
	}
}
