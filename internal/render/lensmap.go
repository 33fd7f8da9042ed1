package render

import (
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/vovakirdan/tui-blackhole/internal/disk"
	"github.com/vovakirdan/tui-blackhole/internal/geodesic"
	"github.com/vovakirdan/tui-blackhole/internal/scene"
)

// normFloor keeps the normalization scale positive on degenerate scenes
// with no disk pixels.
const normFloor = 1e-12

// LensMap is the full-frame cache of per-pixel hit classifications. It is
// computed exactly once per scene configuration and read-only afterwards:
// only the phase-dependent brightness changes between animation frames.
type LensMap struct {
	sc   *scene.Params
	hits []geodesic.Hit
}

// Trace builds the lens map for the given scene. Rows are traced in
// parallel; each pixel's trace is independent, so the only synchronization
// is the final barrier before returning.
func Trace(sc *scene.Params) *LensMap {
	m := &LensMap{
		sc:   sc,
		hits: make([]geodesic.Hit, sc.PixelCount()),
	}

	var wg sync.WaitGroup
	for py := 0; py < sc.Height; py++ {
		wg.Add(1)
		go func(py int) {
			defer wg.Done()
			row := m.hits[py*sc.Width : (py+1)*sc.Width]
			for px := range row {
				row[px] = geodesic.TracePixel(sc, px, py)
			}
		}(py)
	}
	wg.Wait()
	return m
}

// Scene returns the parameters the map was traced with.
func (m *LensMap) Scene() *scene.Params {
	return m.sc
}

// At returns the classification for pixel (x, y).
func (m *LensMap) At(x, y int) geodesic.Hit {
	return m.hits[y*m.sc.Width+x]
}

// NormScale computes the frame normalization scale: the maximum
// phase-independent baseline brightness (emissivity x g^3 x ring banding,
// explicitly excluding hotspots) over all disk pixels, floored at a tiny
// epsilon so degenerate scenes never divide by zero.
func (m *LensMap) NormScale() float64 {
	vals := make([]float64, 0, len(m.hits))
	for i := range m.hits {
		h := &m.hits[i]
		if h.Kind != geodesic.Disk {
			continue
		}
		vals = append(vals, disk.BaseValue(&m.sc.Disk, h.R, h.G, h.Emiss))
	}
	if len(vals) == 0 {
		return normFloor
	}
	s := floats.Max(vals)
	if s < normFloor {
		s = normFloor
	}
	return s
}
