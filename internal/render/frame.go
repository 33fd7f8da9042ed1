// Package render builds the lens map (the one-time full-frame trace cache)
// and composites per-phase ASCII frames from it: brightness normalization,
// gamma correction, ramp quantization, and the deterministic starfield
// background.
package render

import "strings"

// Frame is a width x height buffer of output glyphs for one animation phase.
// It decouples the compositor from the terminal: the raw buffer is row-major
// with no separators, and the caller is responsible for framing rows.
type Frame struct {
	width  int
	height int
	cells  []byte
}

// NewFrame creates a frame buffer filled with spaces.
func NewFrame(width, height int) *Frame {
	f := &Frame{
		width:  width,
		height: height,
		cells:  make([]byte, width*height),
	}
	f.Clear()
	return f
}

// Width returns the frame width in characters.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in characters.
func (f *Frame) Height() int {
	return f.height
}

// Clear fills the entire frame with spaces.
func (f *Frame) Clear() {
	for i := range f.cells {
		f.cells[i] = ' '
	}
}

// Set places a glyph at the given position.
// Out-of-bounds coordinates are silently ignored.
func (f *Frame) Set(x, y int, ch byte) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.cells[y*f.width+x] = ch
}

// Get returns the glyph at the given position.
// Returns space for out-of-bounds coordinates.
func (f *Frame) Get(x, y int) byte {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return ' '
	}
	return f.cells[y*f.width+x]
}

// Row returns the specified row as a string.
func (f *Frame) Row(y int) string {
	if y < 0 || y >= f.height {
		return strings.Repeat(" ", f.width)
	}
	return string(f.cells[y*f.width : (y+1)*f.width])
}

// Bytes returns the raw row-major buffer without separators.
// The returned slice aliases the frame's storage.
func (f *Frame) Bytes() []byte {
	return f.cells
}

// String converts the frame to a displayable string, rows joined with
// newlines.
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow(f.width*f.height + f.height)

	for y := 0; y < f.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(f.cells[y*f.width : (y+1)*f.width])
	}
	return sb.String()
}
