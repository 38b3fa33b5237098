// Package moduledrawers holds the pluggable per-module drawing strategies
// used by canvas-backed image backends. A drawer paints the pixel box of a
// single module; neighbor-aware drawers additionally receive the 3x3
// neighborhood so the shape can react to adjacent dark modules.
package moduledrawers

import (
	"image"
	"image/color"
)

// Target is the surface a drawer paints on. It is implemented by the
// backend that owns the canvas.
type Target interface {
	// RGBA returns the canvas being drawn into.
	RGBA() *image.RGBA
	// BoxSize returns the pixel side length of one module.
	BoxSize() int
	// Foreground returns the color used for dark modules.
	Foreground() color.Color
}

// Neighbors reports the dark/light state of the eight modules surrounding
// a cell, plus the cell itself. Out-of-bounds positions read as light.
type Neighbors struct {
	NW, N, NE bool
	W, Me, E  bool
	SW, S, SE bool
}

// Cell is the per-module drawing context. Neighbors is nil unless the
// active drawer declared NeedsNeighbors.
type Cell struct {
	Dark      bool
	Neighbors *Neighbors
}

// Drawer paints one module's pixel box. Implementations are stateless
// apart from the one-time Initialize binding them to a target, so a
// single instance must not be shared between concurrent renders.
type Drawer interface {
	// Initialize binds the drawer to its target canvas. Called once,
	// before any DrawRect.
	Initialize(t Target) error

	// NeedsNeighbors reports whether DrawRect requires Cell.Neighbors.
	NeedsNeighbors() bool

	// DrawRect paints the module covering box. The box bounds are
	// exclusive on the far edge, stdlib rectangle convention.
	DrawRect(box image.Rectangle, cell Cell)
}
