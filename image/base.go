// Package image turns a finished matrix of QR modules into pixel output.
// It owns the fixed-canvas layout arithmetic and the backend contract; the
// symbol encoder that produces the matrix lives elsewhere and hands the
// matrix in read-only.
package image

import (
	"image"
	"io"

	"qrframe/image/styles/moduledrawers"
)

// Matrix is the square grid of dark/light modules produced by the symbol
// encoder. The rendering core borrows it for the duration of one render
// and never mutates it.
type Matrix [][]bool

// Width returns the side length of the matrix in modules.
func (m Matrix) Width() int { return len(m) }

// Dark reports whether the module at (row, col) is dark. Out-of-bounds
// positions read as light.
func (m Matrix) Dark(row, col int) bool {
	return row >= 0 && row < len(m) && col >= 0 && col < len(m[row]) && m[row][col]
}

// Neighbors collects the 3x3 neighborhood around (row, col) for
// neighbor-aware drawers.
func (m Matrix) Neighbors(row, col int) moduledrawers.Neighbors {
	return moduledrawers.Neighbors{
		NW: m.Dark(row-1, col-1),
		N:  m.Dark(row-1, col),
		NE: m.Dark(row-1, col+1),
		W:  m.Dark(row, col-1),
		Me: m.Dark(row, col),
		E:  m.Dark(row, col+1),
		SW: m.Dark(row+1, col-1),
		S:  m.Dark(row+1, col),
		SE: m.Dark(row+1, col+1),
	}
}

// checkModules rejects a matrix whose side length disagrees with the
// geometry it is rendered under.
func checkModules(geom Geometry, m Matrix) error {
	if m.Width() != geom.Width {
		return NewConfigurationError(
			"matrix is %d modules wide, geometry expects %d", m.Width(), geom.Width)
	}
	return nil
}

// Capabilities declares, once at construction, which parts of the render
// loop a backend participates in. The driver branches on these flags
// instead of probing the backend per cell.
type Capabilities struct {
	// PerCell: the driver iterates modules and calls DrawCell or
	// DrawCellContext. Backends that compute output straight from the
	// matrix (streaming) leave this false and get a single Render call.
	PerCell bool
	// Context: per-cell calls go to DrawCellContext for every module,
	// dark or light, so drawers can react to the cell's state.
	Context bool
	// PostProcess: Process runs after all drawing, before Save.
	PostProcess bool
}

// Backend is the contract every output backend implements. A backend is
// constructed once per render with a Geometry and the module matrix,
// produces one artifact via Save, and is then discarded.
type Backend interface {
	Geometry() Geometry
	Caps() Capabilities

	// Dark exposes the borrowed matrix to the render driver.
	Dark(row, col int) bool

	// DrawCell paints the module at (row, col). Called for dark modules
	// only, on backends without Context capability.
	DrawCell(row, col int) error

	// DrawCellContext paints the module at (row, col) using whatever
	// context the backend's active drawer asked for.
	DrawCellContext(row, col int) error

	// Render runs once for backends that opted out of per-cell drawing.
	Render() error

	// Process runs the post-process pass.
	Process() error

	// Save writes the finished artifact to w. I/O errors propagate
	// unchanged; the core never retries.
	Save(w io.Writer) error
}

// Base carries the state shared by all backends: the layout and the
// borrowed matrix. Concrete backends embed it and override the drawing
// methods they support.
type Base struct {
	geom    Geometry
	modules Matrix
}

func NewBase(geom Geometry, modules Matrix) Base {
	return Base{geom: geom, modules: modules}
}

func (b *Base) Geometry() Geometry { return b.geom }

func (b *Base) Dark(row, col int) bool { return b.modules.Dark(row, col) }

// Modules returns the borrowed matrix.
func (b *Base) Modules() Matrix { return b.modules }

func (b *Base) DrawCell(row, col int) error {
	return NewCapabilityError("backend does not draw per-cell")
}

func (b *Base) DrawCellContext(row, col int) error {
	return NewCapabilityError("backend does not draw with context")
}

func (b *Base) Render() error {
	return NewCapabilityError("backend has no bulk render pass")
}

func (b *Base) Process() error {
	return NewCapabilityError("backend has no post-process pass")
}

// PixelBox returns the inclusive top-left and bottom-right pixel corners
// of the module at (row, col). All per-cell backends share this, so boxes
// are bit-identical across backends for the same geometry.
func (b *Base) PixelBox(row, col int) (image.Point, image.Point) {
	x := (col+b.geom.Border)*b.geom.BoxSize + b.geom.OffsetX
	y := (row+b.geom.Border)*b.geom.BoxSize + b.geom.OffsetY
	return image.Point{X: x, Y: y},
		image.Point{X: x + b.geom.BoxSize - 1, Y: y + b.geom.BoxSize - 1}
}

// CellRect returns the module's pixel box as a stdlib rectangle
// (exclusive far edge), the form drawers consume.
func (b *Base) CellRect(row, col int) image.Rectangle {
	tl, br := b.PixelBox(row, col)
	return image.Rect(tl.X, tl.Y, br.X+1, br.Y+1)
}

// IsEye reports whether the module at (row, col) belongs to one of the
// three finder patterns, which may be styled by a dedicated drawer.
func (b *Base) IsEye(row, col int) bool {
	w := b.geom.Width
	return (row < 7 && col < 7) || (row < 7 && w-col < 8) || (w-row < 8 && col < 7)
}

// DrawerAlias binds a short style name to a strategy constructor with its
// default arguments baked in.
type DrawerAlias struct {
	New func() moduledrawers.Drawer
}

// DrawerAliases maps style names to drawer constructors. Backends that
// support pluggable strategies expose one of these so callers can select
// a style by name.
type DrawerAliases map[string]DrawerAlias

// Resolve constructs the drawer registered under name. A name requested
// against an empty registry is a CapabilityError; a name missing from a
// populated registry is a ConfigurationError. Both surface before any
// pixel is drawn.
func (a DrawerAliases) Resolve(name string) (moduledrawers.Drawer, error) {
	if len(a) == 0 {
		return nil, NewCapabilityError("backend has no drawer aliases, cannot resolve %q", name)
	}
	alias, ok := a[name]
	if !ok {
		return nil, NewConfigurationError("unknown drawer alias %q", name)
	}
	return alias.New(), nil
}
